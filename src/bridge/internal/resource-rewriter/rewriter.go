// Package resourcerewriter rewrites relative resource references inside the embedded editor's bootstrap document.
package resourcerewriter

import (
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/uber/scene-bridge/src/bridge/entity"
	"go.lsp.dev/uri"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

var _schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:`)

// Resolver maps an absolute local path to a URI the rendering surface can load.
type Resolver func(path string) (string, error)

// Rewriter rewrites the src and href references of an HTML document.
type Rewriter interface {
	// Rewrite replaces each relative src/href value with the resolved URI of that path joined onto baseDir.
	// It never fails: references that cannot be resolved fall back to a file URI, and all other bytes are copied as-is.
	Rewrite(doc string, baseDir string, resolve Resolver) string
	// References lists the relative references Rewrite would touch, in document order.
	References(doc string) []entity.ResourceReference
}

type rewriter struct {
	logger *zap.SugaredLogger
}

// New creates a new Rewriter.
func New(logger *zap.SugaredLogger) Rewriter {
	return &rewriter{logger: logger}
}

func (r *rewriter) Rewrite(doc string, baseDir string, resolve Resolver) string {
	var out strings.Builder
	out.Grow(len(doc))

	r.scan(doc, func(raw []byte, hasRefs bool) {
		if !hasRefs {
			out.Write(raw)
			return
		}
		last := 0
		for _, a := range references(raw) {
			out.Write(raw[last:a.start])
			resolved := html.EscapeString(r.resolve(baseDir, a.value, resolve))
			if a.quote == 0 {
				out.WriteString(`"` + resolved + `"`)
			} else {
				out.WriteString(resolved)
			}
			last = a.end
		}
		out.Write(raw[last:])
	})

	return out.String()
}

func (r *rewriter) References(doc string) []entity.ResourceReference {
	var refs []entity.ResourceReference
	r.scan(doc, func(raw []byte, hasRefs bool) {
		if !hasRefs {
			return
		}
		for _, a := range references(raw) {
			refs = append(refs, entity.ResourceReference{
				Attribute: entity.ResourceAttribute(a.key),
				Path:      a.value,
			})
		}
	})
	return refs
}

// scan tokenizes doc and hands each token's raw bytes to fn, flagging start and self-closing tags
// that carry a src or href attribute. Concatenating every raw slice reproduces doc exactly.
func (r *rewriter) scan(doc string, fn func(raw []byte, hasRefs bool)) {
	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				r.logger.Warnf("tokenizing bootstrap document: %s", err)
			}
			return
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			fn(z.Raw(), false)
			continue
		}

		// TagName and TagAttr lower-case the tokenizer's buffer in place.
		raw := append([]byte(nil), z.Raw()...)
		hasRefs := false
		_, more := z.TagName()
		for more {
			var key []byte
			key, _, more = z.TagAttr()
			switch entity.ResourceAttribute(key) {
			case entity.ResourceAttributeSrc, entity.ResourceAttributeHref:
				hasRefs = true
			}
		}
		fn(raw, hasRefs)
	}
}

// attribute is one attribute of a start tag, located within the tag's raw bytes.
type attribute struct {
	key   string
	value string
	// start and end delimit the raw value, quotes excluded.
	start, end int
	// quote is 0 for unquoted values.
	quote    byte
	hasValue bool
}

// references returns the relative src and href attributes of a raw start tag, in order.
func references(raw []byte) []attribute {
	var refs []attribute
	for _, a := range tagAttributes(raw) {
		if !a.hasValue || !isRelative(a.value) {
			continue
		}
		switch entity.ResourceAttribute(a.key) {
		case entity.ResourceAttributeSrc, entity.ResourceAttributeHref:
			refs = append(refs, a)
		}
	}
	return refs
}

// tagAttributes splits the raw bytes of a start tag into its attributes.
// Quoted values are consumed whole, so markup inside one attribute's value is never read as another attribute.
func tagAttributes(raw []byte) []attribute {
	i := 1
	for i < len(raw) && !isSpace(raw[i]) && raw[i] != '>' && raw[i] != '/' {
		i++
	}

	var attrs []attribute
	for i < len(raw) {
		for i < len(raw) && (isSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		if i >= len(raw) || raw[i] == '>' {
			break
		}

		keyStart := i
		i++
		for i < len(raw) && !isSpace(raw[i]) && raw[i] != '=' && raw[i] != '>' && raw[i] != '/' {
			i++
		}
		a := attribute{key: strings.ToLower(string(raw[keyStart:i]))}

		j := skipSpace(raw, i)
		if j < len(raw) && raw[j] == '=' {
			i = skipSpace(raw, j+1)
			a.hasValue = true
			if i < len(raw) && (raw[i] == '"' || raw[i] == '\'') {
				a.quote = raw[i]
				i++
				a.start = i
				for i < len(raw) && raw[i] != a.quote {
					i++
				}
				a.end = i
				if i < len(raw) {
					i++
				}
			} else {
				a.start = i
				for i < len(raw) && !isSpace(raw[i]) && raw[i] != '>' {
					i++
				}
				a.end = i
			}
			a.value = html.UnescapeString(string(raw[a.start:a.end]))
		}
		attrs = append(attrs, a)
	}
	return attrs
}

func skipSpace(raw []byte, i int) int {
	for i < len(raw) && isSpace(raw[i]) {
		i++
	}
	return i
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func (r *rewriter) resolve(baseDir, value string, resolve Resolver) string {
	joined := filepath.Join(baseDir, filepath.FromSlash(value))
	if resolve != nil {
		resolved, err := resolve(joined)
		if err == nil {
			return resolved
		}
		r.logger.Warnw("resolving resource reference, falling back to a file URI", "path", joined, zap.Error(err))
	}
	return string(uri.File(joined))
}

func isRelative(value string) bool {
	switch {
	case value == "":
		return false
	case strings.HasPrefix(value, "#"), strings.HasPrefix(value, "//"):
		return false
	case _schemePattern.MatchString(value):
		return false
	}
	return true
}
