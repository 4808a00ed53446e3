package resourcerewriter

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/scene-bridge/src/bridge/entity"
	"go.lsp.dev/uri"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const _bootstrapDoc = `<!DOCTYPE html>
<html lang="en">
	<head>
		<title>three.js editor</title>
		<link rel="stylesheet" href="main.css">
		<link rel="manifest" href="manifest.json">
		<style>.icon { background: url("images/icon.png"); }</style>
	</head>
	<body>
		<script src="../build/three.js"></script>
		<script src="js/libs/app.js"></script>
		<img data-src="lazy.png" src="images/logo.png"/>
		<a href="https://threejs.org">home</a>
		<a href="#top">top</a>
		<script>
			const note = 'src="inline.js"';
		</script>
	</body>
</html>
`

func prefixResolver(path string) (string, error) {
	return "vscode-resource:" + filepath.ToSlash(path), nil
}

func TestRewrite(t *testing.T) {
	r := New(zap.NewNop().Sugar())
	baseDir := filepath.FromSlash("/ext/media/editor")

	out := r.Rewrite(_bootstrapDoc, baseDir, prefixResolver)

	t.Run("relative references are resolved", func(t *testing.T) {
		assert.Contains(t, out, `href="vscode-resource:/ext/media/editor/main.css"`)
		assert.Contains(t, out, `href="vscode-resource:/ext/media/editor/manifest.json"`)
		assert.Contains(t, out, `src="vscode-resource:/ext/media/build/three.js"`)
		assert.Contains(t, out, `src="vscode-resource:/ext/media/editor/js/libs/app.js"`)
		assert.Contains(t, out, `src="vscode-resource:/ext/media/editor/images/logo.png"`)
		assert.Equal(t, 5, strings.Count(out, "vscode-resource:"))
	})

	t.Run("other attributes and absolute values are untouched", func(t *testing.T) {
		assert.Contains(t, out, `data-src="lazy.png"`)
		assert.Contains(t, out, `href="https://threejs.org"`)
		assert.Contains(t, out, `href="#top"`)
	})

	t.Run("script and style text is copied verbatim", func(t *testing.T) {
		assert.Contains(t, out, `const note = 'src="inline.js"';`)
		assert.Contains(t, out, `url("images/icon.png")`)
	})
}

func TestRewriteCounts(t *testing.T) {
	r := New(zap.NewNop().Sugar())
	var calls []string
	resolve := func(path string) (string, error) {
		calls = append(calls, filepath.ToSlash(path))
		return "x", nil
	}

	doc := `<p><img src="a.png"><img src="b.png"><img src="c.png"><link href="d.css"><link href="e.css"></p>`
	out := r.Rewrite(doc, filepath.FromSlash("/base"), resolve)

	assert.Equal(t, []string{"/base/a.png", "/base/b.png", "/base/c.png", "/base/d.css", "/base/e.css"}, calls)
	assert.Equal(t, `<p><img src="x"><img src="x"><img src="x"><link href="x"><link href="x"></p>`, out)
}

func TestRewriteResolverFailure(t *testing.T) {
	r := New(zap.NewNop().Sugar())
	baseDir := filepath.FromSlash("/base")
	failing := func(string) (string, error) {
		return "", errors.New("no surface")
	}

	out := r.Rewrite(`<script src="app.js"></script>`, baseDir, failing)

	expected := string(uri.File(filepath.Join(baseDir, "app.js")))
	assert.Equal(t, `<script src="`+expected+`"></script>`, out)
}

func TestRewriteNilResolver(t *testing.T) {
	r := New(zap.NewNop().Sugar())
	baseDir := filepath.FromSlash("/base")

	out := r.Rewrite(`<link href="a.css">`, baseDir, nil)

	assert.Equal(t, `<link href="`+string(uri.File(filepath.Join(baseDir, "a.css")))+`">`, out)
}

func TestRewritePreservesDocumentWithoutReferences(t *testing.T) {
	r := New(zap.NewNop().Sugar())
	docs := []string{
		"",
		"plain text",
		"<html><body><p class=\"a\">hi</p></body></html>",
		"<div><!-- src=\"commented.js\" --></div>",
	}

	for _, doc := range docs {
		assert.Equal(t, doc, r.Rewrite(doc, "/base", prefixResolver))
	}
}

func TestReferences(t *testing.T) {
	r := New(zap.NewNop().Sugar())

	refs := r.References(_bootstrapDoc)

	require.Len(t, refs, 5)
	assert.Equal(t, []entity.ResourceReference{
		{Attribute: entity.ResourceAttributeHref, Path: "main.css"},
		{Attribute: entity.ResourceAttributeHref, Path: "manifest.json"},
		{Attribute: entity.ResourceAttributeSrc, Path: "../build/three.js"},
		{Attribute: entity.ResourceAttributeSrc, Path: "js/libs/app.js"},
		{Attribute: entity.ResourceAttributeSrc, Path: "images/logo.png"},
	}, refs)
}

func TestIsRelative(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "", want: false},
		{value: "#anchor", want: false},
		{value: "//cdn.example.com/lib.js", want: false},
		{value: "https://example.com/a.js", want: false},
		{value: "data:image/png;base64,AAAA", want: false},
		{value: "main.css", want: true},
		{value: "../build/three.js", want: true},
		{value: "./js/app.js", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, isRelative(tt.value))
		})
	}
}

func TestRewriteLeavesOtherAttributeValues(t *testing.T) {
	r := New(zap.NewNop().Sugar())
	doc := `<img title='see src="a.png" here' src="b.png"><a data-note='x href="c.html"'>c</a>`

	out := r.Rewrite(doc, filepath.FromSlash("/x"), prefixResolver)

	assert.Equal(t, `<img title='see src="a.png" here' src="vscode-resource:/x/b.png"><a data-note='x href="c.html"'>c</a>`, out)
	assert.Equal(t, []entity.ResourceReference{
		{Attribute: entity.ResourceAttributeSrc, Path: "b.png"},
	}, r.References(doc))
}

func TestRewriteQuoting(t *testing.T) {
	r := New(zap.NewNop().Sugar())
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "single quotes are kept",
			doc:  `<script src='app.js'></script>`,
			want: `<script src='vscode-resource:/x/app.js'></script>`,
		},
		{
			name: "unquoted value gets quoted",
			doc:  `<link href=a.css>`,
			want: `<link href="vscode-resource:/x/a.css">`,
		},
		{
			name: "upper case key and spaces around equals",
			doc:  `<IMG SRC = "a.png" ALT="A">`,
			want: `<IMG SRC = "vscode-resource:/x/a.png" ALT="A">`,
		},
		{
			name: "entities are decoded before resolving",
			doc:  `<img src="a&amp;b.png">`,
			want: `<img src="vscode-resource:/x/a&amp;b.png">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Rewrite(tt.doc, filepath.FromSlash("/x"), prefixResolver))
		})
	}
}
