// Package fileimport builds and sends the fetch-then-load command that imports a resource into the embedded editor.
package fileimport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"text/template"

	commandchannel "github.com/uber/scene-bridge/src/bridge/controller/command-channel"
	"github.com/uber/scene-bridge/src/bridge/entity"
	"go.lsp.dev/uri"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -source=file_import.go -destination=fileimportmock/file_import_mock.go -package=fileimportmock

// The loader helper is created once per surface and reused by later imports.
const _importTemplate = `if (!window.fileLoader) {
	window.fileLoader = new THREE.FileLoader();
	window.fileLoader.crossOrigin = '';
	window.fileLoader.setResponseType('arraybuffer');
}
window.fileLoader.load({{jsString .ResourceURL}}, (data) => {
	editor.loader.loadFile(new File([data], {{jsString .Basename}}), {{jsString .BaseDirectory}});
});`

// Pipeline imports resources into the embedded editor.
type Pipeline interface {
	// Import sends the command that fetches locator inside the surface and loads it into the editor.
	// The outcome reports delivery of the command only; reachability of the resource is never checked.
	Import(ctx context.Context, locator string) entity.Outcome
}

// Params are inbound parameters to initialize the pipeline.
type Params struct {
	fx.In

	Bus    commandchannel.Bus
	Logger *zap.SugaredLogger
}

type pipeline struct {
	sender commandchannel.Sender
	logger *zap.SugaredLogger
	tmpl   *template.Template
}

// New creates a new Pipeline sending through the command bus.
func New(p Params) (Pipeline, error) {
	tmpl, err := newTemplate()
	if err != nil {
		return nil, err
	}

	return &pipeline{
		sender: p.Bus,
		logger: p.Logger,
		tmpl:   tmpl,
	}, nil
}

func (p *pipeline) Import(ctx context.Context, locator string) entity.Outcome {
	req := NewRequest(locator)
	cmd, err := buildCommand(p.tmpl, req)
	if err != nil {
		p.logger.Errorf("building import command for %q: %s", locator, err)
		return entity.ResolvedOutcome(false)
	}

	p.logger.Infow("importing resource", "url", req.ResourceURL, "basename", req.Basename)
	return p.sender.Send(ctx, cmd)
}

// NewRequest decomposes a locator into the values the import command needs.
// Absolute local paths become file URIs; anything that does not parse as a URL is split on its last "/".
func NewRequest(locator string) entity.ImportRequest {
	resource := locator
	if filepath.IsAbs(locator) {
		resource = string(uri.File(locator))
	}
	req := entity.ImportRequest{
		Locator:     locator,
		ResourceURL: resource,
	}

	u, err := url.Parse(resource)
	if err != nil || u.Scheme == "" || u.Opaque != "" {
		req.BaseDirectory, req.Basename = splitLast(resource)
		return req
	}

	// Split the escaped path so that encoded slashes stay inside their segment.
	escaped := u.EscapedPath()
	cut := strings.LastIndex(escaped, "/") + 1
	if basename, err := url.PathUnescape(escaped[cut:]); err == nil {
		req.Basename = basename
	} else {
		req.Basename = escaped[cut:]
	}

	dir := url.URL{
		Scheme:  u.Scheme,
		User:    u.User,
		Host:    u.Host,
		RawPath: escaped[:cut],
	}
	if dirPath, err := url.PathUnescape(dir.RawPath); err == nil {
		dir.Path = dirPath
	} else {
		dir.Path = dir.RawPath
	}
	req.BaseDirectory = withTrailingSlash(dir.String())
	return req
}

func newTemplate() (*template.Template, error) {
	tmpl, err := template.New("import").Funcs(template.FuncMap{"jsString": jsString}).Parse(_importTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing import template: %w", err)
	}
	return tmpl, nil
}

func buildCommand(tmpl *template.Template, req entity.ImportRequest) (entity.Command, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, req); err != nil {
		return "", fmt.Errorf("rendering import command: %w", err)
	}
	return entity.Command(sb.String()), nil
}

// jsString quotes s as a JSON string, which is also a valid JavaScript string literal.
func jsString(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func splitLast(s string) (dir string, base string) {
	i := strings.LastIndex(s, "/")
	if i < 0 {
		return "./", s
	}
	return s[:i+1], s[i+1:]
}

func withTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
