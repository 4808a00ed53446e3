// Package editor owns the single embedded editor session and implements the host-facing entry points.
package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	commandchannel "github.com/uber/scene-bridge/src/bridge/controller/command-channel"
	fileimport "github.com/uber/scene-bridge/src/bridge/controller/file-import"
	"github.com/uber/scene-bridge/src/bridge/entity"
	hostshell "github.com/uber/scene-bridge/src/bridge/gateway/host-shell"
	"github.com/uber/scene-bridge/src/bridge/internal/fs"
	"github.com/uber/scene-bridge/src/bridge/internal/logfilewriter"
	resourcerewriter "github.com/uber/scene-bridge/src/bridge/internal/resource-rewriter"
	"github.com/uber/scene-bridge/src/bridge/repository/connection"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -source=editor.go -destination=editormock/editor_mock.go -package=editormock

const (
	_patchCommandFormat = `document.body.appendChild(document.createElement("script")).src=%s`
	_languageJSON       = "json"
)

// Controller owns the single live editor session.
type Controller interface {
	// OpenEditor disposes any existing session and opens a new surface hosting the embedded editor.
	OpenEditor(ctx context.Context) error
	// OpenInEditor opens the editor, then imports locator into it.
	OpenInEditor(ctx context.Context, locator string) (entity.Outcome, error)
	// OpenURLInEditor prompts the user for a URL and imports it. A cancelled or empty prompt imports nothing.
	OpenURLInEditor(ctx context.Context) (entity.Outcome, error)
	// OnMessage records a message raised by the embedded editor.
	OnMessage(ctx context.Context, payload json.RawMessage) error
	// DisplayString shows text in a read-only JSON buffer beside the editor.
	DisplayString(ctx context.Context, text string) error
	// SendCommand sends a command to the live surface.
	SendCommand(ctx context.Context, command entity.Command) entity.Outcome
	// ImportFile imports locator into the live surface.
	ImportFile(ctx context.Context, locator string) entity.Outcome
	// Dispose releases the current session, if any.
	Dispose(ctx context.Context) error
	// SurfaceDisposed handles the host closing a surface on its own.
	SurfaceDisposed(ctx context.Context, surfaceID entity.SurfaceID) error
	// EndConnection disposes the session opened by a connection that has gone away.
	EndConnection(ctx context.Context, id uuid.UUID) error
	// Session returns a copy of the live session, or nil.
	Session() *entity.Session
}

// Params are inbound parameters to initialize the controller.
type Params struct {
	fx.In

	Config      config.Provider
	Lifecycle   fx.Lifecycle
	Logger      *zap.SugaredLogger
	Stats       tally.Scope
	Gateway     hostshell.Gateway
	Connections connection.Repository
	FS          fs.BridgeFS
	Bus         commandchannel.Bus
	Importer    fileimport.Pipeline
	Rewriter    resourcerewriter.Rewriter
	Output      logfilewriter.Writer
}

type controller struct {
	cfg         entity.EditorConfig
	logger      *zap.SugaredLogger
	stats       tally.Scope
	gateway     hostshell.Gateway
	connections connection.Repository
	fs          fs.BridgeFS
	bus         commandchannel.Bus
	importer    fileimport.Pipeline
	rewriter    resourcerewriter.Rewriter
	output      logfilewriter.Writer

	// openMu serializes whole open and dispose sequences.
	openMu sync.Mutex
	// mu guards current.
	mu      sync.Mutex
	current *session
}

// New creates the editor session Controller.
func New(p Params) (Controller, error) {
	cfg := entity.EditorConfig{}
	if err := p.Config.Get(entity.EditorConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting editor config: %w", err)
	}
	applyDefaults(&cfg)

	c := &controller{
		cfg:         cfg,
		logger:      p.Logger,
		stats:       p.Stats.SubScope("editor"),
		gateway:     p.Gateway,
		connections: p.Connections,
		fs:          p.FS,
		bus:         p.Bus,
		importer:    p.Importer,
		rewriter:    p.Rewriter,
		output:      p.Output,
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: c.Dispose,
	})
	return c, nil
}

func applyDefaults(cfg *entity.EditorConfig) {
	if cfg.BootstrapDocument == "" {
		cfg.BootstrapDocument = filepath.Join("editor", "index.html")
	}
	if cfg.PatchScript == "" {
		cfg.PatchScript = "editorPatch.js"
	}
	if cfg.ViewType == "" {
		cfg.ViewType = "threeJsEditor"
	}
	if cfg.Title == "" {
		cfg.Title = "THREE.js Editor"
	}
	if cfg.ViewColumn == 0 {
		cfg.ViewColumn = entity.ViewColumnActive
	}
	if cfg.DisplayViewColumn == 0 {
		cfg.DisplayViewColumn = entity.ViewColumnThree
	}
	if cfg.URLPrompt == "" {
		cfg.URLPrompt = "Enter URL to open"
	}
	if cfg.URLPlaceholder == "" {
		cfg.URLPlaceholder = "http://..."
	}
}

func (c *controller) OpenEditor(ctx context.Context) error {
	c.openMu.Lock()
	defer c.openMu.Unlock()

	// The predecessor is fully released before anything new is created.
	c.disposeCurrent(ctx)

	conn, err := c.connections.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf("getting host connection: %w", err)
	}
	assetsDir, err := c.assetsDir(conn)
	if err != nil {
		return err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	s := newSession(entity.Session{UUID: id, ConnectionUUID: conn.UUID}, c.bus)

	if err := c.startSession(ctx, s, assetsDir); err != nil {
		if dErr := s.dispose(ctx); dErr != nil {
			c.logger.Warnf("releasing partially opened editor session: %s", dErr)
		}
		return err
	}

	c.mu.Lock()
	c.current = s
	c.mu.Unlock()
	c.stats.Gauge("active_surfaces").Update(1)
	c.logger.Infow("editor session opened", "session", s.UUID, "surface", s.SurfaceID)

	c.patch(ctx, s, assetsDir)
	return nil
}

// startSession creates and bootstraps the surface of s, then makes its channel the target of commands.
func (c *controller) startSession(ctx context.Context, s *session, assetsDir string) error {
	if err := s.channel.BeginCreate(); err != nil {
		return err
	}

	surfaceID, err := c.gateway.CreateSurface(ctx, &entity.CreateSurfaceParams{
		ViewType:           c.cfg.ViewType,
		Title:              c.cfg.Title,
		ViewColumn:         c.cfg.ViewColumn,
		LocalResourceRoots: []uri.URI{uri.File(assetsDir)},
		EnableScripts:      true,
	})
	if err != nil {
		return fmt.Errorf("creating surface: %w", err)
	}
	s.SurfaceID = surfaceID
	s.add(registration{
		name:      "surface",
		needsHost: true,
		dispose: func(ctx context.Context) error {
			if s.surfaceGone.Load() {
				return nil
			}
			return c.gateway.DisposeSurface(ctx, &entity.DisposeSurfaceParams{SurfaceID: surfaceID})
		},
	})

	bootstrapPath := filepath.Join(assetsDir, c.cfg.BootstrapDocument)
	doc, err := c.fs.ReadFile(bootstrapPath)
	if err != nil {
		return fmt.Errorf("reading bootstrap document: %w", err)
	}
	s.BootstrapURI = uri.File(bootstrapPath)

	refs := c.rewriter.References(string(doc))
	c.stats.Gauge("bootstrap_references").Update(float64(len(refs)))
	c.logger.Debugw("rewriting bootstrap document", "path", bootstrapPath, "references", len(refs))

	html := c.rewriter.Rewrite(string(doc), filepath.Dir(bootstrapPath), c.resolver(ctx, surfaceID))
	if err := c.gateway.SetSurfaceHTML(ctx, &entity.SetSurfaceHTMLParams{SurfaceID: surfaceID, HTML: html}); err != nil {
		return fmt.Errorf("installing bootstrap document: %w", err)
	}

	c.registerForwarding(ctx, s)

	post := func(ctx context.Context, command entity.Command) (bool, error) {
		return c.gateway.PostMessage(ctx, &entity.PostMessageParams{
			SurfaceID: surfaceID,
			Message:   entity.SurfaceMessage{Eval: command},
		})
	}
	if err := s.channel.Ready(ctx, post); err != nil {
		return err
	}
	c.bus.Attach(s.channel)
	return nil
}

// registerForwarding asks the host to forward messages raised by the surface. Hosts that do not support it still get a working editor.
func (c *controller) registerForwarding(ctx context.Context, s *session) {
	reg := protocol.Registration{
		ID:              s.UUID.String(),
		Method:          entity.MethodSurfaceMessage,
		RegisterOptions: map[string]interface{}{"surfaceId": s.SurfaceID},
	}
	if err := c.gateway.RegisterCapability(ctx, &protocol.RegistrationParams{Registrations: []protocol.Registration{reg}}); err != nil {
		c.logger.Warnf("registering surface message forwarding: %s", err)
		return
	}

	s.add(registration{
		name:      "surface message forwarding",
		needsHost: true,
		dispose: func(ctx context.Context) error {
			return c.gateway.UnregisterCapability(ctx, &protocol.UnregistrationParams{
				Unregisterations: []protocol.Unregistration{{ID: reg.ID, Method: reg.Method}},
			})
		},
	})
}

// patch appends the enhancement script to the embedded editor. Delivery is fire-and-forget.
func (c *controller) patch(ctx context.Context, s *session, assetsDir string) {
	patchPath := filepath.Join(assetsDir, c.cfg.PatchScript)
	src, err := c.resolver(ctx, s.SurfaceID)(patchPath)
	if err != nil {
		c.logger.Warnf("resolving patch script, falling back to a file URI: %s", err)
		src = string(uri.File(patchPath))
	}

	quoted, err := json.Marshal(src)
	if err != nil {
		c.logger.Errorf("quoting patch script uri: %s", err)
		return
	}
	s.channel.Send(ctx, entity.Command(fmt.Sprintf(_patchCommandFormat, quoted)))
}

func (c *controller) resolver(ctx context.Context, surfaceID entity.SurfaceID) resourcerewriter.Resolver {
	return func(path string) (string, error) {
		return c.gateway.AsSurfaceURI(ctx, &entity.AsSurfaceURIParams{SurfaceID: surfaceID, URI: uri.File(path)})
	}
}

func (c *controller) assetsDir(conn *entity.Connection) (string, error) {
	dir := conn.AssetsDir
	if dir == "" {
		dir = c.cfg.AssetsDir
	}
	if dir == "" {
		return "", fmt.Errorf("no assets directory sent by the host or configured under %s.assetsDir", entity.EditorConfigKey)
	}

	abs, err := c.fs.Abs(dir)
	if err != nil {
		return "", err
	}
	exists, err := c.fs.DirExists(abs)
	if err != nil {
		return "", fmt.Errorf("checking assets directory: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("assets directory %q does not exist", abs)
	}
	return abs, nil
}

func (c *controller) OpenInEditor(ctx context.Context, locator string) (entity.Outcome, error) {
	if err := c.OpenEditor(ctx); err != nil {
		return entity.Outcome{}, err
	}
	return c.ImportFile(ctx, locator), nil
}

func (c *controller) OpenURLInEditor(ctx context.Context) (entity.Outcome, error) {
	value, err := c.gateway.ShowInputBox(ctx, &entity.ShowInputBoxParams{
		Prompt:      c.cfg.URLPrompt,
		PlaceHolder: c.cfg.URLPlaceholder,
	})
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("prompting for url: %w", err)
	}
	if value == nil || strings.TrimSpace(*value) == "" {
		c.logger.Debug("url prompt cancelled")
		return entity.Outcome{}, nil
	}
	return c.ImportFile(ctx, strings.TrimSpace(*value)), nil
}

func (c *controller) OnMessage(ctx context.Context, payload json.RawMessage) error {
	c.logger.Infow("message from embedded editor", "payload", string(payload))
	if _, err := c.output.Write([]byte(string(payload) + "\n")); err != nil {
		c.logger.Warnf("writing surface output: %s", err)
	}
	return c.gateway.LogMessage(ctx, &protocol.LogMessageParams{
		Type:    protocol.MessageTypeLog,
		Message: string(payload),
	})
}

func (c *controller) DisplayString(ctx context.Context, text string) error {
	return c.gateway.OpenTextDocument(ctx, &entity.OpenTextDocumentParams{
		LanguageID:    _languageJSON,
		Content:       text,
		ViewColumn:    c.cfg.DisplayViewColumn,
		PreserveFocus: true,
	})
}

func (c *controller) SendCommand(ctx context.Context, command entity.Command) entity.Outcome {
	return c.bus.Send(ctx, command)
}

func (c *controller) ImportFile(ctx context.Context, locator string) entity.Outcome {
	return c.importer.Import(ctx, locator)
}

func (c *controller) Dispose(ctx context.Context) error {
	c.openMu.Lock()
	defer c.openMu.Unlock()

	c.disposeCurrent(ctx)
	return nil
}

func (c *controller) SurfaceDisposed(ctx context.Context, surfaceID entity.SurfaceID) error {
	c.openMu.Lock()
	defer c.openMu.Unlock()

	c.mu.Lock()
	s := c.current
	c.mu.Unlock()
	if s == nil || s.SurfaceID != surfaceID {
		c.logger.Debugw("ignoring disposal of an unknown surface", "surface", surfaceID)
		return nil
	}

	s.surfaceGone.Store(true)
	c.disposeCurrent(ctx)
	return nil
}

func (c *controller) EndConnection(ctx context.Context, id uuid.UUID) error {
	c.openMu.Lock()
	defer c.openMu.Unlock()

	c.mu.Lock()
	s := c.current
	c.mu.Unlock()
	if s == nil || s.ConnectionUUID != id {
		return nil
	}

	s.hostGone.Store(true)
	c.disposeCurrent(ctx)
	return nil
}

func (c *controller) Session() *entity.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}
	s := c.current.Session
	return &s
}

// disposeCurrent releases the live session. Callers hold openMu.
func (c *controller) disposeCurrent(ctx context.Context) {
	c.mu.Lock()
	s := c.current
	c.current = nil
	c.mu.Unlock()

	if s == nil {
		return
	}

	if err := s.dispose(ctx); err != nil {
		c.logger.Warnf("disposing editor session %s: %s", s.UUID, err)
	}
	c.stats.Gauge("active_surfaces").Update(0)
	c.logger.Infow("editor session disposed", "session", s.UUID, "surface", s.SurfaceID)
}
