// Package hostshell sends calls and notifications to the host shim that owns each connection.
package hostshell

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber/scene-bridge/src/bridge/entity"
	"github.com/uber/scene-bridge/src/bridge/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

//go:generate mockgen -source=host_shell.go -destination=hostshellmock/host_shell_mock.go -package=hostshellmock

const _errSendToHost = "sending call/notification to host: %w"

// Gateway is used to send outbound notifications and calls to the host shell.
// All calls to the gateway should include a context with a connection UUID, which routes the call to the matching host shim.
type Gateway interface {
	// RegisterClient registers a new host connection. Should be called each time a host shim connects.
	RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error
	// DeregisterClient removes a host connection. Should be called each time a host shim disconnects.
	DeregisterClient(ctx context.Context, id uuid.UUID) error

	// CreateSurface asks the host to create a rendering surface and returns its identifier.
	CreateSurface(ctx context.Context, params *entity.CreateSurfaceParams) (entity.SurfaceID, error)
	// SetSurfaceHTML installs a document into a surface.
	SetSurfaceHTML(ctx context.Context, params *entity.SetSurfaceHTMLParams) error
	// PostMessage posts a message into a surface and reports whether the surface accepted it.
	PostMessage(ctx context.Context, params *entity.PostMessageParams) (bool, error)
	// AsSurfaceURI translates a local file URI into one the surface may load.
	AsSurfaceURI(ctx context.Context, params *entity.AsSurfaceURIParams) (string, error)
	// DisposeSurface closes a surface.
	DisposeSurface(ctx context.Context, params *entity.DisposeSurfaceParams) error
	// ShowInputBox prompts the user for text. A nil result means the prompt was cancelled.
	ShowInputBox(ctx context.Context, params *entity.ShowInputBoxParams) (*string, error)
	// OpenTextDocument shows a read-only text buffer.
	OpenTextDocument(ctx context.Context, params *entity.OpenTextDocumentParams) error

	// Methods from protocol.Client interface.
	RegisterCapability(ctx context.Context, params *protocol.RegistrationParams) error
	UnregisterCapability(ctx context.Context, params *protocol.UnregistrationParams) error
	LogMessage(ctx context.Context, params *protocol.LogMessageParams) error
	ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error
}

type gateway struct {
	clients     map[uuid.UUID]protocol.Client
	connections map[uuid.UUID]jsonrpc2.Conn
	clientsMu   sync.Mutex
	logger      *zap.Logger
}

// New returns a Gateway for sending host notifications and calls.
func New(logger *zap.Logger) Gateway {
	return &gateway{
		clients:     make(map[uuid.UUID]protocol.Client),
		connections: make(map[uuid.UUID]jsonrpc2.Conn),
		logger:      logger,
	}
}

func (g *gateway) RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error {
	if conn == nil || *conn == nil {
		return errors.New("cannot register a nil connection")
	}

	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	g.clients[id] = protocol.ClientDispatcher(*conn, g.logger)
	g.connections[id] = *conn

	return nil
}

func (g *gateway) DeregisterClient(ctx context.Context, id uuid.UUID) error {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	delete(g.clients, id)
	delete(g.connections, id)

	return nil
}

func (g *gateway) CreateSurface(ctx context.Context, params *entity.CreateSurfaceParams) (entity.SurfaceID, error) {
	var result entity.CreateSurfaceResult
	if err := g.call(ctx, entity.MethodCreateSurface, params, &result); err != nil {
		return "", err
	}
	if result.SurfaceID == "" {
		return "", fmt.Errorf("host returned no surface id for %s", entity.MethodCreateSurface)
	}
	return result.SurfaceID, nil
}

func (g *gateway) SetSurfaceHTML(ctx context.Context, params *entity.SetSurfaceHTMLParams) error {
	return g.call(ctx, entity.MethodSetSurfaceHTML, params, nil)
}

func (g *gateway) PostMessage(ctx context.Context, params *entity.PostMessageParams) (bool, error) {
	var delivered bool
	if err := g.call(ctx, entity.MethodPostMessage, params, &delivered); err != nil {
		return false, err
	}
	return delivered, nil
}

func (g *gateway) AsSurfaceURI(ctx context.Context, params *entity.AsSurfaceURIParams) (string, error) {
	var result string
	if err := g.call(ctx, entity.MethodAsSurfaceURI, params, &result); err != nil {
		return "", err
	}
	if result == "" {
		return "", fmt.Errorf("host returned no uri for %q", params.URI)
	}
	return result, nil
}

func (g *gateway) DisposeSurface(ctx context.Context, params *entity.DisposeSurfaceParams) error {
	return g.call(ctx, entity.MethodDisposeSurface, params, nil)
}

func (g *gateway) ShowInputBox(ctx context.Context, params *entity.ShowInputBoxParams) (*string, error) {
	var result *string
	if err := g.call(ctx, entity.MethodShowInputBox, params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (g *gateway) OpenTextDocument(ctx context.Context, params *entity.OpenTextDocumentParams) error {
	return g.call(ctx, entity.MethodOpenTextDocument, params, nil)
}

func (g *gateway) RegisterCapability(ctx context.Context, params *protocol.RegistrationParams) error {
	c, _, err := g.getClient(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToHost, err)
	}
	return c.RegisterCapability(ctx, params)
}

func (g *gateway) UnregisterCapability(ctx context.Context, params *protocol.UnregistrationParams) error {
	c, _, err := g.getClient(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToHost, err)
	}
	return c.UnregisterCapability(ctx, params)
}

func (g *gateway) LogMessage(ctx context.Context, params *protocol.LogMessageParams) error {
	c, _, err := g.getClient(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToHost, err)
	}
	return c.LogMessage(ctx, params)
}

func (g *gateway) ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error {
	c, _, err := g.getClient(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToHost, err)
	}
	return c.ShowMessage(ctx, params)
}

// call sends a bridge request, which protocol.Client does not know about, directly on the connection.
func (g *gateway) call(ctx context.Context, method string, params, result interface{}) error {
	_, conn, err := g.getClient(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToHost, err)
	}

	if err := protocol.Call(ctx, conn, method, params, result); err != nil {
		return fmt.Errorf("calling %s: %w", method, err)
	}
	return nil
}

func (g *gateway) getClient(ctx context.Context) (protocol.Client, jsonrpc2.Conn, error) {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	id, err := mapper.ContextToConnectionUUID(ctx)
	if err != nil {
		return nil, nil, err
	}

	client, ok := g.clients[id]
	if !ok {
		return nil, nil, fmt.Errorf("client with id %q not found", id)
	}

	conn, ok := g.connections[id]
	if !ok {
		return nil, nil, fmt.Errorf("client with id %q not found", id)
	}
	return client, conn, nil
}
