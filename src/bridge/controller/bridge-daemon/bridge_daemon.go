// Package bridgedaemon implements the bridge daemon business logic.
package bridgedaemon

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/uber/scene-bridge/src/bridge/controller/editor"
	"github.com/uber/scene-bridge/src/bridge/entity"
	hostshell "github.com/uber/scene-bridge/src/bridge/gateway/host-shell"
	"github.com/uber/scene-bridge/src/bridge/mapper"
	"github.com/uber/scene-bridge/src/bridge/repository/connection"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -source=bridge_daemon.go -destination=bridgedaemonmock/bridge_daemon_mock.go -package=bridgedaemonmock

const (
	// Configuration keys
	_idleTimeoutMinutesKey = "idleTimeoutMinutes"

	_serverName = "scene-bridge"
)

// Controller orchestrates the business logic for each request.
type Controller interface {
	// LSP lifecycle methods defined per protocol.
	Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error)
	Initialized(ctx context.Context, params *protocol.InitializedParams) error
	Shutdown(ctx context.Context) error
	Exit(ctx context.Context) error

	// Workspace related methods.
	ExecuteCommand(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error)

	// Notifications raised by the rendering surface.
	SurfaceMessage(ctx context.Context, params *entity.SurfaceMessageParams) error
	DidDisposeSurface(ctx context.Context, params *entity.DidDisposeSurfaceParams) error

	// Custom methods for use within this service.
	RequestFullShutdown(ctx context.Context) error
	InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	EndSession(ctx context.Context, id uuid.UUID) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Shutdowner  fx.Shutdowner
	Lifecycle   fx.Lifecycle
	Connections connection.Repository
	HostShell   hostshell.Gateway
	Editor      editor.Controller
	Logger      *zap.SugaredLogger
	Config      config.Provider
	Stats       tally.Scope
}

type controller struct {
	connections        connection.Repository
	shutdowner         fx.Shutdowner
	fullShutdown       atomic.Bool
	idleTimer          *time.Timer
	idleTimerMu        sync.Mutex
	idleTimeoutMinutes time.Duration
	idleStop           chan struct{}
	idleStopOnce       sync.Once
	logger             *zap.SugaredLogger
	hostShell          hostshell.Gateway
	editor             editor.Controller
	stats              tally.Scope
}

// New constructs a new top-level controller for the service.
func New(p Params) (Controller, error) {
	ctx := context.Background()

	var timeoutMinutesRaw int64
	if err := p.Config.Get(_idleTimeoutMinutesKey).Populate(&timeoutMinutesRaw); err != nil {
		return nil, fmt.Errorf("unable to get idle timeout from config: %w", err)
	}
	if timeoutMinutesRaw <= 0 {
		return nil, fmt.Errorf("%s must be a positive number of minutes, got %d", _idleTimeoutMinutesKey, timeoutMinutesRaw)
	}

	c := &controller{
		connections: p.Connections,
		shutdowner:  p.Shutdowner,
		logger:      p.Logger,
		hostShell:   p.HostShell,
		editor:      p.Editor,
		stats:       p.Stats.SubScope("daemon"),

		idleTimeoutMinutes: time.Duration(timeoutMinutesRaw) * time.Minute,
		idleStop:           make(chan struct{}),
	}
	c.refreshIdleTimer(ctx)

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			c.stopIdleTimer()
			return nil
		},
	})

	return c, nil
}

// ExecuteCommand dispatches a host command to the editor controller.
// Commands that report delivery return the resolved boolean; the others return null.
func (c *controller) ExecuteCommand(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error) {
	c.stats.Tagged(map[string]string{"command": commandTag(params.Command)}).Counter("commands").Inc(1)

	switch params.Command {
	case entity.CommandOpenEditor:
		return nil, c.editor.OpenEditor(ctx)

	case entity.CommandOpenInEditor:
		locator, err := mapper.ArgumentsToLocator(params.Command, params.Arguments)
		if err != nil {
			return nil, err
		}
		_, err = c.editor.OpenInEditor(ctx, locator)
		return nil, err

	case entity.CommandOpenURLInEditor:
		_, err := c.editor.OpenURLInEditor(ctx)
		return nil, err

	case entity.CommandOnMessage:
		return nil, c.editor.OnMessage(ctx, mapper.ArgumentsToPayload(params.Arguments))

	case entity.CommandDisplayString:
		text, err := mapper.ArgumentsToText(params.Command, params.Arguments)
		if err != nil {
			return nil, err
		}
		return nil, c.editor.DisplayString(ctx, text)

	case entity.CommandSendCommand:
		command, err := mapper.ArgumentsToString(params.Command, params.Arguments)
		if err != nil {
			return nil, err
		}
		return c.editor.SendCommand(ctx, entity.Command(command)).Wait(ctx), nil

	case entity.CommandImportFile:
		locator, err := mapper.ArgumentsToLocator(params.Command, params.Arguments)
		if err != nil {
			return nil, err
		}
		return c.editor.ImportFile(ctx, locator).Wait(ctx), nil

	default:
		return nil, jsonrpc2.NewError(jsonrpc2.MethodNotFound, fmt.Sprintf("unknown command %q", params.Command))
	}
}

// commandTag bounds the tag values to the advertised commands.
func commandTag(command string) string {
	for _, known := range entity.HostCommands {
		if command == known {
			return command
		}
	}
	return "unknown"
}

// SurfaceMessage forwards a message raised by the embedded editor to the diagnostic sink.
func (c *controller) SurfaceMessage(ctx context.Context, params *entity.SurfaceMessageParams) error {
	payload := params.Payload
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	return c.editor.OnMessage(ctx, payload)
}

// DidDisposeSurface releases the session whose surface the host closed.
func (c *controller) DidDisposeSurface(ctx context.Context, params *entity.DidDisposeSurfaceParams) error {
	return c.editor.SurfaceDisposed(ctx, params.SurfaceID)
}

// refreshIdleTimer ensures that the service shuts down after a defined inactivity period with no connections.
func (c *controller) refreshIdleTimer(ctx context.Context) error {
	c.idleTimerMu.Lock()
	defer c.idleTimerMu.Unlock()

	// First call initializes new timer and leaves it running prior to first connection.
	if c.idleTimer == nil {
		c.idleTimer = time.NewTimer(c.idleTimeoutMinutes)
		go c.awaitIdle(c.idleTimer)
		return nil
	}

	// Subsequent calls stop the timer and reset it only if no connections are active.
	current, err := c.connections.ConnectionCount(ctx)
	if err != nil {
		return fmt.Errorf("error resetting timeout: %w", err)
	}

	c.idleTimer.Stop()
	if current == 0 {
		c.idleTimer.Reset(c.idleTimeoutMinutes)
	}
	return nil
}

func (c *controller) awaitIdle(timer *time.Timer) {
	select {
	case <-timer.C:
		c.logger.Info("Shutdown signal received.")
		if err := c.shutdowner.Shutdown(); err != nil {
			os.Exit(1)
		}
	case <-c.idleStop:
	}
}

func (c *controller) stopIdleTimer() {
	c.idleStopOnce.Do(func() {
		close(c.idleStop)
	})
}
