// Package commandchannel delivers evaluable commands into the embedded editor's rendering surface.
package commandchannel

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/uber-go/tally"
	"github.com/uber/scene-bridge/src/bridge/entity"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -source=command_channel.go -destination=commandchannelmock/command_channel_mock.go -package=commandchannelmock

const _defaultQueueSize = 64

// PostFunc posts one command to the surface and reports whether the surface accepted it.
type PostFunc func(ctx context.Context, command entity.Command) (bool, error)

// Sender sends commands to whatever surface is currently live.
type Sender interface {
	// Send resolves true once the surface accepted the command, and false when there is no ready surface.
	Send(ctx context.Context, command entity.Command) entity.Outcome
}

// Bus holds the channel of the live session. At most one channel is attached at a time.
type Bus interface {
	Sender
	// NewChannel creates a channel in the no-surface state.
	NewChannel() Channel
	// Attach makes ch the target of Send, replacing any previous channel.
	Attach(ch Channel)
	// Detach clears the target if ch is still attached.
	Detach(ch Channel)
}

// Channel is the single-owner transport of one session.
type Channel interface {
	Sender
	State() entity.ChannelState
	// BeginCreate marks the surface as being created.
	BeginCreate() error
	// Ready starts delivering commands through post. Deliveries run with the values of ctx but not its cancellation.
	Ready(ctx context.Context, post PostFunc) error
	// Close disposes the channel. Queued commands resolve false. Safe to call more than once.
	Close()
}

// Params are inbound parameters to initialize the bus.
type Params struct {
	fx.In

	Config config.Provider
	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

type bus struct {
	mu        sync.RWMutex
	current   Channel
	queueSize int
	logger    *zap.SugaredLogger
	stats     tally.Scope
}

// New creates the process-wide command Bus.
func New(p Params) (Bus, error) {
	cfg := entity.CommandChannelConfig{}
	if err := p.Config.Get(entity.CommandChannelConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting command channel config: %w", err)
	}
	if cfg.QueueSize < 0 {
		return nil, fmt.Errorf("invalid %s.queueSize %d", entity.CommandChannelConfigKey, cfg.QueueSize)
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = _defaultQueueSize
	}

	return &bus{
		queueSize: cfg.QueueSize,
		logger:    p.Logger,
		stats:     p.Stats.SubScope("command_channel"),
	}, nil
}

func (b *bus) NewChannel() Channel {
	return &channel{
		state:  entity.ChannelStateNoSurface,
		queue:  make(chan delivery, b.queueSize),
		logger: b.logger,
		stats:  b.stats,
	}
}

func (b *bus) Attach(ch Channel) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = ch
}

func (b *bus) Detach(ch Channel) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == ch {
		b.current = nil
	}
}

func (b *bus) Send(ctx context.Context, command entity.Command) entity.Outcome {
	b.mu.RLock()
	ch := b.current
	b.mu.RUnlock()

	if ch == nil {
		b.stats.Counter("rejected").Inc(1)
		b.logger.Debugw("no live surface, command dropped", "command", command)
		return entity.ResolvedOutcome(false)
	}
	return ch.Send(ctx, command)
}

type delivery struct {
	command entity.Command
	resolve func(bool)
}

type channel struct {
	mu    sync.Mutex
	state entity.ChannelState

	queue  chan delivery
	quit   chan struct{}
	done   chan struct{}
	cancel context.CancelFunc

	logger *zap.SugaredLogger
	stats  tally.Scope
}

func (c *channel) State() entity.ChannelState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *channel) BeginCreate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != entity.ChannelStateNoSurface {
		return fmt.Errorf("cannot create a surface in state %s", c.state)
	}
	c.state = entity.ChannelStateSurfaceCreating
	return nil
}

func (c *channel) Ready(ctx context.Context, post PostFunc) error {
	if post == nil {
		return errors.New("post function is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != entity.ChannelStateNoSurface && c.state != entity.ChannelStateSurfaceCreating {
		return fmt.Errorf("cannot mark surface ready in state %s", c.state)
	}

	deliveryCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c.cancel = cancel
	c.quit = make(chan struct{})
	c.done = make(chan struct{})
	c.state = entity.ChannelStateSurfaceReady

	go c.deliver(deliveryCtx, post)
	return nil
}

func (c *channel) Send(ctx context.Context, command entity.Command) entity.Outcome {
	if ctx.Err() != nil {
		return c.reject(command, "request ended")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != entity.ChannelStateSurfaceReady {
		return c.reject(command, c.state.String())
	}

	outcome, resolve := entity.NewOutcome()
	select {
	case c.queue <- delivery{command: command, resolve: resolve}:
		return outcome
	default:
		return c.reject(command, "queue full")
	}
}

func (c *channel) Close() {
	c.mu.Lock()
	if c.state == entity.ChannelStateDisposed {
		c.mu.Unlock()
		return
	}
	wasReady := c.state == entity.ChannelStateSurfaceReady
	c.state = entity.ChannelStateDisposed
	if wasReady {
		c.cancel()
		close(c.quit)
	}
	c.mu.Unlock()

	if wasReady {
		<-c.done
	}

	// No Send can enqueue once disposed, so whatever is left is abandoned.
	for {
		select {
		case d := <-c.queue:
			c.stats.Counter("abandoned").Inc(1)
			d.resolve(false)
		default:
			return
		}
	}
}

// deliver posts queued commands one at a time, so delivery order equals issue order.
func (c *channel) deliver(ctx context.Context, post PostFunc) {
	defer close(c.done)

	for {
		select {
		case <-c.quit:
			return
		case d := <-c.queue:
			select {
			case <-c.quit:
				d.resolve(false)
				return
			default:
			}

			accepted, err := post(ctx, d.command)
			if err != nil {
				c.logger.Warnf("posting command to surface: %s", err)
				accepted = false
			}
			if accepted {
				c.stats.Counter("delivered").Inc(1)
			} else {
				c.stats.Counter("failed").Inc(1)
			}
			d.resolve(accepted)
		}
	}
}

func (c *channel) reject(command entity.Command, reason string) entity.Outcome {
	c.stats.Counter("rejected").Inc(1)
	c.logger.Debugw("command rejected", "reason", reason, "command", command)
	return entity.ResolvedOutcome(false)
}
