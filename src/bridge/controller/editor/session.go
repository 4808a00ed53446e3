package editor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	commandchannel "github.com/uber/scene-bridge/src/bridge/controller/command-channel"
	"github.com/uber/scene-bridge/src/bridge/entity"
	"github.com/uber/scene-bridge/src/bridge/mapper"
	"go.uber.org/multierr"
)

// registration is a resource owned by a session that must be released when the session ends.
type registration struct {
	name string
	// needsHost is set for registrations released by a call to the host.
	needsHost bool
	dispose   func(ctx context.Context) error
}

type session struct {
	entity.Session

	bus     commandchannel.Bus
	channel commandchannel.Channel

	mu            sync.Mutex
	registrations []registration
	once          sync.Once
	surfaceGone   atomic.Bool
	hostGone      atomic.Bool
}

func newSession(s entity.Session, bus commandchannel.Bus) *session {
	return &session{
		Session: s,
		bus:     bus,
		channel: bus.NewChannel(),
	}
}

func (s *session) add(r registration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registrations = append(s.registrations, r)
}

// dispose closes the command channel, then releases the other registrations in reverse order.
// Host calls are made on behalf of the connection that opened the session. Only the first call has any effect.
func (s *session) dispose(ctx context.Context) (err error) {
	s.once.Do(func() {
		s.bus.Detach(s.channel)
		s.channel.Close()

		ctx = mapper.ConnectionUUIDToContext(ctx, s.ConnectionUUID)

		s.mu.Lock()
		regs := s.registrations
		s.registrations = nil
		s.mu.Unlock()

		for i := len(regs) - 1; i >= 0; i-- {
			r := regs[i]
			if r.needsHost && s.hostGone.Load() {
				continue
			}
			if rErr := r.dispose(ctx); rErr != nil {
				err = multierr.Append(err, fmt.Errorf("disposing %s: %w", r.name, rErr))
			}
		}
	})
	return err
}
