package entity

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
	"go.lsp.dev/uri"
)

// Command is an expression evaluated inside the rendering surface.
type Command string

// Outcome is the delivery result of a Command: true once the surface accepted it, false otherwise.
// It carries acceptance only, never the result of evaluating the command.
// The zero value is a resolved negative outcome.
type Outcome struct {
	p *outcome
}

type outcome struct {
	once  sync.Once
	done  chan struct{}
	value bool
}

var _closed = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// NewOutcome returns a pending Outcome and the function that resolves it.
// Only the first call to resolve has any effect.
func NewOutcome() (Outcome, func(bool)) {
	p := &outcome{done: make(chan struct{})}
	resolve := func(v bool) {
		p.once.Do(func() {
			p.value = v
			close(p.done)
		})
	}
	return Outcome{p: p}, resolve
}

// ResolvedOutcome returns an Outcome that is already resolved to v.
func ResolvedOutcome(v bool) Outcome {
	o, resolve := NewOutcome()
	resolve(v)
	return o
}

// Done is closed once the outcome is resolved.
func (o Outcome) Done() <-chan struct{} {
	if o.p == nil {
		return _closed
	}
	return o.p.done
}

// Value returns the resolved value, or false while still pending.
func (o Outcome) Value() bool {
	if o.p == nil {
		return false
	}
	select {
	case <-o.p.done:
		return o.p.value
	default:
		return false
	}
}

// Wait blocks until the outcome is resolved or ctx ends. An ended context yields false.
func (o Outcome) Wait(ctx context.Context) bool {
	select {
	case <-o.Done():
		return o.Value()
	case <-ctx.Done():
		return false
	}
}

// ChannelState is the lifecycle state of a session's command channel.
type ChannelState int

const (
	// ChannelStateNoSurface means no surface exists yet.
	ChannelStateNoSurface ChannelState = iota
	// ChannelStateSurfaceCreating means the host is creating and bootstrapping the surface.
	ChannelStateSurfaceCreating
	// ChannelStateSurfaceReady means commands are forwarded to the surface.
	ChannelStateSurfaceReady
	// ChannelStateDisposed means the channel was closed and will never deliver again.
	ChannelStateDisposed
)

func (s ChannelState) String() string {
	switch s {
	case ChannelStateNoSurface:
		return "no-surface"
	case ChannelStateSurfaceCreating:
		return "surface-creating"
	case ChannelStateSurfaceReady:
		return "surface-ready"
	case ChannelStateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// ImportRequest describes one resource to fetch inside the surface and hand to the editor's loader.
type ImportRequest struct {
	// Locator is the value as supplied by the host.
	Locator string
	// ResourceURL is the address the surface fetches.
	ResourceURL string
	// BaseDirectory keeps the locator's scheme and always ends with "/".
	BaseDirectory string
	Basename      string
}

// ResourceAttribute is an HTML attribute holding a resource address.
type ResourceAttribute string

const (
	// ResourceAttributeSrc is the src attribute.
	ResourceAttributeSrc ResourceAttribute = "src"
	// ResourceAttributeHref is the href attribute.
	ResourceAttributeHref ResourceAttribute = "href"
)

// ResourceReference is a relative resource address found in the bootstrap document.
type ResourceReference struct {
	Attribute ResourceAttribute
	Path      string
}

// Session is the single live embedded editor session.
type Session struct {
	UUID uuid.UUID `json:"uuid" zap:"uuid"`
	// ConnectionUUID is the host connection that opened the session; commands are routed through it.
	ConnectionUUID uuid.UUID `json:"connectionUuid" zap:"connectionUuid"`
	SurfaceID      SurfaceID `json:"surfaceId" zap:"surfaceId"`
	// BootstrapURI identifies the bootstrap document the surface was loaded from.
	BootstrapURI uri.URI `json:"bootstrapUri" zap:"bootstrapUri"`
}
