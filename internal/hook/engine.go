package hook

import (
	"log/slog"

	"github.com/mirrorworks/profilekit/internal/logger"
)

// State tracks a binding through its lifecycle: Detached (initial) →
// Attached → Detached (terminal).
type State int

const (
	Detached State = iota
	Attached
)

func (s State) String() string {
	if s == Attached {
		return "attached"
	}
	return "detached"
}

// Binding pairs one real entry-point address with its replacement under a
// symbolic name. The addresses are opaque to the engine; only the injected
// Patcher interprets them.
type Binding struct {
	Name        string
	Target      uintptr
	Replacement uintptr

	state State
}

// State returns the binding's current attach status.
func (b *Binding) State() State { return b.state }

// Patcher is the external binary-redirection primitive: it rewires calls
// from a target address to a replacement and back. profilekit consumes this
// capability, it does not implement it.
type Patcher interface {
	Attach(target, replacement uintptr) error
	Detach(target, replacement uintptr) error
}

// Engine attaches and detaches a fixed set of bindings through a Patcher.
// Each binding is independent: a failed attach is logged and skipped, since
// partial interception is an acceptable degraded state, not a fatal one.
type Engine struct {
	patcher  Patcher
	bindings []*Binding
	log      *slog.Logger
}

// NewEngine builds an engine over the given bindings. A nil logger discards.
func NewEngine(p Patcher, log *slog.Logger, bindings ...*Binding) *Engine {
	return &Engine{
		patcher:  p,
		bindings: bindings,
		log:      logger.WithCategory(log, "InterceptionEngine"),
	}
}

// Bindings exposes the binding set for inspection.
func (e *Engine) Bindings() []*Binding { return e.bindings }

// AttachAll attaches every detached binding, logging per-binding status, and
// returns the number successfully attached.
func (e *Engine) AttachAll() int {
	attached := 0
	for _, b := range e.bindings {
		if b.state != Detached {
			continue
		}
		if err := e.patcher.Attach(b.Target, b.Replacement); err != nil {
			e.log.Warn("attach failed", "function", b.Name, "error", err.Error())
			continue
		}
		b.state = Attached
		attached++
		e.log.Info("attached", "function", b.Name)
	}
	return attached
}

// DetachAll detaches every binding that reports itself attached,
// best-effort, and returns the number successfully detached. Individual
// failures never abort the rest.
func (e *Engine) DetachAll() int {
	detached := 0
	for _, b := range e.bindings {
		if b.state != Attached {
			continue
		}
		if err := e.patcher.Detach(b.Target, b.Replacement); err != nil {
			e.log.Warn("detach failed", "function", b.Name, "error", err.Error())
			continue
		}
		b.state = Detached
		detached++
		e.log.Info("detached", "function", b.Name)
	}
	return detached
}
