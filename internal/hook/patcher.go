package hook

import "sync"

// Op records one call made against a RecordingPatcher.
type Op struct {
	Kind        string // "attach" or "detach"
	Target      uintptr
	Replacement uintptr
}

// RecordingPatcher is a Patcher that records its calls and can be told to
// fail specific targets. It backs tests and cache-only deployments where no
// real detour library is linked in.
type RecordingPatcher struct {
	mu   sync.Mutex
	ops  []Op
	fail map[uintptr]error
}

func NewRecordingPatcher() *RecordingPatcher {
	return &RecordingPatcher{fail: make(map[uintptr]error)}
}

// FailTarget makes future Attach/Detach calls for target return err.
func (p *RecordingPatcher) FailTarget(target uintptr, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fail[target] = err
}

// Ops returns a copy of the recorded calls.
func (p *RecordingPatcher) Ops() []Op {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Op, len(p.ops))
	copy(out, p.ops)
	return out
}

func (p *RecordingPatcher) call(kind string, target, replacement uintptr) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ops = append(p.ops, Op{Kind: kind, Target: target, Replacement: replacement})
	return p.fail[target]
}

func (p *RecordingPatcher) Attach(target, replacement uintptr) error {
	return p.call("attach", target, replacement)
}

func (p *RecordingPatcher) Detach(target, replacement uintptr) error {
	return p.call("detach", target, replacement)
}
