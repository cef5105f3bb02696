package profile

import (
	"log/slog"
	"sync"

	"github.com/mirrorworks/profilekit/internal/cache"
	"github.com/mirrorworks/profilekit/internal/hook"
	"github.com/mirrorworks/profilekit/internal/logger"
	"github.com/mirrorworks/profilekit/internal/textenc"
	"github.com/mirrorworks/profilekit/pkg/types"
)

// NativeWriterA and NativeWriterW invoke the original, un-redirected write
// entry point. They are injected by the host when the native-write
// passthrough policy is used; the redirector cannot reach the real API once
// it has been detoured.
type (
	NativeWriterA func(section, key, value, file []byte) bool
	NativeWriterW func(section, key, value, file []uint16) bool
)

// Config assembles a Redirector. Everything is optional except Options.
type Config struct {
	Options types.Options

	// Logger overrides the logger otherwise built from Options.LogEnabled,
	// LogPath and LogLevel.
	Logger *slog.Logger

	// Patcher is the binary-redirection primitive. Nil means no interception:
	// the redirector serves only direct calls (tests, tooling).
	Patcher hook.Patcher

	// Bindings are attached through Patcher at creation and detached at
	// destruction.
	Bindings []*hook.Binding

	// NativeWriteA/W back the native-write passthrough policy.
	NativeWriteA NativeWriterA
	NativeWriteW NativeWriterW
}

// Redirector is the process-scoped interception cache. All redirected
// handlers hang off one instance; there are no ambient globals beyond the
// explicit instance accessor below.
type Redirector struct {
	reg    *cache.Registry
	engine *hook.Engine
	log    *slog.Logger
	opts   types.Options

	narrow *textenc.Narrow
	wide   *textenc.Wide

	nativeA NativeWriterA
	nativeW NativeWriterW
}

// New builds a Redirector and, when a patcher is configured, attaches its
// bindings. Attach failures degrade to partial interception and are logged,
// never returned.
func New(cfg Config) (*Redirector, error) {
	log := cfg.Logger
	if log == nil {
		var err error
		log, err = logger.New(logger.Options{
			Enabled: cfg.Options.LogEnabled,
			Path:    cfg.Options.LogPath,
			Level:   cfg.Options.LogLevel,
		})
		if err != nil {
			return nil, types.WrapParseIO("open log", err)
		}
	}

	cm, ok := textenc.CharmapForCodePage(cfg.Options.ANSICodePage)
	if !ok {
		log.Warn("unsupported ANSI code page, using 1252", "codePage", cfg.Options.ANSICodePage)
		cm = nil
	}

	r := &Redirector{
		reg:     cache.NewRegistry(cfg.Options, log),
		log:     log,
		opts:    cfg.Options,
		narrow:  textenc.NewNarrow(cm),
		wide:    textenc.NewWide(),
		nativeA: cfg.NativeWriteA,
		nativeW: cfg.NativeWriteW,
	}

	if cfg.Patcher != nil {
		r.engine = hook.NewEngine(cfg.Patcher, log, cfg.Bindings...)
		attached := r.engine.AttachAll()
		log.Info("interception attached", "bindings", len(cfg.Bindings), "attached", attached)
	}
	return r, nil
}

// Options returns the instance policy.
func (r *Redirector) Options() types.Options { return r.opts }

// Registry exposes the cache registry for diagnostics and tooling.
func (r *Redirector) Registry() *cache.Registry { return r.reg }

// SaveChangedFiles flushes every dirty cached file.
func (r *Redirector) SaveChangedFiles(reason string) int {
	return r.reg.SaveChangedFiles(reason)
}

// Close detaches all bindings (best-effort) and applies the
// save-on-process-detach policy.
func (r *Redirector) Close() {
	if r.engine != nil {
		detached := r.engine.DetachAll()
		r.log.Info("interception detached", "detached", detached)
	}
	if r.opts.SaveOnProcessDetach {
		r.reg.SaveChangedFiles("process detach")
	}
}

// -----------------------------------------------------------------------------
// Process-scoped instance
// -----------------------------------------------------------------------------

var (
	instMu   sync.Mutex
	instance *Redirector
)

// CreateInstance constructs the single process-scoped Redirector. Creating a
// second instance without destroying the first is a state error.
func CreateInstance(cfg Config) (*Redirector, error) {
	instMu.Lock()
	defer instMu.Unlock()
	if instance != nil {
		return nil, &types.Error{Kind: types.ErrKindState, Msg: "redirector instance already created"}
	}
	r, err := New(cfg)
	if err != nil {
		return nil, err
	}
	instance = r
	return r, nil
}

// Instance returns the process-scoped Redirector, or nil before
// CreateInstance.
func Instance() *Redirector {
	instMu.Lock()
	defer instMu.Unlock()
	return instance
}

// HasInstance reports whether the process-scoped instance exists.
func HasInstance() bool { return Instance() != nil }

// DestroyInstance tears the instance down: hooks detached, dirty files
// flushed per policy. Safe to call when no instance exists.
func DestroyInstance() {
	instMu.Lock()
	r := instance
	instance = nil
	instMu.Unlock()
	if r != nil {
		r.Close()
	}
}

// OnThreadDetach is the thread-detach process hook: when the
// save-on-thread-detach policy is active and the detaching thread is not the
// one that initialized the redirector, all dirty files are flushed.
func OnThreadDetach(threadID uint32) {
	r := Instance()
	if r == nil || !r.opts.SaveOnThreadDetach {
		return
	}
	if r.reg.IsInitialThread(threadID) {
		return
	}
	r.reg.SaveChangedFiles("thread detach")
}
