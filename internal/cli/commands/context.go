// Package commands provides the shared context type and all CLI subcommands.
package commands

import (
	"context"

	"github.com/astrodyn-tools/refframes/internal/core/config"
	"github.com/astrodyn-tools/refframes/internal/core/logger"
	"github.com/astrodyn-tools/refframes/internal/ephemeris"
	"github.com/astrodyn-tools/refframes/pkg/errs"
)

// contextKey is the key type for values stored in a command context.
type contextKey string

const runtimeContextKey contextKey = "refframes.runtime"

// GlobalFlags holds the parsed global flags for use by subcommands.
type GlobalFlags struct {
	Kernel     string
	Debug      bool
	JSONOutput bool
}

// Runtime is the shared dependency bundle injected into each subcommand via context.
type Runtime struct {
	Config *config.Config
	Log    *logger.Logger
	Source ephemeris.Source // kernel, possibly behind the state cache; nil when no kernel is configured
	Kernel *ephemeris.Kernel
	Cache  *ephemeris.CachedSource
	Flags  GlobalFlags
}

// RequireSource returns the ephemeris source or a structured error when no
// kernel is configured. Commands that need lookups call this first.
func (rt *Runtime) RequireSource() (ephemeris.Source, error) {
	if rt.Source == nil {
		return nil, errs.Newf(errs.ErrKernelOpen, "runtime.source",
			"no ephemeris kernel configured").
			WithAdvice("set ephemeris.kernel in refframes.yaml or pass --kernel")
	}
	return rt.Source, nil
}

// Close releases the kernel and cache handles.
func (rt *Runtime) Close() error {
	var err error
	if rt.Cache != nil {
		err = rt.Cache.Close()
	}
	if rt.Kernel != nil {
		if cerr := rt.Kernel.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// NewContext returns a new context carrying the Runtime.
func NewContext(parent context.Context, rt *Runtime) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithValue(parent, runtimeContextKey, rt)
}

// FromContext extracts the Runtime from ctx. Panics if not present (programming error).
func FromContext(ctx context.Context) *Runtime {
	rt, ok := ctx.Value(runtimeContextKey).(*Runtime)
	if !ok || rt == nil {
		panic("refframes: Runtime not found in context — missing PersistentPreRunE?")
	}
	return rt
}
