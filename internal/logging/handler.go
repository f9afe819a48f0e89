package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// SwappableHandler forwards records to a handler that can be replaced at runtime.
// Handlers derived through WithAttrs or WithGroup share the swap point, so loggers
// created before Swap (package-level or component loggers) follow the new handler.
type SwappableHandler struct {
	target *swapTarget
	ops    []handlerOp
	cache  atomic.Pointer[derived]
}

// swapTarget holds the base handler shared by a SwappableHandler and its children.
type swapTarget struct {
	current atomic.Pointer[generation]
}

type generation struct {
	seq     uint64
	handler slog.Handler
}

// derived caches the base handler with ops applied for one generation.
type derived struct {
	seq     uint64
	handler slog.Handler
}

type handlerOp func(slog.Handler) slog.Handler

// NewSwappableHandler creates a handler with an initial handler.
func NewSwappableHandler(initial slog.Handler) *SwappableHandler {
	target := &swapTarget{}
	target.current.Store(&generation{handler: initial})
	return &SwappableHandler{target: target}
}

// Swap atomically replaces the underlying handler for this handler and every
// handler derived from it.
func (sh *SwappableHandler) Swap(newHandler slog.Handler) {
	prev := sh.target.current.Load()
	sh.target.current.Store(&generation{seq: prev.seq + 1, handler: newHandler})
}

// resolve returns the current base handler with this handler's attrs and groups applied.
func (sh *SwappableHandler) resolve() slog.Handler {
	gen := sh.target.current.Load()
	if len(sh.ops) == 0 {
		return gen.handler
	}

	if c := sh.cache.Load(); c != nil && c.seq == gen.seq {
		return c.handler
	}

	h := gen.handler
	for _, op := range sh.ops {
		h = op(h)
	}
	sh.cache.Store(&derived{seq: gen.seq, handler: h})
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (sh *SwappableHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return sh.resolve().Enabled(ctx, level)
}

// Handle handles the Record.
func (sh *SwappableHandler) Handle(ctx context.Context, r slog.Record) error {
	return sh.resolve().Handle(ctx, r)
}

// WithAttrs returns a SwappableHandler that adds attrs to every record.
func (sh *SwappableHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return sh
	}
	return sh.derive(func(h slog.Handler) slog.Handler {
		return h.WithAttrs(attrs)
	})
}

// WithGroup returns a SwappableHandler that nests subsequent attrs under name.
func (sh *SwappableHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return sh
	}
	return sh.derive(func(h slog.Handler) slog.Handler {
		return h.WithGroup(name)
	})
}

func (sh *SwappableHandler) derive(op handlerOp) *SwappableHandler {
	ops := make([]handlerOp, len(sh.ops), len(sh.ops)+1)
	copy(ops, sh.ops)
	return &SwappableHandler{
		target: sh.target,
		ops:    append(ops, op),
	}
}
