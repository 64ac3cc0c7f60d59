package builder

import "context"

// Interrupter is polled cooperatively during a build.
type Interrupter interface {
	ShouldAbort() bool
}

// InterruptFunc adapts a function to Interrupter.
type InterruptFunc func() bool

// ShouldAbort calls f.
func (f InterruptFunc) ShouldAbort() bool { return f() }

type ctxInterrupter struct {
	ctx context.Context
}

func (c ctxInterrupter) ShouldAbort() bool { return c.ctx.Err() != nil }

// ContextInterrupter aborts once ctx is done.
func ContextInterrupter(ctx context.Context) Interrupter {
	return ctxInterrupter{ctx: ctx}
}

// Never is an Interrupter that never aborts.
var Never Interrupter = InterruptFunc(func() bool { return false })

func aborted(intr Interrupter) bool {
	return intr != nil && intr.ShouldAbort()
}
