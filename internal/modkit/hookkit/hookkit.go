// Package hookkit provides ordered filter and action chains.
//
// The activity listing pipeline exposes fixed extension points; other
// modules attach handlers to them at bootstrap. Handlers run in
// ascending priority, ties in registration order. Chains are built once
// at startup and carry no request state: anything request-scoped must
// travel through the value or the context, never the chain itself.
package hookkit

import "context"

// FilterFunc transforms a value at one hook point
type FilterFunc[T any] func(ctx context.Context, v T) T

type filterEntry[T any] struct {
	priority int
	fn       FilterFunc[T]
}

// Filter is an ordered chain of value transformers
// the zero value is usable and applies nothing
type Filter[T any] struct {
	entries []filterEntry[T]
}

// Add registers fn at the given priority
func (f *Filter[T]) Add(priority int, fn FilterFunc[T]) {
	e := filterEntry[T]{priority: priority, fn: fn}
	// insert after the last entry with priority <= e.priority to keep
	// registration order stable within a priority
	i := len(f.entries)
	for i > 0 && f.entries[i-1].priority > e.priority {
		i--
	}
	f.entries = append(f.entries, filterEntry[T]{})
	copy(f.entries[i+1:], f.entries[i:])
	f.entries[i] = e
}

// Apply runs the chain over v and returns the final value
func (f *Filter[T]) Apply(ctx context.Context, v T) T {
	for _, e := range f.entries {
		v = e.fn(ctx, v)
	}
	return v
}

// Len reports the number of registered handlers
func (f *Filter[T]) Len() int { return len(f.entries) }

// ActionFunc observes an event at one hook point
type ActionFunc[T any] func(ctx context.Context, v T)

type actionEntry[T any] struct {
	priority int
	fn       ActionFunc[T]
}

// Action is an ordered chain of event observers
type Action[T any] struct {
	entries []actionEntry[T]
}

// Add registers fn at the given priority
func (a *Action[T]) Add(priority int, fn ActionFunc[T]) {
	e := actionEntry[T]{priority: priority, fn: fn}
	i := len(a.entries)
	for i > 0 && a.entries[i-1].priority > e.priority {
		i--
	}
	a.entries = append(a.entries, actionEntry[T]{})
	copy(a.entries[i+1:], a.entries[i:])
	a.entries[i] = e
}

// Emit runs every handler in order
func (a *Action[T]) Emit(ctx context.Context, v T) {
	for _, e := range a.entries {
		e.fn(ctx, v)
	}
}

// Len reports the number of registered handlers
func (a *Action[T]) Len() int { return len(a.entries) }
