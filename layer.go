package pixelhouse

import (
	"fmt"
	"iter"
	"slices"
)

// Drawer renders one deferred operation onto a buffer.
// Implementations write pixels in place and must not retain dst.
type Drawer interface {
	Draw(dst *Buffer, args []any) error
}

// DrawFunc adapts an ordinary function to the Drawer interface.
type DrawFunc func(dst *Buffer, args []any) error

// Draw calls f(dst, args).
func (f DrawFunc) Draw(dst *Buffer, args []any) error {
	return f(dst, args)
}

// Operation is an immutable record of one deferred drawing action.
type Operation struct {
	drawer Drawer
	args   []any
	blend  bool
}

// NewOperation records d with a private copy of args.
func NewOperation(d Drawer, args []any, blend bool) Operation {
	return Operation{drawer: d, args: slices.Clone(args), blend: blend}
}

// Drawer returns the operation's drawer.
func (op Operation) Drawer() Drawer {
	return op.drawer
}

// Args returns a copy of the operation's arguments.
func (op Operation) Args() []any {
	return slices.Clone(op.args)
}

// Blend reports whether the operation is composited additively.
func (op Operation) Blend() bool {
	return op.blend
}

func (op Operation) draw(dst *Buffer) error {
	return op.drawer.Draw(dst, op.args)
}

// Layers maps non-negative layer indices to ordered operation lists.
// Layers only grow: nothing is ever removed or rewritten.
//
// Layers is not safe for concurrent use.
type Layers struct {
	layers map[int][]Operation
	total  int
}

// NewLayers creates an empty layer store.
func NewLayers() *Layers {
	return &Layers{layers: make(map[int][]Operation)}
}

// nilDrawer reports whether d is nil or wraps a nil function.
func nilDrawer(d Drawer) bool {
	if d == nil {
		return true
	}
	f, ok := d.(DrawFunc)
	return ok && f == nil
}

// Append adds op at the end of the given layer, creating the layer on first use.
func (l *Layers) Append(op Operation, layer int) error {
	if layer < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLayer, layer)
	}
	if nilDrawer(op.drawer) {
		return ErrNilDrawer
	}
	ops, ok := l.layers[layer]
	if !ok {
		ops = make([]Operation, 0, 4)
	}
	l.layers[layer] = append(ops, op)
	l.total++
	return nil
}

// AppendTop adds op to the current topmost layer (layer 0 when empty).
func (l *Layers) AppendTop(op Operation) error {
	return l.Append(op, l.Max())
}

// Max returns the greatest layer index in use, or 0 when empty.
func (l *Layers) Max() int {
	top := 0
	for k := range l.layers {
		if k > top {
			top = k
		}
	}
	return top
}

// Len returns the total number of recorded operations.
func (l *Layers) Len() int {
	return l.total
}

// Count returns the number of distinct layers.
func (l *Layers) Count() int {
	return len(l.layers)
}

// Ordered yields (index, operations) pairs in ascending index order.
// The order is recomputed on every call, so the sequence is restartable
// and reflects appends made since the previous iteration.
// The yielded slices must not be modified.
func (l *Layers) Ordered() iter.Seq2[int, []Operation] {
	return func(yield func(int, []Operation) bool) {
		keys := make([]int, 0, len(l.layers))
		for k := range l.layers {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if !yield(k, slices.Clip(l.layers[k])) {
				return
			}
		}
	}
}

// LayersView is a read-only view of a layer store.
type LayersView struct {
	l *Layers
}

// Max returns the greatest layer index in use, or 0 when empty.
func (v LayersView) Max() int { return v.l.Max() }

// Len returns the total number of recorded operations.
func (v LayersView) Len() int { return v.l.Len() }

// Count returns the number of distinct layers.
func (v LayersView) Count() int { return v.l.Count() }

// Ordered yields (index, operations) pairs in ascending index order.
func (v LayersView) Ordered() iter.Seq2[int, []Operation] { return v.l.Ordered() }
