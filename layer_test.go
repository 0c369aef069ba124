package pixelhouse

import (
	"errors"
	"slices"
	"testing"
)

var nopDrawer = DrawFunc(func(*Buffer, []any) error { return nil })

func TestLayersEmpty(t *testing.T) {
	l := NewLayers()
	if l.Max() != 0 {
		t.Errorf("Max() = %d, want 0", l.Max())
	}
	if l.Len() != 0 || l.Count() != 0 {
		t.Errorf("Len/Count = %d/%d, want 0/0", l.Len(), l.Count())
	}
	for range l.Ordered() {
		t.Fatal("Ordered() yielded from an empty store")
	}
}

func TestLayersOrderedAscending(t *testing.T) {
	l := NewLayers()
	for _, n := range []int{7, 2, 10, 0, 2} {
		if err := l.Append(NewOperation(nopDrawer, []any{n}, false), n); err != nil {
			t.Fatalf("Append(%d): %v", n, err)
		}
	}

	var keys []int
	for k, ops := range l.Ordered() {
		keys = append(keys, k)
		for _, op := range ops {
			if op.Args()[0] != k {
				t.Errorf("layer %d holds op for layer %v", k, op.Args()[0])
			}
		}
	}
	if want := []int{0, 2, 7, 10}; !slices.Equal(keys, want) {
		t.Errorf("Ordered() keys = %v, want %v", keys, want)
	}
	if l.Max() != 10 || l.Len() != 5 || l.Count() != 4 {
		t.Errorf("Max/Len/Count = %d/%d/%d, want 10/5/4", l.Max(), l.Len(), l.Count())
	}
}

func TestLayersOrderedRestartable(t *testing.T) {
	l := NewLayers()
	_ = l.Append(NewOperation(nopDrawer, nil, false), 3)

	collect := func() []int {
		var keys []int
		for k := range l.Ordered() {
			keys = append(keys, k)
		}
		return keys
	}
	seq := l.Ordered()
	first := collect()
	_ = l.Append(NewOperation(nopDrawer, nil, false), 1)
	var second []int
	for k := range seq {
		second = append(second, k)
	}
	if !slices.Equal(first, []int{3}) || !slices.Equal(second, []int{1, 3}) {
		t.Errorf("first = %v, second = %v; want [3] then [1 3]", first, second)
	}
}

func TestLayersOrderedEarlyStop(t *testing.T) {
	l := NewLayers()
	for i := range 5 {
		_ = l.Append(NewOperation(nopDrawer, nil, false), i)
	}
	n := 0
	for range l.Ordered() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d layers, want 2", n)
	}
}

func TestLayersInsertionOrderWithinLayer(t *testing.T) {
	l := NewLayers()
	for i := range 4 {
		if err := l.AppendTop(NewOperation(nopDrawer, []any{i}, false)); err != nil {
			t.Fatalf("AppendTop: %v", err)
		}
	}
	for k, ops := range l.Ordered() {
		if k != 0 {
			t.Fatalf("AppendTop on empty store used layer %d, want 0", k)
		}
		for i, op := range ops {
			if op.Args()[0] != i {
				t.Errorf("op %d has arg %v", i, op.Args()[0])
			}
		}
	}
}

func TestLayersNegativeIndex(t *testing.T) {
	l := NewLayers()
	err := l.Append(NewOperation(nopDrawer, nil, false), -1)
	if !errors.Is(err, ErrInvalidLayer) {
		t.Fatalf("Append(-1) error = %v, want ErrInvalidLayer", err)
	}
	if l.Len() != 0 {
		t.Error("rejected append was recorded")
	}
}

func TestOperationImmutable(t *testing.T) {
	args := []any{1, "two"}
	op := NewOperation(nopDrawer, args, true)
	args[0] = 99

	got := op.Args()
	if got[0] != 1 {
		t.Errorf("operation saw caller mutation: %v", got)
	}
	got[1] = "changed"
	if op.Args()[1] != "two" {
		t.Error("Args() exposes internal storage")
	}
	if !op.Blend() || op.Drawer() == nil {
		t.Error("Blend/Drawer not preserved")
	}
}

func TestOrderedSliceIsClipped(t *testing.T) {
	l := NewLayers()
	_ = l.Append(NewOperation(nopDrawer, []any{"a"}, false), 0)
	_ = l.Append(NewOperation(nopDrawer, []any{"b"}, false), 0)
	var held []Operation
	for _, ops := range l.Ordered() {
		held = ops
	}
	_ = l.Append(NewOperation(nopDrawer, []any{"c"}, false), 0)
	// Appending to a previously yielded slice must not write into the store.
	_ = append(held, NewOperation(nopDrawer, []any{"x"}, false))
	for _, ops := range l.Ordered() {
		if got := ops[2].Args()[0]; got != "c" {
			t.Errorf("third op = %v, want c", got)
		}
	}
}

func TestLayersRejectNilDrawer(t *testing.T) {
	tests := []struct {
		name string
		d    Drawer
	}{
		{"nil interface", nil},
		{"nil func", DrawFunc(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayers()
			if err := l.AppendTop(NewOperation(tt.d, nil, false)); !errors.Is(err, ErrNilDrawer) {
				t.Errorf("AppendTop error = %v, want ErrNilDrawer", err)
			}
			if l.Len() != 0 || l.Count() != 0 {
				t.Error("rejected operation was recorded")
			}
		})
	}
}
