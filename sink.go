package evergreen

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// InstanceSink receives per-instance transforms and colors for drawing.
// Each category has one slot per particle, in particle ID order.
//
// Matrices are written every frame, colors once before the first frame.
// Commit marks the end of a frame's writes; a renderer reading between
// Commit calls always sees a complete frame.
type InstanceSink interface {
	// Ready reports whether the sink can accept writes. Frames are skipped
	// while it returns false.
	Ready() bool
	SetMatrixAt(c Category, i int, m mgl32.Mat4)
	SetColorAt(c Category, i int, col Color)
	Commit()
}

// InstanceBuffer is the in-memory InstanceSink. Renderers read it after
// Commit.
type InstanceBuffer struct {
	matrices [categoryCount][]mgl32.Mat4
	colors   [categoryCount][]Color
	frame    uint64
	dirty    bool
}

// NewInstanceBuffer sizes one slot per particle of d. All matrices start as
// identity and all colors as white.
func NewInstanceBuffer(d *Dataset) *InstanceBuffer {
	b := &InstanceBuffer{}
	for _, c := range Categories {
		n := d.Len(c)
		b.matrices[c] = make([]mgl32.Mat4, n)
		b.colors[c] = make([]Color, n)
		for i := range n {
			b.matrices[c][i] = mgl32.Ident4()
			b.colors[c][i] = Color{1, 1, 1}
		}
	}
	return b
}

// Ready reports whether the buffer exists. A nil buffer is not ready.
func (b *InstanceBuffer) Ready() bool {
	return b != nil
}

// SetMatrixAt stores the transform for slot i of category c.
func (b *InstanceBuffer) SetMatrixAt(c Category, i int, m mgl32.Mat4) {
	b.checkSlot(c, i)
	b.matrices[c][i] = m
	b.dirty = true
}

// SetColorAt stores the color for slot i of category c.
func (b *InstanceBuffer) SetColorAt(c Category, i int, col Color) {
	b.checkSlot(c, i)
	b.colors[c][i] = col
	b.dirty = true
}

// Commit publishes the writes made since the previous Commit and advances
// the frame counter. A Commit with no writes is a no-op.
func (b *InstanceBuffer) Commit() {
	if !b.dirty {
		return
	}
	b.dirty = false
	b.frame++
}

// Frame returns the number of committed frames.
func (b *InstanceBuffer) Frame() uint64 {
	return b.frame
}

// Len returns the number of slots for category c.
func (b *InstanceBuffer) Len(c Category) int {
	if int(c) >= categoryCount {
		return 0
	}
	return len(b.matrices[c])
}

// Matrices returns the slot matrices of category c. The slice is owned by
// the buffer and must be treated as read-only.
func (b *InstanceBuffer) Matrices(c Category) []mgl32.Mat4 {
	return b.matrices[c]
}

// Colors returns the slot colors of category c. The slice is owned by the
// buffer and must be treated as read-only.
func (b *InstanceBuffer) Colors(c Category) []Color {
	return b.colors[c]
}

func (b *InstanceBuffer) checkSlot(c Category, i int) {
	if n := b.Len(c); i < 0 || i >= n {
		panic(fmt.Sprintf("evergreen: slot %d out of range for %s (%d slots)", i, c, n))
	}
}
