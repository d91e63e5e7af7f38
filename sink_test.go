package evergreen

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestInstanceBufferSizedFromDataset(t *testing.T) {
	d := buildTestDataset(t, smallConfig(), 20)
	buf := NewInstanceBuffer(d)
	for _, c := range Categories {
		if buf.Len(c) != d.Len(c) {
			t.Errorf("%s: %d slots, want %d", c, buf.Len(c), d.Len(c))
		}
		if len(buf.Colors(c)) != d.Len(c) {
			t.Errorf("%s: %d color slots, want %d", c, len(buf.Colors(c)), d.Len(c))
		}
	}
	if !buf.Ready() {
		t.Error("new buffer not ready")
	}
	if buf.Len(Category(200)) != 0 {
		t.Error("unknown category has slots")
	}
}

func TestInstanceBufferCommitCountsFrames(t *testing.T) {
	d := buildTestDataset(t, smallConfig(), 21)
	buf := NewInstanceBuffer(d)

	buf.Commit()
	if buf.Frame() != 0 {
		t.Errorf("empty commit advanced frame to %d", buf.Frame())
	}

	m := mgl32.Translate3D(1, 2, 3)
	buf.SetMatrixAt(CategorySphere, 0, m)
	buf.Commit()
	if buf.Frame() != 1 {
		t.Errorf("frame = %d, want 1", buf.Frame())
	}
	if buf.Matrices(CategorySphere)[0] != m {
		t.Error("matrix not stored")
	}

	buf.SetColorAt(CategoryBox, 2, Color{1, 0, 0})
	buf.Commit()
	if buf.Frame() != 2 {
		t.Errorf("frame = %d, want 2", buf.Frame())
	}
	if buf.Colors(CategoryBox)[2] != (Color{1, 0, 0}) {
		t.Error("color not stored")
	}
}

func TestInstanceBufferSlotOutOfRangePanics(t *testing.T) {
	d := buildTestDataset(t, smallConfig(), 22)
	buf := NewInstanceBuffer(d)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range slot")
		}
	}()
	buf.SetMatrixAt(CategoryBigStar, 1, mgl32.Ident4())
}
