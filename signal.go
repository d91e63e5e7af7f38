package evergreen

// Signal supplies the requested arrangement. The scene reads it once at the
// start of every frame.
type Signal interface {
	Arrangement() Arrangement
}

// Toggle is a Signal flipped by user action, typically a button or key.
// The zero value is Scattered; NewToggle starts assembled.
type Toggle struct {
	state Arrangement
}

// NewToggle creates a Toggle in the given arrangement.
func NewToggle(initial Arrangement) *Toggle {
	return &Toggle{state: initial}
}

// Arrangement returns the current arrangement.
func (t *Toggle) Arrangement() Arrangement {
	return t.state
}

// Set switches to a.
func (t *Toggle) Set(a Arrangement) {
	t.state = a
}

// Flip switches between Assembled and Scattered and returns the new value.
func (t *Toggle) Flip() Arrangement {
	if t.state == Assembled {
		t.state = Scattered
	} else {
		t.state = Assembled
	}
	return t.state
}

// Fixed is a Signal that never changes.
type Fixed Arrangement

// Arrangement returns the fixed arrangement.
func (f Fixed) Arrangement() Arrangement {
	return Arrangement(f)
}
