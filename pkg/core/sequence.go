package core

// Sequence is a fixed, cyclic list of values used to jitter light samples.
// It is read by index so a single Sequence can be shared between goroutines.
type Sequence struct {
	values []float64
}

// NewSequence creates a sequence over a copy of values
func NewSequence(values ...float64) Sequence {
	v := make([]float64, len(values))
	copy(v, values)
	return Sequence{values: v}
}

// Len returns the number of values in the sequence
func (s Sequence) Len() int {
	return len(s.values)
}

// At returns the i-th value, wrapping around the end of the list.
// An empty sequence yields 0.5, the center of a cell.
func (s Sequence) At(i int) float64 {
	if len(s.values) == 0 {
		return 0.5
	}
	if i < 0 {
		i = -i
	}
	return s.values[i%len(s.values)]
}

// Cursor walks a Sequence in order. Cursors are cheap and owned by one caller.
type Cursor struct {
	seq Sequence
	pos int
}

// Cursor returns a new cursor positioned at the first value
func (s Sequence) Cursor() *Cursor {
	return &Cursor{seq: s}
}

// Next returns the current value and advances the cursor
func (c *Cursor) Next() float64 {
	v := c.seq.At(c.pos)
	c.pos++
	return v
}
