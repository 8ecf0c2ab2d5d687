package driver

// Incrementer generalizes a bounded counter: Increment advances it and
// returns the new value, IsMaxed reports whether it has reached its upper
// bound, and Reset returns it to its initial, unincremented state. Adapted
// from the teacher's cmd/golog.go Incrementer[T] generics, repurposed here
// to drive the nested (cycleword length, plaintext-keyword length,
// ciphertext-keyword length) enumeration instead of a standalone CLI
// command.
type Incrementer[T any] interface {
	Name() string
	IsMaxed() bool
	Increment() T
	Reset()
	GetCurrentValue() T
}

// RangeIncrementer is an Incrementer over a contiguous integer range
// [lo, hi). It starts positioned at lo before any Increment call.
type RangeIncrementer struct {
	name       string
	lo, hi     int
	currentIdx int
}

// NewRangeIncrementer creates an Incrementer counting from lo to hi-1.
func NewRangeIncrementer(name string, lo, hi int) *RangeIncrementer {
	return &RangeIncrementer{name: name, lo: lo, hi: hi, currentIdx: 0}
}

func (r *RangeIncrementer) Name() string { return r.name }

func (r *RangeIncrementer) IsMaxed() bool {
	return r.lo+r.currentIdx >= r.hi-1
}

func (r *RangeIncrementer) Increment() int {
	if !r.IsMaxed() {
		r.currentIdx++
	}
	return r.lo + r.currentIdx
}

func (r *RangeIncrementer) Reset() {
	r.currentIdx = 0
}

func (r *RangeIncrementer) GetCurrentValue() int {
	return r.lo + r.currentIdx
}

// SliceIncrementer is an Incrementer walking a fixed slice of values in
// order, e.g. the period estimator's candidate cycleword lengths (which
// aren't a contiguous range once the z-score filter has run).
type SliceIncrementer[T any] struct {
	name      string
	values    []T
	currIndex int
}

// NewSliceIncrementer creates an Incrementer over values, in order.
func NewSliceIncrementer[T any](name string, values []T) *SliceIncrementer[T] {
	return &SliceIncrementer[T]{name: name, values: values, currIndex: 0}
}

func (s *SliceIncrementer[T]) Name() string { return s.name }

func (s *SliceIncrementer[T]) IsMaxed() bool {
	return s.currIndex >= len(s.values)-1
}

func (s *SliceIncrementer[T]) Increment() T {
	if !s.IsMaxed() {
		s.currIndex++
	}
	return s.values[s.currIndex]
}

func (s *SliceIncrementer[T]) Reset() {
	s.currIndex = 0
}

func (s *SliceIncrementer[T]) GetCurrentValue() T {
	return s.values[s.currIndex]
}

// IncrementerIncrementer is backed by a slice of Incrementers: it acts
// like an odometer, incrementing the last (least-significant) one and
// rolling over to the next whenever one maxes out. Adapted from the
// teacher's cmd/golog.go IncrementerIncrementer[T], generalized here over
// a mix of RangeIncrementer and SliceIncrementer values.
type IncrementerIncrementer[T any] struct {
	name         string
	incrementers []Incrementer[T]
}

// NewIncrementerIncrementer creates an odometer over incrementers,
// most-significant first (the last one advances fastest).
func NewIncrementerIncrementer[T any](name string, incrementers []Incrementer[T]) *IncrementerIncrementer[T] {
	return &IncrementerIncrementer[T]{name: name, incrementers: incrementers}
}

func (ii *IncrementerIncrementer[T]) Name() string { return ii.name }

func (ii *IncrementerIncrementer[T]) IsMaxed() bool {
	for _, inc := range ii.incrementers {
		if !inc.IsMaxed() {
			return false
		}
	}
	return true
}

// Increment advances the odometer by one tick: it finds the last
// incrementer that isn't maxed, increments it, and resets everyone after
// it, returning every incrementer's resulting value in order.
func (ii *IncrementerIncrementer[T]) Increment() []T {
	n := len(ii.incrementers)
	for i := n - 1; i >= 0; i-- {
		if !ii.incrementers[i].IsMaxed() {
			ii.incrementers[i].Increment()
			for j := i + 1; j < n; j++ {
				ii.incrementers[j].Reset()
			}
			return ii.Values()
		}
	}
	return ii.Values()
}

func (ii *IncrementerIncrementer[T]) Reset() {
	for _, inc := range ii.incrementers {
		inc.Reset()
	}
}

// Values returns the current value of every incrementer, in order.
func (ii *IncrementerIncrementer[T]) Values() []T {
	values := make([]T, len(ii.incrementers))
	for i, inc := range ii.incrementers {
		values[i] = inc.GetCurrentValue()
	}
	return values
}
