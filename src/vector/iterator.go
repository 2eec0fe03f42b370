package vector

import "fmt"

// Iterator is a copyable cursor over one slot of a vector's buffer, or
// the one-past-end position. It snapshots the owning vector's buffer
// generation; any mutation that reallocates, shifts or swaps the buffer
// bumps the generation and turns previously obtained iterators stale.
// Dereferencing a stale or zero-value iterator panics. Positional
// arithmetic is unchecked: the caller must keep the result inside
// [Begin(), End()].
type Iterator[T any] struct {
	vec *Vector[T]
	idx int
	gen uint64
}

func (it Iterator[T]) live() *Vector[T] {
	if it.vec == nil {
		panic("Vector: use of zero iterator")
	}
	if it.gen != it.vec.gen {
		panic("Vector: use of invalidated iterator")
	}
	return it.vec
}

// Value reads the element the iterator addresses.
func (it Iterator[T]) Value() T {
	v := it.live()
	if it.idx < 0 || it.idx >= v.size {
		panic("Vector: iterator dereference out of range")
	}
	return v.data[it.idx]
}

// Set writes the element the iterator addresses.
func (it Iterator[T]) Set(value T) {
	v := it.live()
	if it.idx < 0 || it.idx >= v.size {
		panic("Vector: iterator dereference out of range")
	}
	v.data[it.idx] = value
}

// Valid reports whether Value would succeed.
func (it Iterator[T]) Valid() bool {
	return it.vec != nil && it.gen == it.vec.gen && it.idx >= 0 && it.idx < it.vec.size
}

// Next returns the iterator advanced by one slot.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

// Prev returns the iterator moved back by one slot.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Add(-1)
}

// Add returns the iterator shifted forward by n slots (backward for
// negative n).
func (it Iterator[T]) Add(n int) Iterator[T] {
	if it.vec == nil {
		panic("Vector: use of zero iterator")
	}
	it.idx += n
	return it
}

// Sub returns the iterator shifted backward by n slots.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	return it.Add(-n)
}

// Distance returns the signed number of slots from other to it. Only
// meaningful when both iterators originate from the same vector.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	if it.vec == nil || other.vec == nil {
		panic("Vector: use of zero iterator")
	}
	return it.idx - other.idx
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.vec == other.vec && it.idx == other.idx
}

func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.idx < other.idx
}

func (it Iterator[T]) Greater(other Iterator[T]) bool {
	return other.Less(it)
}

func (it Iterator[T]) LessOrEqual(other Iterator[T]) bool {
	return !it.Greater(other)
}

func (it Iterator[T]) GreaterOrEqual(other Iterator[T]) bool {
	return !it.Less(other)
}

func (it Iterator[T]) String() string {
	if !it.Valid() {
		return "[@ invalid ]"
	}
	return fmt.Sprintf("[@ %d: %v ]", it.idx, it.vec.data[it.idx])
}
