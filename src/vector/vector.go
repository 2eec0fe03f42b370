// Package vector implements a generic resizable contiguous-storage
// container with explicit capacity bookkeeping and random-access
// iterators. Unlike a plain slice, growth, positional insertion and
// erasure follow fixed, observable policies: single-element growth
// doubles the capacity, bulk insertion grows by exactly the number of
// incoming elements.
package vector

import (
	"errors"
	"fmt"
	"strings"
)

var ErrOutOfRange = errors.New("Vector: index out of range")

// Vector owns a contiguous buffer of capacity slots, of which the first
// size hold live elements. gen counts buffer-invalidating mutations;
// iterators snapshot it to detect use after invalidation.
type Vector[T any] struct {
	data     []T
	size     int
	capacity int
	gen      uint64
}

func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithSize creates a vector holding size zero-valued elements, with
// capacity equal to size.
func NewWithSize[T any](size int) *Vector[T] {
	if size <= 0 {
		return &Vector[T]{}
	}
	return &Vector[T]{
		data:     make([]T, size),
		size:     size,
		capacity: size,
	}
}

// Of builds a vector from a literal sequence of values. Capacity equals
// the number of values.
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{
		data:     make([]T, len(values)),
		size:     len(values),
		capacity: len(values),
	}
	copy(v.data, values)
	return v
}

// Cursor is the contract for an external forward sequence: single
// forward traversal plus a computable distance between two positions.
// Random access is not required.
type Cursor[T any, P any] interface {
	Value() T
	Next() P
	Equal(P) bool
}

// NewFromRange builds a vector from the half-open range [first, last)
// over any forward sequence. Capacity equals the distance between the
// two positions.
func NewFromRange[T any, P Cursor[T, P]](first, last P) *Vector[T] {
	n := 0
	for p := first; !p.Equal(last); p = p.Next() {
		n++
	}
	v := NewWithSize[T](n)
	i := 0
	for p := first; !p.Equal(last); p = p.Next() {
		v.data[i] = p.Value()
		i++
	}
	return v
}

func (v *Vector[T]) Size() int {
	return v.size
}

func (v *Vector[T]) Capacity() int {
	return v.capacity
}

func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// At returns the element at index, or ErrOutOfRange.
func (v *Vector[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= v.size {
		return zero, ErrOutOfRange
	}
	return v.data[index], nil
}

// SetAt overwrites the element at index, or returns ErrOutOfRange.
func (v *Vector[T]) SetAt(index int, value T) error {
	if index < 0 || index >= v.size {
		return ErrOutOfRange
	}
	v.data[index] = value
	return nil
}

// Get is the unchecked counterpart of At: index must satisfy
// 0 <= index < Size(), violations panic.
func (v *Vector[T]) Get(index int) T {
	if index < 0 || index >= v.size {
		panic("Vector: Get index out of range")
	}
	return v.data[index]
}

// Set is the unchecked counterpart of SetAt.
func (v *Vector[T]) Set(index int, value T) {
	if index < 0 || index >= v.size {
		panic("Vector: Set index out of range")
	}
	v.data[index] = value
}

// Front requires a non-empty vector.
func (v *Vector[T]) Front() T {
	if v.size == 0 {
		panic("Vector: Front on empty vector")
	}
	return v.data[0]
}

// Back requires a non-empty vector.
func (v *Vector[T]) Back() T {
	if v.size == 0 {
		panic("Vector: Back on empty vector")
	}
	return v.data[v.size-1]
}

// Data returns the live prefix of the backing buffer. The slice shares
// memory with the vector and is valid only until the next mutation.
func (v *Vector[T]) Data() []T {
	if v.size == 0 {
		return nil
	}
	return v.data[:v.size]
}

// realloc moves the live elements into a fresh buffer of exactly newCap
// slots and adopts it. Every previously obtained iterator is
// invalidated.
func (v *Vector[T]) realloc(newCap int) {
	newData := make([]T, newCap)
	copy(newData, v.data[:v.size])
	v.data = newData
	v.capacity = newCap
	v.gen++
}

// Reserve grows the capacity to exactly newCap. Never shrinks.
func (v *Vector[T]) Reserve(newCap int) {
	if newCap <= v.capacity {
		return
	}
	v.realloc(newCap)
}

// ShrinkToFit reallocates so that capacity equals size.
func (v *Vector[T]) ShrinkToFit() {
	if v.capacity == v.size {
		return
	}
	v.realloc(v.size)
}

// Clear drops all elements but keeps the buffer, so repeated
// clear/refill cycles do not reallocate.
func (v *Vector[T]) Clear() {
	var zero T
	for i := 0; i < v.size; i++ {
		v.data[i] = zero
	}
	v.size = 0
	v.gen++
}

func (v *Vector[T]) PushBack(value T) {
	if v.size == v.capacity {
		newCap := 1
		if v.capacity > 0 {
			newCap = 2 * v.capacity
		}
		v.realloc(newCap)
	}
	v.data[v.size] = value
	v.size++
}

// PopBack removes the last element. No-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	var zero T
	v.size--
	v.data[v.size] = zero
}

// insertionIndex validates pos as a position in this vector suitable
// for insertion (the one-past-end position is allowed).
func (v *Vector[T]) insertionIndex(pos Iterator[T]) int {
	if pos.vec != v || pos.gen != v.gen {
		panic("Vector: position does not refer to this vector")
	}
	if pos.idx < 0 || pos.idx > v.size {
		panic("Vector: position out of range")
	}
	return pos.idx
}

// elementIndex validates pos as the position of a live element.
func (v *Vector[T]) elementIndex(pos Iterator[T]) int {
	if pos.vec != v || pos.gen != v.gen {
		panic("Vector: position does not refer to this vector")
	}
	if pos.idx < 0 || pos.idx >= v.size {
		panic("Vector: position out of range")
	}
	return pos.idx
}

// Insert places value before pos and returns an iterator addressing the
// inserted element. Growth follows the doubling policy.
func (v *Vector[T]) Insert(pos Iterator[T], value T) Iterator[T] {
	index := v.insertionIndex(pos)
	if v.size == v.capacity {
		newCap := 1
		if v.capacity > 0 {
			newCap = 2 * v.capacity
		}
		newData := make([]T, newCap)
		copy(newData, v.data[:index])
		newData[index] = value
		copy(newData[index+1:], v.data[index:v.size])
		v.data = newData
		v.capacity = newCap
	} else {
		copy(v.data[index+1:v.size+1], v.data[index:v.size])
		v.data[index] = value
	}
	v.size++
	v.gen++
	return Iterator[T]{vec: v, idx: index, gen: v.gen}
}

// InsertValues places values before pos and returns an iterator
// addressing the first inserted element. When growth is needed the new
// capacity is exactly the old capacity plus the number of values.
func (v *Vector[T]) InsertValues(pos Iterator[T], values ...T) Iterator[T] {
	index := v.insertionIndex(pos)
	k := len(values)
	if k == 0 {
		return Iterator[T]{vec: v, idx: index, gen: v.gen}
	}
	if v.size+k > v.capacity {
		newCap := v.capacity + k
		newData := make([]T, newCap)
		copy(newData, v.data[:index])
		copy(newData[index:], values)
		copy(newData[index+k:], v.data[index:v.size])
		v.data = newData
		v.capacity = newCap
	} else {
		copy(v.data[index+k:v.size+k], v.data[index:v.size])
		copy(v.data[index:index+k], values)
	}
	v.size += k
	v.gen++
	return Iterator[T]{vec: v, idx: index, gen: v.gen}
}

// InsertRange places the elements of [first, last) before pos.
func InsertRange[T any, P Cursor[T, P]](v *Vector[T], pos Iterator[T], first, last P) Iterator[T] {
	return v.InsertValues(pos, collect[T](first, last)...)
}

// Erase removes the element at pos and returns an iterator to its
// original successor, or End() if the last element was removed.
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	index := v.elementIndex(pos)
	copy(v.data[index:], v.data[index+1:v.size])
	var zero T
	v.size--
	v.data[v.size] = zero
	v.gen++
	return Iterator[T]{vec: v, idx: index, gen: v.gen}
}

// EraseRange removes the elements in [first, last) and returns an
// iterator to the new position of the element originally at last.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	lo := v.insertionIndex(first)
	hi := v.insertionIndex(last)
	if hi < lo {
		panic("Vector: invalid erase range")
	}
	k := hi - lo
	if k == 0 {
		return Iterator[T]{vec: v, idx: lo, gen: v.gen}
	}
	copy(v.data[lo:], v.data[hi:v.size])
	var zero T
	for i := v.size - k; i < v.size; i++ {
		v.data[i] = zero
	}
	v.size -= k
	v.gen++
	return Iterator[T]{vec: v, idx: lo, gen: v.gen}
}

// Assign replaces the contents with count copies of value. Reallocates
// to exactly count slots only when the current capacity is too small.
func (v *Vector[T]) Assign(count int, value T) {
	if count < 0 {
		count = 0
	}
	if count > v.capacity {
		v.data = make([]T, count)
		v.capacity = count
	}
	for i := 0; i < count; i++ {
		v.data[i] = value
	}
	var zero T
	for i := count; i < v.size; i++ {
		v.data[i] = zero
	}
	v.size = count
	v.gen++
}

// AssignValues replaces the contents with the given values, sizing the
// buffer the same way Assign does.
func (v *Vector[T]) AssignValues(values ...T) {
	count := len(values)
	if count > v.capacity {
		v.data = make([]T, count)
		v.capacity = count
	}
	copy(v.data, values)
	var zero T
	for i := count; i < v.size; i++ {
		v.data[i] = zero
	}
	v.size = count
	v.gen++
}

// AssignRange replaces the contents with the elements of [first, last).
func AssignRange[T any, P Cursor[T, P]](v *Vector[T], first, last P) {
	v.AssignValues(collect[T](first, last)...)
}

func collect[T any, P Cursor[T, P]](first, last P) []T {
	n := 0
	for p := first; !p.Equal(last); p = p.Next() {
		n++
	}
	out := make([]T, 0, n)
	for p := first; !p.Equal(last); p = p.Next() {
		out = append(out, p.Value())
	}
	return out
}

// Clone returns a deep copy preserving both contents and capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	clone := &Vector[T]{
		data:     make([]T, v.capacity),
		size:     v.size,
		capacity: v.capacity,
	}
	copy(clone.data, v.data[:v.size])
	return clone
}

// Begin returns an iterator addressing the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{vec: v, idx: 0, gen: v.gen}
}

// End returns the one-past-last iterator. It is a valid position for
// insertion but must not be dereferenced.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{vec: v, idx: v.size, gen: v.gen}
}

// Equal reports whether a and b hold the same elements in the same
// order. Capacity does not participate.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// Swap exchanges the buffers and bookkeeping of a and b in O(1).
// Iterators of both vectors are invalidated.
func Swap[T any](a, b *Vector[T]) {
	a.data, b.data = b.data, a.data
	a.size, b.size = b.size, a.size
	a.capacity, b.capacity = b.capacity, a.capacity
	a.gen++
	b.gen++
}

// String renders every allocated slot with a separator marking the
// logical end, followed by the raw counters. Diagnostics only, not a
// stable format.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for i := 0; i < v.capacity; i++ {
		if i == v.size {
			sb.WriteString("| ")
		}
		fmt.Fprintf(&sb, "%v ", v.data[i])
	}
	fmt.Fprintf(&sb, "}, size=%d, capacity=%d", v.size, v.capacity)
	return sb.String()
}
