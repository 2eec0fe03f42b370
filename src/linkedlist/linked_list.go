// Package linkedlist provides a minimal singly linked list with a
// forward cursor. Its iterator supports only forward traversal and
// position equality, which makes the list a convenient source sequence
// for the vector package's range constructors.
package linkedlist

import "errors"

var ErrEmptyList = errors.New("LinkedList: list is empty")

type node[T any] struct {
	value T
	next  *node[T]
}

type LinkedList[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

func New[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

func (l *LinkedList[T]) Size() int {
	return l.size
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

func (l *LinkedList[T]) PushFront(value T) {
	n := &node[T]{value: value, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

func (l *LinkedList[T]) PushBack(value T) {
	n := &node[T]{value: value}
	if l.tail == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

func (l *LinkedList[T]) PopFront() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}
	value := l.head.value
	l.head = l.head.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	return value, nil
}

// Iterator is a forward-only cursor. The zero value is the past-the-end
// position.
type Iterator[T any] struct {
	node *node[T]
}

// Begin returns a cursor at the first element, equal to End for an
// empty list.
func (l *LinkedList[T]) Begin() Iterator[T] {
	return Iterator[T]{node: l.head}
}

// End returns the past-the-end cursor.
func (l *LinkedList[T]) End() Iterator[T] {
	return Iterator[T]{}
}

func (it Iterator[T]) Value() T {
	if it.node == nil {
		panic("LinkedList: dereference of end iterator")
	}
	return it.node.value
}

func (it Iterator[T]) Next() Iterator[T] {
	if it.node == nil {
		panic("LinkedList: advance past end iterator")
	}
	return Iterator[T]{node: it.node.next}
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node
}
