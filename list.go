package slist

import (
	"fmt"

	"github.com/emirpasic/gods/v2/containers"
)

var _ containers.Container[int] = (*List[int])(nil)

// List is a singly-linked list that also contains a reference to the
// last node for quick inserts at the tail and reads from both ends. A
// zero value List is ready to use.
//
// A List must not be copied after first use. Use Clone instead.
type List[T any] struct {
	_ noCopy

	head, tail *node[T]
	size       int
}

// New returns a list containing vals in order.
func New[T any](vals ...T) *List[T] {
	var ls List[T]
	for _, v := range vals {
		ls.PushBack(v)
	}
	return &ls
}

// From returns a list containing the values of c in the order that
// c reports them.
func From[T any](c containers.Container[T]) *List[T] {
	return New(c.Values()...)
}

// PushFront adds v as a new node at the head of the list.
func (ls *List[T]) PushFront(v T) {
	ls.linkAfter(nil, &node[T]{val: v})
}

// PushBack adds v as a new node at the tail of the list.
func (ls *List[T]) PushBack(v T) {
	ls.linkAfter(ls.tail, &node[T]{val: v})
}

// Insert adds v so that it ends up at index i, shifting the element
// previously there and everything after it back by one. An i equal to
// the size of the list appends.
func (ls *List[T]) Insert(i int, v T) error {
	if i < 0 || i > ls.size {
		return ls.outOfRange(i)
	}

	switch i {
	case 0:
		ls.PushFront(v)
	case ls.size:
		ls.PushBack(v)
	default:
		ls.linkAfter(ls.nodeAt(i-1), &node[T]{val: v})
	}
	return nil
}

// PopFront removes the head node and returns its value.
func (ls *List[T]) PopFront() (v T, err error) {
	if ls.head == nil {
		return v, ErrEmpty
	}
	return ls.unlinkAfter(nil).val, nil
}

// PopBack removes the tail node and returns its value. There are no
// backwards links, so this has to walk the entire list to find the new
// tail.
func (ls *List[T]) PopBack() (v T, err error) {
	if ls.tail == nil {
		return v, ErrEmpty
	}

	var prev *node[T]
	if ls.size > 1 {
		prev = ls.nodeAt(ls.size - 2)
	}
	return ls.unlinkAfter(prev).val, nil
}

// PopAt removes the node at index i and returns its value.
func (ls *List[T]) PopAt(i int) (v T, err error) {
	if i < 0 || i >= ls.size {
		return v, ls.outOfRange(i)
	}

	switch i {
	case 0:
		return ls.PopFront()
	case ls.size - 1:
		return ls.PopBack()
	default:
		return ls.unlinkAfter(ls.nodeAt(i - 1)).val, nil
	}
}

// Front returns the value of the head node.
func (ls *List[T]) Front() (v T, err error) {
	if ls.head == nil {
		return v, ErrEmpty
	}
	return ls.head.val, nil
}

// Back returns the value of the tail node.
func (ls *List[T]) Back() (v T, err error) {
	if ls.tail == nil {
		return v, ErrEmpty
	}
	return ls.tail.val, nil
}

// Get returns the value at index i. Both ends are reached without
// walking the list.
func (ls *List[T]) Get(i int) (v T, err error) {
	if i < 0 || i >= ls.size {
		return v, ls.outOfRange(i)
	}
	return ls.nodeAt(i).val, nil
}

// Set replaces the value at index i with v.
func (ls *List[T]) Set(i int, v T) error {
	if i < 0 || i >= ls.size {
		return ls.outOfRange(i)
	}

	ls.nodeAt(i).val = v
	return nil
}

// Size returns the number of elements in the list.
func (ls *List[T]) Size() int {
	return ls.size
}

// Empty returns true if the list has no elements.
func (ls *List[T]) Empty() bool {
	return ls.size == 0
}

// Clear removes every element from the list. Nodes are unlinked one at
// a time so that none of them keeps the rest of the chain reachable.
func (ls *List[T]) Clear() {
	for ls.head != nil {
		n := ls.head
		ls.head = n.next
		n.next = nil
	}
	ls.tail = nil
	ls.size = 0
}

// Values returns a new slice containing the elements of the list from
// head to tail.
func (ls *List[T]) Values() []T {
	vals := make([]T, 0, ls.size)
	for cur := ls.head; cur != nil; cur = cur.next {
		vals = append(vals, cur.val)
	}
	return vals
}

// Clone returns a new list containing the same elements. The elements
// themselves are copied by assignment.
func (ls *List[T]) Clone() *List[T] {
	var c List[T]
	for cur := ls.head; cur != nil; cur = cur.next {
		c.PushBack(cur.val)
	}
	return &c
}

// String returns the elements formatted as a slice.
func (ls *List[T]) String() string {
	return fmt.Sprint(ls.Values())
}

// nodeAt returns the node at index i, which must be in range. The tail
// is returned directly rather than walked to.
func (ls *List[T]) nodeAt(i int) *node[T] {
	if i == ls.size-1 {
		return ls.tail
	}

	cur := ls.head
	for range i {
		cur = cur.next
	}
	return cur
}

// linkAfter splices n into the list directly after prev, or at the
// head if prev is nil.
func (ls *List[T]) linkAfter(prev, n *node[T]) {
	if prev == nil {
		n.next = ls.head
		ls.head = n
	} else {
		n.next = prev.next
		prev.next = n
	}

	if n.next == nil {
		ls.tail = n
	}
	ls.size++
}

// unlinkAfter removes and returns the node directly after prev, or the
// head if prev is nil. That node must exist.
func (ls *List[T]) unlinkAfter(prev *node[T]) *node[T] {
	var n *node[T]
	if prev == nil {
		n = ls.head
		ls.head = n.next
	} else {
		n = prev.next
		prev.next = n.next
	}

	if n == ls.tail {
		ls.tail = prev
	}
	n.next = nil
	ls.size--
	return n
}

func (ls *List[T]) outOfRange(i int) error {
	return fmt.Errorf("%w: index %d with size %d", ErrOutOfRange, i, ls.size)
}

type node[T any] struct {
	val  T
	next *node[T]
}
