package deque

import (
	"errors"
	"iter"
	"reflect"
)

// Deque is a double-ended queue backed by a single resizing ring buffer. It
// supports pushing and popping at both ends in constant amortized time, with
// worst-case constant Len and Empty.
//
// To create a Deque instance, use MakeDeque(). nil Deques panic when called,
// except for Len. Creating a Deque in the following way is wrong:
//
//	var deque Deque[string] // wrong
//
// The buffer length is always a power of two. A push that would overflow the
// buffer reallocates to twice the size; a pop that leaves the Deque at one
// quarter occupancy reallocates to half the size, never below the initial
// capacity of 2. head and tail are virtual cursors over an unbounded index
// space; every reallocation rebases them, so they never drift far from zero.
type Deque[T any] struct {
	buf              []T
	head, tail, mask uint
}

const minCapacity = 2

// MakeDeque allocates an empty Deque with the minimum capacity.
func MakeDeque[T any]() *Deque[T] {
	return &Deque[T]{buf: make([]T, minCapacity), mask: minCapacity - 1}
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return int(d.len())
}
func (d *Deque[T]) len() uint { return d.tail - d.head }

// Empty returns whether the Deque is empty.
func (d *Deque[T]) Empty() bool { return d.tail == d.head }

// PushFront puts t at the front of the Deque, growing the buffer if it is
// full. It returns ErrNilElement if t is a nil reference, since a nil element
// would be indistinguishable from a vacant slot.
func (d *Deque[T]) PushFront(t T) error {
	if isNil(t) {
		return ErrNilElement
	}
	if d.len() == d.cap() {
		d.resize(d.cap() << 1)
	}
	d.head--
	d.buf[d.head&d.mask] = t
	return nil
}

// PushBack puts t at the back of the Deque, growing the buffer if it is full.
// It returns ErrNilElement if t is a nil reference. Use PushBack with PopFront
// for FIFO ordering, or with PopBack for LIFO ordering.
func (d *Deque[T]) PushBack(t T) error {
	if isNil(t) {
		return ErrNilElement
	}
	if d.len() == d.cap() {
		d.resize(d.cap() << 1)
	}
	d.buf[d.tail&d.mask] = t
	d.tail++
	return nil
}

// PopFront removes the first element in the Deque and returns it, or
// ErrUnderflow if the Deque is empty. The vacated slot is zeroed so that
// references held by the element become collectable, and the buffer is shrunk
// once occupancy falls to a quarter of capacity.
func (d *Deque[T]) PopFront() (t T, err error) {
	if d.Empty() {
		return t, ErrUnderflow
	}
	var zero T
	slot := d.head & d.mask
	t = d.buf[slot]
	d.buf[slot] = zero
	d.head++
	d.shrinkIfSparse()
	return t, nil
}

// PopBack removes the last element in the Deque and returns it, or
// ErrUnderflow if the Deque is empty. Zeroing and shrinking behave as in
// PopFront.
func (d *Deque[T]) PopBack() (t T, err error) {
	if d.Empty() {
		return t, ErrUnderflow
	}
	var zero T
	d.tail--
	slot := d.tail & d.mask
	t = d.buf[slot]
	d.buf[slot] = zero
	d.shrinkIfSparse()
	return t, nil
}

// Iter returns an iterator over the elements in front-to-back order, the
// order repeated PopFront calls would produce, without mutating the Deque.
// The cursor and length are captured when Iter is called; pushing or popping
// while a traversal is in progress leaves that traversal's output
// unspecified. Call Iter again for a fresh traversal.
func (d *Deque[T]) Iter() iter.Seq[T] {
	head, n := d.head, d.len()
	return func(yield func(T) bool) {
		for i := range n {
			if !yield(d.buf[(head+i)&d.mask]) {
				return
			}
		}
	}
}

/*****************************************************************************
 * RESIZING
 *****************************************************************************/

func (d *Deque[T]) cap() uint { return uint(len(d.buf)) }

// resize reallocates the buffer to newCap, which callers guarantee is a power
// of two no smaller than the element count. Elements are copied in
// front-to-back order and the cursors rebased to 0 and len.
func (d *Deque[T]) resize(newCap uint) {
	n := d.len()
	newBuf := make([]T, newCap)
	for i := range n {
		newBuf[i] = d.buf[(d.head+i)&d.mask]
	}
	d.buf = newBuf
	d.head = 0
	d.tail = n
	d.mask = newCap - 1
}

// shrinkIfSparse halves capacity when a pop has left the Deque non-empty at
// exactly quarter occupancy. At minCapacity the quarter mark is zero, which
// the emptiness check already excludes, so capacity never drops below 2.
func (d *Deque[T]) shrinkIfSparse() {
	if d.Empty() || d.len() != d.cap()>>2 {
		return
	}
	if newCap := d.cap() >> 1; newCap >= minCapacity {
		d.resize(newCap)
	}
}

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrUnderflow is returned when popping from an empty Deque.
var ErrUnderflow = errors.New("pop from empty deque")

// ErrNilElement is returned when pushing a nil reference as an element.
var ErrNilElement = errors.New("nil element")

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

// isNil reports whether v boxes a nil reference: an untyped nil, or a typed
// nil pointer, map, slice, func, or channel. Zero values of non-reference
// types are ordinary elements and are never rejected.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
