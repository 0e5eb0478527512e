// Package list implements persistent singly-linked lists.
//
// A List is either empty or a head element followed by another List. Lists
// are immutable: every operation that "modifies" a list returns a new one,
// sharing as much of the original structure as possible. This makes lists
// safe for concurrent reads without locking, provided the elements are.
//
// Since the == operator on two List values only compares the identity of the
// underlying structure, use Equal or EqualFunc to compare lists by content.
package list

import (
	"fmt"
	"strings"
)

// List is a persistent list of values of type T. The zero value is a valid
// empty list.
type List[T any] struct {
	first *cell[T]
}

// cell is a cons cell. Cells are never modified after construction.
type cell[T any] struct {
	head T
	rest *cell[T]
	// Number of elements in the list starting at this cell.
	count int
}

// Empty returns an empty list. It is the same as the zero value of List[T].
func Empty[T any]() List[T] {
	return List[T]{}
}

// Build returns a list containing the given elements in order. The first
// argument becomes the head.
func Build[T any](elems ...T) List[T] {
	return prependAll(elems, List[T]{})
}

// FromSlice is like Build, but takes a slice. The slice may be modified after
// FromSlice returns without affecting the list.
func FromSlice[T any](s []T) List[T] {
	return prependAll(s, List[T]{})
}

// Cons returns a new list with head in front of tail. The result shares tail.
func Cons[T any](head T, tail List[T]) List[T] {
	return List[T]{&cell[T]{head, tail.first, tail.Len() + 1}}
}

// Cons returns a new list with an additional value in the front.
func (l List[T]) Cons(v T) List[T] {
	return Cons(v, l)
}

// prependAll returns a list made of elems followed by tail.
func prependAll[T any](elems []T, tail List[T]) List[T] {
	for i := len(elems) - 1; i >= 0; i-- {
		tail = Cons(elems[i], tail)
	}
	return tail
}

// IsEmpty returns whether the list is empty.
func (l List[T]) IsEmpty() bool {
	return l.first == nil
}

// Len returns the number of elements in the list. It runs in constant time.
func (l List[T]) Len() int {
	if l.first == nil {
		return 0
	}
	return l.first.count
}

// Head returns the first element of the list. The second return value is
// false if the list is empty, in which case the first is the zero value of T.
func (l List[T]) Head() (T, bool) {
	if l.first == nil {
		var zero T
		return zero, false
	}
	return l.first.head, true
}

// Tail returns the list after the first element. The tail of an empty list is
// empty.
func (l List[T]) Tail() List[T] {
	if l.first == nil {
		return l
	}
	return List[T]{l.first.rest}
}

// HeadList returns a list containing just the first element of l, or an empty
// list if l is empty.
func (l List[T]) HeadList() List[T] {
	if l.first == nil {
		return l
	}
	return Build(l.first.head)
}

// HeadOrElse returns the first element of l, or dflt if l is empty.
func (l List[T]) HeadOrElse(dflt T) T {
	if l.first == nil {
		return dflt
	}
	return l.first.head
}

// TailList returns a list whose only element is the tail of l, or an empty
// list if l is empty. For example, the TailList of [1, 2, 3] is [[2, 3]].
func TailList[T any](l List[T]) List[List[T]] {
	if l.IsEmpty() {
		return List[List[T]]{}
	}
	return Build(l.Tail())
}

// Match deconstructs l. If l is empty, it returns dflt; otherwise it returns
// the result of calling f with the head and tail of l.
func Match[T, R any](l List[T], dflt R, f func(head T, tail List[T]) R) R {
	if l.first == nil {
		return dflt
	}
	return f(l.first.head, List[T]{l.first.rest})
}

// MatchFunc is like Match, but the value for the empty case is computed by
// calling dflt, which is only called when l is empty.
func MatchFunc[T, R any](l List[T], dflt func() R, f func(head T, tail List[T]) R) R {
	if l.first == nil {
		return dflt()
	}
	return f(l.first.head, List[T]{l.first.rest})
}

// Each calls f with each element of l in order.
func (l List[T]) Each(f func(T)) {
	for c := l.first; c != nil; c = c.rest {
		f(c.head)
	}
}

// ToSlice returns a new slice containing the elements of l in order. The
// result is never nil.
func (l List[T]) ToSlice() []T {
	s := make([]T, 0, l.Len())
	for c := l.first; c != nil; c = c.rest {
		s = append(s, c.head)
	}
	return s
}

// String returns the elements of l in brackets, separated by ", ". Each
// element is formatted with fmt.Sprint.
func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for c := l.first; c != nil; c = c.rest {
		if c != l.first {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, c.head)
	}
	sb.WriteByte(']')
	return sb.String()
}
