package list

import "cmp"

// Equal returns whether a and b have the same length and equal elements at
// every position.
func Equal[T comparable](a, b List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but uses eq to compare elements. Nested lists can
// be compared by passing Equal or another EqualFunc as eq.
func EqualFunc[T, U any](a List[T], b List[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	ca, cb := a.first, b.first
	for ca != nil {
		if !eq(ca.head, cb.head) {
			return false
		}
		ca, cb = ca.rest, cb.rest
	}
	return true
}

// IsPrefix returns whether a is a prefix of b, that is, whether b starts with
// all the elements of a in the same order. The empty list is a prefix of every
// list.
func IsPrefix[T comparable](a, b List[T]) bool {
	return IsPrefixFunc(a, b, func(x, y T) bool { return x == y })
}

// IsPrefixFunc is like IsPrefix, but uses eq to compare elements.
func IsPrefixFunc[T, U any](a List[T], b List[U], eq func(T, U) bool) bool {
	if a.Len() > b.Len() {
		return false
	}
	for ca, cb := a.first, b.first; ca != nil; ca, cb = ca.rest, cb.rest {
		if !eq(ca.head, cb.head) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically. Elements are compared in
// order with cmp.Compare, and the first unequal pair decides the result. If
// one list is a prefix of the other, the shorter list is the smaller one. The
// result is -1 if a < b, 0 if a == b and +1 if a > b.
func Compare[T cmp.Ordered](a, b List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare, but uses f to compare elements. The function f
// should return a negative number, zero or a positive number when its first
// argument is respectively smaller than, equal to or greater than its second.
func CompareFunc[T, U any](a List[T], b List[U], f func(T, U) int) int {
	ca, cb := a.first, b.first
	for ca != nil && cb != nil {
		if c := f(ca.head, cb.head); c != 0 {
			return c
		}
		ca, cb = ca.rest, cb.rest
	}
	switch {
	case ca == nil && cb == nil:
		return 0
	case ca == nil:
		return -1
	default:
		return +1
	}
}

// LessEq returns whether a <= b in the order defined by Compare. Unequal heads
// are ordered by value, so [1] <= [2]; use IsPrefix for the relation where a
// list is only <= another list that starts with all of its elements.
func LessEq[T cmp.Ordered](a, b List[T]) bool {
	return Compare(a, b) <= 0
}

// LessEqFunc returns whether a <= b in the order defined by CompareFunc.
func LessEqFunc[T, U any](a List[T], b List[U], f func(T, U) int) bool {
	return CompareFunc(a, b, f) <= 0
}
