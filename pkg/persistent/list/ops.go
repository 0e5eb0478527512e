package list

// Callbacks passed to the functions in this file are called in list order.
// None of them is called more than once per element, and the quantifiers and
// the *While functions stop calling as soon as the result is known.

// Append returns a list of the elements of l followed by those of other. The
// result shares other.
func (l List[T]) Append(other List[T]) List[T] {
	if l.IsEmpty() {
		return other
	}
	return prependAll(l.ToSlice(), other)
}

// All returns whether every element of l satisfies p. It is true for an empty
// list.
func (l List[T]) All(p func(T) bool) bool {
	for c := l.first; c != nil; c = c.rest {
		if !p(c.head) {
			return false
		}
	}
	return true
}

// Any returns whether at least one element of l satisfies p. It is false for
// an empty list.
func (l List[T]) Any(p func(T) bool) bool {
	for c := l.first; c != nil; c = c.rest {
		if p(c.head) {
			return true
		}
	}
	return false
}

// Keep returns a list of the elements of l that satisfy p, in their original
// order.
func (l List[T]) Keep(p func(T) bool) List[T] {
	return l.filter(p, true)
}

// Discard returns a list of the elements of l that don't satisfy p, in their
// original order.
func (l List[T]) Discard(p func(T) bool) List[T] {
	return l.filter(p, false)
}

func (l List[T]) filter(p func(T) bool, want bool) List[T] {
	var kept []T
	// The longest suffix of l consisting entirely of kept elements can be
	// shared with the result.
	var shared *cell[T]
	for c := l.first; c != nil; c = c.rest {
		if p(c.head) == want {
			if shared == nil {
				shared = c
			}
			kept = append(kept, c.head)
		} else {
			shared = nil
		}
	}
	if shared == nil {
		return FromSlice(kept)
	}
	return prependAll(kept[:len(kept)-shared.count], List[T]{shared})
}

// Reverse returns a list of the elements of l in reverse order.
func (l List[T]) Reverse() List[T] {
	var r List[T]
	for c := l.first; c != nil; c = c.rest {
		r = Cons(c.head, r)
	}
	return r
}

// DiscardFirst returns l without its first element that satisfies p. If no
// element satisfies p, it returns l.
func (l List[T]) DiscardFirst(p func(T) bool) List[T] {
	var before []T
	for c := l.first; c != nil; c = c.rest {
		if p(c.head) {
			return prependAll(before, List[T]{c.rest})
		}
		before = append(before, c.head)
	}
	return l
}

// TakeWhile returns the longest prefix of l whose elements all satisfy p.
func (l List[T]) TakeWhile(p func(T) bool) List[T] {
	var taken []T
	for c := l.first; c != nil && p(c.head); c = c.rest {
		taken = append(taken, c.head)
	}
	if len(taken) == l.Len() {
		return l
	}
	return FromSlice(taken)
}

// DropWhile returns the suffix of l that is left after removing the longest
// prefix whose elements all satisfy p.
func (l List[T]) DropWhile(p func(T) bool) List[T] {
	c := l.first
	for c != nil && p(c.head) {
		c = c.rest
	}
	return List[T]{c}
}

// Take returns a list of the first n elements of l. If n exceeds the length of
// l, it returns l; if n <= 0, it returns an empty list.
func (l List[T]) Take(n int) List[T] {
	if n >= l.Len() {
		return l
	}
	if n <= 0 {
		return List[T]{}
	}
	taken := make([]T, 0, n)
	for c := l.first; len(taken) < n; c = c.rest {
		taken = append(taken, c.head)
	}
	return FromSlice(taken)
}

// Drop returns l without its first n elements. If n exceeds the length of l,
// it returns an empty list; if n <= 0, it returns l.
func (l List[T]) Drop(n int) List[T] {
	c := l.first
	for ; c != nil && n > 0; n-- {
		c = c.rest
	}
	return List[T]{c}
}

// Map returns a list of the results of calling f on each element of l.
func Map[T, U any](l List[T], f func(T) U) List[U] {
	mapped := make([]U, 0, l.Len())
	for c := l.first; c != nil; c = c.rest {
		mapped = append(mapped, f(c.head))
	}
	return FromSlice(mapped)
}

// FlatMap calls f on each element of l and concatenates the resulting lists.
// It is equivalent to Flatten(Map(l, f)).
func FlatMap[T, U any](l List[T], f func(T) List[U]) List[U] {
	return Flatten(Map(l, f))
}

// Flatten concatenates the lists contained in l. It removes exactly one level
// of nesting.
func Flatten[T any](l List[List[T]]) List[T] {
	// Build from the back so that the last inner list is shared.
	inner := l.Reverse()
	var flat List[T]
	for c := inner.first; c != nil; c = c.rest {
		flat = c.head.Append(flat)
	}
	return flat
}

// ZipWith returns a list of the results of calling f on corresponding
// elements of a and b. The result is as long as the shorter of a and b.
func ZipWith[A, B, C any](a List[A], b List[B], f func(A, B) C) List[C] {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	zipped := make([]C, 0, n)
	for ca, cb := a.first, b.first; ca != nil && cb != nil; ca, cb = ca.rest, cb.rest {
		zipped = append(zipped, f(ca.head, cb.head))
	}
	return FromSlice(zipped)
}

// Foldl folds l from the left, calling f with the accumulated value and each
// element in turn, starting with init.
func Foldl[T, A any](l List[T], init A, f func(acc A, elem T) A) A {
	acc := init
	for c := l.first; c != nil; c = c.rest {
		acc = f(acc, c.head)
	}
	return acc
}
