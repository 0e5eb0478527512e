package main

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
	"src.elv.sh/conslist/pkg/persistent/list"
)

// input holds the raw documents an operation works on. Decoding is left to
// the operation, since operations differ in the shape of list they expect.
type input struct {
	src  []byte
	with []byte
	n    int
}

func decode[T any](what string, data []byte) (list.List[T], error) {
	var l list.List[T]
	if err := yaml.Unmarshal(data, &l); err != nil {
		return l, fmt.Errorf("decode %s: %w", what, err)
	}
	return l, nil
}

func (in *input) list() (list.List[int], error) { return decode[int]("input", in.src) }

func (in *input) nested() (list.List[list.List[int]], error) {
	return decode[list.List[int]]("input", in.src)
}

func (in *input) lists() (list.List[int], list.List[int], error) {
	l, err := in.list()
	if err != nil {
		return l, l, err
	}
	other, err := decode[int]("-with", in.with)
	return l, other, err
}

type op struct {
	desc   string
	binary bool
	run    func(*input) (any, error)
}

func unary(desc string, f func(l list.List[int], n int) any) op {
	return op{desc: desc, run: func(in *input) (any, error) {
		l, err := in.list()
		if err != nil {
			return nil, err
		}
		return f(l, in.n), nil
	}}
}

func binary(desc string, f func(a, b list.List[int]) any) op {
	return op{desc: desc, binary: true, run: func(in *input) (any, error) {
		a, b, err := in.lists()
		if err != nil {
			return nil, err
		}
		return f(a, b), nil
	}}
}

func isEven(x int) bool { return x%2 == 0 }

func add(x, y int) int { return x + y }

var ops = map[string]op{
	"show":    unary("print the list", func(l list.List[int], _ int) any { return l }),
	"len":     unary("print the number of elements", func(l list.List[int], _ int) any { return l.Len() }),
	"reverse": unary("reverse the list", func(l list.List[int], _ int) any { return l.Reverse() }),
	"head":    unary("the first element as a list", func(l list.List[int], _ int) any { return l.HeadList() }),
	"tail":    unary("the rest of the list, wrapped in a list", func(l list.List[int], _ int) any { return list.TailList(l) }),
	"take":    unary("the first -n elements", func(l list.List[int], n int) any { return l.Take(n) }),
	"drop":    unary("all but the first -n elements", func(l list.List[int], n int) any { return l.Drop(n) }),
	"evens":   unary("keep even elements", func(l list.List[int], _ int) any { return l.Keep(isEven) }),
	"odds":    unary("discard even elements", func(l list.List[int], _ int) any { return l.Discard(isEven) }),
	"sum":     unary("add up the elements", func(l list.List[int], _ int) any { return list.Foldl(l, 0, add) }),

	"flatten": {desc: "concatenate a list of lists", run: func(in *input) (any, error) {
		l, err := in.nested()
		if err != nil {
			return nil, err
		}
		return list.Flatten(l), nil
	}},

	"append":  binary("append the -with list", func(a, b list.List[int]) any { return a.Append(b) }),
	"zip":     binary("add elements pairwise with the -with list", func(a, b list.List[int]) any { return list.ZipWith(a, b, add) }),
	"equal":   binary("whether the list equals the -with list", func(a, b list.List[int]) any { return list.Equal(a, b) }),
	"compare": binary("compare with the -with list, giving -1, 0 or 1", func(a, b list.List[int]) any { return list.Compare(a, b) }),
	"prefix":  binary("whether the list is a prefix of the -with list", func(a, b list.List[int]) any { return list.IsPrefix(a, b) }),
}

func opNames() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
