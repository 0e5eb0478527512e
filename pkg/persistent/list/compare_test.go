package list

import (
	"strings"
	"testing"

	"src.elv.sh/conslist/pkg/tt"
)

func TestEqual(t *testing.T) {
	tt.Test(t, tt.Fn("Equal", Equal[int]),
		tt.Args(empty, empty).Rets(true),
		tt.Args(Build(1), Build(1)).Rets(true),
		tt.Args(l123, Build(1, 2, 3)).Rets(true),
		tt.Args(empty, Build(1)).Rets(false),
		tt.Args(Build(1), empty).Rets(false),
		tt.Args(Build(1), Build(2)).Rets(false),
		tt.Args(l123, Build(1, 2)).Rets(false),
		tt.Args(l123, Build(1, 5, 3)).Rets(false),
	)
}

func TestEqualFunc(t *testing.T) {
	tt.Test(t, tt.Fn("EqualFunc", EqualFunc[string, string]),
		tt.Args(Build("a", "B"), Build("A", "b"), strings.EqualFold).Rets(true),
		tt.Args(Build("a", "B"), Build("A", "c"), strings.EqualFold).Rets(false),
	)
	tt.Test(t, tt.Fn("EqualFunc", EqualFunc[List[int], List[int]]),
		tt.Args(Build(empty), Build(empty), Equal[int]).Rets(true),
		tt.Args(TailList(l123), Build(Build(2, 3)), Equal[int]).Rets(true),
		tt.Args(TailList(l123), Build(Build(2)), Equal[int]).Rets(false),
		tt.Args(Build(empty), Build(empty, empty), Equal[int]).Rets(false),
	)
}

func TestEqual_SharedStructure(t *testing.T) {
	// Lists built separately are equal, but not identical.
	a, b := Build(1, 2), Build(1, 2)
	if a == b {
		t.Errorf("separately built lists are identical")
	}
	if !Equal(a, b) {
		t.Errorf("Equal(%v, %v) = false", a, b)
	}
}

func TestIsPrefix(t *testing.T) {
	tt.Test(t, tt.Fn("IsPrefix", IsPrefix[int]),
		tt.Args(empty, empty).Rets(true),
		tt.Args(empty, Build(1)).Rets(true),
		tt.Args(Build(1), Build(1)).Rets(true),
		tt.Args(Build(1), empty).Rets(false),
		tt.Args(Build(1), Build(1, 1)).Rets(true),
		tt.Args(Build(1, 1), Build(1)).Rets(false),
		tt.Args(Build(1), Build(2)).Rets(false),
		tt.Args(Build(2), Build(1)).Rets(false),
		tt.Args(Build(1, 2), l123).Rets(true),
		tt.Args(Build(1, 3), l123).Rets(false),
	)
}

func TestIsPrefixFunc(t *testing.T) {
	tt.Test(t, tt.Fn("IsPrefixFunc", IsPrefixFunc[string, string]),
		tt.Args(Build("a"), Build("A", "b"), strings.EqualFold).Rets(true),
		tt.Args(Build("b"), Build("A", "b"), strings.EqualFold).Rets(false),
	)
}

func TestCompare(t *testing.T) {
	tt.Test(t, tt.Fn("Compare", Compare[int]),
		tt.Args(empty, empty).Rets(0),
		tt.Args(empty, Build(1)).Rets(-1),
		tt.Args(Build(1), empty).Rets(1),
		tt.Args(Build(1), Build(1)).Rets(0),
		tt.Args(Build(1), Build(2)).Rets(-1),
		tt.Args(Build(2), Build(1)).Rets(1),
		tt.Args(Build(1), Build(1, 1)).Rets(-1),
		tt.Args(Build(1, 1), Build(1)).Rets(1),
		tt.Args(Build(1, 5), Build(2)).Rets(-1),
		tt.Args(l123, Build(1, 2, 4)).Rets(-1),
	)
	tt.Test(t, tt.Fn("Compare", Compare[string]),
		tt.Args(Build("a", "b"), Build("a", "c")).Rets(-1),
		tt.Args(Build("b"), Build("a", "z")).Rets(1),
	)
}

func TestLessEq(t *testing.T) {
	tt.Test(t, tt.Fn("LessEq", LessEq[int]),
		tt.Args(empty, empty).Rets(true),
		tt.Args(Build(1), Build(1)).Rets(true),
		tt.Args(empty, Build(1)).Rets(true),
		tt.Args(Build(1), empty).Rets(false),
		tt.Args(Build(1), Build(2)).Rets(true),
		tt.Args(Build(2), Build(1)).Rets(false),
		tt.Args(Build(1), Build(1, 1)).Rets(true),
		tt.Args(Build(1, 1), Build(1)).Rets(false),
	)
}

func TestLessEqFunc(t *testing.T) {
	byLength := func(a, b string) int { return len(a) - len(b) }
	tt.Test(t, tt.Fn("LessEqFunc", LessEqFunc[string, string]),
		tt.Args(Build("zz"), Build("aaa"), byLength).Rets(true),
		tt.Args(Build("zzz"), Build("aa"), byLength).Rets(false),
		tt.Args(Build("zz", "b"), Build("aa", "a"), byLength).Rets(true),
	)
}
