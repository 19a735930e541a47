package xgxdiag

import (
	"errors"
	"testing"
)

func TestJoin_Shapes(t *testing.T) {
	t.Parallel()

	if Join() != nil || Join(nil, nil) != nil {
		t.Fatal("join of nothing should be nil")
	}

	a := errors.New("a")
	if Join(nil, a, nil) != a {
		t.Fatal("join of one error should return it unchanged")
	}

	b := errors.New("b")
	j := Join(a, nil, b)
	if j.Error() != "a\nb" {
		t.Fatalf("Error(): %q", j.Error())
	}
	if !errors.Is(j, a) || !errors.Is(j, b) {
		t.Fatal("children should stay reachable")
	}
	u, ok := j.(interface{ Unwrap() []error })
	if !ok || len(u.Unwrap()) != 2 {
		t.Fatal("nil children should be dropped")
	}
}

func TestJoin_FlattensBatches(t *testing.T) {
	t.Parallel()

	a, b, c := errors.New("a"), errors.New("b"), errors.New("c")
	j := Join(Join(a, b), nil, c)
	bt, ok := j.(*batch)
	if !ok || bt.Len() != 3 {
		t.Fatalf("want a flat batch of 3; got %#v", j)
	}
	for i, want := range []error{a, b, c} {
		if bt.Unwrap()[i] != want {
			t.Fatalf("member %d: want=%v got=%v", i, want, bt.Unwrap()[i])
		}
	}
}
