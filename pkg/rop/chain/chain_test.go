package chain

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"testing"

	"github.com/ib-77/tryiter/pkg/rop"
	"github.com/ib-77/tryiter/pkg/rop/core"
	"github.com/ib-77/tryiter/pkg/rop/tryiter"
)

var errNegative = errors.New("negative")

func nonNegative(n int) rop.Result[int] {
	if n < 0 {
		return rop.Fail[int](errNegative)
	}
	return rop.Success(n)
}

func TestMap_ThenCollect(t *testing.T) {
	t.Parallel()
	out := Map(FromValues(1, 2, 3), func(n int) string { return "n:" + strconv.Itoa(n) }).Collect()
	if !out.IsSuccess() || !slices.Equal(out.Result(), []string{"n:1", "n:2", "n:3"}) {
		t.Fatalf("expected [n:1 n:2 n:3], got success=%v val=%v err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestParse_FilterCollect(t *testing.T) {
	t.Parallel()
	out := Parse([]string{"1", "2", "3", "4", "5", "6"}, strconv.Atoi).
		Filter(func(n int) bool { return n > 3 }).
		Collect()
	if !out.IsSuccess() || !slices.Equal(out.Result(), []int{4, 5, 6}) {
		t.Fatalf("expected [4 5 6], got success=%v val=%v err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestThen_ConvertsAndShortCircuits(t *testing.T) {
	t.Parallel()
	wrap := func(err error) error { return fmt.Errorf("validate: %w", err) }

	out := Then(Parse([]string{"4", "-1", "x"}, strconv.Atoi), nonNegative, wrap).Collect()
	if out.IsSuccess() {
		t.Fatalf("expected failure, got %v", out.Result())
	}
	if !errors.Is(out.Err(), errNegative) || out.Err().Error() != "validate: negative" {
		t.Fatalf("expected first failure 'validate: negative', got %v", out.Err())
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	c := ThenTry(FromValues("10", "x", "30"), strconv.Atoi)

	var vals []int
	var errs int
	for v, err := range c.All() {
		if err != nil {
			errs++
			continue
		}
		vals = append(vals, v)
	}
	if !slices.Equal(vals, []int{10, 30}) || errs != 1 {
		t.Fatalf("unexpected vals=%v errs=%d", vals, errs)
	}
}

func TestTakeOkAndFilterOk(t *testing.T) {
	t.Parallel()
	tokens := []string{"1", "2", "three", "4"}

	if got := slices.Collect(Parse(tokens, strconv.Atoi).TakeOk().All()); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("expected [1 2], got %v", got)
	}

	var dropped []error
	got := slices.Collect(Parse(tokens, strconv.Atoi).
		FilterOk(core.WithDiscardHandler(func(err error) { dropped = append(dropped, err) })).All())
	if !slices.Equal(got, []int{1, 2, 4}) || len(dropped) != 1 {
		t.Fatalf("expected [1 2 4] with one dropped error, got %v, %v", got, dropped)
	}
}

func TestBuffer(t *testing.T) {
	t.Parallel()
	res := Map(Parse([]string{"1", "2", "3", "4", "5"}, strconv.Atoi), func(n int) int { return n + 2 }).Buffer()
	if !res.IsSuccess() {
		t.Fatalf("unexpected failure: %v", res.Err())
	}
	if got := slices.Collect(res.Result().All()); !slices.Equal(got, []int{3, 4, 5, 6, 7}) {
		t.Fatalf("expected [3 4 5 6 7], got %v", got)
	}
}

func TestCollectInto(t *testing.T) {
	t.Parallel()
	res := CollectInto(FromValues("a", "b", "a"), tryiter.ToSet[string])
	if !res.IsSuccess() || len(res.Result()) != 2 {
		t.Fatalf("expected a set of 2, got %v", res.Result())
	}
}

func TestStart_WrapsAnyIterator(t *testing.T) {
	t.Parallel()
	inner := FromValues(1, 2)
	c := Start[int](inner)

	r, ok := c.Next()
	if !ok || r.Result() != 1 {
		t.Fatalf("expected 1")
	}
	// a chain is an iterator, so it can be started again
	rest := Start[int](c).Collect()
	if !slices.Equal(rest.Result(), []int{2}) {
		t.Fatalf("expected [2], got %v", rest.Result())
	}
}
