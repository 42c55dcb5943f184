package anim

import "testing"

func TestTogether(t *testing.T) {
	a, b := &heldEffect{}, &heldEffect{}
	done := 0
	Together(a, b).Start(func() { done++ })

	a.done()
	a.done()
	if done != 0 {
		t.Fatal("completed before every child finished")
	}
	b.done()
	if done != 1 {
		t.Fatalf("done called %d times, want 1", done)
	}
}

func TestTogetherEmpty(t *testing.T) {
	done := false
	Together().Start(func() { done = true })
	if !done {
		t.Error("empty group must complete immediately")
	}
}

func TestTogetherCancel(t *testing.T) {
	a, b := &heldEffect{}, &heldEffect{}
	done := false
	e := Together(a, b)
	e.Start(func() { done = true })
	e.Cancel()
	a.done()
	b.done()
	if done || !a.cancelled || !b.cancelled {
		t.Errorf("done=%v cancelled=%v,%v", done, a.cancelled, b.cancelled)
	}
}

func TestThen(t *testing.T) {
	var order []string
	inner := &heldEffect{}
	e := Then(inner, func() { order = append(order, "fn") })
	e.Start(func() { order = append(order, "done") })
	if len(order) != 0 {
		t.Fatal("ran before the inner effect completed")
	}
	inner.done()
	if len(order) != 2 || order[0] != "fn" || order[1] != "done" {
		t.Errorf("order %v", order)
	}

	cancelled := &heldEffect{}
	ran := false
	c := Then(cancelled, func() { ran = true })
	c.Start(func() {})
	c.Cancel()
	cancelled.done()
	if ran {
		t.Error("callback ran after Cancel")
	}
}
