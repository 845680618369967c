package wm

import (
	"math/rand/v2"
	"testing"

	"github.com/wundara/folio-desktop/internal/model"
)

func openText(r *Registry, id string) model.WindowEntry {
	return r.Open(id, id, model.TextContent{Body: id}, model.NewPoint(100, 80), nil)
}

func TestStackCounter(t *testing.T) {
	c := NewStackCounter(100)
	if c.Current() != 100 {
		t.Errorf("Current() = %d, expected 100", c.Current())
	}
	for want := 101; want <= 105; want++ {
		if got := c.Next(); got != want {
			t.Errorf("Next() = %d, expected %d", got, want)
		}
	}
}

func TestRegistry_OpenIsIdempotent(t *testing.T) {
	r := NewRegistry(NewStackCounter(0))

	first := openText(r, "about")
	second := r.Open("about", "other title", model.TextContent{Body: "x"}, model.NewPoint(5, 5), nil)

	if r.Len() != 1 {
		t.Fatalf("expected exactly one entry, got %d", r.Len())
	}
	if second.StackOrder <= first.StackOrder {
		t.Errorf("second open should focus: %d <= %d", second.StackOrder, first.StackOrder)
	}
	if second.Title != "about" || second.Position != first.Position {
		t.Errorf("second open must not replace the entry, got %+v", second)
	}
}

func TestRegistry_ScenarioABC(t *testing.T) {
	counter := NewStackCounter(40)
	r := NewRegistry(counter)
	n := counter.Current()

	openText(r, "A")
	openText(r, "B")
	openText(r, "C")

	for i, id := range []string{"A", "B", "C"} {
		e, _ := r.Get(id)
		if e.StackOrder != n+i+1 {
			t.Errorf("%s stack order = %d, expected %d", id, e.StackOrder, n+i+1)
		}
	}

	openText(r, "A")

	expected := map[string]int{"A": n + 4, "B": n + 2, "C": n + 3}
	for id, want := range expected {
		e, _ := r.Get(id)
		if e.StackOrder != want {
			t.Errorf("%s stack order = %d, expected %d", id, e.StackOrder, want)
		}
	}

	ordered := r.Ordered()
	if ordered[0].ID != "B" || ordered[1].ID != "C" || ordered[2].ID != "A" {
		t.Errorf("paint order = %s,%s,%s, expected B,C,A", ordered[0].ID, ordered[1].ID, ordered[2].ID)
	}
	if front, _ := r.Front(); front.ID != "A" {
		t.Errorf("Front() = %s, expected A", front.ID)
	}
}

func TestRegistry_StackOrdersDistinctAndOrdered(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	ids := []string{"a", "b", "c", "d", "e"}
	r := NewRegistry(nil)

	last := 0
	for i := 0; i < 500; i++ {
		id := ids[rng.IntN(len(ids))]
		var got int
		if rng.IntN(2) == 0 || !r.Has(id) {
			got = openText(r, id).StackOrder
		} else {
			r.Focus(id)
			e, _ := r.Get(id)
			got = e.StackOrder
		}
		if got <= last {
			t.Fatalf("call %d: stack order %d not greater than previous %d", i, got, last)
		}
		last = got

		seen := map[int]bool{}
		for _, e := range r.Ordered() {
			if seen[e.StackOrder] {
				t.Fatalf("duplicate stack order %d", e.StackOrder)
			}
			seen[e.StackOrder] = true
		}
	}
}

func TestRegistry_CloseThenReopen(t *testing.T) {
	r := NewRegistry(NewStackCounter(100))

	first := openText(r, "work")
	openText(r, "other")
	r.Focus("work")
	focused, _ := r.Get("work")

	if !r.Close("work") {
		t.Fatal("Close should report removal")
	}
	if r.Has("work") {
		t.Fatal("entry should be gone")
	}

	reopened := openText(r, "work")
	if reopened.StackOrder <= focused.StackOrder || reopened.StackOrder <= first.StackOrder {
		t.Errorf("reopened order %d should exceed every prior value (%d, %d)",
			reopened.StackOrder, first.StackOrder, focused.StackOrder)
	}
}

func TestRegistry_AbsentIDsAreNoOps(t *testing.T) {
	counter := NewStackCounter(10)
	r := NewRegistry(counter)

	if r.Focus("ghost") {
		t.Error("Focus on absent id should report false")
	}
	if counter.Current() != 10 {
		t.Errorf("Focus on absent id consumed a stack order: %d", counter.Current())
	}
	if r.Close("ghost") {
		t.Error("Close on absent id should report false")
	}
	if r.Reposition("ghost", model.NewPoint(1, 1)) {
		t.Error("Reposition on absent id should report false")
	}
	if r.Resize("ghost", model.NewSize(1, 1)) {
		t.Error("Resize on absent id should report false")
	}
	if _, ok := r.Front(); ok {
		t.Error("empty registry has no front window")
	}
}

func TestRegistry_SeparateCountersNeverCollide(t *testing.T) {
	r1 := NewRegistry(NewStackCounter(0))
	r2 := NewRegistry(NewStackCounter(0))

	openText(r1, "a")
	openText(r1, "b")
	e := openText(r2, "a")

	if e.StackOrder != 1 {
		t.Errorf("second registry should start from its own counter, got %d", e.StackOrder)
	}
}

func TestRegistry_RepositionAndResize(t *testing.T) {
	r := NewRegistry(nil)
	size := model.NewSize(640, 360)
	r.Open("img", "Cat", model.ImageContent{Src: "/cat.png"}, model.NewPoint(10, 30), &size)

	size.Width = 1 // caller's copy must not alias the entry
	e, _ := r.Get("img")
	if e.Size == nil || e.Size.Width != 640 {
		t.Fatalf("size = %v, expected 640x360", e.Size)
	}

	r.Reposition("img", model.NewPoint(200, 300))
	r.Resize("img", model.NewSize(300, 200))
	e, _ = r.Get("img")
	if e.Position != model.NewPoint(200, 300) {
		t.Errorf("position = %v", e.Position)
	}
	if *e.Size != model.NewSize(300, 200) {
		t.Errorf("size = %v", *e.Size)
	}
}

func TestRegistry_UpdateCallback(t *testing.T) {
	r := NewRegistry(nil)
	var changes []ChangeType
	r.SetUpdateCallback(func(c Change) {
		changes = append(changes, c.Type)
	})

	openText(r, "a")
	openText(r, "a")
	r.Reposition("a", model.NewPoint(0, 30))
	r.Resize("a", model.NewSize(200, 200))
	r.Close("a")
	r.Close("a")

	expected := []ChangeType{ChangeOpened, ChangeFocused, ChangeMoved, ChangeResized, ChangeClosed}
	if len(changes) != len(expected) {
		t.Fatalf("got %d changes %v, expected %v", len(changes), changes, expected)
	}
	for i := range expected {
		if changes[i] != expected[i] {
			t.Errorf("change %d = %s, expected %s", i, changes[i], expected[i])
		}
	}
}
