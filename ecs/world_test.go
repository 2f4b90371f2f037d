package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/aoewarnings/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if w.Len() != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, w.Len())
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false the second time")
				}
				if w.Len() != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, w.Len())
				}
			}
		})
	}
}

func TestWorldReusesSlotsWithNewGeneration(t *testing.T) {
	w := NewWorld()
	old := w.CreateEntity()
	w.DestroyEntity(old)

	reused := w.CreateEntity()
	if reused.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), reused.id())
	}
	if reused == old {
		t.Fatalf("reused entity must carry a new generation")
	}
	if w.IsAlive(old) {
		t.Fatalf("stale handle must not be alive")
	}
	if !w.IsAlive(reused) {
		t.Fatalf("reused handle should be alive")
	}
}

func TestZeroEntityIsNeverAlive(t *testing.T) {
	w := NewWorld()
	w.CreateEntity()
	var zero Entity
	if zero.Valid() || w.IsAlive(zero) {
		t.Fatalf("zero entity must not be valid or alive")
	}
}

func TestWorldComponents(t *testing.T) {
	h := component.NewComponent[int]()

	t.Run("add_get_remove", func(t *testing.T) {
		w := NewWorld()
		e := w.CreateEntity()
		if err := Add(w, e, h, 7); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if got, ok := Get(w, e, h); !ok || got != 7 {
			t.Fatalf("expected 7, got %d (ok=%v)", got, ok)
		}
		if err := Add(w, e, h, 9); err != nil {
			t.Fatalf("overwrite failed: %v", err)
		}
		if got, _ := Get(w, e, h); got != 9 {
			t.Fatalf("expected overwritten value 9, got %d", got)
		}
		if !Remove(w, e, h) {
			t.Fatalf("remove should report true")
		}
		if Has(w, e, h) {
			t.Fatalf("component should be gone")
		}
	})

	t.Run("destroy_drops_components", func(t *testing.T) {
		w := NewWorld()
		e := w.CreateEntity()
		_ = Add(w, e, h, 1)
		w.DestroyEntity(e)
		if Count(w, h) != 0 {
			t.Fatalf("expected empty store after destroy, got %d", Count(w, h))
		}
	})

	t.Run("errors", func(t *testing.T) {
		w := NewWorld()
		e := w.CreateEntity()
		w.DestroyEntity(e)
		if err := Add(w, e, h, 1); !errors.Is(err, component.ErrEntityNotAlive) {
			t.Fatalf("expected ErrEntityNotAlive, got %v", err)
		}
		live := w.CreateEntity()
		if err := w.AddComponent(live, 0, 1); !errors.Is(err, component.ErrInvalidComponentKind) {
			t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
		}
		if err := w.AddComponent(live, h.Kind().ID(), nil); !errors.Is(err, component.ErrNilComponent) {
			t.Fatalf("expected ErrNilComponent, got %v", err)
		}
	})
}

func TestForEach(t *testing.T) {
	h := component.NewComponent[int]()

	t.Run("visits_only_carriers", func(t *testing.T) {
		w := NewWorld()
		e1 := w.CreateEntity()
		e2 := w.CreateEntity()
		e3 := w.CreateEntity()
		_ = Add(w, e1, h, 1)
		_ = Add(w, e3, h, 3)

		seen := map[Entity]int{}
		ForEach(w, h, func(e Entity, v *int) { seen[e] = *v })

		if len(seen) != 2 || seen[e1] != 1 || seen[e3] != 3 {
			t.Fatalf("unexpected ForEach result: %v", seen)
		}
		if _, ok := seen[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})

	t.Run("mutation_persists", func(t *testing.T) {
		w := NewWorld()
		e := w.CreateEntity()
		_ = Add(w, e, h, 1)
		ForEach(w, h, func(_ Entity, v *int) { *v = 42 })
		if got, _ := Get(w, e, h); got != 42 {
			t.Fatalf("expected 42, got %d", got)
		}
	})

	t.Run("destroy_while_iterating", func(t *testing.T) {
		cases := []struct {
			name   string
			values []int
			drop   func(v int) bool
			want   int
		}{
			{"drop_all", []int{1, 2, 3, 4}, func(int) bool { return true }, 0},
			{"drop_even", []int{1, 2, 3, 4, 5}, func(v int) bool { return v%2 == 0 }, 3},
			{"drop_first", []int{1, 2, 3}, func(v int) bool { return v == 1 }, 2},
			{"drop_last", []int{1, 2, 3}, func(v int) bool { return v == 3 }, 2},
			{"drop_none", []int{1, 2}, func(int) bool { return false }, 2},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				w := NewWorld()
				for _, v := range c.values {
					_ = Add(w, w.CreateEntity(), h, v)
				}
				visits := map[int]int{}
				ForEach(w, h, func(e Entity, v *int) {
					visits[*v]++
					if c.drop(*v) {
						w.DestroyEntity(e)
					}
				})
				for _, v := range c.values {
					if visits[v] != 1 {
						t.Fatalf("value %d visited %d times", v, visits[v])
					}
				}
				if Count(w, h) != c.want {
					t.Fatalf("expected %d left, got %d", c.want, Count(w, h))
				}
				if w.Len() != c.want {
					t.Fatalf("expected %d live entities, got %d", c.want, w.Len())
				}
			})
		}
	})
}

func TestQuery(t *testing.T) {
	ka := component.NewComponent[int]()
	kb := component.NewComponent[string]()

	w := NewWorld()
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()
	_ = Add(w, e1, ka, 1)
	_ = Add(w, e2, ka, 2)
	_ = Add(w, e2, kb, "two")
	_ = Add(w, e3, kb, "three")

	res := w.Query(ka.Kind().ID(), kb.Kind().ID())
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
	}

	if first, ok := w.First(kb.Kind().ID()); !ok || (first != e2 && first != e3) {
		t.Fatalf("unexpected First result %v (ok=%v)", first, ok)
	}

	unused := component.NewComponent[float64]()
	if res := w.Query(ka.Kind().ID(), unused.Kind().ID()); len(res) != 0 {
		t.Fatalf("expected no results for an empty store, got %v", res)
	}
	if _, ok := w.First(unused.Kind().ID()); ok {
		t.Fatalf("First on an empty store should report false")
	}
}

type countingSystem struct {
	seen int
}

func (s *countingSystem) Update(w *World) {
	s.seen += len(w.Events().Take("ping"))
}

func TestEventsAreDrainedAfterUpdate(t *testing.T) {
	w := NewWorld()
	sys := &countingSystem{}
	w.AddSystem(sys)

	w.Events().Push(Event{Type: "ping"})
	w.Events().Push(Event{Type: "other", Data: 1})
	w.Events().Push(Event{Type: "ping"})

	w.Update()
	if sys.seen != 2 {
		t.Fatalf("expected 2 ping events, got %d", sys.seen)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("expected queue flushed after update, got %d", w.Events().Len())
	}
}

func TestEventQueueTakeKeepsOrder(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: "a", Data: 1})
	q.Push(Event{Type: "b", Data: 2})
	q.Push(Event{Type: "a", Data: 3})
	q.Push(Event{Type: "c", Data: 4})

	taken := q.Take("a")
	if len(taken) != 2 || taken[0].Data != 1 || taken[1].Data != 3 {
		t.Fatalf("unexpected taken events: %v", taken)
	}
	rest := q.Drain()
	if len(rest) != 2 || rest[0].Type != "b" || rest[1].Type != "c" {
		t.Fatalf("unexpected remaining events: %v", rest)
	}
	if q.Len() != 0 {
		t.Fatalf("expected empty queue after drain")
	}
}
