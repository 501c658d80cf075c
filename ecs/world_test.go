package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/pixelcam/ecs/component"
	"github.com/milk9111/pixelcam/zoom"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name      string
		create    int
		destroy   []int
		wantAlive int
		recycle   bool
	}{
		{"single", 1, []int{0}, 0, false},
		{"destroy_middle", 3, []int{1}, 2, false},
		{"none_destroyed", 2, nil, 2, false},
		{"recycle_after_destroy", 2, []int{0}, 2, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			for _, idx := range c.destroy {
				if !DestroyEntity(w, ents[idx]) {
					t.Fatalf("destroy %v: expected true", ents[idx])
				}
				if IsAlive(w, ents[idx]) {
					t.Fatalf("%v still alive after destroy", ents[idx])
				}
			}
			if c.recycle {
				old := ents[c.destroy[0]]
				e := CreateEntity(w)
				if e.id() != old.id() || e.generation() != old.generation()+1 {
					t.Fatalf("expected slot %d at generation %d, got %v", old.id(), old.generation()+1, e)
				}
			}
			if got := len(Entities(w)); got != c.wantAlive {
				t.Fatalf("expected %d live entities, got %d", c.wantAlive, got)
			}
		})
	}
}

func TestEntityHandle(t *testing.T) {
	e := makeEntity(3, 1)
	if e.id() != 3 || e.generation() != 1 {
		t.Fatalf("expected slot 3 generation 1, got %d/%d", e.id(), e.generation())
	}
	if e.String() != "3v1" {
		t.Fatalf("expected 3v1, got %s", e)
	}
	if makeEntity(0, 7).Valid() {
		t.Fatal("a handle without a slot must be invalid")
	}
}

func TestCameraComponentTable(t *testing.T) {
	w := NewWorld()
	cam := CreateEntity(w)
	other := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "camera_scale",
			setup: func() error { return Add(w, cam, component.CameraComponent.Kind(), &component.Camera{Scale: 3}) },
			check: func(t *testing.T) {
				c, ok := Get(w, cam, component.CameraComponent.Kind())
				if !ok || c.Scale != 3 {
					t.Fatalf("expected scale 3, got %+v ok=%v", c, ok)
				}
				if Has(w, other, component.CameraComponent.Kind()) {
					t.Fatal("camera leaked onto another entity")
				}
			},
			teardown: func() bool { return Remove(w, cam, component.CameraComponent.Kind()) },
		},
		{
			name: "zoom_on_both",
			setup: func() error {
				if err := Add(w, cam, component.PixelZoomComponent.Kind(), &component.PixelZoom{Mode: zoom.MustFixed(2)}); err != nil {
					return err
				}
				return Add(w, other, component.PixelZoomComponent.Kind(), &component.PixelZoom{Mode: zoom.MustFitWidth(320)})
			},
			check: func(t *testing.T) {
				a, _ := Get(w, cam, component.PixelZoomComponent.Kind())
				b, _ := Get(w, other, component.PixelZoomComponent.Kind())
				if a == nil || b == nil || a.Mode == b.Mode {
					t.Fatalf("expected distinct modes, got %+v and %+v", a, b)
				}
			},
			teardown: func() bool { return Remove(w, cam, component.PixelZoomComponent.Kind()) },
		},
		{
			name: "replace_viewport",
			setup: func() error {
				if err := Add(w, cam, component.ViewportComponent.Kind(), &component.Viewport{Rect: zoom.Rect{W: 1, H: 1}}); err != nil {
					return err
				}
				return Add(w, cam, component.ViewportComponent.Kind(), &component.Viewport{Rect: zoom.Rect{X: 80, Y: 120, W: 640, H: 360}})
			},
			check: func(t *testing.T) {
				vp, ok := Get(w, cam, component.ViewportComponent.Kind())
				if !ok || vp.Rect.W != 640 {
					t.Fatalf("expected replaced viewport, got %+v", vp)
				}
				if n := w.store(component.ViewportComponent.Kind(), false).Len(); n != 1 {
					t.Fatalf("expected one stored viewport, got %d", n)
				}
			},
			teardown: func() bool { return Remove(w, cam, component.ViewportComponent.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestForEachVariants(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "for_each_skips_missing",
			run: func(t *testing.T) {
				w := NewWorld()
				h := component.NewComponent[int]()
				e1, e2, e3 := CreateEntity(w), CreateEntity(w), CreateEntity(w)
				if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
					t.Fatal(err)
				}

				sum := 0
				ForEach(w, h.Kind(), func(e Entity, v *int) {
					if e == e2 {
						t.Fatalf("did not expect %v", e2)
					}
					sum += *v
				})
				if sum != 4 {
					t.Fatalf("expected sum 4, got %d", sum)
				}
			},
		},
		{
			name: "for_each2_removal_during_iteration",
			run: func(t *testing.T) {
				w := NewWorld()
				cams := make([]Entity, 4)
				for i := range cams {
					cams[i] = CreateEntity(w)
					if err := Add(w, cams[i], component.CameraComponent.Kind(), &component.Camera{}); err != nil {
						t.Fatal(err)
					}
					if err := Add(w, cams[i], component.ViewportComponent.Kind(), &component.Viewport{}); err != nil {
						t.Fatal(err)
					}
				}
				bare := CreateEntity(w)
				if err := Add(w, bare, component.CameraComponent.Kind(), &component.Camera{}); err != nil {
					t.Fatal(err)
				}

				seen := make(map[Entity]int)
				ForEach2(w, component.CameraComponent.Kind(), component.ViewportComponent.Kind(), func(e Entity, _ *component.Camera, _ *component.Viewport) {
					seen[e]++
					// swap-remove moves the last viewport into this slot
					Remove(w, e, component.ViewportComponent.Kind())
				})
				if len(seen) != len(cams) {
					t.Fatalf("expected %d cameras visited, got %v", len(cams), seen)
				}
				for e, n := range seen {
					if n != 1 || e == bare {
						t.Fatalf("unexpected visit %v x%d", e, n)
					}
				}
				if _, ok := w.First(component.ViewportComponent.Kind()); ok {
					t.Fatal("expected every viewport removed")
				}
			},
		},
		{
			name: "for_each2_skips_entity_removed_by_earlier_callback",
			run: func(t *testing.T) {
				w := NewWorld()
				a, b := CreateEntity(w), CreateEntity(w)
				for _, e := range []Entity{a, b} {
					if err := Add(w, e, component.CameraComponent.Kind(), &component.Camera{}); err != nil {
						t.Fatal(err)
					}
					if err := Add(w, e, component.PixelZoomComponent.Kind(), &component.PixelZoom{}); err != nil {
						t.Fatal(err)
					}
				}
				visits := 0
				ForEach2(w, component.CameraComponent.Kind(), component.PixelZoomComponent.Kind(), func(e Entity, _ *component.Camera, _ *component.PixelZoom) {
					visits++
					DestroyEntity(w, a)
					DestroyEntity(w, b)
				})
				if visits != 1 {
					t.Fatalf("expected destroyed entity to be skipped, got %d visits", visits)
				}
			},
		},
		{
			name: "for_each3_intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1, e2, e3 := CreateEntity(w), CreateEntity(w), CreateEntity(w)
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()
				for _, add := range []struct {
					e Entity
					k component.ComponentKind[int]
				}{{e1, ka}, {e2, ka}, {e2, kb}, {e2, kc}, {e3, kb}, {e3, kc}} {
					if err := Add(w, add.e, add.k, intPtr(1)); err != nil {
						t.Fatal(err)
					}
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _, _, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only %v, got %v", e2, res)
				}
			},
		},
		{
			name: "for_each3_ignores_dead_and_missing_stores",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()
				for _, k := range []component.ComponentKind[int]{ka, kb, kc} {
					if err := Add(w, e, k, intPtr(1)); err != nil {
						t.Fatal(err)
					}
				}
				DestroyEntity(w, e)

				calls := 0
				ForEach3(w, ka, kb, kc, func(Entity, *int, *int, *int) { calls++ })
				ForEach3(w, ka, component.NewComponentKind[int](), kc, func(Entity, *int, *int, *int) { calls++ })
				if calls != 0 {
					t.Fatalf("expected no calls, got %d", calls)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestSparseSetGenerations(t *testing.T) {
	old := makeEntity(2, 0)
	fresh := makeEntity(2, 1)
	neighbor := makeEntity(5, 0)

	tests := []struct {
		name string
		run  func(t *testing.T, s *SparseSet)
	}{
		{
			name: "stale_entry_replaced",
			run: func(t *testing.T, s *SparseSet) {
				s.Set(old, "old")
				s.Set(fresh, "fresh")
				if s.Len() != 1 {
					t.Fatalf("expected one entry for the slot, got %d", s.Len())
				}
				if s.Has(old) || s.Get(old) != nil {
					t.Fatal("stale handle must not resolve")
				}
				if got := s.Get(fresh); got != "fresh" {
					t.Fatalf("expected fresh, got %v", got)
				}
				if s.Remove(old) {
					t.Fatal("removing through a stale handle must fail")
				}
			},
		},
		{
			name: "swap_remove_keeps_neighbors",
			run: func(t *testing.T, s *SparseSet) {
				s.Set(fresh, "fresh")
				s.Set(neighbor, "neighbor")
				if !s.Remove(fresh) {
					t.Fatal("expected remove to succeed")
				}
				if got := s.Get(neighbor); got != "neighbor" {
					t.Fatalf("expected neighbor to survive the swap, got %v", got)
				}
				if len(s.Entities()) != 1 || s.Entities()[0] != neighbor {
					t.Fatalf("unexpected dense entities %v", s.Entities())
				}
			},
		},
		{
			name: "zero_handle_ignored",
			run: func(t *testing.T, s *SparseSet) {
				s.Set(0, "nothing")
				if s.Len() != 0 {
					t.Fatalf("expected empty set, got %d", s.Len())
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.run(t, &SparseSet{})
		})
	}
}

func TestDestroyDropsComponentsAndRecyclesIDs(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if !DestroyEntity(w, e) {
		t.Fatal("expected destroy to succeed")
	}
	if DestroyEntity(w, e) {
		t.Fatal("expected second destroy to fail")
	}

	reused := CreateEntity(w)
	if reused.id() != e.id() {
		t.Fatalf("expected id %d to be recycled, got %d", e.id(), reused.id())
	}
	if reused == e {
		t.Fatal("expected a new generation for the recycled id")
	}
	if Has(w, reused, h.Kind()) {
		t.Fatal("recycled entity must not inherit components")
	}
	if _, ok := Get(w, e, h.Kind()); ok {
		t.Fatal("stale handle must not resolve")
	}
	if err := Add(w, e, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	h := component.NewComponent[int]()

	if err := Add(w, e, h.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentKind[int]
	if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEachAllowsRemovalDuringIteration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 5; i++ {
		if err := Add(w, CreateEntity(w), h.Kind(), intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited++
		Remove(w, e, h.Kind())
	})
	if visited != 5 {
		t.Fatalf("expected 5 visits, got %d", visited)
	}
	if _, ok := w.First(h.Kind()); ok {
		t.Fatal("expected every component removed")
	}
}

func TestQueryAndFirst(t *testing.T) {
	w := NewWorld()
	ha := component.NewComponent[int]()
	hb := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	if err := Add(w, e1, ha.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, ha.Kind(), intPtr(2)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, hb.Kind(), stringPtr("b")); err != nil {
		t.Fatal(err)
	}

	got := w.Query(ha.Kind(), hb.Kind())
	if len(got) != 1 || got[0] != e2 {
		t.Fatalf("expected [e2], got %v", got)
	}
	if first, ok := w.First(hb.Kind()); !ok || first != e2 {
		t.Fatalf("expected first string holder e2, got %v ok=%v", first, ok)
	}
	if got := w.Query(component.NewComponent[float64]().Kind()); got != nil {
		t.Fatalf("expected nil for unused kind, got %v", got)
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (r recordSystem) Update(*World) { *r.log = append(*r.log, r.name) }

func TestSchedulerRunsStagesInOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	w.AddSystemToStage(StagePostUpdate, recordSystem{"post", &order})
	w.AddSystem(recordSystem{"update_a", &order})
	w.AddSystemToStage(StagePreUpdate, recordSystem{"pre", &order})
	w.AddSystem(recordSystem{"update_b", &order})
	w.AddSystemToStage(StageLast+5, recordSystem{"clamped_last", &order})
	w.AddSystemToStage(StageFirst, nil)

	w.Update()

	want := []string{"pre", "update_a", "update_b", "post", "clamped_last"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
	if len(w.Systems()) != len(want) {
		t.Fatalf("expected %d systems, got %d", len(want), len(w.Systems()))
	}
}

type pushSystem struct{}

func (pushSystem) Update(w *World) { w.Events().Push(Event{Type: "ping"}) }

type drainSystem struct{ got *int }

func (d drainSystem) Update(w *World) { *d.got += len(w.Events().Drain()) }

func TestEventsFlushAfterUpdate(t *testing.T) {
	w := NewWorld()
	got := 0
	w.AddSystemToStage(StageUpdate, pushSystem{})
	w.AddSystemToStage(StageLast, drainSystem{&got})
	w.AddSystemToStage(StageFirst, pushSystem{})

	w.Update()
	if got != 2 {
		t.Fatalf("expected 2 drained events, got %d", got)
	}

	w.Events().Push(Event{Type: "late"})
	w.Update()
	if w.Events().Len() != 0 {
		t.Fatalf("expected queue flushed after update, got %d", w.Events().Len())
	}
}
