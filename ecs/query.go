package ecs

// intersect returns the live entities present in every set, in the dense
// order of the smallest set. The result is a fresh slice.
func (w *World) intersect(sets ...*SparseSet) []Entity {
	if len(sets) == 0 {
		return nil
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	if smallest.Len() == 0 {
		return nil
	}
	out := make([]Entity, 0, smallest.Len())
outer:
	for _, e := range smallest.Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		for _, s := range sets {
			if !s.Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}
