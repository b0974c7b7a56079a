// Package visibility tracks which page regions have entered the viewport.
//
// Regions fire once: as soon as enough of a region overlaps the visible
// window its id is reported and it stays fired for the lifetime of the
// tracker, no matter where the viewport moves afterwards. Reveal
// animations key off that one-shot edge.
package visibility

// DefaultThreshold is the fraction of a region's rows that must be
// visible before it fires.
const DefaultThreshold = 0.15

// Region describes a vertical slice of the document in row units.
type Region struct {
	Top    int
	Height int
}

type entry struct {
	region Region
	fired  bool
}

// Tracker watches attached regions against a moving viewport.
type Tracker struct {
	threshold float64
	order     []string
	entries   map[string]*entry
}

// NewTracker returns a tracker firing at the given visible fraction.
// Values at or below zero fall back to DefaultThreshold.
func NewTracker(threshold float64) *Tracker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Tracker{
		threshold: threshold,
		entries:   make(map[string]*entry),
	}
}

// Attach registers a region under id. Attaching an existing id updates
// its geometry but keeps its fired state, so relayouts after a resize
// do not replay reveals.
func (t *Tracker) Attach(id string, r Region) {
	if e, ok := t.entries[id]; ok {
		e.region = r
		return
	}
	t.entries[id] = &entry{region: r}
	t.order = append(t.order, id)
}

// Cancel stops observing id entirely.
func (t *Tracker) Cancel(id string) {
	if _, ok := t.entries[id]; !ok {
		return
	}
	delete(t.entries, id)
	for i, other := range t.order {
		if other == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Observe checks every unfired region against the viewport
// [viewTop, viewTop+viewHeight) and returns the ids that fired on this
// call, in attach order.
func (t *Tracker) Observe(viewTop, viewHeight int) []string {
	if viewHeight <= 0 {
		return nil
	}
	var fired []string
	for _, id := range t.order {
		e := t.entries[id]
		if e.fired {
			continue
		}
		if visibleFraction(e.region, viewTop, viewHeight) >= t.threshold {
			e.fired = true
			fired = append(fired, id)
		}
	}
	return fired
}

// Fired reports whether id has ever fired. Unknown ids report false.
func (t *Tracker) Fired(id string) bool {
	e, ok := t.entries[id]
	return ok && e.fired
}

// visibleFraction returns how much of r overlaps the viewport, in
// [0, 1]. A region with no height counts as fully visible while its
// top row is inside the viewport.
func visibleFraction(r Region, viewTop, viewHeight int) float64 {
	if r.Height <= 0 {
		if r.Top >= viewTop && r.Top < viewTop+viewHeight {
			return 1
		}
		return 0
	}
	lo := max(r.Top, viewTop)
	hi := min(r.Top+r.Height, viewTop+viewHeight)
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(r.Height)
}
