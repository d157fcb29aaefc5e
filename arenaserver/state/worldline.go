package state

import (
	"math"
	"sort"

	"github.com/sogebu/LorentzArena/common/utils/vector"
)

const DefaultWorldLineCapacity = 1000

// WorldLine is the bounded, time-ordered history of one agent's
// PhaseSpace samples, oldest first, non-decreasing coordinate time.
//
// A world line is written only by the single agent whose trajectory it
// records (one Append per tick); every other agent only reads it
// through the light-cone query.
type WorldLine struct {
	history  []PhaseSpace
	capacity int
}

func NewWorldLine() *WorldLine {
	return NewWorldLineWithCapacity(DefaultWorldLineCapacity)
}

func NewWorldLineWithCapacity(capacity int) *WorldLine {
	return &WorldLine{
		history:  make([]PhaseSpace, 0, capacity),
		capacity: capacity,
	}
}

// Append pushes a new sample, evicting the oldest one beyond capacity.
func (wl *WorldLine) Append(ps PhaseSpace) {
	wl.history = append(wl.history, ps)
	if len(wl.history) > wl.capacity {
		wl.history = wl.history[1:]
	}
}

func (wl *WorldLine) Len() int {
	return len(wl.history)
}

func (wl *WorldLine) At(i int) PhaseSpace {
	return wl.history[i]
}

func (wl *WorldLine) Last() (PhaseSpace, bool) {
	if len(wl.history) == 0 {
		return PhaseSpace{}, false
	}
	return wl.history[len(wl.history)-1], true
}

// History returns a copy of the samples, for trajectory drawing.
func (wl *WorldLine) History() []PhaseSpace {
	res := make([]PhaseSpace, len(wl.history))
	copy(res, wl.history)
	return res
}

// PastLightConeIntersection finds the event on this world line whose
// emitted light signal reaches observerPos exactly: what the observer
// actually perceives right now, not the line's current state.
//
// Returns false whenever the world line is too young for any of its
// signals to have reached the observer yet (e.g. a just-spawned remote
// agent); callers treat that as "not yet visible", never as an error.
//
// The crossing is reported as the older bracketing sample verbatim.
// See PastLightConeIntersectionInterpolated for the smoothed variant.
func (wl *WorldLine) PastLightConeIntersection(observerPos vector.Vector4) (PhaseSpace, bool) {
	return wl.pastLightConeIntersection(observerPos, false)
}

// PastLightConeIntersectionInterpolated behaves like
// PastLightConeIntersection but linearly interpolates position and
// velocity between the two bracketing samples.
func (wl *WorldLine) PastLightConeIntersectionInterpolated(observerPos vector.Vector4) (PhaseSpace, bool) {
	return wl.pastLightConeIntersection(observerPos, true)
}

func (wl *WorldLine) pastLightConeIntersection(observerPos vector.Vector4, interpolate bool) (PhaseSpace, bool) {
	n := len(wl.history)
	if n == 0 {
		return PhaseSpace{}, false
	}

	// Latest sample not in the observer's future.
	idx := sort.Search(n, func(i int) bool {
		return wl.history[i].pos.GetT() > observerPos.GetT()
	})
	k := idx - 1

	if k < 0 {
		// Even the oldest sample is in the observer's future; nothing
		// has been emitted early enough yet to have arrived.
		return PhaseSpace{}, false
	}

	if n == 1 {
		// A single sample cannot bracket a crossing; it is visible only
		// if it sits exactly on the observer's past light cone. No
		// epsilon here: sensitivity to floating-point noise near true
		// null separation is a documented precision characteristic.
		sep := observerPos.Sub(wl.history[0].pos)
		if sep.MinkowskiDot(sep) == 0 {
			return wl.history[0], true
		}
		return PhaseSpace{}, false
	}

	start := k + 1
	if start > n-1 {
		start = n - 1
	}

	for i := start; i >= 1; i-- {
		prev := wl.history[i-1]
		curr := wl.history[i]

		sepPrev := observerPos.Sub(prev.pos)
		sepCurr := observerPos.Sub(curr.pos)

		if sepPrev.GetT() <= 0 && sepCurr.GetT() <= 0 {
			// Both endpoints in the observer's future.
			continue
		}

		// Null-separation condition on the segment
		// X(λ) = prev + λ·(curr − prev), λ ∈ [0,1], expands to the
		// quadratic a·λ² − 2b·λ + c = 0 in Minkowski dots.
		delta := curr.pos.Sub(prev.pos)
		a := delta.MinkowskiDot(delta)
		b := delta.MinkowskiDot(sepPrev)
		c := sepPrev.MinkowskiDot(sepPrev)

		if a == 0 {
			// Degenerate segment (duplicate sample or null displacement).
			continue
		}

		disc := b*b - a*c
		if disc < 0 {
			// No real crossing on this segment; not an error.
			continue
		}

		// Past-cone branch; the sign choice is tied to the (+,+,+,-)
		// signature and must be preserved exactly.
		lambda := (b + math.Sqrt(disc)) / a

		if lambda >= 0 && lambda <= 1 {
			if !interpolate {
				return prev, true
			}
			return PhaseSpace{
				pos: prev.pos.Add(delta.MultScalar(lambda)),
				u:   prev.u.Add(curr.u.Sub(prev.u).MultScalar(lambda)),
			}, true
		}
	}

	return PhaseSpace{}, false
}
