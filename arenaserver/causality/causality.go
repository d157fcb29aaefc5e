package causality

import (
	"github.com/sogebu/LorentzArena/common/utils/vector"
)

// IsMotionAllowed gates a proposed agent position against the recorded
// events of all other agents. A move is rejected when one of those
// events, already in the agent's coordinate past, would sit timelike
// inside its past cone — stepping there would let the agent have
// "already seen" something it should not yet be able to see.
//
// Pure, stateless predicate. A rejection is a control-flow signal: the
// caller skips the tick's update and retries next tick; it is never an
// error.
func IsMotionAllowed(selfPos vector.Vector4, otherEvents []vector.Vector4) bool {
	for _, event := range otherEvents {
		if event.GetT() > selfPos.GetT() {
			continue
		}

		diff := event.Sub(selfPos)
		if diff.MinkowskiDot(diff) < 0 {
			return false
		}
	}

	return true
}
