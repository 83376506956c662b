package pipeline

import "time"

// DelayProfile scales a measured solve time into a presentation delay. The
// delay is artificial: it dramatizes relative algorithmic cost for display
// and is independent of any further computation.
type DelayProfile struct {
	Multiplier float64
	Floor      time.Duration
}

// DelayTable maps algorithm keys to their presentation-delay profiles. Kept
// as an explicit named table so the dramatization policy stays auditable.
type DelayTable map[string]DelayProfile

// Classical algorithms are scaled up hard and floored at over a second;
// quantum-style and heuristic algorithms present at near-real timing.
var (
	classicalProfile = DelayProfile{Multiplier: 150, Floor: 1200 * time.Millisecond}
	nearRealProfile  = DelayProfile{Multiplier: 1, Floor: 200 * time.Millisecond}
)

// DefaultDelays is the stock presentation-delay policy.
func DefaultDelays() DelayTable {
	return DelayTable{
		"dijkstra":            classicalProfile,
		"astar":               classicalProfile,
		"dynamic_programming": classicalProfile,
		"quantum":             nearRealProfile,
		"genetic":             nearRealProfile,
	}
}

// Presentation converts a measured execution time in milliseconds into the
// artificial delay to hold the busy indicator for. Unknown algorithms use
// the classical profile.
func (t DelayTable) Presentation(algorithm string, measuredMS float64) time.Duration {
	profile, ok := t[algorithm]
	if !ok {
		profile = classicalProfile
	}
	d := time.Duration(measuredMS * profile.Multiplier * float64(time.Millisecond))
	if d < profile.Floor {
		d = profile.Floor
	}
	return d
}
