package datastructure

// Step is one entry of a found path: the tile reached, the turn on which the
// unit arrives there, and the order that produced the step.
type Step struct {
	Location    Index
	TurnArrived int32
	Order       Order
}

// Path is the ordered step sequence from the tile after the start position
// up to the destination. The search root is never emitted as a step.
type Path []Step

func (p Path) Empty() bool {
	return len(p) == 0
}

// Destination returns the final step. Only valid on a non-empty path.
func (p Path) Destination() Step {
	return p[len(p)-1]
}

// Turns returns the number of turns the full path takes.
func (p Path) Turns() int32 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].TurnArrived
}
