package datastructure

// Cost measures how expensive it is to reach a vertex. It is not a single
// scalar: two costs can be incomparable (one has fewer turns, the other more
// fuel), in which case both must be kept in the search.
type Cost struct {
	Turns     int32
	MovesLeft int32
	Health    int32
	FuelLeft  int32
}

func NewCost(turns, movesLeft, health, fuelLeft int32) Cost {
	return Cost{
		Turns:     turns,
		MovesLeft: movesLeft,
		Health:    health,
		FuelLeft:  fuelLeft,
	}
}

// Comparable reports whether comparing c with o is unambiguous, i.e. one of
// them is weakly better on every criterion at once (Pareto dominance). When
// the deltas disagree in direction the costs are incomparable and neither
// may evict the other.
func (c Cost) Comparable(o Cost) bool {
	// Positive means c does better than o for that criterion.
	a := o.Turns - c.Turns
	b := c.MovesLeft - o.MovesLeft
	d := c.Health - o.Health
	e := c.FuelLeft - o.FuelLeft
	return (a <= 0 && b <= 0 && d <= 0 && e <= 0) ||
		(a >= 0 && b >= 0 && d >= 0 && e >= 0)
}

// Less is a strict total order used for frontier priority and as a
// deterministic tie break: fewer turns first, then the most moves left, then
// the healthiest, then the most fuel. It never decides dominance.
func (c Cost) Less(o Cost) bool {
	if c.Turns != o.Turns {
		return c.Turns < o.Turns
	}
	if c.MovesLeft != o.MovesLeft {
		return c.MovesLeft > o.MovesLeft
	}
	if c.Health != o.Health {
		return c.Health > o.Health
	}
	return c.FuelLeft > o.FuelLeft
}

func (c Cost) Equal(o Cost) bool {
	return c == o
}
