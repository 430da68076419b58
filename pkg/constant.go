package pkg

// enum of the 8 map directions, plus DIR8_ORIGIN for orders that target
// the unit's own tile (board, alight, full-mp).
type Direction uint8

const (
	DIR8_NORTH Direction = iota
	DIR8_NORTHEAST
	DIR8_EAST
	DIR8_SOUTHEAST
	DIR8_SOUTH
	DIR8_SOUTHWEST
	DIR8_WEST
	DIR8_NORTHWEST
	DIR8_ORIGIN
)

func (d Direction) String() string {
	switch d {
	case DIR8_NORTH:
		return "north"
	case DIR8_NORTHEAST:
		return "northeast"
	case DIR8_EAST:
		return "east"
	case DIR8_SOUTHEAST:
		return "southeast"
	case DIR8_SOUTH:
		return "south"
	case DIR8_SOUTHWEST:
		return "southwest"
	case DIR8_WEST:
		return "west"
	case DIR8_NORTHWEST:
		return "northwest"
	case DIR8_ORIGIN:
		return "origin"
	}
	return "unknown"
}

// enum of order kinds a path step can carry.
type OrderKind uint8

const (
	ORDER_NONE OrderKind = iota
	ORDER_MOVE
	ORDER_FULL_MP
	ORDER_PERFORM_ACTION
)

func (o OrderKind) String() string {
	switch o {
	case ORDER_MOVE:
		return "move"
	case ORDER_FULL_MP:
		return "full_mp"
	case ORDER_PERFORM_ACTION:
		return "perform_action"
	}
	return "none"
}

// enum of transport actions the rules engine knows about. Disembark has two
// variants because the ruleset models disembark-onto-land and
// disembark-onto-tile as separate actions.
type ActionID uint8

const (
	ACTION_NONE ActionID = iota
	ACTION_TRANSPORT_BOARD
	ACTION_TRANSPORT_EMBARK
	ACTION_TRANSPORT_ALIGHT
	ACTION_TRANSPORT_DISEMBARK1
	ACTION_TRANSPORT_DISEMBARK2
)

func (a ActionID) String() string {
	switch a {
	case ACTION_TRANSPORT_BOARD:
		return "transport_board"
	case ACTION_TRANSPORT_EMBARK:
		return "transport_embark"
	case ACTION_TRANSPORT_ALIGHT:
		return "transport_alight"
	case ACTION_TRANSPORT_DISEMBARK1:
		return "transport_disembark1"
	case ACTION_TRANSPORT_DISEMBARK2:
		return "transport_disembark2"
	}
	return "none"
}

// order of the fuel and hitpoint updates at a turn boundary. The game rules
// do not pin this down, so it stays an explicit knob instead of a silent
// pick (FUEL_THEN_HEALTH matches the reference client).
type TurnChangeOrder uint8

const (
	FUEL_THEN_HEALTH TurnChangeOrder = iota
	HEALTH_THEN_FUEL
)

const (
	DEBUG = false
)
