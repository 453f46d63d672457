package mrwlock

// guardState tracks whether a guard currently owns its slot in the lock.
//
//	held --EarlyRelease--> released --Reobtain--> held
//	held --Release / ToRead / ToWrite--> done
//	released --Release--> done
//
// Data is reachable only from held.
type guardState uint8

const (
	guardHeld guardState = iota
	guardReleased
	guardDone
)

func (s guardState) mustHold(op string) {
	if s != guardHeld {
		panic("mrwlock: " + op + " on " + s.String() + " guard")
	}
}

func (s guardState) mustBeReleased(op string) {
	if s != guardReleased {
		panic("mrwlock: " + op + " on " + s.String() + " guard")
	}
}

func (s guardState) String() string {
	switch s {
	case guardHeld:
		return "held"
	case guardReleased:
		return "early-released"
	default:
		return "finished"
	}
}
