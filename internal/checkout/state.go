package checkout

type State string

const (
	StateIdle      State = "IDLE"
	StateReviewing State = "REVIEWING_CHECKOUT"
	StateConfirmed State = "CONFIRMED"
)

var validNext = map[State]map[State]bool{
	StateIdle:      {StateReviewing: true},
	StateReviewing: {StateConfirmed: true, StateIdle: true},
	StateConfirmed: {StateIdle: true},
}

func CanTransition(from, to State) bool {
	return validNext[from][to]
}
