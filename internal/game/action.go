package game

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "raise", "allin"}[a]
}

// LegalAction is an action the acting seat may take right now,
// annotated with the amounts that make it legal. CallAmount is the
// chips needed to call; MinRaiseTo/MaxRaiseTo bound the total street
// bet a raise may set.
type LegalAction struct {
	Action     Action
	CallAmount int
	MinRaiseTo int
	MaxRaiseTo int
}
