// Package game contains the pure domain core: the immutable game-state model
// and the composable effect algebra that transforms it. Nothing in this
// package performs I/O; capabilities (logging, randomness, persistence,
// events) reach effects only through the execution context.
package game

// Phase identifies where in a turn the game currently is.
type Phase string

const (
	PhaseDraw    Phase = "draw"
	PhaseMain    Phase = "main"
	PhaseDiscard Phase = "discard"
	PhaseEnd     Phase = "end"
)

// State is an immutable snapshot of a running game. Updates go through the
// With* helpers, which return a new value sharing unmodified substructure
// with the old one.
type State struct {
	Players       map[string]Player
	CurrentPlayer string
	Turn          int
	Phase         Phase
}

// Player holds one player's mutable-through-replacement state. Hand, Deck
// and DiscardPile are disjoint: a card belongs to exactly one of the three.
type Player struct {
	ID          string
	Health      int
	MaxHealth   int
	Hand        []Card
	Deck        []Card
	DiscardPile []Card
	Resources   map[string]int
}

// NewState builds a state from the given players. The first player id (in
// sorted order) becomes the current player when currentPlayer is empty.
func NewState(currentPlayer string, players ...Player) State {
	m := make(map[string]Player, len(players))
	for _, p := range players {
		m[p.ID] = p
	}
	if currentPlayer == "" {
		for _, id := range sortedPlayerIDs(m) {
			currentPlayer = id
			break
		}
	}
	return State{
		Players:       m,
		CurrentPlayer: currentPlayer,
		Turn:          1,
		Phase:         PhaseMain,
	}
}

// Player looks up a player by id.
func (s State) Player(id string) (Player, bool) {
	p, ok := s.Players[id]
	return p, ok
}

// WithPlayer returns a new state with the given player record replacing the
// old one under its id. The players map is copied; player records themselves
// (and their card slices) are shared.
func (s State) WithPlayer(p Player) State {
	players := make(map[string]Player, len(s.Players)+1)
	for id, existing := range s.Players {
		players[id] = existing
	}
	players[p.ID] = p
	s.Players = players
	return s
}

// WithTurn returns a new state with the turn counter set. The counter is
// monotonically non-decreasing; lower values are ignored.
func (s State) WithTurn(turn int) State {
	if turn > s.Turn {
		s.Turn = turn
	}
	return s
}

// WithPhase returns a new state in the given phase.
func (s State) WithPhase(phase Phase) State {
	s.Phase = phase
	return s
}

// WithCurrentPlayer returns a new state with the acting player changed.
func (s State) WithCurrentPlayer(id string) State {
	s.CurrentPlayer = id
	return s
}

// WithHealth returns a copy of the player with health clamped to
// [0, MaxHealth].
func (p Player) WithHealth(health int) Player {
	if health < 0 {
		health = 0
	}
	if health > p.MaxHealth {
		health = p.MaxHealth
	}
	p.Health = health
	return p
}

// WithResource returns a copy of the player with one resource amount
// replaced. The resources map is copied, not mutated.
func (p Player) WithResource(name string, amount int) Player {
	resources := make(map[string]int, len(p.Resources)+1)
	for k, v := range p.Resources {
		resources[k] = v
	}
	resources[name] = amount
	p.Resources = resources
	return p
}

// Resource returns the current amount of a resource, defaulting to 0.
func (p Player) Resource(name string) int {
	return p.Resources[name]
}

// WithZones returns a copy of the player with all three card zones replaced.
// Callers own the slices they pass in.
func (p Player) WithZones(hand, deck, discard []Card) Player {
	p.Hand = hand
	p.Deck = deck
	p.DiscardPile = discard
	return p
}
