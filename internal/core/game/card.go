package game

// Card is an authored piece of content: an id, display name, play cost, the
// card's behavior as an ordered effect tree, and free-form tags. Cards are
// immutable once authored. The effect tree is code, not data: it is excluded
// from serialization and rebuilt from the card's authored definition when a
// persisted state is rehydrated.
type Card struct {
	ID      string
	Name    string
	Cost    int
	Effects []Effect `json:"-"`
	Tags    []string
}

// HasTag reports whether the card carries the given tag.
func (c Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Behavior wraps the card's effect list into a single sequential effect so a
// driver can resolve the whole card in one Execute call. A card with no
// effects resolves to an empty (always succeeding) sequence.
func (c Card) Behavior() Effect {
	return Sequence(c.Effects...)
}
