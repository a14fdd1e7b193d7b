package game

// Context is the read-only execution environment an effect runs against: the
// acting player, a state snapshot, a randomness source and a logging sink.
// Combinators may hand descendants an augmented copy carrying extra
// ephemeral values; the original context is never mutated.
type Context struct {
	PlayerID string
	State    State

	// Random yields a uniform float in [0,1). Log receives human-readable
	// trace lines. Both may be nil; effects must tolerate their absence.
	Random func() float64
	Log    func(message string)

	values map[string]any
}

// Value retrieves an ephemeral value injected by a Contextual combinator
// somewhere up the tree.
func (c Context) Value(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// WithValue returns an augmented copy of the context carrying one extra
// ephemeral key/value pair. The receiver's value map is copied, so siblings
// outside the augmented subtree never observe the addition.
func (c Context) WithValue(key string, value any) Context {
	values := make(map[string]any, len(c.values)+1)
	for k, v := range c.values {
		values[k] = v
	}
	values[key] = value
	c.values = values
	return c
}

// withState returns a copy of the context with the state snapshot replaced.
// Pipelines use it to thread one child's output into the next child's input.
func (c Context) withState(s State) Context {
	c.State = s
	return c
}

func (c Context) logf(message string) {
	if c.Log != nil {
		c.Log(message)
	}
}
