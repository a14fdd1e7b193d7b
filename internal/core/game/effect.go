package game

// Kind is the closed discriminant for effect tree nodes. Interpreters can
// switch over it exhaustively instead of type-asserting an open hierarchy.
type Kind string

const (
	KindDamage   Kind = "damage"
	KindHeal     Kind = "heal"
	KindDraw     Kind = "draw"
	KindResource Kind = "resource"

	KindComposite   Kind = "composite"
	KindSequential  Kind = "sequential"
	KindParallel    Kind = "parallel"
	KindChained     Kind = "chained"
	KindConditional Kind = "conditional"
	KindRepeated    Kind = "repeated"
	KindContextual  Kind = "contextual"
)

// Effect is a composable unit of deterministic game-state transformation.
// An effect tree is built once and may be executed arbitrarily many times;
// Execute must behave as a pure function of the context except for explicit
// calls through the context's Random and Log hooks.
type Effect interface {
	// Kind returns the node's tag.
	Kind() Kind

	// Description returns a human-readable summary computed at construction
	// time. It is used for logging and diagnostics, never for dispatch.
	Description() string

	// Execute runs the effect against the context and returns the outcome.
	// Gameplay failures are reported via Result.Success, never as panics.
	Execute(ctx Context) Result
}

// Result is the outcome of executing an effect: whether it succeeded, the
// resulting state, the messages produced in causal execution order, and an
// open metadata mapping for drivers that need more than text.
type Result struct {
	Success  bool
	State    State
	Messages []string
	Metadata map[string]any
}

func succeed(s State, messages ...string) Result {
	return Result{Success: true, State: s, Messages: messages}
}

func fail(s State, message string) Result {
	return Result{Success: false, State: s, Messages: []string{message}}
}
