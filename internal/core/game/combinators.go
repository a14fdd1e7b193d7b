package game

import (
	"fmt"
	"reflect"
	"strings"
)

// All wraps the effects in a composite: an ordered pipeline that threads
// state through each child and stops at the first failure.
func All(effects ...Effect) Effect {
	return pipelineEffect{
		kind:     KindComposite,
		children: effects,
		desc:     joinDescriptions("all of", effects),
	}
}

// Sequence wraps the effects in a sequential pipeline. Its semantics are
// currently identical to All; the two kinds are kept distinct on purpose
// (see DESIGN.md) and must not be collapsed.
func Sequence(effects ...Effect) Effect {
	return pipelineEffect{
		kind:     KindSequential,
		children: effects,
		desc:     joinDescriptions("sequence of", effects),
	}
}

// Compose appends next after e, preserving the ordered-pipeline contract.
func Compose(e, next Effect) Effect {
	return All(e, next)
}

// Parallel wraps the effects in a simultaneous-input composition: every
// child executes against the same pre-parallel state, and on overall success
// the children's outputs are folded into the original state with a shallow
// top-level-field merge where the later child wins.
func Parallel(effects ...Effect) Effect {
	return parallelEffect{
		children: effects,
		desc:     joinDescriptions("parallel", effects),
	}
}

// Chain runs first and, only on success, asks next for a follow-up effect
// chosen from the full first result, then runs it against the post-first
// state.
func Chain(first Effect, next func(Result) Effect) Effect {
	return chainedEffect{
		first: first,
		next:  next,
		desc:  fmt.Sprintf("%s, then a chained follow-up", first.Description()),
	}
}

// Conditional gates e behind a predicate evaluated against the original,
// pre-effect context. A false predicate is a successful no-op, not a
// failure.
func Conditional(e Effect, predicate func(Context) bool) Effect {
	return conditionalEffect{
		inner:     e,
		predicate: predicate,
		desc:      fmt.Sprintf("if condition: %s", e.Description()),
	}
}

// Repeat runs e count times, threading state between iterations with the
// pipeline stop rule. A non-positive count is a successful no-op.
func Repeat(e Effect, count int) Effect {
	return repeatedEffect{
		inner: e,
		count: count,
		desc:  fmt.Sprintf("%dx %s", count, e.Description()),
	}
}

// WithValue hands the wrapped subtree an augmented context carrying one
// extra ephemeral key/value pair. Game state is untouched.
func WithValue(e Effect, key string, value any) Effect {
	return contextualEffect{
		inner: e,
		key:   key,
		value: value,
		desc:  fmt.Sprintf("with %s=%v: %s", key, value, e.Description()),
	}
}

// pipelineEffect backs both composite and sequential nodes. The shared
// implementation is deliberate: the contract is one ordered pipeline under
// two names.
type pipelineEffect struct {
	kind     Kind
	children []Effect
	desc     string
}

func (e pipelineEffect) Kind() Kind          { return e.kind }
func (e pipelineEffect) Description() string { return e.desc }

func (e pipelineEffect) Execute(ctx Context) Result {
	return runPipeline(ctx, e.children)
}

// runPipeline threads state through the children in order, accumulating
// every child's messages including the failing child's, and stops at the
// first failure.
func runPipeline(ctx Context, children []Effect) Result {
	state := ctx.State
	var messages []string
	for _, child := range children {
		res := child.Execute(ctx.withState(state))
		messages = append(messages, res.Messages...)
		if !res.Success {
			return Result{Success: false, State: res.State, Messages: messages}
		}
		state = res.State
	}
	return Result{Success: true, State: state, Messages: messages}
}

type parallelEffect struct {
	children []Effect
	desc     string
}

func (e parallelEffect) Kind() Kind          { return KindParallel }
func (e parallelEffect) Description() string { return e.desc }

func (e parallelEffect) Execute(ctx Context) Result {
	original := ctx.State

	results := make([]Result, 0, len(e.children))
	var messages []string
	allOK := true
	for _, child := range e.children {
		res := child.Execute(ctx)
		results = append(results, res)
		messages = append(messages, res.Messages...)
		allOK = allOK && res.Success
	}

	if !allOK {
		return Result{Success: false, State: original, Messages: messages}
	}

	merged := original
	for _, res := range results {
		merged = mergeTopLevel(merged, original, res.State)
	}
	return Result{Success: true, State: merged, Messages: messages}
}

// mergeTopLevel folds one child state into the accumulator. Only top-level
// fields are considered: a field the child changed (relative to the
// pre-parallel original) overwrites the accumulator's value wholesale, so a
// later sibling that touched Players wins outright over an earlier one.
// This shallow merge is a designed simplification and must stay as-is.
func mergeTopLevel(acc, original, child State) State {
	if !reflect.DeepEqual(child.Players, original.Players) {
		acc.Players = child.Players
	}
	if child.CurrentPlayer != original.CurrentPlayer {
		acc.CurrentPlayer = child.CurrentPlayer
	}
	if child.Turn != original.Turn {
		acc.Turn = child.Turn
	}
	if child.Phase != original.Phase {
		acc.Phase = child.Phase
	}
	return acc
}

type chainedEffect struct {
	first Effect
	next  func(Result) Effect
	desc  string
}

func (e chainedEffect) Kind() Kind          { return KindChained }
func (e chainedEffect) Description() string { return e.desc }

func (e chainedEffect) Execute(ctx Context) Result {
	first := e.first.Execute(ctx)
	if !first.Success {
		return first
	}

	follow := e.next(first)
	second := follow.Execute(ctx.withState(first.State))

	messages := make([]string, 0, len(first.Messages)+len(second.Messages))
	messages = append(messages, first.Messages...)
	messages = append(messages, second.Messages...)
	return Result{
		Success:  second.Success,
		State:    second.State,
		Messages: messages,
		Metadata: second.Metadata,
	}
}

type conditionalEffect struct {
	inner     Effect
	predicate func(Context) bool
	desc      string
}

func (e conditionalEffect) Kind() Kind          { return KindConditional }
func (e conditionalEffect) Description() string { return e.desc }

func (e conditionalEffect) Execute(ctx Context) Result {
	if !e.predicate(ctx) {
		return succeed(ctx.State, fmt.Sprintf("Condition not met for: %s", e.inner.Description()))
	}
	return e.inner.Execute(ctx)
}

type repeatedEffect struct {
	inner Effect
	count int
	desc  string
}

func (e repeatedEffect) Kind() Kind          { return KindRepeated }
func (e repeatedEffect) Description() string { return e.desc }

func (e repeatedEffect) Execute(ctx Context) Result {
	if e.count <= 0 {
		return succeed(ctx.State)
	}
	children := make([]Effect, e.count)
	for i := range children {
		children[i] = e.inner
	}
	return runPipeline(ctx, children)
}

type contextualEffect struct {
	inner Effect
	key   string
	value any
	desc  string
}

func (e contextualEffect) Kind() Kind          { return KindContextual }
func (e contextualEffect) Description() string { return e.desc }

func (e contextualEffect) Execute(ctx Context) Result {
	return e.inner.Execute(ctx.WithValue(e.key, e.value))
}

func joinDescriptions(prefix string, effects []Effect) string {
	if len(effects) == 0 {
		return prefix + " nothing"
	}
	parts := make([]string, len(effects))
	for i, e := range effects {
		parts[i] = e.Description()
	}
	return fmt.Sprintf("%s [%s]", prefix, strings.Join(parts, "; "))
}
