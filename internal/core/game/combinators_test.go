package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEffect is a scriptable leaf for combinator tests. It records whether
// it ran and applies an arbitrary state transform.
type stubEffect struct {
	name     string
	succeeds bool
	apply    func(State) State
	ran      *int
}

func (e stubEffect) Kind() Kind          { return Kind("stub") }
func (e stubEffect) Description() string { return e.name }

func (e stubEffect) Execute(ctx Context) Result {
	if e.ran != nil {
		*e.ran++
	}
	if !e.succeeds {
		return fail(ctx.State, e.name+" failed")
	}
	state := ctx.State
	if e.apply != nil {
		state = e.apply(state)
	}
	return succeed(state, e.name+" ok")
}

func ok(name string, ran *int) stubEffect {
	return stubEffect{name: name, succeeds: true, ran: ran}
}

func bad(name string, ran *int) stubEffect {
	return stubEffect{name: name, succeeds: false, ran: ran}
}

func twoPlayerState() State {
	return NewState("A",
		Player{ID: "A", Health: 100, MaxHealth: 100},
		Player{ID: "B", Health: 100, MaxHealth: 100},
	)
}

func TestPipeline_StopsAtFirstFailure(t *testing.T) {
	for _, build := range []struct {
		name string
		wrap func(...Effect) Effect
	}{
		{"composite", All},
		{"sequential", Sequence},
	} {
		t.Run(build.name, func(t *testing.T) {
			var ran1, ran2, ran3, ran4 int
			e := build.wrap(
				ok("first", &ran1),
				ok("second", &ran2),
				bad("third", &ran3),
				ok("fourth", &ran4),
			)

			res := e.Execute(Context{PlayerID: "A", State: twoPlayerState()})

			assert.False(t, res.Success)
			assert.Equal(t, []string{"first ok", "second ok", "third failed"}, res.Messages)
			assert.Equal(t, 1, ran1)
			assert.Equal(t, 1, ran2)
			assert.Equal(t, 1, ran3)
			assert.Equal(t, 0, ran4, "no sibling after the failing child may run")
		})
	}
}

func TestPipeline_ThreadsState(t *testing.T) {
	bump := func(s State) State { return s.WithTurn(s.Turn + 1) }
	e := Sequence(
		stubEffect{name: "a", succeeds: true, apply: bump},
		stubEffect{name: "b", succeeds: true, apply: bump},
		stubEffect{name: "c", succeeds: true, apply: bump},
	)

	res := e.Execute(Context{PlayerID: "A", State: twoPlayerState()})

	require.True(t, res.Success)
	assert.Equal(t, 4, res.State.Turn)
}

func TestPipeline_EmptyListSucceeds(t *testing.T) {
	s := twoPlayerState()
	res := All().Execute(Context{PlayerID: "A", State: s})

	assert.True(t, res.Success)
	assert.Empty(t, res.Messages)
	assert.Equal(t, s, res.State)
}

func TestParallel_SiblingsSeeOriginalState(t *testing.T) {
	var seen []int
	observe := func(s State) State {
		seen = append(seen, s.Turn)
		return s.WithTurn(s.Turn + 1)
	}
	e := Parallel(
		stubEffect{name: "a", succeeds: true, apply: observe},
		stubEffect{name: "b", succeeds: true, apply: observe},
	)

	res := e.Execute(Context{PlayerID: "A", State: twoPlayerState()})

	require.True(t, res.Success)
	assert.Equal(t, []int{1, 1}, seen, "every sibling gets the pre-parallel state")
}

func TestParallel_DisjointFieldsBothSurvive(t *testing.T) {
	e := Parallel(
		stubEffect{name: "turn", succeeds: true, apply: func(s State) State {
			return s.WithTurn(7)
		}},
		stubEffect{name: "players", succeeds: true, apply: func(s State) State {
			p := s.Players["B"]
			return s.WithPlayer(p.WithHealth(50))
		}},
	)

	res := e.Execute(Context{PlayerID: "A", State: twoPlayerState()})

	require.True(t, res.Success)
	assert.Equal(t, 7, res.State.Turn)
	assert.Equal(t, 50, res.State.Players["B"].Health)
}

func TestParallel_LaterSiblingWinsOnSameField(t *testing.T) {
	e := Parallel(
		stubEffect{name: "early", succeeds: true, apply: func(s State) State {
			p := s.Players["A"]
			return s.WithPlayer(p.WithHealth(10))
		}},
		stubEffect{name: "late", succeeds: true, apply: func(s State) State {
			p := s.Players["B"]
			return s.WithPlayer(p.WithHealth(60))
		}},
	)

	res := e.Execute(Context{PlayerID: "A", State: twoPlayerState()})

	require.True(t, res.Success)
	// Both siblings wrote Players, so the later sibling's whole map wins
	// and the earlier sibling's edit to A is discarded.
	assert.Equal(t, 100, res.State.Players["A"].Health)
	assert.Equal(t, 60, res.State.Players["B"].Health)
}

func TestParallel_FailureDiscardsAllMutations(t *testing.T) {
	s := twoPlayerState()
	e := Parallel(
		stubEffect{name: "mutate", succeeds: true, apply: func(s State) State {
			return s.WithTurn(9)
		}},
		bad("boom", nil),
	)

	res := e.Execute(Context{PlayerID: "A", State: s})

	assert.False(t, res.Success)
	assert.Equal(t, s, res.State)
	assert.Equal(t, []string{"mutate ok", "boom failed"}, res.Messages)
}

func TestChain_SkipsContinuationOnFailure(t *testing.T) {
	called := false
	e := Chain(bad("first", nil), func(Result) Effect {
		called = true
		return ok("second", nil)
	})

	res := e.Execute(Context{PlayerID: "A", State: twoPlayerState()})

	assert.False(t, res.Success)
	assert.False(t, called, "continuation must not run after a failed first effect")
	assert.Equal(t, []string{"first failed"}, res.Messages)
}

func TestChain_BranchesOnFirstResult(t *testing.T) {
	first := stubEffect{name: "first", succeeds: true, apply: func(s State) State {
		return s.WithTurn(5)
	}}
	e := Chain(first, func(r Result) Effect {
		if r.State.Turn == 5 {
			return ok("turn-five", nil)
		}
		return bad("unexpected", nil)
	})

	res := e.Execute(Context{PlayerID: "A", State: twoPlayerState()})

	require.True(t, res.Success)
	assert.Equal(t, 5, res.State.Turn)
	assert.Equal(t, []string{"first ok", "turn-five ok"}, res.Messages)
}

func TestConditional_FalsePredicateIsSuccessfulNoop(t *testing.T) {
	s := twoPlayerState()
	var ran int
	e := Conditional(ok("guarded", &ran), func(Context) bool { return false })

	res := e.Execute(Context{PlayerID: "A", State: s})

	assert.True(t, res.Success)
	assert.Equal(t, s, res.State)
	assert.Equal(t, []string{"Condition not met for: guarded"}, res.Messages)
	assert.Equal(t, 0, ran)
}

func TestConditional_UsesPreEffectContext(t *testing.T) {
	// The predicate must see the original context even when the wrapped
	// effect mutates state; gate on turn and have the effect change it.
	inner := stubEffect{name: "inner", succeeds: true, apply: func(s State) State {
		return s.WithTurn(99)
	}}
	e := Sequence(
		Conditional(inner, func(ctx Context) bool { return ctx.State.Turn == 1 }),
		Conditional(inner, func(ctx Context) bool { return ctx.State.Turn == 1 }),
	)

	res := e.Execute(Context{PlayerID: "A", State: twoPlayerState()})

	require.True(t, res.Success)
	assert.Equal(t, []string{"inner ok", "Condition not met for: inner"}, res.Messages)
}

func TestRepeat_ThreadsStateAndStopsOnFailure(t *testing.T) {
	var ran int
	bump := stubEffect{name: "bump", succeeds: true, ran: &ran, apply: func(s State) State {
		return s.WithTurn(s.Turn + 1)
	}}

	res := Repeat(bump, 3).Execute(Context{PlayerID: "A", State: twoPlayerState()})

	require.True(t, res.Success)
	assert.Equal(t, 3, ran)
	assert.Equal(t, 4, res.State.Turn)
}

func TestRepeat_NonPositiveCountIsNoop(t *testing.T) {
	s := twoPlayerState()
	for _, count := range []int{0, -2} {
		var ran int
		res := Repeat(ok("noop", &ran), count).Execute(Context{PlayerID: "A", State: s})

		assert.True(t, res.Success)
		assert.Equal(t, s, res.State)
		assert.Empty(t, res.Messages)
		assert.Equal(t, 0, ran)
	}
}

func TestWithValue_VisibleOnlyToSubtree(t *testing.T) {
	var inside, outside any
	inner := effectFunc(func(ctx Context) Result {
		inside, _ = ctx.Value("bonus")
		return succeed(ctx.State)
	})
	sibling := effectFunc(func(ctx Context) Result {
		outside, _ = ctx.Value("bonus")
		return succeed(ctx.State)
	})

	e := Sequence(WithValue(inner, "bonus", 3), sibling)
	res := e.Execute(Context{PlayerID: "A", State: twoPlayerState()})

	require.True(t, res.Success)
	assert.Equal(t, 3, inside)
	assert.Nil(t, outside, "augmented value must not leak outside the wrapped subtree")
}

// effectFunc adapts a bare function to Effect for tests.
type effectFunc func(Context) Result

func (f effectFunc) Kind() Kind               { return Kind("func") }
func (f effectFunc) Description() string      { return "func" }
func (f effectFunc) Execute(c Context) Result { return f(c) }
