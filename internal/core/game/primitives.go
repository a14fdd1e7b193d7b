package game

import "fmt"

// Damage deals amount damage to the target's health, floored at 0. Actual
// damage is capped at the target's current health so the messages report
// what really happened.
func Damage(amount int, target Target) Effect {
	return damageEffect{
		amount: amount,
		target: target,
		desc:   fmt.Sprintf("deal %d damage to %s", amount, target),
	}
}

type damageEffect struct {
	amount int
	target Target
	desc   string
}

func (e damageEffect) Kind() Kind          { return KindDamage }
func (e damageEffect) Description() string { return e.desc }

func (e damageEffect) Execute(ctx Context) Result {
	ids := resolveTargets(ctx, e.target)
	if ids == nil {
		return fail(ctx.State, fmt.Sprintf("no %s target for: %s", e.target, e.desc))
	}

	state := ctx.State
	messages := make([]string, 0, len(ids))
	for _, id := range ids {
		p := state.Players[id]
		actual := e.amount
		if actual > p.Health {
			actual = p.Health
		}
		state = state.WithPlayer(p.WithHealth(p.Health - actual))
		msg := fmt.Sprintf("%s takes %d damage", id, actual)
		messages = append(messages, msg)
		ctx.logf(msg)
	}
	return succeed(state, messages...)
}

// Heal restores amount health to the target, ceilinged at MaxHealth. Actual
// healing is capped at the missing health.
func Heal(amount int, target Target) Effect {
	return healEffect{
		amount: amount,
		target: target,
		desc:   fmt.Sprintf("heal %d health to %s", amount, target),
	}
}

type healEffect struct {
	amount int
	target Target
	desc   string
}

func (e healEffect) Kind() Kind          { return KindHeal }
func (e healEffect) Description() string { return e.desc }

func (e healEffect) Execute(ctx Context) Result {
	ids := resolveTargets(ctx, e.target)
	if ids == nil {
		return fail(ctx.State, fmt.Sprintf("no %s target for: %s", e.target, e.desc))
	}

	state := ctx.State
	messages := make([]string, 0, len(ids))
	for _, id := range ids {
		p := state.Players[id]
		actual := e.amount
		if missing := p.MaxHealth - p.Health; actual > missing {
			actual = missing
		}
		state = state.WithPlayer(p.WithHealth(p.Health + actual))
		msg := fmt.Sprintf("%s heals %d health", id, actual)
		messages = append(messages, msg)
		ctx.logf(msg)
	}
	return succeed(state, messages...)
}

// DrawCards moves count cards from the tail of the target's deck to the tail
// of their hand. An empty deck with a non-empty discard pile triggers one
// reshuffle: the whole discard pile becomes the deck, order preserved. Once
// both are empty the draw stops early; running out of cards is not a
// failure.
func DrawCards(count int, target Target) Effect {
	return drawEffect{
		count:  count,
		target: target,
		desc:   fmt.Sprintf("draw %d card(s) for %s", count, target),
	}
}

type drawEffect struct {
	count  int
	target Target
	desc   string
}

func (e drawEffect) Kind() Kind          { return KindDraw }
func (e drawEffect) Description() string { return e.desc }

func (e drawEffect) Execute(ctx Context) Result {
	ids := resolveTargets(ctx, e.target)
	if ids == nil {
		return fail(ctx.State, fmt.Sprintf("no %s target for: %s", e.target, e.desc))
	}

	id := ids[0]
	p := ctx.State.Players[id]

	// Work on copies; the incoming player's slices are shared structure.
	deck := append([]Card(nil), p.Deck...)
	hand := append([]Card(nil), p.Hand...)
	discard := append([]Card(nil), p.DiscardPile...)

	var messages []string
	for i := 0; i < e.count; i++ {
		if len(deck) == 0 {
			if len(discard) == 0 {
				msg := fmt.Sprintf("%s cannot draw: no cards left", id)
				messages = append(messages, msg)
				ctx.logf(msg)
				break
			}
			deck = discard
			discard = nil
			msg := fmt.Sprintf("%s reshuffles the discard pile into the deck", id)
			messages = append(messages, msg)
			ctx.logf(msg)
		}
		card := deck[len(deck)-1]
		deck = deck[:len(deck)-1]
		hand = append(hand, card)
		msg := fmt.Sprintf("%s draws %s", id, card.Name)
		messages = append(messages, msg)
		ctx.logf(msg)
	}

	state := ctx.State.WithPlayer(p.WithZones(hand, deck, discard))
	return succeed(state, messages...)
}

// ResourceOp selects how a resource effect manipulates the target's pool.
type ResourceOp string

const (
	ResourceGain  ResourceOp = "gain"
	ResourceSpend ResourceOp = "spend"
	ResourceSet   ResourceOp = "set"
)

// Resource manipulates one named resource on the target. Gain adds to the
// current amount (missing resources start at 0), set overwrites
// unconditionally, and spend requires the current amount to cover the cost —
// the only primitive whose failure is a business rule rather than a missing
// target.
func Resource(resourceType string, amount int, op ResourceOp, target Target) Effect {
	return resourceEffect{
		resource: resourceType,
		amount:   amount,
		op:       op,
		target:   target,
		desc:     fmt.Sprintf("%s %d %s for %s", op, amount, resourceType, target),
	}
}

type resourceEffect struct {
	resource string
	amount   int
	op       ResourceOp
	target   Target
	desc     string
}

func (e resourceEffect) Kind() Kind          { return KindResource }
func (e resourceEffect) Description() string { return e.desc }

func (e resourceEffect) Execute(ctx Context) Result {
	ids := resolveTargets(ctx, e.target)
	if ids == nil {
		return fail(ctx.State, fmt.Sprintf("no %s target for: %s", e.target, e.desc))
	}

	id := ids[0]
	p := ctx.State.Players[id]
	current := p.Resource(e.resource)

	var next int
	var msg string
	switch e.op {
	case ResourceGain:
		next = current + e.amount
		msg = fmt.Sprintf("%s gains %d %s (now %d)", id, e.amount, e.resource, next)
	case ResourceSet:
		next = e.amount
		msg = fmt.Sprintf("%s sets %s to %d", id, e.resource, next)
	case ResourceSpend:
		if current < e.amount {
			return fail(ctx.State, fmt.Sprintf("%s cannot spend %s: %d/%d available", id, e.resource, current, e.amount))
		}
		next = current - e.amount
		msg = fmt.Sprintf("%s spends %d %s (%d left)", id, e.amount, e.resource, next)
	default:
		return fail(ctx.State, fmt.Sprintf("unknown resource operation: %s", e.op))
	}

	state := ctx.State.WithPlayer(p.WithResource(e.resource, next))
	ctx.logf(msg)
	return succeed(state, msg)
}

// ResourceAtLeast builds a predicate for Conditional that checks whether the
// acting player holds at least amount of the named resource.
func ResourceAtLeast(resourceType string, amount int) func(Context) bool {
	return func(ctx Context) bool {
		p, ok := ctx.State.Player(ctx.PlayerID)
		return ok && p.Resource(resourceType) >= amount
	}
}
