// Package catalog loads authored card definitions from YAML and builds
// their effect trees. It is content-authoring glue: the effect algebra has
// no idea cards come from files, and drivers may just as well construct
// cards in code.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/cardforge/internal/core/game"
)

// File is the top-level YAML shape.
type File struct {
	Cards []CardDef `yaml:"cards"`
}

// CardDef is one authored card.
type CardDef struct {
	ID      string      `yaml:"id"`
	Name    string      `yaml:"name"`
	Cost    int         `yaml:"cost"`
	Tags    []string    `yaml:"tags"`
	Effects []EffectDef `yaml:"effects"`
}

// EffectDef is one node of an authored effect tree. Leaves use the scalar
// fields; combinators use Effects (children) and Times. Requires wraps the
// node in a resource-gated conditional.
type EffectDef struct {
	Kind      string      `yaml:"kind"`
	Amount    int         `yaml:"amount"`
	Target    string      `yaml:"target"`
	Count     int         `yaml:"count"`
	Resource  string      `yaml:"resource"`
	Operation string      `yaml:"operation"`
	Times     int         `yaml:"times"`
	Effects   []EffectDef `yaml:"effects"`
	Requires  *GateDef    `yaml:"requires"`
}

// GateDef gates a node on the acting player holding at least Amount of
// Resource.
type GateDef struct {
	Resource string `yaml:"resource"`
	Amount   int    `yaml:"amount"`
}

// Load reads and parses a catalog file.
func Load(path string) ([]game.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog YAML and builds every card's effect tree.
func Parse(data []byte) ([]game.Card, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Cards) == 0 {
		return nil, errors.New("catalog has no cards")
	}

	cards := make([]game.Card, 0, len(file.Cards))
	seen := map[string]bool{}
	for i, def := range file.Cards {
		card, err := buildCard(def)
		if err != nil {
			return nil, fmt.Errorf("card %d (%s): %w", i, def.ID, err)
		}
		if seen[card.ID] {
			return nil, fmt.Errorf("card %d: duplicate id %q", i, card.ID)
		}
		seen[card.ID] = true
		cards = append(cards, card)
	}
	return cards, nil
}

func buildCard(def CardDef) (game.Card, error) {
	var errs []string
	if def.ID == "" {
		errs = append(errs, "id is required")
	}
	if def.Name == "" {
		errs = append(errs, "name is required")
	}
	if def.Cost < 0 {
		errs = append(errs, "cost must be >= 0")
	}
	if len(def.Effects) == 0 {
		errs = append(errs, "at least one effect is required")
	}
	if len(errs) > 0 {
		return game.Card{}, errors.New(strings.Join(errs, "; "))
	}

	effects := make([]game.Effect, 0, len(def.Effects))
	for i, e := range def.Effects {
		built, err := buildEffect(e)
		if err != nil {
			return game.Card{}, fmt.Errorf("effect %d: %w", i, err)
		}
		effects = append(effects, built)
	}

	return game.Card{
		ID:      def.ID,
		Name:    def.Name,
		Cost:    def.Cost,
		Effects: effects,
		Tags:    def.Tags,
	}, nil
}

func buildEffect(def EffectDef) (game.Effect, error) {
	built, err := buildNode(def)
	if err != nil {
		return nil, err
	}
	if def.Requires != nil {
		if def.Requires.Resource == "" {
			return nil, errors.New("requires.resource is required")
		}
		built = game.Conditional(built, game.ResourceAtLeast(def.Requires.Resource, def.Requires.Amount))
	}
	return built, nil
}

func buildNode(def EffectDef) (game.Effect, error) {
	switch def.Kind {
	case "damage":
		if def.Amount <= 0 {
			return nil, errors.New("damage amount must be > 0")
		}
		return game.Damage(def.Amount, targetOrDefault(def.Target, game.TargetOpponent)), nil

	case "heal":
		if def.Amount <= 0 {
			return nil, errors.New("heal amount must be > 0")
		}
		return game.Heal(def.Amount, targetOrDefault(def.Target, game.TargetSelf)), nil

	case "draw":
		if def.Count <= 0 {
			return nil, errors.New("draw count must be > 0")
		}
		return game.DrawCards(def.Count, targetOrDefault(def.Target, game.TargetSelf)), nil

	case "resource":
		if def.Resource == "" {
			return nil, errors.New("resource name is required")
		}
		op := game.ResourceOp(def.Operation)
		switch op {
		case game.ResourceGain, game.ResourceSpend, game.ResourceSet:
		default:
			return nil, fmt.Errorf("resource operation must be one of gain, spend, set (got %q)", def.Operation)
		}
		return game.Resource(def.Resource, def.Amount, op, targetOrDefault(def.Target, game.TargetSelf)), nil

	case "sequence":
		children, err := buildChildren(def.Effects)
		if err != nil {
			return nil, err
		}
		return game.Sequence(children...), nil

	case "all":
		children, err := buildChildren(def.Effects)
		if err != nil {
			return nil, err
		}
		return game.All(children...), nil

	case "parallel":
		children, err := buildChildren(def.Effects)
		if err != nil {
			return nil, err
		}
		return game.Parallel(children...), nil

	case "repeated":
		if def.Times <= 0 {
			return nil, errors.New("repeated times must be > 0")
		}
		children, err := buildChildren(def.Effects)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return nil, errors.New("repeated needs at least one child effect")
		}
		inner := children[0]
		if len(children) > 1 {
			inner = game.Sequence(children...)
		}
		return game.Repeat(inner, def.Times), nil

	default:
		return nil, fmt.Errorf("unknown effect kind %q", def.Kind)
	}
}

func buildChildren(defs []EffectDef) ([]game.Effect, error) {
	children := make([]game.Effect, 0, len(defs))
	for i, def := range defs {
		built, err := buildEffect(def)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		children = append(children, built)
	}
	return children, nil
}

func targetOrDefault(s string, fallback game.Target) game.Target {
	if s == "" {
		return fallback
	}
	return game.Target(s)
}
