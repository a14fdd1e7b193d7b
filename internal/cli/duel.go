package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/example/cardforge/internal/capability"
	"github.com/example/cardforge/internal/catalog"
	"github.com/example/cardforge/internal/config"
	"github.com/example/cardforge/internal/core/game"
	"github.com/example/cardforge/internal/wire"
)

// DuelCmd returns the duel command: a scripted two-player demonstration
// driver for the effect algebra. The library itself never decides which
// effects run or when; this command plays that external-driver role.
func DuelCmd() *cobra.Command {
	var seed int64
	var turns int
	var catalogPath string
	var storagePath string
	var save bool

	cmd := &cobra.Command{
		Use:   "duel",
		Short: "Run a scripted two-player duel",
		Long: `Run a deterministic duel between two scripted players.

Each turn, a player draws a card, gains one mana, and plays the first card
in hand they can afford. The same seed always replays the same duel.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Load(cwd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
				cfg.Seed = seed
			}
			if storagePath != "" {
				cfg.StoragePath = storagePath
			}
			if catalogPath == "" {
				catalogPath = cfg.CatalogPath
			}

			registry, err := wire.BuildRegistry(cfg, os.Stderr)
			if err != nil {
				return err
			}
			return runDuel(cmd.OutOrStdout(), registry, catalogPath, turns, save)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed; the same seed replays the same duel")
	cmd.Flags().IntVar(&turns, "turns", 6, "number of turns to play")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "card catalog YAML (built-in cards when empty)")
	cmd.Flags().StringVar(&storagePath, "storage", "", "sqlite file for saved duels (in-memory when empty)")
	cmd.Flags().BoolVar(&save, "save", false, "persist the final state through the storage capability")

	cmd.AddCommand(duelShowCmd())

	return cmd
}

func duelShowCmd() *cobra.Command {
	var storagePath string

	cmd := &cobra.Command{
		Use:   "show <key>",
		Short: "Print the final standings of a saved duel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if storagePath == "" {
				return fmt.Errorf("--storage is required to look up saved duels")
			}
			cfg := config.Default()
			cfg.StoragePath = storagePath

			registry, err := wire.BuildRegistry(cfg, os.Stderr)
			if err != nil {
				return err
			}

			var state game.State
			found, err := registry.Storage().Load(cmd.Context(), args[0], &state)
			if err != nil {
				return fmt.Errorf("load duel: %w", err)
			}
			if !found {
				return fmt.Errorf("no saved duel under %q", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Duel %s (turn %d, %s phase):\n", args[0], state.Turn, state.Phase)
			ids := make([]string, 0, len(state.Players))
			for id := range state.Players {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				p := state.Players[id]
				fmt.Fprintf(out, "  %s: %d/%d health, %d mana, %d cards in hand\n",
					id, p.Health, p.MaxHealth, p.Resource("mana"), len(p.Hand))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&storagePath, "storage", "", "sqlite file holding saved duels")
	return cmd
}

func runDuel(out io.Writer, registry *capability.Registry, catalogPath string, turns int, save bool) error {
	logger := registry.Logger()
	rng := registry.RandomSource()
	bus := registry.Events()
	store := registry.Storage()

	cards, err := duelCards(catalogPath)
	if err != nil {
		return err
	}

	playerIDs := []string{"player1", "player2"}
	players := make([]game.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		players = append(players, game.Player{
			ID:        id,
			Health:    30,
			MaxHealth: 30,
			Deck:      capability.Shuffle(rng, cards),
			Resources: map[string]int{"mana": 0},
		})
	}
	state := game.NewState(playerIDs[0], players...)

	highlight := color.New(color.FgCyan)
	unsubscribe := bus.Subscribe("card.played", func(data any) error {
		fmt.Fprintf(out, "  %s\n", highlight.Sprintf("» %v", data))
		return nil
	})
	defer unsubscribe()

	for turn := 1; turn <= turns; turn++ {
		fmt.Fprintf(out, "--- turn %d ---\n", turn)
		for _, id := range playerIDs {
			state = state.WithTurn(turn).WithCurrentPlayer(id)
			next, err := playTurn(out, bus, logger, rng, state, id)
			if err != nil {
				return err
			}
			state = next
		}
	}

	fmt.Fprintf(out, "\nFinal standings after %d turns:\n", turns)
	for _, id := range playerIDs {
		p := state.Players[id]
		fmt.Fprintf(out, "  %s: %d/%d health, %d mana, %d cards in hand\n",
			id, p.Health, p.MaxHealth, p.Resource("mana"), len(p.Hand))
	}

	if save {
		key := "duel-" + uuid.NewString()
		if err := store.Save(context.Background(), key, state); err != nil {
			return fmt.Errorf("save duel: %w", err)
		}
		fmt.Fprintf(out, "\nSaved as %s\n", color.New(color.FgGreen).Sprint(key))
	}
	return nil
}

// playTurn runs one player's scripted turn: draw one, gain one mana, play
// the first affordable card. Card cost is spent through a chained effect so
// the behavior tree only runs after payment succeeds.
func playTurn(out io.Writer, bus *capability.Bus, logger *capability.Logger, rng *capability.Random, state game.State, id string) (game.State, error) {
	ctx := game.Context{
		PlayerID: id,
		State:    state,
		Random:   rng.Float64,
		Log:      func(m string) { logger.Debugf("%s", m) },
	}

	upkeep := game.Sequence(
		game.DrawCards(1, game.TargetSelf),
		game.Resource("mana", 1, game.ResourceGain, game.TargetSelf),
	)
	res := upkeep.Execute(ctx)
	printMessages(out, res.Messages)
	if !res.Success {
		return state, fmt.Errorf("upkeep failed for %s: %v", id, res.Messages)
	}
	state = res.State

	p := state.Players[id]
	for _, card := range p.Hand {
		if card.Cost > p.Resource("mana") {
			continue
		}
		play := game.Chain(
			game.Resource("mana", card.Cost, game.ResourceSpend, game.TargetSelf),
			func(game.Result) game.Effect { return card.Behavior() },
		)
		res = play.Execute(game.Context{PlayerID: id, State: state, Random: ctx.Random, Log: ctx.Log})
		printMessages(out, res.Messages)
		if res.Success {
			bus.Emit("card.played", fmt.Sprintf("%s plays %s", id, card.Name))
			state = res.State
		}
		break
	}
	return state, nil
}

func printMessages(out io.Writer, messages []string) {
	for _, m := range messages {
		fmt.Fprintf(out, "  %s\n", m)
	}
}

// duelCards loads the catalog or falls back to a small built-in set.
func duelCards(path string) ([]game.Card, error) {
	if path != "" {
		return catalog.Load(path)
	}
	return []game.Card{
		{ID: "strike", Name: "Strike", Cost: 1, Tags: []string{"attack"},
			Effects: []game.Effect{game.Damage(4, game.TargetOpponent)}},
		{ID: "mend", Name: "Mend", Cost: 1, Tags: []string{"support"},
			Effects: []game.Effect{game.Heal(3, game.TargetSelf)}},
		{ID: "flurry", Name: "Flurry", Cost: 2, Tags: []string{"attack"},
			Effects: []game.Effect{game.Repeat(game.Damage(2, game.TargetOpponent), 2)}},
		{ID: "insight", Name: "Insight", Cost: 2, Tags: []string{"support"},
			Effects: []game.Effect{game.DrawCards(2, game.TargetSelf)}},
		{ID: "warcry", Name: "War Cry", Cost: 3, Tags: []string{"attack", "support"},
			Effects: []game.Effect{game.Parallel(
				game.Damage(3, game.TargetOpponent),
				game.Resource("mana", 1, game.ResourceGain, game.TargetSelf),
			)}},
	}, nil
}
