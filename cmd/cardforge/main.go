package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/cardforge/internal/cli"
	"github.com/example/cardforge/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "cardforge",
		Short:   "cardforge - composable card effects",
		Version: version.String(),
		Long: `cardforge builds card behaviors as composable effect trees and runs
them against an immutable game state. The duel command plays a scripted
match; the catalog commands inspect YAML card definitions.`,
	}

	rootCmd.AddCommand(cli.DuelCmd())
	rootCmd.AddCommand(cli.CatalogCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
