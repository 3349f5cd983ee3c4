package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"blockca/internal/config"
	"blockca/internal/core"
	"blockca/internal/logging"
	"blockca/internal/persist"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	root := newCLI().root()
	root.SetOut(os.Stdout)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// cli carries the state shared by every command once flags are resolved.
type cli struct {
	flags  config.Flags
	cfg    config.Config
	logger *zap.Logger
}

func newCLI() *cli { return &cli{} }

func (c *cli) root() *cobra.Command {
	root := &cobra.Command{
		Use:   "blockca",
		Short: "Author rules for a Margolus block cellular automaton",
		Long: `blockca edits a palette of elements and a table of 2x2 block rewrite rules.

Rules are stored in a JSON document on disk (optionally zstd compressed with a
.zst suffix) or as named sims in a SQLite database. Every command loads the
sim, applies its change and saves it back.

Blocks are written a,b,c,d in row-major order: top-left, top-right,
bottom-left, bottom-right.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.flags.Resolve(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			c.cfg = cfg
			if c.logger != nil {
				return nil
			}
			c.logger, err = logging.New(cfg.Log)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	c.flags.Bind(root.PersistentFlags())

	root.AddCommand(
		c.showCmd(),
		c.elementCmd(),
		c.ruleCmd(),
		c.symmetryCmd(),
		c.exportCmd(),
		c.importCmd(),
		c.validateCmd(),
		c.listCmd(),
		c.deleteCmd(),
		c.schemaCmd(),
		c.editCmd(),
	)
	return root
}

// view loads the configured sim for reading.
func (c *cli) view(ctx context.Context, fn func(*core.Sim) error) error {
	st, err := persist.Open(c.cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(persist.LoadOrDefault(ctx, st, c.logger))
}

// update loads the configured sim, applies fn and saves the result. An
// absent document starts from the defaults; an unreadable one is left
// untouched and the command fails.
func (c *cli) update(ctx context.Context, fn func(*core.Sim) error) error {
	st, err := persist.Open(c.cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()
	sim, report, err := persist.Load(ctx, st)
	switch {
	case errors.Is(err, persist.ErrNotFound):
		sim = core.New()
	case err != nil:
		return fmt.Errorf("refusing to overwrite %s: %w", st, err)
	}
	for _, r := range report.Dropped {
		c.logger.Warn("dropped rule referencing a missing element", zap.Stringer("rule", r))
	}
	if err := fn(sim); err != nil {
		return err
	}
	if err := persist.Save(ctx, st, sim); err != nil {
		return err
	}
	c.logger.Debug("saved sim",
		zap.Stringer("store", st),
		zap.Int("elements", sim.Len()),
		zap.Int("rules", sim.RuleCount()))
	return nil
}

func printDropped(cmd *cobra.Command, dropped []core.Rule) {
	for _, r := range dropped {
		cmd.Printf("dropped rule %s\n", r)
	}
}

func printConflicts(cmd *cobra.Command, conflicts []core.SymmetryConflict) {
	for _, conflict := range conflicts {
		cmd.Println(conflict.Error())
	}
}
