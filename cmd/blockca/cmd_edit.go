package main

import (
	"context"

	"blockca/internal/app"
	"blockca/internal/core"
	"blockca/internal/persist"
	"blockca/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *cli) editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the graphical rule editor (build with -tags ebiten)",
		Long: `edit opens a window listing the palette, the symmetry toggle and every rule.
Click a cell to pick its element. Ctrl+S saves, H toggles symmetry, N adds an
element, Enter commits the draft rule and Q quits. The sim is saved on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := persist.Open(c.cfg.Store)
			if err != nil {
				return err
			}
			defer st.Close()
			state := ui.NewState(persist.LoadOrDefault(ctx, st, c.logger))
			return app.Run(state, c.cfg.Editor, func(sim *core.Sim) error {
				return c.save(ctx, st, sim)
			})
		},
	}
}

func (c *cli) save(ctx context.Context, st persist.Store, sim *core.Sim) error {
	if err := persist.Save(ctx, st, sim); err != nil {
		c.logger.Error("save failed", zap.Stringer("store", st), zap.Error(err))
		return err
	}
	c.logger.Info("saved sim", zap.Stringer("store", st), zap.Int("rules", sim.RuleCount()))
	return nil
}
