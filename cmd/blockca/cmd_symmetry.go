package main

import (
	"fmt"

	"blockca/internal/core"

	"github.com/spf13/cobra"
)

func (c *cli) symmetryCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "symmetry [on|off|toggle]",
		Short:     "Show or change horizontal symmetry",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.view(cmd.Context(), func(sim *core.Sim) error {
					sym := sim.Symmetry()
					cmd.Printf("symmetry: %s\n", sym)
					for _, axis := range core.Axes() {
						state := "off"
						if sym.Enabled(axis) {
							state = "on"
						}
						cmd.Printf("  %s: %s\n", axis, state)
					}
					return nil
				})
			}
			return c.update(cmd.Context(), func(sim *core.Sim) error {
				var conflicts []core.SymmetryConflict
				switch args[0] {
				case "on":
					conflicts = sim.SetSymmetry(core.AxisHorizontal, true)
				case "off":
					conflicts = sim.SetSymmetry(core.AxisHorizontal, false)
				case "toggle":
					conflicts = sim.ToggleSymmetry(core.AxisHorizontal)
				default:
					return fmt.Errorf("unknown symmetry mode %q (want on, off or toggle)", args[0])
				}
				printConflicts(cmd, conflicts)
				cmd.Printf("symmetry: %s\n", sim.Symmetry())
				return nil
			})
		},
	}
}
