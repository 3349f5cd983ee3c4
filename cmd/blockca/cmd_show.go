package main

import (
	"fmt"
	"slices"
	"strings"

	"blockca/internal/core"
	"blockca/internal/ui"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
)

func (c *cli) showCmd() *cobra.Command {
	var expanded bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the palette, symmetry and rule table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.view(cmd.Context(), func(sim *core.Sim) error {
				cmd.Print(renderSim(ui.NewState(sim)))
				if expanded {
					cmd.Print(renderExpanded(sim))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&expanded, "expanded", false, "also list every input the table resolves, mirrors included")
	return cmd
}

// renderExpanded lists the effective rule set one line per input, sorted.
func renderExpanded(sim *core.Sim) string {
	var rules []core.Rule
	for in, out := range sim.ExpandedRules() {
		rules = append(rules, core.Rule{Input: in, Output: out})
	}
	slices.SortFunc(rules, func(a, b core.Rule) int { return a.Input.Compare(b.Input) })

	var b strings.Builder
	b.WriteString("\n" + headingStyle.Render(fmt.Sprintf("Resolved inputs (%d)", len(rules))) + "\n")
	for _, r := range rules {
		fmt.Fprintf(&b, "    %s\n", r)
	}
	return b.String()
}

func swatch(e core.Element) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(formatColor(e.Color)[:7])).
		Render("  ")
}

// renderBlock draws a block as two lines of two swatches.
func renderBlock(cells [4]core.Element) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		swatch(cells[0])+swatch(cells[1]),
		swatch(cells[2])+swatch(cells[3]),
	)
}

func renderSim(s *ui.State) string {
	sim := s.Sim()
	var b strings.Builder

	b.WriteString(headingStyle.Render("Elements") + "\n")
	for i, e := range sim.Elements() {
		fmt.Fprintf(&b, "%3d %s %-16s %s\n", i, swatch(e), e.Name, dimStyle.Render(formatColor(e.Color)))
	}

	b.WriteString("\n" + headingStyle.Render("Symmetry") + "\n")
	fmt.Fprintf(&b, "    %s\n", sim.Symmetry())

	b.WriteString("\n" + headingStyle.Render(fmt.Sprintf("Rules (%d)", sim.RuleCount())) + "\n")
	for _, row := range s.Rows() {
		arrow := lipgloss.NewStyle().Padding(0, 1).Render("->\n  ")
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			renderBlock(row.Input), arrow, renderBlock(row.Output),
			"  "+dimStyle.Render(row.Rule.String()),
		)
		b.WriteString(line + "\n")
		if row.Err != nil {
			b.WriteString(errStyle.Render(row.Err.Error()) + "\n")
		}
	}
	return b.String()
}
