package main

import (
	"blockca/internal/core"

	"github.com/spf13/cobra"
)

func (c *cli) ruleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Edit the rule table",
	}
	cmd.AddCommand(c.ruleSetCmd(), c.ruleRemoveCmd(), c.ruleLookupCmd())
	return cmd
}

func (c *cli) ruleSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <input> <output>",
		Short: "Map an input block to an output block",
		Example: `  blockca rule set 1,0,0,0 0,0,1,0
  blockca rule set 1,1,0,0 0,0,1,1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseBlock(args[0])
			if err != nil {
				return err
			}
			out, err := parseBlock(args[1])
			if err != nil {
				return err
			}
			return c.update(cmd.Context(), func(sim *core.Sim) error {
				conflict, err := sim.SetRule(in, out)
				if err != nil {
					return err
				}
				if conflict != nil {
					cmd.Println(conflict.Error())
				}
				cmd.Printf("set rule %s\n", core.Rule{Input: in, Output: out})
				return nil
			})
		},
	}
}

func (c *cli) ruleRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <input>",
		Short: "Delete the rule for an input block (and its mirror when symmetry is on)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseBlock(args[0])
			if err != nil {
				return err
			}
			return c.update(cmd.Context(), func(sim *core.Sim) error {
				if _, ok := sim.Lookup(in); !ok {
					cmd.Printf("no rule for %s\n", in)
					return nil
				}
				sim.RemoveRule(in)
				cmd.Printf("removed rule for %s\n", in)
				return nil
			})
		},
	}
}

func (c *cli) ruleLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <input>",
		Short: "Print the output a block rewrites to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseBlock(args[0])
			if err != nil {
				return err
			}
			return c.view(cmd.Context(), func(sim *core.Sim) error {
				out, ok := sim.Lookup(in)
				if !ok {
					cmd.Printf("no rule for %s\n", in)
					return nil
				}
				cmd.Println(core.Rule{Input: in, Output: out})
				return nil
			})
		},
	}
}
