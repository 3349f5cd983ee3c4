package main

import (
	"blockca/internal/core"

	"github.com/spf13/cobra"
)

func (c *cli) elementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "element",
		Aliases: []string{"el"},
		Short:   "Edit the element palette",
	}
	cmd.AddCommand(c.elementAddCmd(), c.elementRemoveCmd(), c.elementResizeCmd(), c.elementSetCmd())
	return cmd
}

func (c *cli) elementAddCmd() *cobra.Command {
	var label, hex string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append an element",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			elem := core.DefaultElement()
			if label != "" {
				elem.Name = label
			}
			if hex != "" {
				col, err := parseColor(hex)
				if err != nil {
					return err
				}
				elem.Color = col
			}
			return c.update(cmd.Context(), func(sim *core.Sim) error {
				idx := sim.AddElement()
				if err := sim.SetElement(idx, elem); err != nil {
					return err
				}
				cmd.Printf("added element %d %q\n", idx, elem.Name)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "element name")
	cmd.Flags().StringVar(&hex, "color", "", "element color as #rrggbb or #rrggbbaa")
	return cmd
}

func (c *cli) elementRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "Delete an element; rules that use it are dropped and higher indices shift down",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return c.update(cmd.Context(), func(sim *core.Sim) error {
				dropped, err := sim.RemoveElement(idx)
				if err != nil {
					return err
				}
				printDropped(cmd, dropped)
				cmd.Printf("removed element %d\n", idx)
				return nil
			})
		},
	}
}

func (c *cli) elementResizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resize <count>",
		Short: "Grow or shrink the palette; rules that fall out of range are dropped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return c.update(cmd.Context(), func(sim *core.Sim) error {
				printDropped(cmd, sim.ResizePalette(n))
				cmd.Printf("palette has %d element(s)\n", sim.Len())
				return nil
			})
		},
	}
}

func (c *cli) elementSetCmd() *cobra.Command {
	var label, hex string
	cmd := &cobra.Command{
		Use:   "set <index>",
		Short: "Rename or recolor an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return c.update(cmd.Context(), func(sim *core.Sim) error {
				elem, err := sim.Element(idx)
				if err != nil {
					return err
				}
				if cmd.Flags().Changed("label") {
					elem.Name = label
				}
				if hex != "" {
					if elem.Color, err = parseColor(hex); err != nil {
						return err
					}
				}
				if err := sim.SetElement(idx, elem); err != nil {
					return err
				}
				cmd.Printf("element %d: %q %s\n", idx, elem.Name, formatColor(elem.Color))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "new element name")
	cmd.Flags().StringVar(&hex, "color", "", "new color as #rrggbb or #rrggbbaa")
	return cmd
}
