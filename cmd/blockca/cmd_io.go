package main

import (
	"context"
	"errors"
	"fmt"

	"blockca/internal/config"
	"blockca/internal/core"
	"blockca/internal/persist"

	"github.com/spf13/cobra"
)

func (c *cli) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the sim to a JSON file (zstd compressed when the path ends in .zst)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.view(cmd.Context(), func(sim *core.Sim) error {
				dst := persist.NewFileStore(args[0])
				if err := persist.Save(cmd.Context(), dst, sim); err != nil {
					return err
				}
				cmd.Printf("exported %d element(s) and %d rule(s) to %s\n", sim.Len(), sim.RuleCount(), dst.Path())
				return nil
			})
		},
	}
}

func (c *cli) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Replace the stored sim with the contents of a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sim, report, err := persist.Load(ctx, persist.NewFileStore(args[0]))
			if errors.Is(err, persist.ErrNotFound) {
				return fmt.Errorf("%s does not exist", args[0])
			}
			if err != nil {
				return err
			}
			printDropped(cmd, report.Dropped)
			printConflicts(cmd, report.Conflicts)

			st, err := persist.Open(c.cfg.Store)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := persist.Save(ctx, st, sim); err != nil {
				return err
			}
			cmd.Printf("imported %d element(s) and %d rule(s) into %s\n", sim.Len(), sim.RuleCount(), st)
			return nil
		},
	}
}

func (c *cli) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>",
		Short: "Check a sim document without storing it",
		Long: `validate reports whether a document passes the schema, which rules would be
dropped for referencing missing elements, and which mirrored rules override
each other. It exits non-zero if anything would be lost on load.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := validateFile(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}
			if problems > 0 {
				return fmt.Errorf("%s: %d problem(s)", args[0], problems)
			}
			cmd.Printf("%s: ok\n", args[0])
			return nil
		},
	}
}

func validateFile(ctx context.Context, cmd *cobra.Command, path string) (int, error) {
	data, err := persist.NewFileStore(path).ReadDocument(ctx)
	if errors.Is(err, persist.ErrNotFound) {
		return 0, fmt.Errorf("%s does not exist", path)
	}
	if err != nil {
		return 0, err
	}
	sim, report, err := persist.Decode(data)
	if err != nil {
		return 0, err
	}
	printDropped(cmd, report.Dropped)
	printConflicts(cmd, report.Conflicts)
	problems := len(report.Dropped) + len(report.Conflicts)
	if err := sim.Check(); err != nil {
		cmd.Println(err)
		problems++
	}
	return problems, nil
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the sims held by the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Store.Backend != config.BackendSQLite {
				cmd.Println(c.cfg.Store.StorePath())
				return nil
			}
			st, err := persist.OpenSQLite(c.cfg.Store.StorePath(), c.cfg.Store.Name)
			if err != nil {
				return err
			}
			defer st.Close()
			names, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				cmd.Println(name)
			}
			return nil
		},
	}
}

func (c *cli) schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema stored documents must satisfy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Print(persist.SchemaJSON())
			return nil
		},
	}
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a named sim from a sqlite store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Store.Backend != config.BackendSQLite {
				return fmt.Errorf("delete needs the sqlite backend, not %q", c.cfg.Store.Backend)
			}
			st, err := persist.OpenSQLite(c.cfg.Store.StorePath(), c.cfg.Store.Name)
			if err != nil {
				return err
			}
			defer st.Close()
			target := st.WithName(args[0])
			if _, err := target.ReadDocument(cmd.Context()); err != nil {
				if errors.Is(err, persist.ErrNotFound) {
					return fmt.Errorf("no sim named %q", target.Name())
				}
				return err
			}
			if err := target.Delete(cmd.Context()); err != nil {
				return err
			}
			cmd.Printf("deleted %s\n", target)
			return nil
		},
	}
}
