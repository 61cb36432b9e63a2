package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gravitrone/printdb/internal/api"
)

// CatalogOpener hands commands a catalog and the func that releases it.
type CatalogOpener func() (api.Catalog, func() error, error)

// RefsCmd returns the `printdb refs` command group.
func RefsCmd(open CatalogOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refs",
		Short: "Manage tags, materials and categories",
	}
	cmd.AddCommand(refsListCmd(open))
	cmd.AddCommand(refsAddCmd(open))
	cmd.AddCommand(refsRmCmd(open))
	return cmd
}

func refsListCmd(open CatalogOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "list <tags|materials|categories>",
		Short: "List references of one kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := api.ParseRefKind(args[0])
			if err != nil {
				return err
			}
			return withCatalog(open, func(c api.Catalog) error {
				refs, err := c.ListReferences(kind)
				if err != nil {
					return fmt.Errorf("list %s: %w", kind.Path(), err)
				}
				out := cmd.OutOrStdout()
				if len(refs) == 0 {
					fmt.Fprintf(out, "no %s found\n", kind.Path())
					return nil
				}
				for _, r := range refs {
					if kind == api.RefCategory {
						fmt.Fprintf(out, "  %4d  %-3s  %s\n", r.ID, r.SKUInitials, r.Name)
						continue
					}
					fmt.Fprintf(out, "  %4d  %s\n", r.ID, r.Name)
				}
				return nil
			})
		},
	}
}

func refsAddCmd(open CatalogOpener) *cobra.Command {
	var initials, description string
	cmd := &cobra.Command{
		Use:   "add <kind> <name>",
		Short: "Create a reference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := api.ParseRefKind(args[0])
			if err != nil {
				return err
			}
			if kind != api.RefCategory && (initials != "" || description != "") {
				return fmt.Errorf("--initials and --description only apply to categories")
			}
			return withCatalog(open, func(c api.Catalog) error {
				ref, err := c.CreateReference(kind, api.ReferenceInput{
					Name:        args[1],
					SKUInitials: initials,
					Description: description,
				})
				if err != nil {
					return fmt.Errorf("create %s: %w", kind, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s %q (id %d)\n", kind, ref.Name, ref.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&initials, "initials", "", "SKU initials for a category (up to 3 letters)")
	cmd.Flags().StringVar(&description, "description", "", "category description")
	return cmd
}

func refsRmCmd(open CatalogOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <kind> <id>",
		Short: "Delete a reference no record uses",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := api.ParseRefKind(args[0])
			if err != nil {
				return err
			}
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[1])
			}
			return withCatalog(open, func(c api.Catalog) error {
				if err := c.DeleteReference(kind, id); err != nil {
					return fmt.Errorf("delete %s %d: %w", kind, id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %d\n", kind, id)
				return nil
			})
		},
	}
}

func withCatalog(open CatalogOpener, fn func(api.Catalog) error) error {
	c, closeFn, err := open()
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(c)
}
