package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/printdb/internal/api"
)

type recordGetter interface {
	GetRecord(id int) (*api.Record, error)
}

// RecordsCmd returns the `printdb records` command group.
func RecordsCmd(open CatalogOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Search and inspect catalog records",
	}
	cmd.AddCommand(recordsListCmd(open))
	cmd.AddCommand(recordsShowCmd(open))
	return cmd
}

func recordsListCmd(open CatalogOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List records, optionally filtered by name or SKU",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return withCatalog(open, func(c api.Catalog) error {
				records, err := c.SearchRecords(query)
				if err != nil {
					return fmt.Errorf("search records: %w", err)
				}
				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "no records found")
					return nil
				}
				for _, r := range records {
					fmt.Fprintf(out, "  %4d  %-10s  %s\n", r.ID, r.SKU, r.Name)
				}
				return nil
			})
		},
	}
}

func recordsShowCmd(open CatalogOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			return withCatalog(open, func(c api.Catalog) error {
				getter, ok := c.(recordGetter)
				if !ok {
					return fmt.Errorf("catalog cannot fetch single records")
				}
				r, err := getter.GetRecord(id)
				if err != nil {
					return fmt.Errorf("get record %d: %w", id, err)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s  %s\n", r.SKU, r.Name)
				if r.Description != nil {
					fmt.Fprintf(out, "  %s\n", *r.Description)
				}
				fmt.Fprintf(out, "  production: %t\n", r.Production)
				if r.StockQuantity != nil {
					fmt.Fprintf(out, "  stock: %d\n", *r.StockQuantity)
				}
				return nil
			})
		},
	}
}
