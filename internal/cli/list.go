package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"example.com/admin-console/internal/usecase/view"
)

func newProductsCmd(flags *globalFlags) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Fetch products once and print them with stock counts as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			svcs, err := newServices(cfg, newLogger(cmd.ErrOrStderr(), cfg.LogLevel))
			if err != nil {
				return err
			}

			products, err := svcs.products.Load(cmd.Context())
			if err != nil {
				return err
			}
			pv := view.Products(products, view.Filter{Search: search})
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"data":   pv.Items,
				"counts": pv.Counts,
			})
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive name filter")
	return cmd
}

func newOrdersCmd(flags *globalFlags) *cobra.Command {
	var pendingOnly bool

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Fetch orders once and print them as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			svcs, err := newServices(cfg, newLogger(cmd.ErrOrStderr(), cfg.LogLevel))
			if err != nil {
				return err
			}

			orders, err := svcs.orders.Load(cmd.Context())
			if err != nil {
				return err
			}
			rows := view.Orders(orders, nil)
			if pendingOnly {
				pending := rows[:0]
				for _, row := range rows {
					if !row.Delivered {
						pending = append(pending, row)
					}
				}
				rows = pending
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"data": rows})
		},
	}

	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "only orders not yet delivered")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
