package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"oms-client/internal/domain"
)

func (a *app) salesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "List, inspect and mutate sales records",
	}
	cmd.AddCommand(
		a.salesListCmd(),
		a.salesGetCmd(),
		a.salesAddCmd(),
		a.salesDeleteCmd(),
	)
	return cmd
}

func (a *app) salesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the sales collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sales, err := a.services.Sales.List(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPRODUCT\tQTY\tPRICE\tTOTAL")
			for _, s := range sales {
				fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\n", s.ID, s.ProductName, s.Quantity, s.Price, s.TotalPrice)
			}
			w.Flush()
			return nil
		},
	}
}

func (a *app) salesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print a single sale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.services.Sales.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s x%d\t%.2f\n", s.ID, s.ProductName, s.Quantity, s.TotalPrice)
			return nil
		},
	}
}

func (a *app) salesAddCmd() *cobra.Command {
	var (
		product string
		name    string
		qty     int
		price   float64
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a sale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if product == "" || qty <= 0 {
				return fmt.Errorf("%w: --product and a positive --qty are required", domain.ErrValidation)
			}
			s, err := a.services.Sales.Create(cmd.Context(), domain.SaleInput{
				Product:     product,
				ProductName: name,
				Quantity:    qty,
				Price:       price,
				TotalPrice:  float64(qty) * price,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recorded %s (total %.2f)\n", s.ID, s.TotalPrice)
			return nil
		},
	}
	cmd.Flags().StringVar(&product, "product", "", "product id")
	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().IntVar(&qty, "qty", 0, "quantity sold")
	cmd.Flags().Float64Var(&price, "price", 0, "unit price")
	return cmd
}

func (a *app) salesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a sale record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.services.Sales.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}
