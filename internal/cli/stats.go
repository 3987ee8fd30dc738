package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"oms-client/internal/report"
)

func (a *app) statsCmd() *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print dashboard aggregates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			orders, err := a.services.Orders.List(ctx)
			if err != nil {
				return err
			}
			sales, err := a.services.Sales.List(ctx)
			if err != nil {
				return err
			}
			remote, err := a.services.Sales.Stats(ctx)
			if err != nil {
				return err
			}

			s := report.SummarizeOrders(orders)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "orders: %d total (%d pending, %d shipped, %d delivered)\n",
				s.TotalOrders, s.Pending, s.Shipped, s.Delivered)
			fmt.Fprintf(out, "order revenue: %.2f (avg %.2f)\n", s.TotalRevenue, s.AverageOrderValue)
			fmt.Fprintf(out, "sales: %d records, revenue %.2f\n", remote.TotalSales, remote.TotalRevenue)

			for i, pr := range report.TopProducts(sales, top) {
				fmt.Fprintf(out, "  #%d %s: %d sold, revenue %.2f\n", i+1, pr.Name, pr.Quantity, pr.Revenue)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 5, "how many best sellers to show")
	return cmd
}
