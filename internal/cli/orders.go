package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"oms-client/internal/domain"
	"oms-client/internal/service"
)

func (a *app) ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List, inspect and mutate orders",
	}
	cmd.AddCommand(
		a.ordersListCmd(),
		a.ordersGetCmd(),
		a.ordersCreateCmd(),
		a.ordersStatusCmd(),
		a.ordersDeleteCmd(),
		a.ordersSearchCmd(),
	)
	return cmd
}

func (a *app) ordersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the order collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orders, err := a.services.Orders.List(cmd.Context())
			if err != nil {
				return err
			}
			printOrders(cmd, orders)
			return nil
		},
	}
}

func (a *app) ordersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print a single order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.services.Orders.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.2f\t%s\n",
				o.ID, o.CustomerName, o.Status, o.TotalPrice, o.Address)
			for _, it := range o.Items {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s x%d @ %.2f\n", it.ProductName, it.Quantity, it.Price)
			}
			return nil
		},
	}
}

func (a *app) ordersCreateCmd() *cobra.Command {
	var (
		customer string
		phone    string
		address  string
		email    string
		notes    string
		items    []string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseItems(items)
			if err != nil {
				return err
			}
			in := domain.OrderInput{
				CustomerName: customer,
				MobileNum:    phone,
				Address:      address,
				Email:        email,
				Notes:        notes,
				Items:        parsed,
			}
			in.TotalPrice = in.Total()
			if err := domain.ValidateOrderInput(in); err != nil {
				return err
			}
			o, err := a.services.Orders.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (total %.2f)\n", o.ID, o.TotalPrice)
			return nil
		},
	}
	cmd.Flags().StringVar(&customer, "customer", "", "customer name")
	cmd.Flags().StringVar(&phone, "phone", "", "mobile number")
	cmd.Flags().StringVar(&address, "address", "", "delivery address")
	cmd.Flags().StringVar(&email, "email", "", "customer email")
	cmd.Flags().StringVar(&notes, "notes", "", "order notes")
	cmd.Flags().StringArrayVar(&items, "item", nil, "line item as productID:name:qty:price, repeatable")
	return cmd
}

func (a *app) ordersStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.OrderStatus(args[1])
			if !status.Known() {
				return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, args[1])
			}
			o, err := a.services.Orders.UpdateStatus(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", o.ID, o.Status)
			return nil
		},
	}
}

func (a *app) ordersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.services.Orders.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func (a *app) ordersSearchCmd() *cobra.Command {
	var (
		status string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search orders on the remote, bypassing the cache",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := service.OrderQuery{Status: domain.OrderStatus(status), Limit: limit}
			if len(args) == 1 {
				q.Search = args[0]
			}
			orders, err := a.services.Orders.Search(cmd.Context(), q)
			if err != nil {
				return err
			}
			printOrders(cmd, orders)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results")
	return cmd
}

func printOrders(cmd *cobra.Command, orders []domain.Order) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tSTATUS\tTOTAL\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\n",
			o.ID, o.CustomerName, o.Status, o.TotalPrice, o.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

// parseItems decodes the repeatable --item flag, productID:name:qty:price.
func parseItems(raw []string) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(raw))
	for _, r := range raw {
		parts := strings.Split(r, ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("%w: item %q is not productID:name:qty:price", domain.ErrValidation, r)
		}
		qty, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("%w: item %q has a bad quantity", domain.ErrValidation, r)
		}
		price, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: item %q has a bad price", domain.ErrValidation, r)
		}
		items = append(items, domain.OrderItem{
			Product:     parts[0],
			ProductName: parts[1],
			Quantity:    qty,
			Price:       price,
		})
	}
	return items, nil
}
