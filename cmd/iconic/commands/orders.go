package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DuneRaccoon/iconic-go/internal/constants"
	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage orders",
		Long:  "List orders, inspect their items, and run status transitions",
	}

	cmd.AddCommand(newOrdersListCommand())
	cmd.AddCommand(newOrdersGetCommand())
	cmd.AddCommand(newOrdersItemsCommand())
	cmd.AddCommand(newOrdersShipCommand())
	cmd.AddCommand(newOrdersCancelCommand())

	return cmd
}

func newOrdersListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrdersListCommand(allPages, limit, status)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageLimit, "results per page")
	cmd.Flags().StringVar(&status, "status", "", "filter by order status section (pending, shipped, ...)")

	return cmd
}

func runOrdersListCommand(allPages bool, limit int, status string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	fetch := func(ctx context.Context, limit, offset int) (*iconic.Page[iconic.Order], error) {
		params := &iconic.ListOrdersParams{
			Limit:  limit,
			Offset: offset,
		}

		if status != "" {
			params.Section = iconic.OrderStatus(status)
		}

		return client.Orders().List(ctx, params)
	}

	var orders []iconic.Order

	if allPages {
		orders, err = iconic.FetchAll(ctx, fetch, &iconic.PaginationOptions{Limit: limit})
		if err != nil {
			return fmt.Errorf("failed to list orders: %w", err)
		}
	} else {
		page, err := fetch(ctx, limit, 0)
		if err != nil {
			return fmt.Errorf("failed to list orders: %w", err)
		}

		orders = page.Items
	}

	return outputOrders(orders)
}

func outputOrders(orders []iconic.Order) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(orders)
	case OutputFormatYAML:
		return StandardYAMLRenderer(orders)
	default:
		return renderOrderTable(orders)
	}
}

func renderOrderTable(orders []iconic.Order) error {
	if len(orders) == 0 {
		_, _ = os.Stdout.WriteString("No orders found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Number", "Status", "Total", "Created")

	for _, order := range orders {
		_ = table.Append(
			strconv.Itoa(order.ID),
			order.OrderNumber,
			string(order.Status),
			fmt.Sprintf("%.2f %s", order.GrandTotal, order.Currency),
			order.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}

	return table.Render()
}

func newOrdersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORDER_ID",
		Short: "Get an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid order ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			order, err := client.Orders().Get(context.Background(), orderID)
			if err != nil {
				return fmt.Errorf("failed to get order: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return StandardYAMLRenderer(order)
			default:
				return StandardJSONRenderer(order)
			}
		},
	}
}

func newOrdersItemsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "items ORDER_ID",
		Short: "List the items of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid order ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			items, err := client.Orders().Items(context.Background(), orderID)
			if err != nil {
				return fmt.Errorf("failed to get order items: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(items)
			case OutputFormatYAML:
				return StandardYAMLRenderer(items)
			default:
				return renderOrderItemTable(items)
			}
		},
	}
}

func renderOrderItemTable(items []iconic.OrderItem) error {
	if len(items) == 0 {
		_, _ = os.Stdout.WriteString("No order items found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "SKU", "Status", "Price", "Tracking")

	for _, item := range items {
		_ = table.Append(
			strconv.Itoa(item.ID),
			item.SellerSKU,
			string(item.Status),
			fmt.Sprintf("%.2f %s", item.PaidPrice, item.Currency),
			item.TrackingCode,
		)
	}

	return table.Render()
}

func newOrdersShipCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ship ITEM_ID...",
		Short: "Mark order items as shipped",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemIDs, err := parseItemIDs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Orders().SetStatusShipped(context.Background(), itemIDs)
			if err != nil {
				return fmt.Errorf("failed to mark items shipped: %w", err)
			}

			fmt.Printf("Marked %d item(s) as shipped\n", len(result.OrderItemIDs))

			return nil
		},
	}
}

func newOrdersCancelCommand() *cobra.Command {
	var (
		reason       string
		reasonDetail string
	)

	cmd := &cobra.Command{
		Use:   "cancel ITEM_ID...",
		Short: "Cancel order items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemIDs, err := parseItemIDs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Orders().SetStatusCanceled(context.Background(), itemIDs, reason, reasonDetail)
			if err != nil {
				return fmt.Errorf("failed to cancel items: %w", err)
			}

			fmt.Printf("Canceled %d item(s)\n", len(result.OrderItemIDs))

			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "cancellation reason")
	cmd.Flags().StringVar(&reasonDetail, "reason-detail", "", "cancellation reason detail")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func parseItemIDs(args []string) ([]int, error) {
	itemIDs := make([]int, 0, len(args))

	for _, arg := range args {
		itemID, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid item ID %q: %w", arg, err)
		}

		itemIDs = append(itemIDs, itemID)
	}

	return itemIDs, nil
}
