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

// NewProductSetsCommand creates the product sets command group.
func NewProductSetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "product-sets",
		Aliases: []string{"ps"},
		Short:   "Manage product sets",
		Long:    "List product sets and inspect their variations and images",
	}

	cmd.AddCommand(newProductSetsListCommand())
	cmd.AddCommand(newProductSetsGetCommand())
	cmd.AddCommand(newProductSetsProductsCommand())
	cmd.AddCommand(newProductSetsImagesCommand())

	return cmd
}

func newProductSetsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List product sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProductSetsListCommand(allPages, limit, status)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageLimit, "results per page")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (active, inactive, deleted)")

	return cmd
}

func runProductSetsListCommand(allPages bool, limit int, status string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	fetch := func(ctx context.Context, limit, offset int) (*iconic.Page[iconic.ProductSet], error) {
		return client.ProductSets().List(ctx, &iconic.ListProductSetsParams{
			Limit:  limit,
			Offset: offset,
			Status: iconic.ProductSetStatus(status),
		})
	}

	var sets []iconic.ProductSet

	if allPages {
		sets, err = iconic.FetchAll(ctx, fetch, &iconic.PaginationOptions{Limit: limit})
		if err != nil {
			return fmt.Errorf("failed to list product sets: %w", err)
		}
	} else {
		page, err := fetch(ctx, limit, 0)
		if err != nil {
			return fmt.Errorf("failed to list product sets: %w", err)
		}

		sets = page.Items
	}

	return outputProductSets(sets)
}

func outputProductSets(sets []iconic.ProductSet) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(sets)
	case OutputFormatYAML:
		return StandardYAMLRenderer(sets)
	default:
		return renderProductSetTable(sets)
	}
}

func renderProductSetTable(sets []iconic.ProductSet) error {
	if len(sets) == 0 {
		_, _ = os.Stdout.WriteString("No product sets found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "SKU", "Status", "QC")

	for _, set := range sets {
		_ = table.Append(
			strconv.Itoa(set.ID),
			set.Name,
			set.SellerSKU,
			string(set.Status),
			string(set.QCStatus),
		)
	}

	return table.Render()
}

func newProductSetsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PRODUCT_SET_ID",
		Short: "Get a product set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productSetID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product set ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			set, err := client.ProductSets().Get(context.Background(), productSetID)
			if err != nil {
				return fmt.Errorf("failed to get product set: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return StandardYAMLRenderer(set)
			default:
				return StandardJSONRenderer(set)
			}
		},
	}
}

func newProductSetsProductsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "products PRODUCT_SET_ID",
		Short: "List the variations of a product set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productSetID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product set ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			products, err := client.ProductSets().Products(context.Background(), productSetID)
			if err != nil {
				return fmt.Errorf("failed to list product set products: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(products)
			case OutputFormatYAML:
				return StandardYAMLRenderer(products)
			default:
				return renderProductTable(products)
			}
		},
	}
}

func renderProductTable(products []iconic.Product) error {
	if len(products) == 0 {
		_, _ = os.Stdout.WriteString("No products found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "SKU", "Variation", "Price", "Quantity")

	for _, product := range products {
		_ = table.Append(
			strconv.Itoa(product.ID),
			product.SellerSKU,
			product.Variation,
			fmt.Sprintf("%.2f", product.Price),
			strconv.Itoa(product.Quantity),
		)
	}

	return table.Render()
}

func newProductSetsImagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "images PRODUCT_SET_ID",
		Short: "List the images of a product set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productSetID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product set ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			images, err := client.ProductSets().Images(context.Background(), productSetID)
			if err != nil {
				return fmt.Errorf("failed to list product set images: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return StandardYAMLRenderer(images)
			default:
				return StandardJSONRenderer(images)
			}
		},
	}
}
