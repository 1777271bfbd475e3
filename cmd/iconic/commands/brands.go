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

// NewBrandsCommand creates the brands command group.
func NewBrandsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brands",
		Short: "Manage brands",
		Long:  "List brands and inspect their attributes",
	}

	cmd.AddCommand(newBrandsListCommand())
	cmd.AddCommand(newBrandsGetCommand())
	cmd.AddCommand(newBrandsAttributesCommand())

	return cmd
}

func newBrandsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		name     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List brands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrandsListCommand(allPages, limit, name)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageLimit, "results per page")
	cmd.Flags().StringVar(&name, "name", "", "filter by brand name")

	return cmd
}

func runBrandsListCommand(allPages bool, limit int, name string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	fetch := func(ctx context.Context, limit, offset int) (*iconic.Page[iconic.Brand], error) {
		return client.Brands().List(ctx, &iconic.ListBrandsParams{
			Limit:  limit,
			Offset: offset,
			Name:   name,
		})
	}

	var brands []iconic.Brand

	if allPages {
		brands, err = iconic.FetchAll(ctx, fetch, &iconic.PaginationOptions{Limit: limit})
		if err != nil {
			return fmt.Errorf("failed to list brands: %w", err)
		}
	} else {
		page, err := fetch(ctx, limit, 0)
		if err != nil {
			return fmt.Errorf("failed to list brands: %w", err)
		}

		brands = page.Items
	}

	return outputBrands(brands)
}

func outputBrands(brands []iconic.Brand) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(brands)
	case OutputFormatYAML:
		return StandardYAMLRenderer(brands)
	default:
		return renderBrandTable(brands)
	}
}

func renderBrandTable(brands []iconic.Brand) error {
	if len(brands) == 0 {
		_, _ = os.Stdout.WriteString("No brands found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Premium")

	for _, brand := range brands {
		_ = table.Append(strconv.Itoa(brand.ID), brand.Name, strconv.FormatBool(brand.IsPremium))
	}

	return table.Render()
}

func newBrandsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BRAND_ID",
		Short: "Get a brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			brandID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid brand ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			brand, err := client.Brands().Get(context.Background(), brandID)
			if err != nil {
				return fmt.Errorf("failed to get brand: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return StandardYAMLRenderer(brand)
			default:
				return StandardJSONRenderer(brand)
			}
		},
	}
}

func newBrandsAttributesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attributes BRAND_ID",
		Short: "List the attribute options mapped to a brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			brandID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid brand ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			attributes, err := client.Brands().Attributes(context.Background(), brandID)
			if err != nil {
				return fmt.Errorf("failed to get brand attributes: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return StandardYAMLRenderer(attributes)
			default:
				return StandardJSONRenderer(attributes)
			}
		},
	}
}
