package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

// NewCategoriesCommand creates the categories command group.
func NewCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Browse the category tree",
	}

	cmd.AddCommand(newCategoriesTreeCommand())
	cmd.AddCommand(newCategoriesGetCommand())

	return cmd
}

func newCategoriesTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the full category tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			categories, err := client.Categories().Tree(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get category tree: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(categories)
			case OutputFormatYAML:
				return StandardYAMLRenderer(categories)
			default:
				printCategoryTree(categories, 0)

				return nil
			}
		},
	}
}

func printCategoryTree(categories []iconic.Category, depth int) {
	for _, category := range categories {
		for i := 0; i < depth; i++ {
			_, _ = os.Stdout.WriteString("  ")
		}

		fmt.Printf("%d  %s\n", category.ID, category.Name)
		printCategoryTree(category.Children, depth+1)
	}
}

func newCategoriesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CATEGORY_ID",
		Short: "Get a category node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid category ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			category, err := client.Categories().Get(context.Background(), categoryID)
			if err != nil {
				return fmt.Errorf("failed to get category: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return StandardYAMLRenderer(category)
			default:
				return StandardJSONRenderer(category)
			}
		},
	}
}
