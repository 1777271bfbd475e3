package client

import (
	"context"
	"fmt"

	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

// CategoriesClientImpl implements iconic.CategoriesClient.
type CategoriesClientImpl struct {
	client *ClientImpl
}

// Tree fetches the full category tree.
func (c *CategoriesClientImpl) Tree(ctx context.Context) ([]iconic.Category, error) {
	var categories []iconic.Category

	err := c.client.executeInto(ctx, "GET", "/v2/categories/tree", nil, nil, &categories)
	if err != nil {
		return nil, fmt.Errorf("getting category tree: %w", err)
	}

	return categories, nil
}

// Get fetches one category node by ID.
func (c *CategoriesClientImpl) Get(ctx context.Context, categoryID int) (*iconic.Category, error) {
	var category iconic.Category

	path := fmt.Sprintf("/v2/categories/%d", categoryID)

	err := c.client.executeInto(ctx, "GET", path, nil, nil, &category)
	if err != nil {
		return nil, fmt.Errorf("getting category %d: %w", categoryID, err)
	}

	return &category, nil
}

var _ iconic.CategoriesClient = (*CategoriesClientImpl)(nil)
