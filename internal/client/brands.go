package client

import (
	"context"
	"fmt"

	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

// BrandsClientImpl implements iconic.BrandsClient.
type BrandsClientImpl struct {
	client *ClientImpl
}

// List returns brands matching the filter. The endpoint responds with a bare
// JSON array, so the page window is taken from the request.
func (c *BrandsClientImpl) List(ctx context.Context, params *iconic.ListBrandsParams) (*iconic.Page[iconic.Brand], error) {
	if params == nil {
		params = &iconic.ListBrandsParams{}
	}

	bag := params.ToParams()
	limit, offset := iconic.PageWindow(bag)

	raw, err := c.client.Execute(ctx, "GET", "/v2/brands", bag, nil)
	if err != nil {
		return nil, fmt.Errorf("listing brands: %w", err)
	}

	page, err := iconic.DecodePage[iconic.Brand](raw, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing brands: %w", err)
	}

	return page, nil
}

// Get fetches one brand by ID.
func (c *BrandsClientImpl) Get(ctx context.Context, brandID int) (*iconic.Brand, error) {
	var brand iconic.Brand

	path := fmt.Sprintf("/v2/brands/%d", brandID)

	err := c.client.executeInto(ctx, "GET", path, nil, nil, &brand)
	if err != nil {
		return nil, fmt.Errorf("getting brand %d: %w", brandID, err)
	}

	return &brand, nil
}

// Attributes fetches the attribute options mapped to a brand.
func (c *BrandsClientImpl) Attributes(ctx context.Context, brandID int) ([]iconic.BrandAttribute, error) {
	var attributes []iconic.BrandAttribute

	path := fmt.Sprintf("/v2/brands/%d/attributes", brandID)

	err := c.client.executeInto(ctx, "GET", path, nil, nil, &attributes)
	if err != nil {
		return nil, fmt.Errorf("getting brand %d attributes: %w", brandID, err)
	}

	return attributes, nil
}

var _ iconic.BrandsClient = (*BrandsClientImpl)(nil)
