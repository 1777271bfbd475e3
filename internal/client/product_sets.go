package client

import (
	"context"
	"fmt"

	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

// ProductSetsClientImpl implements iconic.ProductSetsClient. The API uses the
// plural noun for listing and the singular for entity operations.
type ProductSetsClientImpl struct {
	client *ClientImpl
}

// List returns product sets inside the standard pagination envelope.
func (c *ProductSetsClientImpl) List(ctx context.Context, params *iconic.ListProductSetsParams) (*iconic.Page[iconic.ProductSet], error) {
	if params == nil {
		params = &iconic.ListProductSetsParams{}
	}

	bag := params.ToParams()
	limit, offset := iconic.PageWindow(bag)

	raw, err := c.client.Execute(ctx, "GET", "/v2/product-sets", bag, nil)
	if err != nil {
		return nil, fmt.Errorf("listing product sets: %w", err)
	}

	page, err := iconic.DecodePage[iconic.ProductSet](raw, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing product sets: %w", err)
	}

	return page, nil
}

// Get fetches one product set by ID.
func (c *ProductSetsClientImpl) Get(ctx context.Context, productSetID int) (*iconic.ProductSet, error) {
	var set iconic.ProductSet

	path := fmt.Sprintf("/v2/product-set/%d", productSetID)

	err := c.client.executeInto(ctx, "GET", path, nil, nil, &set)
	if err != nil {
		return nil, fmt.Errorf("getting product set %d: %w", productSetID, err)
	}

	return &set, nil
}

// Create posts a new product set.
func (c *ProductSetsClientImpl) Create(ctx context.Context, payload map[string]interface{}) (*iconic.ProductSet, error) {
	var set iconic.ProductSet

	err := c.client.executeInto(ctx, "POST", "/v2/product-set", nil, payload, &set)
	if err != nil {
		return nil, fmt.Errorf("creating product set: %w", err)
	}

	return &set, nil
}

// Update writes the payload to a product set and returns the updated entity.
func (c *ProductSetsClientImpl) Update(ctx context.Context, productSetID int, payload map[string]interface{}) (*iconic.ProductSet, error) {
	var set iconic.ProductSet

	path := fmt.Sprintf("/v2/product-set/%d", productSetID)

	err := c.client.executeInto(ctx, "PUT", path, nil, payload, &set)
	if err != nil {
		return nil, fmt.Errorf("updating product set %d: %w", productSetID, err)
	}

	return &set, nil
}

// Products lists the variations belonging to one product set. Legacy
// bare-array response.
func (c *ProductSetsClientImpl) Products(ctx context.Context, productSetID int) ([]iconic.Product, error) {
	var products []iconic.Product

	path := fmt.Sprintf("/v2/product-set/%d/products", productSetID)

	err := c.client.executeInto(ctx, "GET", path, nil, nil, &products)
	if err != nil {
		return nil, fmt.Errorf("getting product set %d products: %w", productSetID, err)
	}

	return products, nil
}

// CreateProduct adds a variation to a product set.
func (c *ProductSetsClientImpl) CreateProduct(ctx context.Context, productSetID int, payload map[string]interface{}) (*iconic.Product, error) {
	var product iconic.Product

	path := fmt.Sprintf("/v2/product-set/%d/products", productSetID)

	err := c.client.executeInto(ctx, "POST", path, nil, payload, &product)
	if err != nil {
		return nil, fmt.Errorf("creating product in set %d: %w", productSetID, err)
	}

	return &product, nil
}

// Images lists the images attached to a product set.
func (c *ProductSetsClientImpl) Images(ctx context.Context, productSetID int) ([]iconic.ProductSetImage, error) {
	var images []iconic.ProductSetImage

	path := fmt.Sprintf("/v2/product-set/%d/images", productSetID)

	err := c.client.executeInto(ctx, "GET", path, nil, nil, &images)
	if err != nil {
		return nil, fmt.Errorf("getting product set %d images: %w", productSetID, err)
	}

	return images, nil
}

// AddImage attaches an image to a product set.
func (c *ProductSetsClientImpl) AddImage(ctx context.Context, productSetID int, payload map[string]interface{}) (*iconic.ProductSetImage, error) {
	var image iconic.ProductSetImage

	path := fmt.Sprintf("/v2/product-set/%d/images", productSetID)

	err := c.client.executeInto(ctx, "POST", path, nil, payload, &image)
	if err != nil {
		return nil, fmt.Errorf("adding image to product set %d: %w", productSetID, err)
	}

	return &image, nil
}

var _ iconic.ProductSetsClient = (*ProductSetsClientImpl)(nil)
