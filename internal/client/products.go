package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

// ProductsClientImpl implements iconic.ProductsClient.
type ProductsClientImpl struct {
	client *ClientImpl
}

// List returns product variations matching the filter.
func (c *ProductsClientImpl) List(ctx context.Context, params *iconic.ListProductsParams) (*iconic.Page[iconic.Product], error) {
	if params == nil {
		params = &iconic.ListProductsParams{}
	}

	bag := params.ToParams()
	limit, offset := iconic.PageWindow(bag)

	raw, err := c.client.Execute(ctx, "GET", "/v2/products", bag, nil)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	page, err := iconic.DecodePage[iconic.Product](raw, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	return page, nil
}

// Get fetches one product variation by ID.
func (c *ProductsClientImpl) Get(ctx context.Context, productID int) (*iconic.Product, error) {
	var product iconic.Product

	path := fmt.Sprintf("/v2/products/%d", productID)

	err := c.client.executeInto(ctx, "GET", path, nil, nil, &product)
	if err != nil {
		return nil, fmt.Errorf("getting product %d: %w", productID, err)
	}

	return &product, nil
}

// Update writes the payload to a product and returns the updated entity.
func (c *ProductsClientImpl) Update(ctx context.Context, productID int, payload map[string]interface{}) (*iconic.Product, error) {
	var product iconic.Product

	path := fmt.Sprintf("/v2/products/%d", productID)

	err := c.client.executeInto(ctx, "PUT", path, nil, payload, &product)
	if err != nil {
		return nil, fmt.Errorf("updating product %d: %w", productID, err)
	}

	return &product, nil
}

// Delete removes a product variation.
func (c *ProductsClientImpl) Delete(ctx context.Context, productID int) error {
	path := fmt.Sprintf("/v2/products/%d", productID)

	err := c.client.executeInto(ctx, "DELETE", path, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("deleting product %d: %w", productID, err)
	}

	return nil
}

// UpdateStock replaces the available quantity of a product.
func (c *ProductsClientImpl) UpdateStock(ctx context.Context, productID, quantity int) (*iconic.Product, error) {
	var product iconic.Product

	path := fmt.Sprintf("/v2/products/%d/stock", productID)
	payload := map[string]interface{}{"quantity": quantity}

	err := c.client.executeInto(ctx, "PUT", path, nil, payload, &product)
	if err != nil {
		return nil, fmt.Errorf("updating product %d stock: %w", productID, err)
	}

	return &product, nil
}

// UpdatePrice sets the regular and optional sale price of a product.
func (c *ProductsClientImpl) UpdatePrice(ctx context.Context, productID int, price float64, salePrice *float64) (*iconic.Product, error) {
	var product iconic.Product

	path := fmt.Sprintf("/v2/products/%d/prices", productID)

	payload := map[string]interface{}{"price": price}
	if salePrice != nil {
		payload["salePrice"] = *salePrice
	}

	err := c.client.executeInto(ctx, "PUT", path, nil, payload, &product)
	if err != nil {
		return nil, fmt.Errorf("updating product %d price: %w", productID, err)
	}

	return &product, nil
}

// UpdatePriceStatus activates or deactivates the price of a product for one
// country.
func (c *ProductsClientImpl) UpdatePriceStatus(ctx context.Context, productID int, country, status string) error {
	path := fmt.Sprintf("/v2/product/%d/prices/%s/status", productID, url.PathEscape(country))
	payload := map[string]interface{}{"status": status}

	err := c.client.executeInto(ctx, "PUT", path, nil, payload, nil)
	if err != nil {
		return fmt.Errorf("updating product %d price status: %w", productID, err)
	}

	return nil
}

// GetByShopSKU resolves one product by its shop SKU.
func (c *ProductsClientImpl) GetByShopSKU(ctx context.Context, shopSKU string) (*iconic.Product, error) {
	var product iconic.Product

	path := "/v2/product/shop-sku/" + url.PathEscape(shopSKU)

	err := c.client.executeInto(ctx, "GET", path, nil, nil, &product)
	if err != nil {
		return nil, fmt.Errorf("getting product by shop sku %q: %w", shopSKU, err)
	}

	return &product, nil
}

// GetBySellerSKU resolves one product by its seller SKU.
func (c *ProductsClientImpl) GetBySellerSKU(ctx context.Context, sellerSKU string) (*iconic.Product, error) {
	var product iconic.Product

	path := "/v2/product/seller-sku/" + url.PathEscape(sellerSKU)

	err := c.client.executeInto(ctx, "GET", path, nil, nil, &product)
	if err != nil {
		return nil, fmt.Errorf("getting product by seller sku %q: %w", sellerSKU, err)
	}

	return &product, nil
}

// RejectedProductSets reports why quality control rejected the given product
// sets.
func (c *ProductsClientImpl) RejectedProductSets(ctx context.Context, productSetIDs []int) ([]iconic.RejectedProductSet, error) {
	var rejected []iconic.RejectedProductSet

	params := iconic.NewParams().Set("product_set_ids", productSetIDs)

	err := c.client.executeInto(ctx, "GET", "/v2/product-quality-control/rejected", params, nil, &rejected)
	if err != nil {
		return nil, fmt.Errorf("getting rejected product sets: %w", err)
	}

	return rejected, nil
}

var _ iconic.ProductsClient = (*ProductsClientImpl)(nil)
