package client

import (
	"context"
	"encoding/json"
	"fmt"

	internalhttp "github.com/DuneRaccoon/iconic-go/internal/http"
	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

// OrdersClientImpl implements iconic.OrdersClient.
type OrdersClientImpl struct {
	client *ClientImpl
}

// List returns orders matching the filter. Section tokens and the X-Context
// header are resolved by the filter's parameter transforms during encoding.
func (c *OrdersClientImpl) List(ctx context.Context, params *iconic.ListOrdersParams) (*iconic.Page[iconic.Order], error) {
	if params == nil {
		params = &iconic.ListOrdersParams{}
	}

	bag := params.ToParams()
	limit, offset := iconic.PageWindow(bag)

	raw, err := c.client.Execute(ctx, "GET", "/v2/orders", bag, nil)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	page, err := iconic.DecodePage[iconic.Order](raw, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	return page, nil
}

// Get fetches one order by ID.
func (c *OrdersClientImpl) Get(ctx context.Context, orderID int) (*iconic.Order, error) {
	var order iconic.Order

	path := fmt.Sprintf("/v2/orders/%d", orderID)

	err := c.client.executeInto(ctx, "GET", path, nil, nil, &order)
	if err != nil {
		return nil, fmt.Errorf("getting order %d: %w", orderID, err)
	}

	return &order, nil
}

// Items fetches the line items of one order.
func (c *OrdersClientImpl) Items(ctx context.Context, orderID int) ([]iconic.OrderItem, error) {
	var items []iconic.OrderItem

	path := fmt.Sprintf("/v2/orders/%d/items", orderID)

	err := c.client.executeInto(ctx, "GET", path, nil, nil, &items)
	if err != nil {
		return nil, fmt.Errorf("getting order %d items: %w", orderID, err)
	}

	return items, nil
}

// SetInvoiceNumber attaches an invoice number to an order item.
func (c *OrdersClientImpl) SetInvoiceNumber(ctx context.Context, number *iconic.InvoiceNumber) (*iconic.InvoiceNumber, error) {
	var result iconic.InvoiceNumber

	err := c.client.executeInto(ctx, "POST", "/v2/orders/items/invoice-number", nil, number, &result)
	if err != nil {
		return nil, fmt.Errorf("setting invoice number for item %d: %w", number.OrderItemID, err)
	}

	return &result, nil
}

// statusTransitionBody is the payload shared by the bulk transition
// endpoints.
type statusTransitionBody struct {
	OrderItemIDs []int  `json:"orderItemIds"`
	Reason       string `json:"reason,omitempty"`
	ReasonDetail string `json:"reasonDetail,omitempty"`
}

// SetStatusReadyToShip transitions all items of an order to ready_to_ship.
// Items are checked client-side first: any item not currently pending fails
// the whole call before the API is contacted.
func (c *OrdersClientImpl) SetStatusReadyToShip(ctx context.Context, order *iconic.Order) (*iconic.OrderItemIDsResult, error) {
	required := iconic.OrderStatusReadyToShip.PrecedingStatus()
	itemIDs := make([]int, 0, len(order.Items))

	for _, item := range order.Items {
		if item.Status != required {
			return nil, fmt.Errorf(
				"order %d item %d is %q, want %q: %w",
				order.ID, item.ID, item.Status, required, iconic.ErrInvalidStatusTransition,
			)
		}

		itemIDs = append(itemIDs, item.ID)
	}

	return c.transition(ctx, "set-to-ready-to-ship", statusTransitionBody{OrderItemIDs: itemIDs})
}

// SetStatusShipped transitions order items to shipped.
func (c *OrdersClientImpl) SetStatusShipped(ctx context.Context, orderItemIDs []int) (*iconic.OrderItemIDsResult, error) {
	return c.transition(ctx, "set-to-shipped", statusTransitionBody{OrderItemIDs: orderItemIDs})
}

// SetStatusDelivered transitions order items to delivered.
func (c *OrdersClientImpl) SetStatusDelivered(ctx context.Context, orderItemIDs []int) (*iconic.OrderItemIDsResult, error) {
	return c.transition(ctx, "set-to-delivered", statusTransitionBody{OrderItemIDs: orderItemIDs})
}

// SetStatusCanceled cancels order items with a reason.
func (c *OrdersClientImpl) SetStatusCanceled(ctx context.Context, orderItemIDs []int, reason, reasonDetail string) (*iconic.OrderItemIDsResult, error) {
	return c.transition(ctx, "set-to-canceled", statusTransitionBody{
		OrderItemIDs: orderItemIDs,
		Reason:       reason,
		ReasonDetail: reasonDetail,
	})
}

// SetStatusReturnReceived marks returned order items as received.
func (c *OrdersClientImpl) SetStatusReturnReceived(ctx context.Context, orderItemIDs []int) (*iconic.OrderItemIDsResult, error) {
	return c.transition(ctx, "set-to-return-received", statusTransitionBody{OrderItemIDs: orderItemIDs})
}

// SetStatusReturnApproved approves pending item returns.
func (c *OrdersClientImpl) SetStatusReturnApproved(ctx context.Context, orderItemIDs []int) (*iconic.OrderItemIDsResult, error) {
	return c.transition(ctx, "set-to-return-approved", statusTransitionBody{OrderItemIDs: orderItemIDs})
}

// SetStatusReturnRejected rejects item returns that are waiting for approval.
func (c *OrdersClientImpl) SetStatusReturnRejected(ctx context.Context, orderItemIDs []int, reason, reasonDetail string) (*iconic.OrderItemIDsResult, error) {
	return c.transition(ctx, "set-to-return-rejected", statusTransitionBody{
		OrderItemIDs: orderItemIDs,
		Reason:       reason,
		ReasonDetail: reasonDetail,
	})
}

// SetStatusReturned marks delivered order items as returned.
func (c *OrdersClientImpl) SetStatusReturned(ctx context.Context, orderItemIDs []int, reason string) (*iconic.OrderItemIDsResult, error) {
	return c.transition(ctx, "set-to-returned", statusTransitionBody{
		OrderItemIDs: orderItemIDs,
		Reason:       reason,
	})
}

// SetStatusDeliveryFailed marks shipped order items as failed to deliver.
func (c *OrdersClientImpl) SetStatusDeliveryFailed(ctx context.Context, orderItemIDs []int, reason, reasonDetail string) (*iconic.OrderItemIDsResult, error) {
	return c.transition(ctx, "set-to-delivery-failed", statusTransitionBody{
		OrderItemIDs: orderItemIDs,
		Reason:       reason,
		ReasonDetail: reasonDetail,
	})
}

// SetStatusPackedByMarketplace transitions pending order items to packed by
// marketplace. The request carries the item descriptors and delivery type
// directly rather than the flat ID list the other transitions use.
func (c *OrdersClientImpl) SetStatusPackedByMarketplace(ctx context.Context, req *iconic.PackedByMarketplaceRequest) (*iconic.OrderItemIDsResult, error) {
	var result iconic.OrderItemIDsResult

	err := c.client.executeInto(ctx, "POST", "/v2/orders/statuses/set-to-packed-by-marketplace", nil, req, &result)
	if err != nil {
		return nil, fmt.Errorf("order status set-to-packed-by-marketplace: %w", err)
	}

	return &result, nil
}

// UploadPackageDocument attaches a sales document to a package via multipart
// upload, reaching the transport directly like the invoice upload does.
func (c *OrdersClientImpl) UploadPackageDocument(ctx context.Context, packageID int, documentType, fileName string, content []byte) (*iconic.PackageDocument, error) {
	req := &internalhttp.Request{
		Method: "POST",
		Path:   fmt.Sprintf("/v2/order/document/package/%d", packageID),
		FormFields: map[string]string{
			"documentType": documentType,
		},
		FileParts: []internalhttp.FilePart{
			{FieldName: "documentFile", FileName: fileName, Content: content},
		},
	}

	resp, err := c.client.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("uploading document for package %d: %w", packageID, err)
	}

	var document iconic.PackageDocument

	err = json.Unmarshal(resp.Body, &document)
	if err != nil {
		return nil, fmt.Errorf("parsing package %d document response: %w", packageID, err)
	}

	return &document, nil
}

func (c *OrdersClientImpl) transition(ctx context.Context, action string, body statusTransitionBody) (*iconic.OrderItemIDsResult, error) {
	var result iconic.OrderItemIDsResult

	path := "/v2/orders/statuses/" + action

	err := c.client.executeInto(ctx, "POST", path, nil, body, &result)
	if err != nil {
		return nil, fmt.Errorf("order status %s: %w", action, err)
	}

	return &result, nil
}

var _ iconic.OrdersClient = (*OrdersClientImpl)(nil)
