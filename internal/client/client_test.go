package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DuneRaccoon/iconic-go/internal/client"
	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client.ClientImpl {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	impl, err := client.New(&iconic.Config{
		APIEndpoint: server.URL,
		AccessToken: "test-token",
	})
	require.NoError(t, err)

	return impl
}

func TestNewRequiresEndpoint(t *testing.T) {
	t.Parallel()

	_, err := client.New(&iconic.Config{})
	assert.ErrorIs(t, err, client.ErrAPIEndpointRequired)
}

func TestNewRequiresCredentials(t *testing.T) {
	t.Parallel()

	_, err := client.New(&iconic.Config{APIEndpoint: "https://api.example.com"})
	assert.ErrorIs(t, err, client.ErrCredentialsRequired)
}

func TestBrandsListBareArray(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/brands", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[{"id": 1, "name": "Shoes"}, {"id": 2, "name": "Bags"}]`))
	})

	page, err := impl.Brands().List(context.Background(), &iconic.ListBrandsParams{Limit: 25})
	require.NoError(t, err)

	// No envelope: window from the request, totalCount from the item count.
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 25, page.Limit)
	assert.Equal(t, 2, page.TotalCount)
	assert.False(t, page.HasMore())
}

func TestOrdersListSectionAndContext(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/orders", r.URL.Path)
		assert.Equal(t, "status_pending", r.URL.Query().Get("section"))
		assert.Equal(t, "seller", r.Header.Get("X-Context"))
		assert.False(t, r.URL.Query().Has("xContext"))

		_, _ = w.Write([]byte(`{
			"items": [{"id": 7, "orderNumber": "ORD-7", "status": "pending"}],
			"pagination": {"limit": 100, "offset": 0, "totalCount": 1}
		}`))
	})

	page, err := impl.Orders().List(context.Background(), &iconic.ListOrdersParams{
		Section: iconic.OrderStatusPending,
	})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "ORD-7", page.Items[0].OrderNumber)
	assert.Equal(t, 1, page.TotalCount)
}

func TestOrdersSetStatusReadyToShip(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/orders/statuses/set-to-ready-to-ship", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body struct {
			OrderItemIDs []int `json:"orderItemIds"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []int{11, 12}, body.OrderItemIDs)

		_, _ = w.Write([]byte(`{"orderItemIds": [11, 12]}`))
	})

	order := &iconic.Order{
		ID: 7,
		Items: []iconic.OrderItem{
			{ID: 11, Status: iconic.OrderStatusPending},
			{ID: 12, Status: iconic.OrderStatusPending},
		},
	}

	result, err := impl.Orders().SetStatusReadyToShip(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 12}, result.OrderItemIDs)
}

func TestOrdersSetStatusReadyToShipPreconditionFails(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the API")
	})

	order := &iconic.Order{
		ID: 7,
		Items: []iconic.OrderItem{
			{ID: 11, Status: iconic.OrderStatusPending},
			{ID: 12, Status: iconic.OrderStatusShipped},
		},
	}

	_, err := impl.Orders().SetStatusReadyToShip(context.Background(), order)
	require.Error(t, err)
	assert.ErrorIs(t, err, iconic.ErrInvalidStatusTransition)
}

func TestOrdersSetStatusCanceled(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/orders/statuses/set-to-canceled", r.URL.Path)

		var body struct {
			OrderItemIDs []int  `json:"orderItemIds"`
			Reason       string `json:"reason"`
			ReasonDetail string `json:"reasonDetail"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "out_of_stock", body.Reason)
		assert.Equal(t, "warehouse miscount", body.ReasonDetail)

		_, _ = w.Write([]byte(`{"orderItemIds": [5]}`))
	})

	result, err := impl.Orders().SetStatusCanceled(context.Background(), []int{5}, "out_of_stock", "warehouse miscount")
	require.NoError(t, err)
	assert.Equal(t, []int{5}, result.OrderItemIDs)
}

func TestOrdersSetStatusReturned(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/orders/statuses/set-to-returned", r.URL.Path)

		var body struct {
			OrderItemIDs []int  `json:"orderItemIds"`
			Reason       string `json:"reason"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []int{21}, body.OrderItemIDs)
		assert.Equal(t, "changed mind", body.Reason)

		_, _ = w.Write([]byte(`{"orderItemIds": [21]}`))
	})

	result, err := impl.Orders().SetStatusReturned(context.Background(), []int{21}, "changed mind")
	require.NoError(t, err)
	assert.Equal(t, []int{21}, result.OrderItemIDs)
}

func TestOrdersSetStatusReturnRejected(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/orders/statuses/set-to-return-rejected", r.URL.Path)

		var body struct {
			OrderItemIDs []int  `json:"orderItemIds"`
			Reason       string `json:"reason"`
			ReasonDetail string `json:"reasonDetail"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "damaged", body.Reason)
		assert.Equal(t, "scuffed sole", body.ReasonDetail)

		_, _ = w.Write([]byte(`{"orderItemIds": [22]}`))
	})

	result, err := impl.Orders().SetStatusReturnRejected(context.Background(), []int{22}, "damaged", "scuffed sole")
	require.NoError(t, err)
	assert.Equal(t, []int{22}, result.OrderItemIDs)
}

func TestOrdersSetStatusDeliveryFailed(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/orders/statuses/set-to-delivery-failed", r.URL.Path)

		var body struct {
			OrderItemIDs []int  `json:"orderItemIds"`
			Reason       string `json:"reason"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "address not found", body.Reason)

		_, _ = w.Write([]byte(`{"orderItemIds": [23]}`))
	})

	result, err := impl.Orders().SetStatusDeliveryFailed(context.Background(), []int{23}, "address not found", "")
	require.NoError(t, err)
	assert.Equal(t, []int{23}, result.OrderItemIDs)
}

func TestOrdersSetStatusPackedByMarketplace(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/orders/statuses/set-to-packed-by-marketplace", r.URL.Path)

		var body struct {
			OrderItems   []map[string]interface{} `json:"orderItems"`
			DeliveryType string                   `json:"deliveryType"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.OrderItems, 1)
		assert.Equal(t, float64(31), body.OrderItems[0]["orderItemId"])
		assert.Equal(t, "dropship", body.DeliveryType)

		_, _ = w.Write([]byte(`{"orderItemIds": [31]}`))
	})

	result, err := impl.Orders().SetStatusPackedByMarketplace(context.Background(), &iconic.PackedByMarketplaceRequest{
		OrderItems:   []map[string]interface{}{{"orderItemId": 31}},
		DeliveryType: "dropship",
	})
	require.NoError(t, err)
	assert.Equal(t, []int{31}, result.OrderItemIDs)
}

func TestOrdersUploadPackageDocument(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/order/document/package/9", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "invoice", r.FormValue("documentType"))

		_, header, err := r.FormFile("documentFile")
		require.NoError(t, err)
		assert.Equal(t, "delivery-note.pdf", header.Filename)

		_, _ = w.Write([]byte(`{"id": 672}`))
	})

	document, err := impl.Orders().UploadPackageDocument(context.Background(), 9, "invoice", "delivery-note.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, 672, document.ID)
}

func TestProductsGetByShopSKU(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/product/shop-sku/SHOP-1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 31, "sellerSku": "SKU-31", "shopSku": "SHOP-1"}`))
	})

	product, err := impl.Products().GetByShopSKU(context.Background(), "SHOP-1")
	require.NoError(t, err)
	assert.Equal(t, "SHOP-1", product.ShopSKU)
}

func TestProductsUpdatePriceStatus(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/product/31/prices/AU/status", r.URL.Path)
		assert.Equal(t, http.MethodPut, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "inactive", body["status"])

		w.WriteHeader(http.StatusNoContent)
	})

	err := impl.Products().UpdatePriceStatus(context.Background(), 31, "AU", "inactive")
	require.NoError(t, err)
}

func TestProductsRejectedProductSets(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/product-quality-control/rejected", r.URL.Path)
		assert.Equal(t, []string{"10", "11"}, r.URL.Query()["productSetIds[]"])

		_, _ = w.Write([]byte(`[{"productSetId": 10, "status": "rejected", "reasons": [{"reason": "image_quality"}]}]`))
	})

	rejected, err := impl.Products().RejectedProductSets(context.Background(), []int{10, 11})
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, 10, rejected[0].ProductSetID)
	require.Len(t, rejected[0].Reasons, 1)
	assert.Equal(t, "image_quality", rejected[0].Reasons[0].Reason)
}

func TestProductSetsEntityPaths(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Plural noun for the list, singular for the entity.
		switch r.URL.Path {
		case "/v2/product-sets":
			_, _ = w.Write([]byte(`{"items": [], "pagination": {"limit": 100, "offset": 0, "totalCount": 0}}`))
		case "/v2/product-set/9":
			_, _ = w.Write([]byte(`{"id": 9, "name": "Sneakers"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	_, err := impl.ProductSets().List(context.Background(), nil)
	require.NoError(t, err)

	set, err := impl.ProductSets().Get(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Sneakers", set.Name)
}

func TestProductsUpdateStock(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/products/31/stock", r.URL.Path)
		assert.Equal(t, http.MethodPut, r.Method)

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 50, body["quantity"])

		_, _ = w.Write([]byte(`{"id": 31, "sellerSku": "SKU-31", "quantity": 50}`))
	})

	product, err := impl.Products().UpdateStock(context.Background(), 31, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, product.Quantity)
}

func TestProductsUpdatePrice(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/products/31/prices", r.URL.Path)

		var body map[string]float64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 79.95, body["price"])
		assert.Equal(t, 59.95, body["salePrice"])

		_, _ = w.Write([]byte(`{"id": 31, "sellerSku": "SKU-31", "price": 79.95, "salePrice": 59.95}`))
	})

	salePrice := 59.95

	product, err := impl.Products().UpdatePrice(context.Background(), 31, 79.95, &salePrice)
	require.NoError(t, err)
	assert.Equal(t, 79.95, product.Price)
	assert.Equal(t, 59.95, product.SalePrice)
}

func TestWebhooksCreate(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/webhooks", r.URL.Path)

		var body struct {
			CallbackURL string   `json:"callbackUrl"`
			Events      []string `json:"events"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://example.com/hook", body.CallbackURL)
		assert.Equal(t, []string{"onOrderCreated"}, body.Events)

		_, _ = w.Write([]byte(`{"uuid": "w-1", "callbackUrl": "https://example.com/hook", "events": ["onOrderCreated"], "isEnabled": true}`))
	})

	webhook, err := impl.Webhooks().Create(context.Background(), "https://example.com/hook", []string{"onOrderCreated"})
	require.NoError(t, err)
	assert.Equal(t, "w-1", webhook.UUID)
	assert.True(t, webhook.IsEnabled)
}

func TestInvoicesDownloadFiles(t *testing.T) {
	t.Parallel()

	zipBytes := []byte("PK\x03\x04fake-zip")

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/invoices/download", r.URL.Path)
		assert.Equal(t, []string{"A1", "B2"}, r.URL.Query()["orderNumbers[]"])

		w.Header().Set("Content-Type", "application/zip")
		_, _ = w.Write(zipBytes)
	})

	data, err := impl.Invoices().DownloadFiles(context.Background(), &iconic.InvoiceFilesParams{
		OrderNumbers: []string{"A1", "B2"},
	})
	require.NoError(t, err)
	assert.Equal(t, zipBytes, data)
}

func TestInvoicesUploadFile(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/invoices/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "42", r.FormValue("orderItemId"))
		assert.Equal(t, "INV-42", r.FormValue("invoiceNumber"))

		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "invoice.pdf", header.Filename)

		w.WriteHeader(http.StatusCreated)
	})

	err := impl.Invoices().UploadFile(context.Background(), 42, "INV-42", "invoice.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
}

func TestClassifiedErrorPropagates(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"maintenance window"}`))
	})

	_, err := impl.Brands().List(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, iconic.IsMaintenance(err))
}

func TestExecuteIsARequester(t *testing.T) {
	t.Parallel()

	impl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": [{"id": 3}], "pagination": {"limit": 1, "offset": 0, "totalCount": 1}}`))
	})

	// The concrete client backs the navigable resource layer directly.
	page, err := impl.ProductSetResource().Items(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "3", page.Items[0].ID())
}
