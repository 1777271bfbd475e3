package iconic

import (
	"context"
	"errors"
)

// ErrInvalidStatusTransition is returned when a client-side status
// precondition check fails before the API is called.
var ErrInvalidStatusTransition = errors.New("order items are not in the required status for this transition")

// BrandsClient provides access to the brands endpoints.
type BrandsClient interface {
	// List returns brands matching the filter. The endpoint is one of the
	// legacy bare-array responses: no pagination envelope is returned, so
	// the page is synthesized from the request window.
	List(ctx context.Context, params *ListBrandsParams) (*Page[Brand], error)
	Get(ctx context.Context, brandID int) (*Brand, error)
	Attributes(ctx context.Context, brandID int) ([]BrandAttribute, error)
}

// CategoriesClient provides access to the category tree endpoints.
type CategoriesClient interface {
	Tree(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, categoryID int) (*Category, error)
}

// OrdersClient provides access to the orders endpoints.
type OrdersClient interface {
	// List returns orders matching the filter. The section filter and the
	// X-Context header are resolved by the request's parameter transforms.
	List(ctx context.Context, params *ListOrdersParams) (*Page[Order], error)
	Get(ctx context.Context, orderID int) (*Order, error)
	Items(ctx context.Context, orderID int) ([]OrderItem, error)

	// SetInvoiceNumber attaches an invoice number to an order item.
	SetInvoiceNumber(ctx context.Context, number *InvoiceNumber) (*InvoiceNumber, error)

	// Status transitions. Each acts on order item IDs and returns the IDs
	// that changed state; validity preconditions are enforced server-side
	// except for SetStatusReadyToShip, which verifies the items' current
	// status client-side first.
	SetStatusReadyToShip(ctx context.Context, order *Order) (*OrderItemIDsResult, error)
	SetStatusShipped(ctx context.Context, orderItemIDs []int) (*OrderItemIDsResult, error)
	SetStatusDelivered(ctx context.Context, orderItemIDs []int) (*OrderItemIDsResult, error)
	SetStatusCanceled(ctx context.Context, orderItemIDs []int, reason, reasonDetail string) (*OrderItemIDsResult, error)
	SetStatusReturnReceived(ctx context.Context, orderItemIDs []int) (*OrderItemIDsResult, error)
	SetStatusReturnApproved(ctx context.Context, orderItemIDs []int) (*OrderItemIDsResult, error)
	SetStatusReturnRejected(ctx context.Context, orderItemIDs []int, reason, reasonDetail string) (*OrderItemIDsResult, error)
	SetStatusReturned(ctx context.Context, orderItemIDs []int, reason string) (*OrderItemIDsResult, error)
	SetStatusDeliveryFailed(ctx context.Context, orderItemIDs []int, reason, reasonDetail string) (*OrderItemIDsResult, error)
	SetStatusPackedByMarketplace(ctx context.Context, req *PackedByMarketplaceRequest) (*OrderItemIDsResult, error)

	// UploadPackageDocument attaches a sales document to a package via
	// multipart upload.
	UploadPackageDocument(ctx context.Context, packageID int, documentType, fileName string, content []byte) (*PackageDocument, error)
}

// ProductsClient provides access to the product variation endpoints.
type ProductsClient interface {
	List(ctx context.Context, params *ListProductsParams) (*Page[Product], error)
	Get(ctx context.Context, productID int) (*Product, error)
	Update(ctx context.Context, productID int, payload map[string]interface{}) (*Product, error)
	Delete(ctx context.Context, productID int) error

	// UpdateStock replaces the available quantity of a product.
	UpdateStock(ctx context.Context, productID, quantity int) (*Product, error)

	// UpdatePrice sets the regular and optional sale price of a product. A
	// nil salePrice leaves the sale price untouched.
	UpdatePrice(ctx context.Context, productID int, price float64, salePrice *float64) (*Product, error)

	// UpdatePriceStatus activates or deactivates the price of a product for
	// one country.
	UpdatePriceStatus(ctx context.Context, productID int, country, status string) error

	// SKU lookups resolve a single product without paging through the list
	// endpoint.
	GetByShopSKU(ctx context.Context, shopSKU string) (*Product, error)
	GetBySellerSKU(ctx context.Context, sellerSKU string) (*Product, error)

	// RejectedProductSets reports why quality control rejected the given
	// product sets.
	RejectedProductSets(ctx context.Context, productSetIDs []int) ([]RejectedProductSet, error)
}

// ProductSetsClient provides access to the product set endpoints.
type ProductSetsClient interface {
	// List returns product sets inside the standard pagination envelope.
	List(ctx context.Context, params *ListProductSetsParams) (*Page[ProductSet], error)
	Get(ctx context.Context, productSetID int) (*ProductSet, error)
	Create(ctx context.Context, payload map[string]interface{}) (*ProductSet, error)
	Update(ctx context.Context, productSetID int, payload map[string]interface{}) (*ProductSet, error)

	// Products lists the variations belonging to one product set. Legacy
	// bare-array response.
	Products(ctx context.Context, productSetID int) ([]Product, error)
	CreateProduct(ctx context.Context, productSetID int, payload map[string]interface{}) (*Product, error)

	Images(ctx context.Context, productSetID int) ([]ProductSetImage, error)
	AddImage(ctx context.Context, productSetID int, payload map[string]interface{}) (*ProductSetImage, error)
}

// WebhooksClient provides access to the webhook subscription endpoints.
type WebhooksClient interface {
	List(ctx context.Context) ([]Webhook, error)
	Create(ctx context.Context, callbackURL string, events []string) (*Webhook, error)
	Delete(ctx context.Context, webhookUUID string) error

	// Entities lists the entities and events available for subscription.
	Entities(ctx context.Context) ([]WebhookEntity, error)
}

// FinanceClient provides access to the finance statement endpoints.
type FinanceClient interface {
	ListStatements(ctx context.Context, params *ListFinanceStatementsParams) ([]FinanceStatement, error)
	GetStatement(ctx context.Context, statementID int) (*FinanceStatement, error)
	GetStatementDetails(ctx context.Context, statementID int) (*FinanceStatementDetails, error)
}

// InvoicesClient provides access to the invoice document endpoints.
type InvoicesClient interface {
	// DownloadFiles fetches the matching tax documents as a zip archive.
	DownloadFiles(ctx context.Context, params *InvoiceFilesParams) ([]byte, error)

	// UploadFile attaches a custom invoice document to an order item via
	// multipart upload.
	UploadFile(ctx context.Context, orderItemID int, invoiceNumber, fileName string, content []byte) error
}
