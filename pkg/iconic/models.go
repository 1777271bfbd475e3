package iconic

import "time"

// OrderStatus represents the lifecycle status of an order item.
type OrderStatus string

// Order item statuses.
const (
	OrderStatusPending                  OrderStatus = "pending"
	OrderStatusReadyToShip              OrderStatus = "ready_to_ship"
	OrderStatusShipped                  OrderStatus = "shipped"
	OrderStatusDelivered                OrderStatus = "delivered"
	OrderStatusCanceled                 OrderStatus = "canceled"
	OrderStatusReturnWaitingForApproval OrderStatus = "return_waiting_for_approval"
	OrderStatusReturnShippedByCustomer  OrderStatus = "return_shipped_by_customer"
	OrderStatusReturnReceived           OrderStatus = "return_received"
	OrderStatusReturnRejected           OrderStatus = "return_rejected"
)

// PrecedingStatus returns the status an item must currently hold for a
// transition into s to be valid, or "" when the transition is not part of
// the standard flow.
func (s OrderStatus) PrecedingStatus() OrderStatus {
	switch s {
	case OrderStatusReadyToShip:
		return OrderStatusPending
	case OrderStatusShipped:
		return OrderStatusReadyToShip
	case OrderStatusDelivered:
		return OrderStatusShipped
	case OrderStatusReturnReceived:
		return OrderStatusReturnShippedByCustomer
	default:
		return ""
	}
}

// ShipmentProviderType represents a shipment provider grouping used by the
// order section filter.
type ShipmentProviderType string

// Shipment provider groups.
const (
	ShipmentProviderTypeExpress  ShipmentProviderType = "express"
	ShipmentProviderTypeEconomy  ShipmentProviderType = "economy"
	ShipmentProviderTypePickup   ShipmentProviderType = "pickup"
	ShipmentProviderTypeDropship ShipmentProviderType = "dropship"
)

// SectionFilter is implemented by the two enumerations accepted by the
// order list section filter. Each resolves to a differently prefixed wire
// token; no other type is a valid section, which makes an invalid section a
// compile-time impossibility rather than a silent guess.
type SectionFilter interface {
	sectionToken() string
}

func (s OrderStatus) sectionToken() string {
	return "status_" + string(s)
}

func (s ShipmentProviderType) sectionToken() string {
	return "group_" + string(s)
}

// PackedStatus filters orders by packing state.
type PackedStatus string

// Packed statuses.
const (
	PackedStatusPacked   PackedStatus = "packed"
	PackedStatusUnpacked PackedStatus = "unpacked"
)

// ShipmentType identifies who ships an order.
type ShipmentType string

// Shipment types.
const (
	ShipmentTypeOwnWarehouse ShipmentType = "own_warehouse"
	ShipmentTypeDropshipping ShipmentType = "dropshipping"
	ShipmentTypeCrossdocking ShipmentType = "crossdocking"
)

// FulfillmentType identifies who fulfills an order.
type FulfillmentType string

// Fulfillment types.
const (
	FulfillmentTypeSeller      FulfillmentType = "fulfilled_by_seller"
	FulfillmentTypeMarketplace FulfillmentType = "fulfilled_by_marketplace"
)

// RequestContext selects the data scope of a request; it is transmitted as
// the X-Context header, never as a query parameter.
type RequestContext string

// Request contexts.
const (
	RequestContextSeller RequestContext = "seller"
	RequestContextAdmin  RequestContext = "admin"
)

// SortDirection orders list results.
type SortDirection string

// Sort directions.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// InvoiceDocumentType identifies a tax document category.
type InvoiceDocumentType string

// Invoice document types.
const (
	InvoiceDocumentInvoice    InvoiceDocumentType = "invoice"
	InvoiceDocumentCreditNote InvoiceDocumentType = "credit_note"
	InvoiceDocumentDebitNote  InvoiceDocumentType = "debit_note"
	InvoiceDocumentShipping   InvoiceDocumentType = "shipping_label"
)

// ProductSetStatus represents the visibility status of a product set.
type ProductSetStatus string

// Product set statuses.
const (
	ProductSetStatusActive   ProductSetStatus = "active"
	ProductSetStatusInactive ProductSetStatus = "inactive"
	ProductSetStatusDeleted  ProductSetStatus = "deleted"
)

// QualityControlStatus represents the QC state of a product set.
type QualityControlStatus string

// Quality control statuses.
const (
	QualityControlApproved QualityControlStatus = "approved"
	QualityControlPending  QualityControlStatus = "pending"
	QualityControlRejected QualityControlStatus = "rejected"
)

// Brand represents a marketplace brand.
type Brand struct {
	ID        int       `json:"id"                  yaml:"id"`
	Name      string    `json:"name"                yaml:"name"`
	URLKey    string    `json:"urlKey,omitempty"    yaml:"urlKey,omitempty"`
	IsPremium bool      `json:"isPremium"           yaml:"isPremium"`
	UpdatedAt time.Time `json:"updatedAt"  yaml:"updatedAt,omitempty"`
}

// BrandAttribute represents an attribute option mapped to a brand.
type BrandAttribute struct {
	ID      int      `json:"id"                yaml:"id"`
	Name    string   `json:"name"              yaml:"name"`
	Label   string   `json:"label,omitempty"   yaml:"label,omitempty"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// Category represents a node of the marketplace category tree.
type Category struct {
	ID       int        `json:"id"                 yaml:"id"`
	Name     string     `json:"name"               yaml:"name"`
	URLKey   string     `json:"urlKey,omitempty"   yaml:"urlKey,omitempty"`
	Children []Category `json:"children,omitempty" yaml:"children,omitempty"`
}

// Customer represents the customer attached to an order.
type Customer struct {
	FirstName string `json:"firstName"       yaml:"firstName"`
	LastName  string `json:"lastName"        yaml:"lastName"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`
}

// ShipmentProvider represents a configured shipment provider.
type ShipmentProvider struct {
	ID   int    `json:"id"             yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// OrderItem represents one line item of an order.
type OrderItem struct {
	ID               int         `json:"id"                         yaml:"id"`
	OrderID          int         `json:"orderId"                    yaml:"orderId"`
	SellerSKU        string      `json:"sellerSku"                  yaml:"sellerSku"`
	ShopSKU          string      `json:"shopSku,omitempty"          yaml:"shopSku,omitempty"`
	Name             string      `json:"name,omitempty"             yaml:"name,omitempty"`
	Status           OrderStatus `json:"status"                     yaml:"status"`
	IsDigital        bool        `json:"isDigital"                  yaml:"isDigital"`
	PaidPrice        float64     `json:"paidPrice"                  yaml:"paidPrice"`
	Currency         string      `json:"currency,omitempty"         yaml:"currency,omitempty"`
	TrackingCode     string      `json:"trackingCode,omitempty"     yaml:"trackingCode,omitempty"`
	ShipmentProvider string      `json:"shipmentProvider,omitempty" yaml:"shipmentProvider,omitempty"`
}

// Order represents a marketplace order.
type Order struct {
	ID              int         `json:"id"                        yaml:"id"`
	OrderNumber     string      `json:"orderNumber"               yaml:"orderNumber"`
	Status          OrderStatus `json:"status,omitempty"          yaml:"status,omitempty"`
	Customer        *Customer   `json:"customer,omitempty"        yaml:"customer,omitempty"`
	Items           []OrderItem `json:"items,omitempty"           yaml:"items,omitempty"`
	GrandTotal      float64     `json:"grandTotal"                yaml:"grandTotal"`
	Currency        string      `json:"currency,omitempty"        yaml:"currency,omitempty"`
	PaymentMethod   string      `json:"paymentMethod,omitempty"   yaml:"paymentMethod,omitempty"`
	InvoiceRequired bool        `json:"invoiceRequired"           yaml:"invoiceRequired"`
	CreatedAt       time.Time   `json:"createdAt"        yaml:"createdAt,omitempty"`
	UpdatedAt       time.Time   `json:"updatedAt"        yaml:"updatedAt,omitempty"`
}

// OrderItemIDsResult is returned by the bulk status transition endpoints,
// listing the item IDs that changed state.
type OrderItemIDsResult struct {
	OrderItemIDs []int `json:"orderItemIds" yaml:"orderItemIds"`
}

// InvoiceNumber associates an invoice number with an order item.
type InvoiceNumber struct {
	OrderItemID   int    `json:"orderItemId"   yaml:"orderItemId"`
	InvoiceNumber string `json:"invoiceNumber" yaml:"invoiceNumber"`
}

// PackedByMarketplaceRequest transitions pending order items to packed by
// marketplace. OrderItems carries the raw item descriptors the endpoint
// expects; shipping provider and tracking number are optional.
type PackedByMarketplaceRequest struct {
	OrderItems       []map[string]interface{} `json:"orderItems"                 yaml:"orderItems"`
	DeliveryType     string                   `json:"deliveryType"               yaml:"deliveryType"`
	ShippingProvider string                   `json:"shippingProvider,omitempty" yaml:"shippingProvider,omitempty"`
	TrackingNumber   string                   `json:"trackingNumber,omitempty"   yaml:"trackingNumber,omitempty"`
}

// PackageDocument is the handle returned after uploading a sales document
// for a package.
type PackageDocument struct {
	ID int `json:"id" yaml:"id"`
}

// Product represents a single sellable variation inside a product set.
type Product struct {
	ID           int     `json:"id"                     yaml:"id"`
	ProductSetID int     `json:"productSetId,omitempty" yaml:"productSetId,omitempty"`
	SellerSKU    string  `json:"sellerSku"              yaml:"sellerSku"`
	ShopSKU      string  `json:"shopSku,omitempty"      yaml:"shopSku,omitempty"`
	Name         string  `json:"name,omitempty"         yaml:"name,omitempty"`
	Variation    string  `json:"variation,omitempty"    yaml:"variation,omitempty"`
	Status       string  `json:"status,omitempty"       yaml:"status,omitempty"`
	Price        float64 `json:"price,omitempty"        yaml:"price,omitempty"`
	SalePrice    float64 `json:"salePrice,omitempty"    yaml:"salePrice,omitempty"`
	Quantity     int     `json:"quantity"               yaml:"quantity"`
}

// ProductSet represents a product set: the grouping entity that owns one or
// more product variations.
type ProductSet struct {
	ID             int                  `json:"id"                       yaml:"id"`
	UUID           string               `json:"uuid,omitempty"           yaml:"uuid,omitempty"`
	Name           string               `json:"name"                     yaml:"name"`
	SellerSKU      string               `json:"sellerSku,omitempty"      yaml:"sellerSku,omitempty"`
	ParentSKU      string               `json:"parentSku,omitempty"      yaml:"parentSku,omitempty"`
	BrandID        int                  `json:"brandId,omitempty"        yaml:"brandId,omitempty"`
	PrimaryCategoryID int               `json:"primaryCategoryId,omitempty" yaml:"primaryCategoryId,omitempty"`
	Status         ProductSetStatus     `json:"status,omitempty"         yaml:"status,omitempty"`
	QCStatus       QualityControlStatus `json:"qcStatus,omitempty"       yaml:"qcStatus,omitempty"`
	Price          float64              `json:"price,omitempty"          yaml:"price,omitempty"`
	Description    string               `json:"description,omitempty"    yaml:"description,omitempty"`
	Products       []Product            `json:"products,omitempty"       yaml:"products,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"       yaml:"createdAt,omitempty"`
	UpdatedAt      time.Time            `json:"updatedAt"       yaml:"updatedAt,omitempty"`
}

// ProductSetImage represents an image attached to a product set.
type ProductSetImage struct {
	ID       int    `json:"id"                 yaml:"id"`
	URL      string `json:"url"                yaml:"url"`
	Position int    `json:"position,omitempty" yaml:"position,omitempty"`
	IsCover  bool   `json:"isCover"            yaml:"isCover"`
}

// RejectionReason is one quality-control objection against a product set.
type RejectionReason struct {
	Reason  string `json:"reason"            yaml:"reason"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// RejectedProductSet describes a product set rejected by quality control,
// with the reasons the reviewers recorded.
type RejectedProductSet struct {
	ProductSetID int               `json:"productSetId"      yaml:"productSetId"`
	Status       string            `json:"status,omitempty"  yaml:"status,omitempty"`
	Reasons      []RejectionReason `json:"reasons,omitempty" yaml:"reasons,omitempty"`
}

// Webhook represents a registered webhook subscription.
type Webhook struct {
	UUID        string   `json:"uuid,omitempty"     yaml:"uuid,omitempty"`
	CallbackURL string   `json:"callbackUrl"        yaml:"callbackUrl"`
	Events      []string `json:"events"             yaml:"events"`
	IsEnabled   bool     `json:"isEnabled"          yaml:"isEnabled"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt,omitempty"`
}

// WebhookEntity describes an entity and the webhook events it can emit.
type WebhookEntity struct {
	Name   string   `json:"name"   yaml:"name"`
	Events []string `json:"events" yaml:"events"`
}

// FinanceStatement represents a seller finance statement.
type FinanceStatement struct {
	ID          int     `json:"id"                    yaml:"id"`
	Number      string  `json:"number,omitempty"      yaml:"number,omitempty"`
	Type        string  `json:"type,omitempty"        yaml:"type,omitempty"`
	StartDate   string  `json:"startDate,omitempty"   yaml:"startDate,omitempty"`
	EndDate     string  `json:"endDate,omitempty"     yaml:"endDate,omitempty"`
	Currency    string  `json:"currency,omitempty"    yaml:"currency,omitempty"`
	TotalAmount float64 `json:"totalAmount,omitempty" yaml:"totalAmount,omitempty"`
	IsPaid      bool    `json:"isPaid"                yaml:"isPaid"`
}

// FinanceStatementDetails represents the transaction breakdown of one
// finance statement.
type FinanceStatementDetails struct {
	StatementID  int                     `json:"statementId"            yaml:"statementId"`
	Transactions []FinanceTransaction    `json:"transactions,omitempty" yaml:"transactions,omitempty"`
}

// FinanceTransaction represents one line of a finance statement.
type FinanceTransaction struct {
	ID          int     `json:"id"                    yaml:"id"`
	OrderNumber string  `json:"orderNumber,omitempty" yaml:"orderNumber,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Amount      float64 `json:"amount"                yaml:"amount"`
}
