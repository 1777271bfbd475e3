package iconic

import (
	"errors"
	"time"

	"github.com/DuneRaccoon/iconic-go/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrEmptySectionToken = errors.New("section filter resolved to an empty token")
)

// ListBrandsParams filters the brand list endpoint.
type ListBrandsParams struct {
	Limit    int
	Offset   int
	Name     string
	BrandIDs []int
}

// ToParams converts the filter into a parameter bag.
func (p *ListBrandsParams) ToParams() *Params {
	params := NewParams().
		Set("limit", paginationLimit(p.Limit)).
		Set("offset", p.Offset)

	if p.Name != "" {
		params.Set("name", p.Name)
	}

	if len(p.BrandIDs) > 0 {
		params.Set("brand_ids", p.BrandIDs)
	}

	return params
}

// ListOrdersParams filters the order list endpoint. Section accepts either
// an OrderStatus or a ShipmentProviderType; the two resolve to differently
// prefixed wire tokens ("status_..." / "group_...") via a parameter
// transform. Context is routed to the X-Context header and never appears in
// the query string.
type ListOrdersParams struct {
	Limit  int
	Offset int

	Context RequestContext
	Section SectionFilter

	DateStart       time.Time
	DateEnd         time.Time
	UpdateDateStart time.Time
	UpdateDateEnd   time.Time

	OrderNumbers []string
	OrderIDs     []int
	Packed       PackedStatus
	Customer     *Customer
	Tags         []string
	ProductSKUs  []string

	ShipmentType      ShipmentType
	ShipmentProviders []ShipmentProvider

	Outlet             bool
	InvoiceRequired    bool
	CancelationReasons []string
	FulfillmentType    FulfillmentType
	OrderSources       []string
	SellerIDs          []int
	Warehouses         []string

	IncludeVoucherDetails *bool

	Sort    string
	SortDir SortDirection
}

// ToParams converts the filter into a parameter bag with the order-specific
// transforms attached.
func (p *ListOrdersParams) ToParams() *Params {
	params := NewParams().
		RouteHeader("x_context", "X-Context").
		Set("limit", paginationLimit(p.Limit)).
		Set("offset", p.Offset)

	context := p.Context
	if context == "" {
		context = RequestContextSeller
	}

	params.Set("x_context", context)

	if p.Section != nil {
		params.Set("section", p.Section)
	}

	if !p.DateStart.IsZero() {
		params.Set("date_start", p.DateStart)
	}

	if !p.DateEnd.IsZero() {
		params.Set("date_end", p.DateEnd)
	}

	if !p.UpdateDateStart.IsZero() {
		params.Set("update_date_start", p.UpdateDateStart)
	}

	if !p.UpdateDateEnd.IsZero() {
		params.Set("update_date_end", p.UpdateDateEnd)
	}

	setList(params, "order_numbers", p.OrderNumbers)
	setList(params, "order_ids", p.OrderIDs)
	setList(params, "tags", p.Tags)
	setList(params, "product_sku", p.ProductSKUs)
	setList(params, "cancelation_reasons", p.CancelationReasons)
	setList(params, "order_sources", p.OrderSources)
	setList(params, "seller_ids", p.SellerIDs)
	setList(params, "warehouses", p.Warehouses)

	if p.Packed != "" {
		params.Set("packed", p.Packed)
	}

	if p.Customer != nil {
		params.Set("customers", *p.Customer)
	}

	if p.ShipmentType != "" {
		params.Set("shipment_type", p.ShipmentType)
	}

	if len(p.ShipmentProviders) > 0 {
		params.Set("shipment_providers", p.ShipmentProviders)
	}

	if p.Outlet {
		params.Set("outlet", p.Outlet)
	}

	if p.InvoiceRequired {
		params.Set("invoice_required", p.InvoiceRequired)
	}

	if p.FulfillmentType != "" {
		params.Set("fulfilment_type", p.FulfillmentType)
	}

	if p.IncludeVoucherDetails != nil {
		params.Set("include_voucher_details", *p.IncludeVoucherDetails)
	}

	if p.Sort != "" {
		params.Set("sort", p.Sort)
	}

	if p.SortDir != "" {
		params.Set("sort_dir", p.SortDir)
	}

	params.AddTransform(sectionTransform())
	params.AddTransform(customerTransform())
	params.AddTransform(shipmentProviderTransform())

	return params
}

// sectionTransform resolves the section filter into its prefixed wire token
// before generic encoding. A section that resolves to an empty token fails
// fast instead of being guessed at.
func sectionTransform() ParamTransform {
	return ParamTransform{
		Name: "resolve_section",
		Apply: func(p *Params) error {
			value, ok := p.Get("section")
			if !ok {
				return nil
			}

			section, ok := value.(SectionFilter)
			if !ok {
				// Already resolved to a plain token.
				return nil
			}

			token := section.sectionToken()
			if token == "status_" || token == "group_" {
				return ErrEmptySectionToken
			}

			p.Set("section", token)

			return nil
		},
	}
}

// customerTransform flattens the structured customer filter into the flat
// name list the API expects.
func customerTransform() ParamTransform {
	return ParamTransform{
		Name: "flatten_customers",
		Apply: func(p *Params) error {
			value, ok := p.Get("customers")
			if !ok {
				return nil
			}

			customer, ok := value.(Customer)
			if !ok {
				return nil
			}

			p.Set("customers", []string{customer.FirstName, customer.LastName})

			return nil
		},
	}
}

// shipmentProviderTransform projects provider objects onto their IDs.
func shipmentProviderTransform() ParamTransform {
	return ParamTransform{
		Name: "project_shipment_providers",
		Apply: func(p *Params) error {
			value, ok := p.Get("shipment_providers")
			if !ok {
				return nil
			}

			providers, ok := value.([]ShipmentProvider)
			if !ok {
				return nil
			}

			ids := make([]int, 0, len(providers))
			for _, provider := range providers {
				ids = append(ids, provider.ID)
			}

			p.Set("shipment_providers", ids)

			return nil
		},
	}
}

// ListProductsParams filters the product variation list endpoint.
type ListProductsParams struct {
	Limit        int
	Offset       int
	SellerSKUs   []string
	Status       string
	UpdatedAfter time.Time
}

// ToParams converts the filter into a parameter bag.
func (p *ListProductsParams) ToParams() *Params {
	params := NewParams().
		Set("limit", paginationLimit(p.Limit)).
		Set("offset", p.Offset)

	setList(params, "seller_skus", p.SellerSKUs)

	if p.Status != "" {
		params.Set("status", p.Status)
	}

	if !p.UpdatedAfter.IsZero() {
		params.Set("updated_after", p.UpdatedAfter)
	}

	return params
}

// ListProductSetsParams filters the product set list endpoint.
type ListProductSetsParams struct {
	Limit         int
	Offset        int
	Status        ProductSetStatus
	SellerSKUs    []string
	BrandIDs      []int
	CategoryIDs   []int
	QCStatus      QualityControlStatus
	CreatedAfter  time.Time
	CreatedBefore time.Time
	UpdatedAfter  time.Time
	UpdatedBefore time.Time
}

// ToParams converts the filter into a parameter bag.
func (p *ListProductSetsParams) ToParams() *Params {
	params := NewParams().
		Set("limit", paginationLimit(p.Limit)).
		Set("offset", p.Offset)

	if p.Status != "" {
		params.Set("status", p.Status)
	}

	setList(params, "seller_skus", p.SellerSKUs)
	setList(params, "brand_ids", p.BrandIDs)
	setList(params, "category_ids", p.CategoryIDs)

	if p.QCStatus != "" {
		params.Set("qc_status", p.QCStatus)
	}

	if !p.CreatedAfter.IsZero() {
		params.Set("created_after", p.CreatedAfter)
	}

	if !p.CreatedBefore.IsZero() {
		params.Set("created_before", p.CreatedBefore)
	}

	if !p.UpdatedAfter.IsZero() {
		params.Set("updated_after", p.UpdatedAfter)
	}

	if !p.UpdatedBefore.IsZero() {
		params.Set("updated_before", p.UpdatedBefore)
	}

	return params
}

// ListFinanceStatementsParams filters the finance statement list endpoint.
type ListFinanceStatementsParams struct {
	Limit     int
	Offset    int
	Type      string
	StartDate Date
	EndDate   Date
	IsPaid    *bool
}

// ToParams converts the filter into a parameter bag.
func (p *ListFinanceStatementsParams) ToParams() *Params {
	params := NewParams().
		Set("limit", paginationLimit(p.Limit)).
		Set("offset", p.Offset)

	if p.Type != "" {
		params.Set("type", p.Type)
	}

	if !p.StartDate.IsZero() {
		params.Set("start_date", p.StartDate)
	}

	if !p.EndDate.IsZero() {
		params.Set("end_date", p.EndDate)
	}

	if p.IsPaid != nil {
		params.Set("is_paid", *p.IsPaid)
	}

	return params
}

// InvoiceFilesParams filters the invoice document download endpoint. Date
// filters are calendar dates, matching the wire format.
type InvoiceFilesParams struct {
	OrderNumbers   []string
	InvoiceNumbers []string
	PONumbers      []string
	DocumentTypes  []InvoiceDocumentType
	StartDate      Date
	EndDate        Date
}

// ToParams converts the filter into a parameter bag.
func (p *InvoiceFilesParams) ToParams() *Params {
	params := NewParams()

	setList(params, "order_numbers", p.OrderNumbers)
	setList(params, "invoice_numbers", p.InvoiceNumbers)
	setList(params, "po_numbers", p.PONumbers)
	setList(params, "document_types", p.DocumentTypes)

	if !p.StartDate.IsZero() {
		params.Set("start_date", p.StartDate)
	}

	if !p.EndDate.IsZero() {
		params.Set("end_date", p.EndDate)
	}

	return params
}

// paginationLimit clamps a requested page size into the API's bounds.
func paginationLimit(limit int) int {
	if limit <= 0 {
		return constants.DefaultPageLimit
	}

	if limit > constants.MaxPageLimit {
		return constants.MaxPageLimit
	}

	return limit
}

// setList adds a list field only when it has elements, keeping absent
// filters out of the wire parameters entirely.
func setList[T any](params *Params, name string, values []T) {
	if len(values) > 0 {
		params.Set(name, values)
	}
}
