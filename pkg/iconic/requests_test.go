package iconic_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

func TestListOrdersParamsSectionStatus(t *testing.T) {
	t.Parallel()

	params := &iconic.ListOrdersParams{Section: iconic.OrderStatusPending}

	wire, err := params.ToParams().Encode()
	require.NoError(t, err)

	assert.Equal(t, "status_pending", wire.Values.Get("section"))
}

func TestListOrdersParamsSectionProviderGroup(t *testing.T) {
	t.Parallel()

	params := &iconic.ListOrdersParams{Section: iconic.ShipmentProviderTypeExpress}

	wire, err := params.ToParams().Encode()
	require.NoError(t, err)

	assert.Equal(t, "group_express", wire.Values.Get("section"))
}

func TestListOrdersParamsEmptySectionFailsFast(t *testing.T) {
	t.Parallel()

	params := &iconic.ListOrdersParams{Section: iconic.OrderStatus("")}

	_, err := params.ToParams().Encode()
	require.Error(t, err)
	assert.ErrorIs(t, err, iconic.ErrEmptySectionToken)
}

func TestListOrdersParamsContextHeader(t *testing.T) {
	t.Parallel()

	params := &iconic.ListOrdersParams{Context: iconic.RequestContextAdmin}

	wire, err := params.ToParams().Encode()
	require.NoError(t, err)

	assert.Equal(t, "admin", wire.Headers["X-Context"])
	assert.False(t, wire.Values.Has("xContext"))
}

func TestListOrdersParamsContextDefaultsToSeller(t *testing.T) {
	t.Parallel()

	wire, err := (&iconic.ListOrdersParams{}).ToParams().Encode()
	require.NoError(t, err)

	assert.Equal(t, "seller", wire.Headers["X-Context"])
}

func TestListOrdersParamsCustomerFlattening(t *testing.T) {
	t.Parallel()

	params := &iconic.ListOrdersParams{
		Customer: &iconic.Customer{FirstName: "Jordan", LastName: "Lee"},
	}

	wire, err := params.ToParams().Encode()
	require.NoError(t, err)

	assert.Equal(t, []string{"Jordan", "Lee"}, wire.Values["customers[]"])
}

func TestListOrdersParamsShipmentProviderProjection(t *testing.T) {
	t.Parallel()

	params := &iconic.ListOrdersParams{
		ShipmentProviders: []iconic.ShipmentProvider{
			{ID: 11, Name: "Fast Couriers"},
			{ID: 7, Name: "Slow Couriers"},
		},
	}

	wire, err := params.ToParams().Encode()
	require.NoError(t, err)

	// Providers project onto their IDs, order preserved.
	assert.Equal(t, []string{"11", "7"}, wire.Values["shipmentProviders[]"])
}

func TestListOrdersParamsFulfillmentWireName(t *testing.T) {
	t.Parallel()

	params := &iconic.ListOrdersParams{FulfillmentType: iconic.FulfillmentTypeSeller}

	wire, err := params.ToParams().Encode()
	require.NoError(t, err)

	// The API spells this field with the single-l form.
	assert.Equal(t, "fulfilled_by_seller", wire.Values.Get("fulfilmentType"))
	assert.False(t, wire.Values.Has("fulfillmentType"))
}

func TestListOrdersParamsDates(t *testing.T) {
	t.Parallel()

	params := &iconic.ListOrdersParams{
		DateStart: time.Date(2026, time.January, 15, 8, 0, 0, 0, time.UTC),
	}

	wire, err := params.ToParams().Encode()
	require.NoError(t, err)

	assert.Equal(t, "2026-01-15T08:00:00Z", wire.Values.Get("dateStart"))
}

func TestPaginationLimitClamping(t *testing.T) {
	t.Parallel()

	wire, err := (&iconic.ListBrandsParams{Limit: 9999}).ToParams().Encode()
	require.NoError(t, err)
	assert.Equal(t, "500", wire.Values.Get("limit"))

	wire, err = (&iconic.ListBrandsParams{}).ToParams().Encode()
	require.NoError(t, err)
	assert.Equal(t, "100", wire.Values.Get("limit"))
}

func TestInvoiceFilesParams(t *testing.T) {
	t.Parallel()

	params := &iconic.InvoiceFilesParams{
		OrderNumbers:  []string{"A1", "B2"},
		DocumentTypes: []iconic.InvoiceDocumentType{iconic.InvoiceDocumentInvoice, iconic.InvoiceDocumentCreditNote},
		StartDate:     iconic.NewDate(2026, time.June, 1),
	}

	wire, err := params.ToParams().Encode()
	require.NoError(t, err)

	assert.Equal(t, []string{"A1", "B2"}, wire.Values["orderNumbers[]"])
	assert.Equal(t, []string{"invoice", "credit_note"}, wire.Values["documentTypes[]"])
	assert.Equal(t, "2026-06-01", wire.Values.Get("startDate"))
}

func TestOrderStatusPrecedingStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, iconic.OrderStatusPending, iconic.OrderStatusReadyToShip.PrecedingStatus())
	assert.Equal(t, iconic.OrderStatusReadyToShip, iconic.OrderStatusShipped.PrecedingStatus())
	assert.Equal(t, iconic.OrderStatusShipped, iconic.OrderStatusDelivered.PrecedingStatus())
	assert.Equal(t, iconic.OrderStatus(""), iconic.OrderStatusCanceled.PrecedingStatus())
}
