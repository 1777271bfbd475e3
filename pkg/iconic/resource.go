package iconic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Static errors for err113 compliance.
var (
	ErrResourceIdentityRequired  = errors.New("operation requires an identified resource")
	ErrResourceAlreadyIdentified = errors.New("operation requires a collection-level resource")
)

// Resource is an in-memory handle to zero, one, or many remote entities. A
// resource with no identity represents the collection and supports List and
// Create; an identified resource represents one entity and supports Get,
// Update, Delete, and relationship accessors. The handle owns no connection
// state; it only keeps a reference to the Requester used to reach the
// transport.
//
// Resources are cheap and short-lived. They are immutable except for the
// explicit refresh performed by Get and Update, which replaces the raw data
// wholesale; concurrent mutation of one instance is not synchronized.
type Resource struct {
	requester Requester

	// listPath is the collection path ("/v2/product-sets"); itemPath is the
	// entity base ("/v2/product-set"). Some endpoints use a different noun
	// form for the two.
	listPath string
	itemPath string

	id   string
	data map[string]interface{}
}

// NewCollection creates a collection-level resource whose list and entity
// paths coincide.
func NewCollection(requester Requester, path string) *Resource {
	return NewCollectionWithPaths(requester, path, path)
}

// NewCollectionWithPaths creates a collection-level resource with distinct
// list and entity base paths.
func NewCollectionWithPaths(requester Requester, listPath, itemPath string) *Resource {
	return &Resource{
		requester: requester,
		listPath:  listPath,
		itemPath:  itemPath,
	}
}

// newIdentified wraps one fetched entity. Identity comes from the entity's
// "id" wire field when present.
func newIdentified(requester Requester, listPath, itemPath string, data map[string]interface{}) *Resource {
	return &Resource{
		requester: requester,
		listPath:  listPath,
		itemPath:  itemPath,
		id:        extractID(data),
		data:      data,
	}
}

// ID returns the resource identity, or "" for a collection-level resource.
func (r *Resource) ID() string {
	return r.id
}

// Identified reports whether the resource represents one entity.
func (r *Resource) Identified() bool {
	return r.id != ""
}

// Data returns the last-known raw wire data of the entity.
func (r *Resource) Data() map[string]interface{} {
	return r.data
}

// Field returns one raw wire field by its wire key.
func (r *Resource) Field(key string) (interface{}, bool) {
	value, ok := r.data[key]

	return value, ok
}

// List fetches one page of the collection and wraps each item as an
// identified resource. Both enveloped and legacy bare-array responses are
// accepted.
func (r *Resource) List(ctx context.Context, params *Params) (*Page[*Resource], error) {
	limit, offset := PageWindow(params)

	body, err := r.requester.Execute(ctx, "GET", r.listPath, params, nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.listPath, err)
	}

	page, err := DecodePage[map[string]interface{}](body, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.listPath, err)
	}

	wrapped := &Page[*Resource]{
		Items:      make([]*Resource, 0, len(page.Items)),
		Limit:      page.Limit,
		Offset:     page.Offset,
		TotalCount: page.TotalCount,
	}

	for _, item := range page.Items {
		wrapped.Items = append(wrapped.Items, newIdentified(r.requester, r.listPath, r.itemPath, item))
	}

	return wrapped, nil
}

// Create posts a new entity to the collection and returns it as an
// identified resource.
func (r *Resource) Create(ctx context.Context, payload map[string]interface{}) (*Resource, error) {
	if r.Identified() {
		return nil, fmt.Errorf("create on %s/%s: %w", r.itemPath, r.id, ErrResourceAlreadyIdentified)
	}

	body, err := r.requester.Execute(ctx, "POST", r.itemPath, nil, payload)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", r.itemPath, err)
	}

	data, err := decodeEntity(body)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", r.itemPath, err)
	}

	return newIdentified(r.requester, r.listPath, r.itemPath, data), nil
}

// Get refreshes the entity from the API, replacing the raw data wholesale,
// and returns the resource itself.
func (r *Resource) Get(ctx context.Context) (*Resource, error) {
	if !r.Identified() {
		return nil, fmt.Errorf("get on %s: %w", r.itemPath, ErrResourceIdentityRequired)
	}

	body, err := r.requester.Execute(ctx, "GET", r.entityPath(), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", r.entityPath(), err)
	}

	data, err := decodeEntity(body)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", r.entityPath(), err)
	}

	r.data = data

	return r, nil
}

// Update writes the payload to the entity and replaces the raw data with
// the response, entirely: no stale fields survive a successful write.
func (r *Resource) Update(ctx context.Context, payload map[string]interface{}) (*Resource, error) {
	if !r.Identified() {
		return nil, fmt.Errorf("update on %s: %w", r.itemPath, ErrResourceIdentityRequired)
	}

	body, err := r.requester.Execute(ctx, "PUT", r.entityPath(), nil, payload)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", r.entityPath(), err)
	}

	data, err := decodeEntity(body)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", r.entityPath(), err)
	}

	r.data = data

	return r, nil
}

// Delete removes the entity.
func (r *Resource) Delete(ctx context.Context) error {
	if !r.Identified() {
		return fmt.Errorf("delete on %s: %w", r.itemPath, ErrResourceIdentityRequired)
	}

	_, err := r.requester.Execute(ctx, "DELETE", r.entityPath(), nil, nil)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", r.entityPath(), err)
	}

	return nil
}

// Subcollection derives a collection-level resource scoped under this
// entity, e.g. the products of one product set. Each call builds a fresh
// resource; nothing is cached.
func (r *Resource) Subcollection(segment string) (*Resource, error) {
	if !r.Identified() {
		return nil, fmt.Errorf("subcollection %q on %s: %w", segment, r.itemPath, ErrResourceIdentityRequired)
	}

	path := r.entityPath() + "/" + segment

	return NewCollection(r.requester, path), nil
}

func (r *Resource) entityPath() string {
	return r.itemPath + "/" + r.id
}

func decodeEntity(body []byte) (map[string]interface{}, error) {
	var data map[string]interface{}

	err := json.Unmarshal(body, &data)
	if err != nil {
		return nil, fmt.Errorf("parsing entity response: %w", err)
	}

	return data, nil
}

// extractID normalizes the "id" wire field; the API uses numeric IDs but
// webhooks identify by UUID.
func extractID(data map[string]interface{}) string {
	if raw, ok := data["id"]; ok {
		switch v := raw.(type) {
		case string:
			return v
		case float64:
			return strconv.FormatInt(int64(v), 10)
		case json.Number:
			return v.String()
		}
	}

	if uuid, ok := data["uuid"].(string); ok {
		return uuid
	}

	return ""
}

// ProductSetResource navigates product sets and their related entities.
type ProductSetResource struct {
	*Resource
}

// NewProductSetCollection creates the collection-level product set resource.
// The API uses the plural noun for listing and the singular for entity
// operations.
func NewProductSetCollection(requester Requester) *ProductSetResource {
	return &ProductSetResource{
		Resource: NewCollectionWithPaths(requester, "/v2/product-sets", "/v2/product-set"),
	}
}

// Items fetches one page of product sets as navigable resources.
func (r *ProductSetResource) Items(ctx context.Context, params *ListProductSetsParams) (*Page[*ProductSetResource], error) {
	var bag *Params
	if params != nil {
		bag = params.ToParams()
	}

	page, err := r.List(ctx, bag)
	if err != nil {
		return nil, err
	}

	wrapped := &Page[*ProductSetResource]{
		Items:      make([]*ProductSetResource, 0, len(page.Items)),
		Limit:      page.Limit,
		Offset:     page.Offset,
		TotalCount: page.TotalCount,
	}

	for _, item := range page.Items {
		wrapped.Items = append(wrapped.Items, &ProductSetResource{Resource: item})
	}

	return wrapped, nil
}

// Products derives the product collection scoped to this product set.
// Requires an identified product set.
func (r *ProductSetResource) Products() (*ProductResource, error) {
	collection, err := r.Subcollection("products")
	if err != nil {
		return nil, err
	}

	return &ProductResource{Resource: collection, parent: r}, nil
}

// ProductResource navigates product variations.
type ProductResource struct {
	*Resource

	parent *ProductSetResource
}

// ProductSet returns the product set this product belongs to, re-reading it
// from the API when the product carries a productSetId reference.
func (r *ProductResource) ProductSet(ctx context.Context) (*ProductSetResource, error) {
	if r.parent != nil {
		return r.parent, nil
	}

	raw, ok := r.Field("productSetId")
	if !ok {
		return nil, fmt.Errorf("product %s has no product set reference: %w", r.ID(), ErrResourceIdentityRequired)
	}

	owner := newIdentified(r.requester, "/v2/product-sets", "/v2/product-set", map[string]interface{}{"id": raw})

	wrapped := &ProductSetResource{Resource: owner}

	_, err := wrapped.Get(ctx)
	if err != nil {
		return nil, err
	}

	return wrapped, nil
}
