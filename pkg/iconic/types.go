package iconic

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PageInfo is the pagination envelope the API returns alongside list items.
type PageInfo struct {
	Limit      int `json:"limit"      yaml:"limit"`
	Offset     int `json:"offset"     yaml:"offset"`
	TotalCount int `json:"totalCount" yaml:"totalCount"`
}

// Page is one bounded slice of a logical collection plus the metadata needed
// to locate the next slice.
type Page[T any] struct {
	Items      []T `json:"items"      yaml:"items"`
	Limit      int `json:"limit"      yaml:"limit"`
	Offset     int `json:"offset"     yaml:"offset"`
	TotalCount int `json:"totalCount" yaml:"totalCount"`
}

// HasMore reports whether further pages exist after this one.
func (p *Page[T]) HasMore() bool {
	return p.Offset+len(p.Items) < p.TotalCount && len(p.Items) >= p.Limit
}

type pageEnvelope[T any] struct {
	Items      []T       `json:"items"`
	Pagination *PageInfo `json:"pagination"`
}

// DecodePage builds a Page from a list response body. Both observed response
// shapes are valid inputs: the enveloped form
// {"items": [...], "pagination": {...}} and the legacy bare JSON array some
// endpoints still return. A bare array has no envelope, so totalCount is the
// item count and limit/offset fall back to the caller-supplied values; an
// envelope missing individual pagination fields falls back the same way.
func DecodePage[T any](body []byte, limit, offset int) (*Page[T], error) {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T

		err := json.Unmarshal(trimmed, &items)
		if err != nil {
			return nil, fmt.Errorf("parsing list response: %w", err)
		}

		return &Page[T]{
			Items:      items,
			Limit:      limit,
			Offset:     offset,
			TotalCount: len(items),
		}, nil
	}

	var envelope pageEnvelope[T]

	err := json.Unmarshal(trimmed, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing paginated response: %w", err)
	}

	page := &Page[T]{
		Items:      envelope.Items,
		Limit:      limit,
		Offset:     offset,
		TotalCount: len(envelope.Items),
	}

	if envelope.Pagination != nil {
		if envelope.Pagination.Limit > 0 {
			page.Limit = envelope.Pagination.Limit
		}

		page.Offset = envelope.Pagination.Offset

		if envelope.Pagination.TotalCount > 0 {
			page.TotalCount = envelope.Pagination.TotalCount
		}
	}

	return page, nil
}

// PageWindow reads the limit and offset out of a parameter bag. Legacy
// bare-array endpoints return no pagination envelope, so DecodePage needs the
// requested window to synthesize the page metadata.
func PageWindow(params *Params) (limit, offset int) {
	if params == nil {
		return 0, 0
	}

	if raw, ok := params.Get("limit"); ok {
		if v, ok := raw.(int); ok {
			limit = v
		}
	}

	if raw, ok := params.Get("offset"); ok {
		if v, ok := raw.(int); ok {
			offset = v
		}
	}

	return limit, offset
}
