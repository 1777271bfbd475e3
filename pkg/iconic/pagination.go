package iconic

import (
	"context"
	"errors"

	"github.com/DuneRaccoon/iconic-go/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoMoreItems = errors.New("no more items")
)

// PageFunc fetches one bounded page of a collection. Implementations issue a
// single remote call for the given window and never manage offsets
// themselves.
type PageFunc[T any] func(ctx context.Context, limit, offset int) (*Page[T], error)

// PaginationOptions tunes the engine-managed pagination modes.
type PaginationOptions struct {
	// Limit is the page size for each fetch. Defaults to
	// constants.DefaultPageLimit.
	Limit int

	// Offset is the starting offset. Defaults to 0.
	Offset int

	// MaxPages bounds the number of fetches; 0 means unbounded.
	MaxPages int
}

func (o *PaginationOptions) withDefaults() PaginationOptions {
	opts := PaginationOptions{}
	if o != nil {
		opts = *o
	}

	if opts.Limit <= 0 {
		opts.Limit = constants.DefaultPageLimit
	}

	if opts.Offset < 0 {
		opts.Offset = 0
	}

	return opts
}

// PageIterator lazily walks an offset-based collection, fetching the next
// page only once the previously yielded one is exhausted. An iterator is a
// single-pass, non-restartable cursor: a second traversal needs a new
// iterator, which re-issues the same remote calls and may observe different
// results if the collection changed in between.
//
// Iterators are not safe for concurrent use; independent iterations of the
// same query each need their own iterator.
type PageIterator[T any] struct {
	ctx       context.Context
	fetch     PageFunc[T]
	limit     int
	offset    int
	buffer    []T
	position  int
	exhausted bool
	err       error
}

// NewPageIterator creates an iterator over fetch starting at offset 0.
func NewPageIterator[T any](ctx context.Context, fetch PageFunc[T], opts *PaginationOptions) *PageIterator[T] {
	resolved := opts.withDefaults()

	return &PageIterator[T]{
		ctx:    ctx,
		fetch:  fetch,
		limit:  resolved.Limit,
		offset: resolved.Offset,
	}
}

// HasNext reports whether another item is available, fetching the next page
// when the buffered one is consumed. A pending fetch error also reports
// true so that Next can surface it.
func (it *PageIterator[T]) HasNext() bool {
	if it.position < len(it.buffer) {
		return true
	}

	if it.err != nil {
		return true
	}

	if it.exhausted {
		return false
	}

	it.advance()

	return it.position < len(it.buffer) || it.err != nil
}

// Next returns the next item. Once the collection is exhausted it returns
// ErrNoMoreItems; a failed page fetch is returned as-is and permanently
// exhausts the iterator.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		return zero, ErrNoMoreItems
	}

	if it.err != nil {
		err := it.err
		it.err = nil

		return zero, err
	}

	item := it.buffer[it.position]
	it.position++

	return item, nil
}

// All drains the remaining items into a single ordered slice.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to each remaining item, stopping on the first error
// from either a fetch or fn itself.
func (it *PageIterator[T]) ForEach(fn func(item T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// advance fetches the next page and updates the exhaustion state. An empty
// page, a short page, or a window reaching totalCount all mark the cursor
// exhausted; a fetch error exhausts it permanently with no partial retry.
func (it *PageIterator[T]) advance() {
	page, err := it.fetch(it.ctx, it.limit, it.offset)
	if err != nil {
		it.err = err
		it.exhausted = true
		it.buffer = nil
		it.position = 0

		return
	}

	it.buffer = page.Items
	it.position = 0

	if len(page.Items) < it.limit || it.offset+len(page.Items) >= page.TotalCount {
		it.exhausted = true
	}

	it.offset += it.limit
}

// FetchAll eagerly drives fetch to exhaustion and returns every item in
// order. It is equivalent to draining a PageIterator in one call.
func FetchAll[T any](ctx context.Context, fetch PageFunc[T], opts *PaginationOptions) ([]T, error) {
	resolved := opts.withDefaults()

	var items []T

	offset := resolved.Offset
	pages := 0

	for {
		page, err := fetch(ctx, resolved.Limit, offset)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Items...)
		pages++

		if len(page.Items) < resolved.Limit || offset+len(page.Items) >= page.TotalCount {
			return items, nil
		}

		if resolved.MaxPages > 0 && pages >= resolved.MaxPages {
			return items, nil
		}

		offset += resolved.Limit
	}
}

// PageResult is one streamed page, or the error that terminated the stream.
type PageResult[T any] struct {
	Items  []T
	Offset int
	Err    error
}

// StreamPages drives fetch in a background goroutine and delivers one
// PageResult per fetched page. The channel is closed after the final page,
// after an error, or once ctx is cancelled, whichever comes first. The
// stream suspends between pages, never mid-page, and shares its exhaustion
// rules with PageIterator and FetchAll.
func StreamPages[T any](ctx context.Context, fetch PageFunc[T], opts *PaginationOptions) <-chan PageResult[T] {
	resolved := opts.withDefaults()
	results := make(chan PageResult[T], constants.StreamBufferSize)

	go func() {
		defer close(results)

		offset := resolved.Offset
		pages := 0

		for {
			page, err := fetch(ctx, resolved.Limit, offset)
			if err != nil {
				select {
				case results <- PageResult[T]{Offset: offset, Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: page.Items, Offset: offset}:
			case <-ctx.Done():
				return
			}

			if len(page.Items) < resolved.Limit || offset+len(page.Items) >= page.TotalCount {
				return
			}

			pages++
			if resolved.MaxPages > 0 && pages >= resolved.MaxPages {
				return
			}

			offset += resolved.Limit
		}
	}()

	return results
}
