package iconic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

func TestDecodePageEnvelope(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"items": [{"id": 1, "name": "Shoes"}, {"id": 2, "name": "Bags"}],
		"pagination": {"limit": 2, "offset": 4, "totalCount": 57}
	}`)

	page, err := iconic.DecodePage[iconic.Brand](body, 0, 0)
	require.NoError(t, err)

	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 4, page.Offset)
	assert.Equal(t, 57, page.TotalCount)
	assert.True(t, page.HasMore())
}

func TestDecodePageBareArray(t *testing.T) {
	t.Parallel()

	body := []byte(`[{"id": 1, "name": "Shoes"}, {"id": 2, "name": "Bags"}]`)

	// The legacy shape has no envelope: the window comes from the caller and
	// totalCount is the item count.
	page, err := iconic.DecodePage[iconic.Brand](body, 100, 0)
	require.NoError(t, err)

	assert.Len(t, page.Items, 2)
	assert.Equal(t, 100, page.Limit)
	assert.Equal(t, 0, page.Offset)
	assert.Equal(t, 2, page.TotalCount)
	assert.False(t, page.HasMore())
}

func TestDecodePageEnvelopeMissingPagination(t *testing.T) {
	t.Parallel()

	body := []byte(`{"items": [{"id": 7, "name": "Hats"}]}`)

	page, err := iconic.DecodePage[iconic.Brand](body, 50, 10)
	require.NoError(t, err)

	assert.Len(t, page.Items, 1)
	assert.Equal(t, 50, page.Limit)
	assert.Equal(t, 10, page.Offset)
	assert.Equal(t, 1, page.TotalCount)
}

func TestDecodePageInvalid(t *testing.T) {
	t.Parallel()

	_, err := iconic.DecodePage[iconic.Brand]([]byte(`not json`), 10, 0)
	assert.Error(t, err)
}

func TestPageHasMore(t *testing.T) {
	t.Parallel()

	full := &iconic.Page[int]{Items: make([]int, 10), Limit: 10, Offset: 0, TotalCount: 25}
	assert.True(t, full.HasMore())

	last := &iconic.Page[int]{Items: make([]int, 5), Limit: 10, Offset: 20, TotalCount: 25}
	assert.False(t, last.HasMore())

	exact := &iconic.Page[int]{Items: make([]int, 10), Limit: 10, Offset: 15, TotalCount: 25}
	assert.False(t, exact.HasMore())
}

func TestPageWindow(t *testing.T) {
	t.Parallel()

	limit, offset := iconic.PageWindow(nil)
	assert.Equal(t, 0, limit)
	assert.Equal(t, 0, offset)

	params := iconic.NewParams().Set("limit", 25).Set("offset", 50)

	limit, offset = iconic.PageWindow(params)
	assert.Equal(t, 25, limit)
	assert.Equal(t, 50, offset)
}
