package client

import (
	"context"
	"fmt"
	"strconv"

	internalhttp "github.com/DuneRaccoon/iconic-go/internal/http"
	"github.com/DuneRaccoon/iconic-go/pkg/iconic"
)

// InvoicesClientImpl implements iconic.InvoicesClient. The download endpoint
// returns binary zip content and the upload endpoint takes a multipart form,
// so this client works against the transport directly rather than the JSON
// request path.
type InvoicesClientImpl struct {
	client *ClientImpl
}

// DownloadFiles fetches the matching tax documents as a zip archive.
func (c *InvoicesClientImpl) DownloadFiles(ctx context.Context, params *iconic.InvoiceFilesParams) ([]byte, error) {
	req := &internalhttp.Request{
		Method: "GET",
		Path:   "/v2/invoices/download",
	}

	if params != nil {
		wire, err := params.ToParams().Encode()
		if err != nil {
			return nil, fmt.Errorf("encoding invoice download parameters: %w", err)
		}

		req.Query = wire.Values
		req.Headers = wire.Headers
	}

	resp, err := c.client.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("downloading invoice files: %w", err)
	}

	return resp.Body, nil
}

// UploadFile attaches a custom invoice document to an order item via
// multipart upload.
func (c *InvoicesClientImpl) UploadFile(ctx context.Context, orderItemID int, invoiceNumber, fileName string, content []byte) error {
	req := &internalhttp.Request{
		Method: "POST",
		Path:   "/v2/invoices/upload",
		FormFields: map[string]string{
			"orderItemId":   strconv.Itoa(orderItemID),
			"invoiceNumber": invoiceNumber,
		},
		FileParts: []internalhttp.FilePart{
			{FieldName: "file", FileName: fileName, Content: content},
		},
	}

	_, err := c.client.httpClient.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("uploading invoice for item %d: %w", orderItemID, err)
	}

	return nil
}

var _ iconic.InvoicesClient = (*InvoicesClientImpl)(nil)
