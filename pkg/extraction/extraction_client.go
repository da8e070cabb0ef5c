package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/domain"
)

type (
	// Client forwards an uploaded document to the extraction collaborator
	// and returns the extracted line items as an opaque JSON array.
	Client interface {
		Extract(ctx context.Context, filename string, contentType string, data []byte) (json.RawMessage, error)
	}

	httpClient struct {
		endpoint string
		client   *http.Client
	}
)

func NewClient(endpoint string, timeout time.Duration) Client {
	return &httpClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) Extract(ctx context.Context, filename string, contentType string, data []byte) (json.RawMessage, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(filename)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s - %s", domain.ErrExtractionUpstream, resp.Status, string(respBody))
	}

	if !json.Valid(respBody) {
		return nil, fmt.Errorf("%w: malformed response body", domain.ErrExtractionUpstream)
	}

	return json.RawMessage(respBody), nil
}

func escapeQuotes(s string) string {
	return strings.NewReplacer("\\", "\\\\", `"`, "\\\"").Replace(s)
}
