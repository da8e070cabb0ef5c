package matching

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/domain"
)

type (
	// MatchClient proxies batch match queries to the matching collaborator.
	// Exactly one round trip per call; no caching or retry.
	MatchClient interface {
		BatchMatch(ctx context.Context, queries []string) (domain.BatchMatchResponse, error)
	}

	httpMatchClient struct {
		endpoint string
		client   *http.Client
	}
)

func NewMatchClient(endpoint string, timeout time.Duration) MatchClient {
	return &httpMatchClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *httpMatchClient) BatchMatch(ctx context.Context, queries []string) (domain.BatchMatchResponse, error) {
	payload, err := json.Marshal(domain.BatchMatchRequest{Queries: queries})
	if err != nil {
		return domain.BatchMatchResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return domain.BatchMatchResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.BatchMatchResponse{}, fmt.Errorf("%w: %v", domain.ErrMatchingUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.BatchMatchResponse{}, fmt.Errorf("%w: %v", domain.ErrMatchingUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.BatchMatchResponse{}, fmt.Errorf("%w: %s - %s", domain.ErrMatchingUpstream, resp.Status, string(respBody))
	}

	var result domain.BatchMatchResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return domain.BatchMatchResponse{}, fmt.Errorf("%w: malformed response body", domain.ErrMatchingUpstream)
	}

	return result, nil
}
