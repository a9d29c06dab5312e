package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/avolkhin/luckydraw/pkg/clients"
)

// Block is one public chain block, the entropy source for winner selection.
type Block struct {
	Height int64     `json:"height"`
	Hash   string    `json:"hash"`
	Time   time.Time `json:"time"`
}

// Provider serves chain data. Implementations are treated as unreliable:
// callers must tolerate errors without corrupting round state.
type Provider interface {
	LatestHeight(ctx context.Context) (int64, error)
	BlockByHeight(ctx context.Context, height int64) (*Block, error)
}

// ErrBlockUnavailable means the requested block is not served yet, typically
// because the estimated target height has not been mined. Retryable.
var ErrBlockUnavailable = errors.New("block unavailable")

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type Client struct {
	url    string
	client clients.HTTPClientI
}

func NewClient(url string, client clients.HTTPClientI) *Client {
	return &Client{url: url, client: client}
}

func (c *Client) LatestHeight(ctx context.Context) (int64, error) {
	var payload struct {
		Height int64 `json:"height"`
	}
	if err := c.get(ctx, c.url+"/api/blocks/latest", &payload); err != nil {
		return 0, err
	}
	return payload.Height, nil
}

func (c *Client) BlockByHeight(ctx context.Context, height int64) (*Block, error) {
	var block Block
	if err := c.get(ctx, fmt.Sprintf("%s/api/blocks/%d", c.url, height), &block); err != nil {
		return nil, err
	}
	if block.Hash == "" {
		return nil, ErrBlockUnavailable
	}
	return &block, nil
}

func (c *Client) get(ctx context.Context, url string, out any) error {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		statusCode, respBody, _, err := c.client.Get(url, nil)
		if err != nil {
			lastErr = err
			zap.L().Warn("chain provider request failed, retrying",
				zap.String("url", url), zap.Int("attempt", attempt), zap.Error(err))
			time.Sleep(retryInterval * time.Duration(attempt))
			continue
		}

		switch statusCode {
		case http.StatusOK:
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("failed to parse chain response: %w", err)
			}
			return nil
		case http.StatusNotFound:
			return ErrBlockUnavailable
		default:
			lastErr = fmt.Errorf("unexpected status code %d", statusCode)
			time.Sleep(retryInterval * time.Duration(attempt))
		}
	}
	return fmt.Errorf("chain provider unavailable after %d retries: %w", maxRetries, lastErr)
}
