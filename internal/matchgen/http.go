package matchgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/okian/starfest/internal/domain/model"
	"github.com/okian/starfest/internal/domain/types"
)

// client is a thin HTTP wrapper over the service API.
type client struct {
	baseURL string
	http    *http.Client
}

func newClient(cfg *Config) *client {
	return &client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// currentEvent fetches the active event snapshot.
func (c *client) currentEvent(ctx context.Context) (types.EventSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/event", nil)
	if err != nil {
		return types.EventSnapshot{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return types.EventSnapshot{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return types.EventSnapshot{}, fmt.Errorf("get event: status %d: %s", resp.StatusCode, body)
	}
	var snapshot types.EventSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return types.EventSnapshot{}, err
	}
	return snapshot, nil
}

// submitMatch posts one match report.
func (c *client) submitMatch(ctx context.Context, payload model.MatchPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/matches", bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("submit match: status %d: %s", resp.StatusCode, body)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
