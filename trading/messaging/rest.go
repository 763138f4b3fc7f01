package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 10 * time.Second

type Config struct {
	BaseURL  string
	AppID    string
	APIToken string
	Timeout  time.Duration
}

// restClient talks to the hosted chat SaaS over its group-channel REST API.
type restClient struct {
	httpClient *http.Client
	baseURL    string
	appID      string
	apiToken   string
}

func NewRestClient(cfg Config) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &restClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		appID:      cfg.AppID,
		apiToken:   cfg.APIToken,
	}
}

type channelResponse struct {
	ChannelURL string `json:"channel_url"`
	Name       string `json:"name"`
	Members    []struct {
		UserID string `json:"user_id"`
	} `json:"members"`
}

func (c *restClient) CreateChannel(ctx context.Context, participantIDs []string, meta Metadata) (string, error) {
	data, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("failed to encode channel metadata: %w", err)
	}

	body := map[string]any{
		"user_ids":    participantIDs,
		"is_distinct": false,
		"custom_type": meta.Kind,
		"data":        string(data),
	}
	var resp channelResponse
	if err := c.do(ctx, http.MethodPost, "/v3/group_channels", body, &resp); err != nil {
		return "", fmt.Errorf("failed to create channel: %w", err)
	}
	if resp.ChannelURL == "" {
		return "", fmt.Errorf("backend returned channel without url")
	}
	return resp.ChannelURL, nil
}

func (c *restClient) GetChannel(ctx context.Context, channelRef string) (*Channel, error) {
	path := fmt.Sprintf("/v3/group_channels/%s?show_member=true", url.PathEscape(channelRef))
	var resp channelResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	channel := &Channel{
		Ref:     channelRef,
		URL:     resp.ChannelURL,
		Members: make([]string, 0, len(resp.Members)),
	}
	for _, m := range resp.Members {
		channel.Members = append(channel.Members, m.UserID)
	}
	return channel, nil
}

func (c *restClient) InviteMembers(ctx context.Context, channelRef string, userIDs []string) error {
	path := fmt.Sprintf("/v3/group_channels/%s/invite", url.PathEscape(channelRef))
	body := map[string]any{"user_ids": userIDs}
	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("failed to invite members: %w", err)
	}
	return nil
}

func (c *restClient) DeleteChannel(ctx context.Context, channelRef string) error {
	path := fmt.Sprintf("/v3/group_channels/%s", url.PathEscape(channelRef))
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}
	return nil
}

func (c *restClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf8")
	req.Header.Set("Api-Token", c.apiToken)
	if c.appID != "" {
		req.Header.Set("App-Id", c.appID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("messaging backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrChannelNotFound
	}
	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("messaging backend returned %d: %s", resp.StatusCode, string(detail))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
