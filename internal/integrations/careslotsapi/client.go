package careslotsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"
)

const apiPrefix = "/api/v1"

// Client talks to the care slot REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Initialize creates every missing slot of the server's catalogue.
func (c *Client) Initialize(ctx context.Context) (*InitializeResult, error) {
	var result InitializeResult
	if _, err := c.do(ctx, http.MethodPost, "/initialize", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Availability lists slots matching filter.
func (c *Client) Availability(ctx context.Context, filter AvailabilityFilter) ([]Slot, error) {
	q := url.Values{}
	for name, value := range map[string]string{
		"carer_id":     filter.CarerID,
		"date":         filter.Date,
		"time_slot":    filter.TimeSlot,
		"availability": filter.Availability,
	} {
		if value != "" {
			q.Set(name, value)
		}
	}

	path := "/availability"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var slots []Slot
	if _, err := c.do(ctx, http.MethodGet, path, nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// Book books a Free slot for a person.
func (c *Client) Book(ctx context.Context, req BookRequest) (*Outcome, error) {
	var outcome Outcome
	status, err := c.do(ctx, http.MethodPost, "/appointments", req, &outcome,
		http.StatusBadRequest, http.StatusConflict)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusOK:
		return &outcome, nil
	case http.StatusConflict:
		return &outcome, fmt.Errorf("%w: %s", ErrSlotUnavailable, outcome.Message)
	case http.StatusBadRequest:
		return &outcome, fmt.Errorf("%w: %s", ErrBadRequest, outcome.Message)
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, status)
	}
}

// Cancel releases a booked slot.
func (c *Client) Cancel(ctx context.Context, req CancelRequest) (*Outcome, error) {
	var outcome Outcome
	status, err := c.do(ctx, http.MethodPost, "/appointments/cancel", req, &outcome,
		http.StatusBadRequest, http.StatusConflict)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusOK:
		return &outcome, nil
	case http.StatusConflict:
		return &outcome, fmt.Errorf("%w: %s", ErrNoActiveBooking, outcome.Message)
	case http.StatusBadRequest:
		return &outcome, fmt.Errorf("%w: %s", ErrBadRequest, outcome.Message)
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, status)
	}
}

// do sends body as JSON and decodes the reply into out when its status is
// 200 or one of decodeAlso. Any other status is returned as an error
// carrying the server's message.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, decodeAlso ...int) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || slices.Contains(decodeAlso, resp.StatusCode) {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
		return resp.StatusCode, nil
	}

	sentinel := ErrInvalidResponse
	if resp.StatusCode == http.StatusBadRequest {
		sentinel = ErrBadRequest
	}

	var errResp ErrorResponse
	raw, _ := io.ReadAll(resp.Body)
	if json.Unmarshal(raw, &errResp) == nil && errResp.Message != "" {
		return resp.StatusCode, fmt.Errorf("%w: status %d: %s", sentinel, resp.StatusCode, errResp.Message)
	}
	return resp.StatusCode, fmt.Errorf("%w: unexpected status code %d: %s", sentinel, resp.StatusCode, string(raw))
}
