// Package client is the web front-end's typed client for the dealership api.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/princeprakhar/dealership-reviews/internal/models"
	"github.com/princeprakhar/dealership-reviews/internal/types"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetDealers lists dealers; an empty state lists all of them, otherwise it is sent as the path suffix.
func (c *Client) GetDealers(ctx context.Context, state string) ([]models.Dealer, error) {
	path := "/get_dealers/"
	if state != "" {
		path += url.PathEscape(state)
	}

	var body types.DealersResponse
	if err := c.do(ctx, http.MethodGet, path, "", nil, &body, true); err != nil {
		return nil, err
	}
	if body.Status != http.StatusOK || body.Dealers == nil {
		return nil, malformed(path, "missing dealers")
	}
	return body.Dealers, nil
}

// GetDealer returns the first dealer record for id.
func (c *Client) GetDealer(ctx context.Context, id string) (*models.Dealer, error) {
	path := "/dealer/" + url.PathEscape(id)

	var body types.DealerResponse
	if err := c.do(ctx, http.MethodGet, path, "", nil, &body, true); err != nil {
		return nil, err
	}
	if body.Status != http.StatusOK || len(body.Dealer) == 0 {
		return nil, malformed(path, "missing dealer")
	}
	return &body.Dealer[0], nil
}

// GetDealerReviews returns the dealer's reviews; the list may be empty.
func (c *Client) GetDealerReviews(ctx context.Context, id string) ([]models.Review, error) {
	path := "/reviews/dealer/" + url.PathEscape(id)

	var body types.ReviewsResponse
	if err := c.do(ctx, http.MethodGet, path, "", nil, &body, true); err != nil {
		return nil, err
	}
	if body.Status != http.StatusOK || body.Reviews == nil {
		return nil, malformed(path, "missing reviews")
	}
	return body.Reviews, nil
}

func (c *Client) GetCars(ctx context.Context) ([]models.CarChoice, error) {
	const path = "/get_cars/"

	var body types.CarModelsResponse
	if err := c.do(ctx, http.MethodGet, path, "", nil, &body, true); err != nil {
		return nil, err
	}
	if body.CarModels == nil {
		return nil, malformed(path, "missing CarModels")
	}
	return body.CarModels, nil
}

// AddReview posts a review with the session's bearer token. The decoded body is
// returned whatever the HTTP status so callers can surface the server's message.
func (c *Client) AddReview(ctx context.Context, token string, review types.AddReviewRequest) (*types.StatusResponse, error) {
	var body types.StatusResponse
	if err := c.do(ctx, http.MethodPost, "/add_review/", token, review, &body, false); err != nil {
		return nil, err
	}
	return &body, nil
}

// Login returns the decoded body whatever the HTTP status.
func (c *Client) Login(ctx context.Context, req types.LoginRequest) (*types.AuthResponse, error) {
	var body types.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", "", req, &body, false); err != nil {
		return nil, err
	}
	return &body, nil
}

func (c *Client) Logout(ctx context.Context, token string) (*types.LogoutResponse, error) {
	var body types.LogoutResponse
	if err := c.do(ctx, http.MethodGet, "/logout", token, nil, &body, true); err != nil {
		return nil, err
	}
	return &body, nil
}

// Register returns the decoded body whatever the HTTP status.
func (c *Client) Register(ctx context.Context, req types.RegisterRequest) (*types.AuthResponse, error) {
	var body types.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/register/", "", req, &body, false); err != nil {
		return nil, err
	}
	return &body, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out interface{}, requireOK bool) error {
	var reader io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return &Error{Kind: KindTransport, Endpoint: path, Err: fmt.Errorf("failed to encode request: %w", err)}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindTransport, Endpoint: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Endpoint: path, Err: err}
	}
	defer resp.Body.Close()

	if requireOK && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		io.Copy(io.Discard, resp.Body)
		return &Error{Kind: KindStatus, Endpoint: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) {
			return &Error{Kind: KindTransport, Endpoint: path, StatusCode: resp.StatusCode, Err: err}
		}
		return &Error{Kind: KindMalformed, Endpoint: path, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

func malformed(endpoint, reason string) error {
	return &Error{Kind: KindMalformed, Endpoint: endpoint, Err: errors.New(reason)}
}
