// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package graphql is a minimal GraphQL-over-HTTP client.

It posts a query document with optional variables and hands back the "data"
member of the response as a [gjson.Result], so repositories can map the
fields they need without declaring a mirror struct for every query.

Failure classes:

  - Transport: the request could not be sent or the context ended.
  - [*StatusError]: the server answered with a non-2xx status.
  - [ErrMalformedResponse]: the body is not a JSON object.
  - [*ResponseError]: the server returned a non-empty "errors" array.
*/
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 8 << 20
	defaultTimeout   = 10 * time.Second
)

// ErrMalformedResponse is returned when the response body is not valid JSON.
var ErrMalformedResponse = errors.New("graphql: malformed response")

// StatusError reports a non-2xx HTTP status from the endpoint.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("graphql: unexpected status %d", e.StatusCode)
}

// ResponseError carries the messages of a GraphQL "errors" array.
type ResponseError struct {
	Messages []string
}

func (e *ResponseError) Error() string {
	return "graphql: " + strings.Join(e.Messages, "; ")
}

// Client sends queries to a single GraphQL endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	userAgent  string
}

// Option customizes a [Client].
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) { c.userAgent = userAgent }
}

// NewClient creates a client for endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	client := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Endpoint returns the URL queries are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type requestBody struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Query executes query and returns the "data" member of the response.
//
// A response whose "data" is null or absent is not an error here; callers
// decide whether an empty payload is acceptable.
func (c *Client) Query(ctx context.Context, query string, variables map[string]any) (gjson.Result, error) {
	payload, err := json.Marshal(requestBody{Query: query, Variables: variables})
	if err != nil {
		return gjson.Result{}, fmt.Errorf("graphql: failed to encode request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("graphql: failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		request.Header.Set("User-Agent", c.userAgent)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("graphql: request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("graphql: failed to read response: %w", err)
	}

	// GraphQL servers often describe failures in the body even on 4xx/5xx,
	// so errors are inspected before the status code.
	if gjson.ValidBytes(body) {
		if messages := errorMessages(gjson.GetBytes(body, "errors")); len(messages) > 0 {
			return gjson.Result{}, &ResponseError{Messages: messages}
		}
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return gjson.Result{}, &StatusError{StatusCode: response.StatusCode}
	}

	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsObject() {
		return gjson.Result{}, ErrMalformedResponse
	}

	return gjson.GetBytes(body, "data"), nil
}

func errorMessages(errs gjson.Result) []string {
	if !errs.IsArray() {
		return nil
	}

	var messages []string
	errs.ForEach(func(_, entry gjson.Result) bool {
		message := entry.Get("message").String()
		if message == "" {
			message = "unknown error"
		}
		messages = append(messages, message)
		return true
	})
	return messages
}
