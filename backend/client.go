/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/metabolx/metabolx/logging"
)

var logger = logging.Logger(logging.SourceBackend)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 8 << 20

// Client talks to the analysis backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the backend at baseURL. A zero timeout means
// requests are only bounded by their context.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend root the client posts to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type analyzeRequest struct {
	TextReport string `json:"text_report"`
}

// AnalyzeResponse is the body returned by POST /analyze. At most one of
// Error and Redirect is acted on; Error takes precedence.
type AnalyzeResponse struct {
	Analysis string `json:"analysis,omitempty"`
	Error    string `json:"error,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// Analyze submits a blood report. Blank text returns ErrEmptyReport without
// contacting the backend. An error in the response body is returned as
// *AppError; any other failure wraps ErrTransport.
func (c *Client) Analyze(ctx context.Context, text string) (AnalyzeResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return AnalyzeResponse{}, ErrEmptyReport
	}

	var out AnalyzeResponse
	status, err := c.post(ctx, "/analyze", analyzeRequest{TextReport: text}, &out)
	if err != nil {
		return AnalyzeResponse{}, err
	}

	if out.Error != "" {
		logger.Warn("Backend rejected report", "status", status, "error", out.Error)
		return AnalyzeResponse{}, &AppError{Message: out.Error}
	}

	if status < 200 || status > 299 {
		return AnalyzeResponse{}, fmt.Errorf("%w: status %d", ErrTransport, status)
	}

	logger.Info("Report analyzed", "redirect", out.Redirect != "", "length", len(text))

	return out, nil
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response *string `json:"response"`
}

// Chat sends one message and returns the assistant reply. The backend may
// answer with a non-2xx status and still carry a reply, which is returned
// as is.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	var out chatResponse
	status, err := c.post(ctx, "/chat", chatRequest{Message: message}, &out)
	if err != nil {
		return "", err
	}

	if out.Response == nil {
		return "", fmt.Errorf("%w: status %d without response", ErrTransport, status)
	}

	if status < 200 || status > 299 {
		logger.Warn("Chat backend returned error status", "status", status)
	}

	return *out.Response, nil
}

// post sends body as JSON and decodes the JSON reply into out regardless of
// the status code, which is returned for the caller to judge.
func (c *Client) post(ctx context.Context, path string, body, out any) (int, error) {
	if c.baseURL == "" {
		return 0, fmt.Errorf("%w: %w", ErrTransport, errMissingBaseURL)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to marshal request: %w", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error("Backend request failed", "path", path, "error", err)
		return 0, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	logger.Debug("Backend responded", "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: failed to read response: %w", ErrTransport, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: status %d: invalid response: %w", ErrTransport, resp.StatusCode, err)
	}

	return resp.StatusCode, nil
}
