// Package rpc implements the synchronous request/response client used for
// all structured server communication.
//
// Every call is an HTTP POST with a JSON body and a JSON response. The call
// blocks the calling goroutine until the response arrives or the request
// fails; this is a deliberate contract so call sites read as straight-line
// code with a return value. Failures of any kind (transport error, non-2xx
// status, malformed response body) collapse to a null result — callers treat
// null as "no data" and never distinguish causes. There are no retries and
// no client-imposed timeout; the caller's context and the http.Client's own
// defaults apply.
package rpc

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Client issues blocking JSON-over-POST calls against a single base URL.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  Logger
}

// New creates a Client. baseURL must carry the scheme and host; paths passed
// to Call are resolved against it. httpc may be nil, in which case
// http.DefaultClient is used. logger may be nil to disable logging.
func New(baseURL string, httpc *http.Client, logger Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		logger:  logger,
	}
}

// Call serializes body to JSON, POSTs it to path, blocks until the server
// responds, and returns the parsed response value. A nil body is sent as an
// empty JSON object.
//
// On any failure Call returns a null gjson.Result (Exists() == false).
func (c *Client) Call(ctx context.Context, path string, body any) gjson.Result {
	requestID := uuid.NewString()

	payload := []byte("{}")
	if body != nil {
		var err error
		payload, err = sonic.Marshal(body)
		if err != nil {
			c.warn("marshal request body", requestID, path, err)
			return gjson.Result{}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		c.warn("build request", requestID, path, err)
		return gjson.Result{}
	}
	req.Header.Set("Content-Type", "application/json")

	c.debug("rpc call", requestID, path)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.warn("transport failure", requestID, path, err)
		return gjson.Result{}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.warn("read response body", requestID, path, err)
		return gjson.Result{}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.logger != nil {
			c.logger.Warn("rpc non-2xx status", "request_id", requestID, "path", path, "status", resp.StatusCode)
		}
		return gjson.Result{}
	}

	if !gjson.ValidBytes(raw) {
		if c.logger != nil {
			c.logger.Warn("rpc malformed response", "request_id", requestID, "path", path)
		}
		return gjson.Result{}
	}

	return gjson.ParseBytes(raw)
}

func (c *Client) debug(msg, requestID, path string) {
	if c.logger != nil {
		c.logger.Debug(msg, "request_id", requestID, "path", path)
	}
}

func (c *Client) warn(msg, requestID, path string, err error) {
	if c.logger != nil {
		c.logger.Warn("rpc "+msg, "request_id", requestID, "path", path, "error", err.Error())
	}
}
