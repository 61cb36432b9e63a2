package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client wraps HTTP calls to the catalog REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ Catalog = (*Client)(nil)

// NewClient creates a new API client.
func NewClient(baseURL, apiKey string, timeout ...time.Duration) *Client {
	httpTimeout := 30 * time.Second
	if len(timeout) > 0 && timeout[0] > 0 {
		httpTimeout = timeout[0]
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// BaseURL returns the service root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type requestOpts struct {
	refDelete bool
}

// do executes an HTTP request and returns the raw response body. Every
// failure comes back as *Error.
func (c *Client) do(method, path string, body any, opts requestOpts) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindValidation, Message: "marshal body", Err: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "create request", Err: err}
	}

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("request failed: %v", err), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Status: resp.StatusCode, Message: "read response", Err: err}
	}

	if resp.StatusCode >= 400 {
		code, msg, ok := extractAPIErrorBody(respBody)
		if !ok {
			msg = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
		}
		return nil, &Error{
			Kind:    classifyStatus(resp.StatusCode, code, opts.refDelete),
			Status:  resp.StatusCode,
			Code:    code,
			Message: msg,
		}
	}

	return respBody, nil
}

// get performs a GET request.
func (c *Client) get(path string) ([]byte, error) {
	return c.do(http.MethodGet, path, nil, requestOpts{})
}

// post performs a POST request.
func (c *Client) post(path string, body any) ([]byte, error) {
	return c.do(http.MethodPost, path, body, requestOpts{})
}

// put performs a PUT request.
func (c *Client) put(path string, body any) ([]byte, error) {
	return c.do(http.MethodPut, path, body, requestOpts{})
}

// del performs a DELETE request.
func (c *Client) del(path string, opts requestOpts) error {
	_, err := c.do(http.MethodDelete, path, nil, opts)
	return err
}

// unwrapData accepts both bare payloads and {"data": ...} envelopes.
func unwrapData(data []byte) []byte {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		return env.Data
	}
	return data
}

// decodeOne decodes a single-item API response.
func decodeOne[T any](data []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(unwrapData(data), &out); err != nil {
		return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("decode response: %v", err), Err: err}
	}
	return &out, nil
}

// decodeList decodes a list API response.
func decodeList[T any](data []byte) ([]T, error) {
	var out []T
	if err := json.Unmarshal(unwrapData(data), &out); err != nil {
		return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("decode response: %v", err), Err: err}
	}
	return out, nil
}

// buildQuery appends query params to a path.
func buildQuery(path string, params QueryParams) string {
	q := url.Values{}
	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// extractAPIErrorBody understands {"error": {...}}, {"detail": "..."} and
// the FastAPI validation list {"detail": [{"msg": ...}]}.
func extractAPIErrorBody(body []byte) (string, string, bool) {
	if len(body) == 0 {
		return "", "", false
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", "", false
	}

	if code, msg, ok := parseErrorValue(payload["error"]); ok {
		return code, msg, true
	}
	if code, msg, ok := parseErrorValue(payload["detail"]); ok {
		return code, msg, true
	}
	return "", "", false
}

func parseErrorValue(raw any) (string, string, bool) {
	switch value := raw.(type) {
	case string:
		msg := strings.TrimSpace(value)
		if msg == "" {
			return "", "", false
		}
		return "", msg, true
	case map[string]any:
		if code, msg, ok := parseErrorValue(value["error"]); ok {
			return code, msg, true
		}
		code, _ := value["code"].(string)
		message, _ := value["message"].(string)
		code = strings.TrimSpace(code)
		message = strings.TrimSpace(message)
		if code == "" && message == "" {
			return "", "", false
		}
		if message == "" {
			message = code
		}
		return code, message, true
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			msg, _ := entry["msg"].(string)
			if msg == "" {
				continue
			}
			if field := locField(entry["loc"]); field != "" {
				msg = field + ": " + msg
			}
			parts = append(parts, msg)
		}
		if len(parts) == 0 {
			return "", "", false
		}
		return "", strings.Join(parts, "; "), true
	}
	return "", "", false
}

func locField(raw any) string {
	loc, ok := raw.([]any)
	if !ok || len(loc) == 0 {
		return ""
	}
	last, _ := loc[len(loc)-1].(string)
	return last
}
