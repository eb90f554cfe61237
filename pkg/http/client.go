package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client         *http.Client
	defaultHeaders map[string]string
	logger         HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	DefaultHeaders      map[string]string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	Logger              HTTPLogger
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: %s %s status %d", e.Method, e.URL, e.StatusCode)
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 20
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 5
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}

	transport := &http.Transport{
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		client:         client,
		defaultHeaders: opts.DefaultHeaders,
		logger:         opts.Logger,
	}
}

// BaseURL returns the normalized base URL of the client.
func (hc *Client) BaseURL() string {
	return hc.baseURL
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// doRequest sends a JSON request and decodes the response into successResp or errorResp
// depending on the status code. It returns the decoded responses, the status code and an
// error for transport failures and non-2xx statuses.
func (hc *Client) doRequest(ctx context.Context, method, path string, body any, successResp any, errorResp any) (any, any, int, error) {
	requestURL := hc.buildURL(path)

	var bodyBytes []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("failed to marshal request body to JSON: %w", err)
		}
		bodyBytes = encoded
	}

	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, nil, 0, err
	}

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}

	requestHeaders := flattenHeaders(req.Header)
	hc.logger.LogRequest(method, requestURL, requestHeaders, string(bodyBytes))

	start := time.Now()
	resp, err := hc.client.Do(req)
	if err != nil {
		hc.logger.LogResponseError(method, requestURL, requestHeaders, string(bodyBytes), 0, "", time.Since(start).Milliseconds(), err)
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBytes, err := io.ReadAll(resp.Body)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		hc.logger.LogResponseError(method, requestURL, requestHeaders, string(bodyBytes), resp.StatusCode, "", latency, err)
		return nil, nil, resp.StatusCode, err
	}

	respContentType := resp.Header.Get("Content-Type")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		hc.logger.LogResponseSuccess(method, requestURL, requestHeaders, string(bodyBytes), resp.StatusCode, string(respBytes), latency)
		if successResp != nil && len(bytes.TrimSpace(respBytes)) > 0 {
			if err := decodeJSON(respBytes, respContentType, successResp); err != nil {
				return nil, nil, resp.StatusCode, fmt.Errorf("failed to decode response body: %w", err)
			}
		}
		return successResp, nil, resp.StatusCode, nil
	}

	statusErr := &StatusError{Method: method, URL: requestURL, StatusCode: resp.StatusCode, Body: string(respBytes)}
	hc.logger.LogResponseError(method, requestURL, requestHeaders, string(bodyBytes), resp.StatusCode, string(respBytes), latency, statusErr)

	if errorResp != nil && len(bytes.TrimSpace(respBytes)) > 0 {
		if err := decodeJSON(respBytes, respContentType, errorResp); err != nil {
			// an undecodable error body still reports the status
			return nil, nil, resp.StatusCode, statusErr
		}
		return nil, errorResp, resp.StatusCode, statusErr
	}

	return nil, nil, resp.StatusCode, statusErr
}

// decodeJSON unmarshals a JSON body. A charset other than utf-8 in the
// content type is transcoded first.
func decodeJSON(bodyBytes []byte, contentType string, target any) error {
	_, params, _ := mime.ParseMediaType(contentType)
	label := strings.ToLower(params["charset"])
	if label == "" || label == "utf-8" || label == "utf8" {
		return json.Unmarshal(bodyBytes, target)
	}

	reader, err := charsetpkg.NewReaderLabel(label, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("unsupported charset %s: %w", label, err)
	}
	return json.NewDecoder(reader).Decode(target)
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

func flattenHeaders(header http.Header) map[string]string {
	flat := make(map[string]string, len(header))
	for k := range header {
		flat[k] = header.Get(k)
	}
	return flat
}
