// Package http is the transport shared by all resource clients. A Client is
// configured once and never mutated afterwards.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/glo/internal/auth"
	"github.com/fivetwenty-io/glo/internal/constants"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

// Request describes one API call.
type Request struct {
	// Operation names the client method for logs and metrics.
	Operation string
	Method    string
	Path      string
	Query     url.Values
	// Body is marshaled to JSON as given. Nil sends no body.
	Body    interface{}
	Headers map[string]string
}

// Response is a fully read API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	logger       glo.Logger
	debug        bool
	userAgent    string
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	timeout      time.Duration
	interceptors *glo.InterceptorChain
}

// WithLogger sets the logger used for debug output and retry warnings.
func WithLogger(logger glo.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithDebug logs every request and response through the configured logger.
func WithDebug(debug bool) Option {
	return func(o *clientOptions) {
		o.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithRetryConfig enables retries on 429, 5xx and connection errors.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(o *clientOptions) {
		if retryMax >= 0 {
			o.retryMax = retryMax
		}

		if waitMin > 0 {
			o.retryWaitMin = waitMin
		}

		if waitMax > 0 {
			o.retryWaitMax = waitMax
		}
	}
}

// WithTimeout sets a whole-request timeout on the underlying http.Client.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithInterceptors runs chain around every request.
func WithInterceptors(chain *glo.InterceptorChain) Option {
	return func(o *clientOptions) {
		o.interceptors = chain
	}
}

// Client sends API requests relative to a fixed base URL.
type Client struct {
	baseURL       string
	tokenProvider auth.TokenProvider
	httpClient    *retryablehttp.Client
	logger        glo.Logger
	debug         bool
	userAgent     string
	interceptors  *glo.InterceptorChain
}

// NewClient creates a Client. A nil tokenProvider sends no Authorization
// header.
func NewClient(baseURL string, tokenProvider auth.TokenProvider, opts ...Option) *Client {
	options := &clientOptions{
		userAgent:    constants.DefaultUserAgent,
		retryMax:     constants.DefaultRetryMax,
		retryWaitMin: constants.DefaultRetryWaitMin,
		retryWaitMax: constants.DefaultRetryWaitMax,
		timeout:      constants.NoHTTPTimeout,
	}

	for _, opt := range opts {
		opt(options)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = options.retryMax
	retryClient.RetryWaitMin = options.retryWaitMin
	retryClient.RetryWaitMax = options.retryWaitMax
	retryClient.CheckRetry = retryablehttp.DefaultRetryPolicy
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	if options.logger != nil {
		retryClient.Logger = &leveledLogger{logger: options.logger}
	}

	if options.timeout > 0 {
		retryClient.HTTPClient.Timeout = options.timeout
	}

	return &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		tokenProvider: tokenProvider,
		httpClient:    retryClient,
		logger:        options.logger,
		debug:         options.debug,
		userAgent:     options.userAgent,
		interceptors:  options.interceptors,
	}
}

// BaseURL returns the URL every request path is joined to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends req. For a non-2xx status it returns both the response and a
// *glo.APIError. Request interceptors may rewrite the path, headers and
// body that go on the wire.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var bodyBytes []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyBytes = encoded
	}

	intercepted := &glo.Request{
		Operation: req.Operation,
		Method:    req.Method,
		Path:      req.Path,
		Headers:   c.defaultHeaders(bodyBytes != nil),
		Body:      bodyBytes,
	}

	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	err = c.setAuthorization(ctx, intercepted.Headers)
	if err != nil {
		return nil, err
	}

	httpReq, err := c.newRetryableRequest(ctx, req.Method, intercepted.Path, req.Query, intercepted.Body)
	if err != nil {
		return nil, err
	}

	httpReq.Header = intercepted.Headers

	c.logDebug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    httpReq.URL.String(),
	})

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		err = fmt.Errorf("%s %s: %w", req.Method, intercepted.Path, err)
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &glo.Response{Error: err})

		return nil, err
	}

	resp, err := readResponse(httpResp)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, intercepted.Path, err)
	}

	c.logDebug("HTTP Response", map[string]interface{}{
		"method":      req.Method,
		"url":         httpReq.URL.String(),
		"status_code": resp.StatusCode,
		"body_bytes":  len(resp.Body),
	})

	var apiErr error
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr = glo.NewAPIError(req.Method, intercepted.Path, resp.StatusCode, resp.Body)
	}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &glo.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Error:      apiErr,
	})
	if err != nil {
		if apiErr != nil {
			return resp, errors.Join(apiErr, err)
		}

		return resp, err
	}

	if apiErr != nil {
		return resp, apiErr
	}

	return resp, nil
}

// Get sends a GET request with the given query parameters.
func (c *Client) Get(ctx context.Context, operation, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Operation: operation,
		Method:    http.MethodGet,
		Path:      path,
		Query:     query,
	})
}

// Post sends a POST request with body encoded as JSON.
func (c *Client) Post(ctx context.Context, operation, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Operation: operation,
		Method:    http.MethodPost,
		Path:      path,
		Body:      body,
	})
}

// Delete sends a DELETE request without a body.
func (c *Client) Delete(ctx context.Context, operation, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Operation: operation,
		Method:    http.MethodDelete,
		Path:      path,
	})
}

func (c *Client) defaultHeaders(hasBody bool) http.Header {
	headers := make(http.Header)
	headers.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	headers.Set(constants.HeaderUserAgent, c.userAgent)

	if hasBody {
		headers.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	return headers
}

func (c *Client) setAuthorization(ctx context.Context, headers http.Header) error {
	if c.tokenProvider == nil {
		return nil
	}

	token, err := c.tokenProvider.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("getting token: %w", err)
	}

	headers.Set(constants.HeaderAuthorization, token)

	return nil
}

func (c *Client) newRetryableRequest(ctx context.Context, method, path string, query url.Values, body []byte) (*retryablehttp.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, target, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	return httpReq, nil
}

func readResponse(httpResp *http.Response) (*Response, error) {
	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.debug && c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

// leveledLogger adapts glo.Logger to retryablehttp.LeveledLogger. Only
// warnings and errors are forwarded; per-attempt chatter is dropped.
type leveledLogger struct {
	logger glo.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keyValuesToFields(keysAndValues))
}

func (l *leveledLogger) Info(string, ...interface{}) {}

func (l *leveledLogger) Debug(string, ...interface{}) {}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keyValuesToFields(keysAndValues))
}

func keyValuesToFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}
