package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/valyala/fasthttp"
)

const defaultTimeout = 10 * time.Second

// Client talks to the address token microservice. Responses are cached per
// address string: the service is deterministic and the self-correction pass
// re-parses almost identical input.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *fasthttp.Client
	cache   *xsync.MapOf[string, Tokens]
	log     *slog.Logger
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		timeout: defaultTimeout,
		http:    &fasthttp.Client{},
		cache:   xsync.NewMapOf[string, Tokens](),
		log:     slog.With("component", "geocoder"),
	}
}

// Parse sends the address to the token service and returns the detected
// tokens. A transport or decode failure is returned as an error; callers
// are expected to treat it as "no answer", not as fatal.
func (c *Client) Parse(ctx context.Context, address string) (Tokens, error) {
	if err := ctx.Err(); err != nil {
		return Tokens{}, err
	}
	if cached, ok := c.cache.Load(address); ok {
		return cached, nil
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + "/parse?address=" + url.QueryEscape(address))
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
		return Tokens{}, fmt.Errorf("geocoder request: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return Tokens{}, fmt.Errorf("geocoder status %d", resp.StatusCode())
	}

	var tokens Tokens
	if err := json.Unmarshal(resp.Body(), &tokens); err != nil {
		return Tokens{}, fmt.Errorf("geocoder response decode: %w", err)
	}

	c.cache.Store(address, tokens)
	c.log.Debug("address parsed", "address", address, "tokens", tokens)
	return tokens, nil
}

// Health reports whether the token service answers its health endpoint.
func (c *Client) Health(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + "/health")
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := c.http.DoTimeout(req, resp, 5*time.Second); err != nil {
		c.log.Warn("geocoder health check failed", "error", err)
		return false
	}
	return resp.StatusCode() == fasthttp.StatusOK
}
