package belpost

import (
	"time"

	"github.com/valyala/fasthttp"
)

// Session is one HTTP client leased from the pool. The lookup source
// throttles aggressive clients, so connections per session are kept low
// and the session carries a browser-like user agent.
type Session struct {
	client  *fasthttp.Client
	timeout time.Duration
}

func newSession(timeout time.Duration) *Session {
	return &Session{
		client: &fasthttp.Client{
			MaxConnsPerHost: 2,
			ReadTimeout:     timeout,
			WriteTimeout:    timeout,
		},
		timeout: timeout,
	}
}

func (s *Session) get(url string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	if err := s.client.DoTimeout(req, resp, s.timeout); err != nil {
		return nil, 0, err
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, resp.StatusCode(), nil
}

func (s *Session) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
