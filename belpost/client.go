// Package belpost fetches postal code rows from the public Belpost
// lookup page. The page returns plain HTML tables; a bounded session pool
// keeps the request rate within what the site tolerates.
package belpost

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/valyala/fasthttp"

	"github.com/postindex/belindex/addrmodel"
	"github.com/postindex/belindex/pool"
)

// Config is the lookup source configuration.
type Config struct {
	BaseURL     string
	SearchPath  string
	Timeout     time.Duration
	MaxResults  int
	MaxSessions int
	SessionTTL  time.Duration
}

func ConfigDefault() Config {
	return Config{
		BaseURL:     "https://www.belpost.by",
		SearchPath:  "/Uznatpochtovyykod28indek",
		Timeout:     15 * time.Second,
		MaxResults:  10,
		MaxSessions: 4,
		SessionTTL:  5 * time.Minute,
	}
}

// Client queries the lookup page and extracts raw result rows.
type Client struct {
	cfg      Config
	sessions *pool.Pool[*Session]
	log      *slog.Logger
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		sessions: pool.New(func() (*Session, error) {
			return newSession(cfg.Timeout), nil
		}, cfg.MaxSessions, cfg.SessionTTL),
		log: slog.With("component", "belpost"),
	}
}

// Search fetches the lookup page for one composed address string and
// returns its raw rows, capped at MaxResults. A page without a result
// table means no matches, not an error. When every session is leased the
// pool.ErrNoSession error surfaces unchanged so the caller can retry.
func (c *Client) Search(ctx context.Context, address string) ([]addrmodel.RawRow, error) {
	session, err := c.sessions.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer c.sessions.Release(session)

	searchURL := c.cfg.BaseURL + c.cfg.SearchPath + "?search=" + url.QueryEscape(address)

	body, status, err := session.get(searchURL)
	if err != nil {
		return nil, &NetworkError{URL: searchURL, Err: err}
	}
	if status != fasthttp.StatusOK {
		return nil, &NetworkError{URL: searchURL, Err: fmt.Errorf("status %d", status)}
	}

	rows, err := parseResults(body, c.cfg.MaxResults)
	if err != nil {
		return nil, &ParseError{Source: searchURL, Err: err}
	}

	c.log.Debug("lookup done", "address", address, "rows", len(rows))
	return rows, nil
}

func (c *Client) Close() error {
	return c.sessions.Close()
}

// parseResults finds the result table and extracts its rows. Pages with
// several tables are disambiguated by header text: the result table is
// the one mentioning a postal code column.
func parseResults(page []byte, maxResults int) ([]addrmodel.RawRow, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}

	tables := doc.Find("table")
	if tables.Length() == 0 {
		return nil, nil
	}

	table := tables.First()
	if tables.Length() > 1 {
		tables.EachWithBreak(func(_ int, t *goquery.Selection) bool {
			if isResultTable(t) {
				table = t
				return false
			}
			return true
		})
	}

	var rows []addrmodel.RawRow
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if len(rows) >= maxResults {
			return
		}
		cells := tr.Find("td")
		if cells.Length() < 6 {
			return
		}
		get := func(n int) string {
			return strings.TrimSpace(cells.Eq(n).Text())
		}
		row := addrmodel.RawRow{
			PostalCode: get(0),
			Region:     get(1),
			District:   get(2),
			City:       get(3),
			Street:     get(4),
			Houses:     get(5),
		}
		if row.PostalCode == "" {
			return
		}
		rows = append(rows, row)
	})

	return rows, nil
}

func isResultTable(t *goquery.Selection) bool {
	headers := strings.ToLower(t.Find("th").Text())
	return strings.Contains(headers, "индекс") || strings.Contains(headers, "код")
}
