package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Default transport timeout for the hosted backend. Repositories do not add
// their own deadlines; the store client owns this.
const restTimeout = 15 * time.Second

// RESTClient talks to a PostgREST-compatible hosted backend. Filters go on
// the query string (`col=eq.val`), ordering as `order=col.desc`, and writes
// ask for the stored representation back so server-assigned ids and
// timestamps reach the caller.
type RESTClient struct {
	baseURL string
	apiKey  string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewRESTClient builds a client for the backend rooted at baseURL (the path
// up to and including the REST prefix, e.g. https://host/rest/v1). apiKey is
// sent on every request; the bearer token is set per signed-in user.
func NewRESTClient(baseURL, apiKey string) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: restTimeout},
	}
}

// SetToken swaps the bearer token, typically on sign-in or sign-out.
func (c *RESTClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *RESTClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *RESTClient) Select(ctx context.Context, collection string, q Query) ([]Row, error) {
	vals := url.Values{}
	vals.Set("select", "*")
	for _, f := range q.Filters {
		vals.Set(f.Column, "eq."+fmt.Sprintf("%v", f.Value))
	}
	if q.Order.Column != "" {
		dir := "asc"
		if q.Order.Descending {
			dir = "desc"
		}
		vals.Set("order", q.Order.Column+"."+dir)
	}
	if q.Limit > 0 {
		vals.Set("limit", strconv.Itoa(q.Limit))
	}

	body, err := c.do(ctx, http.MethodGet, collection, vals, nil, "")
	if err != nil {
		return nil, err
	}
	var rows []Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", collection, err)
	}
	return rows, nil
}

func (c *RESTClient) Insert(ctx context.Context, collection string, row Row) (Row, error) {
	body, err := c.do(ctx, http.MethodPost, collection, nil, []Row{row}, "return=representation")
	if err != nil {
		return nil, err
	}
	return singleRow(collection, body)
}

func (c *RESTClient) Update(ctx context.Context, collection string, id string, row Row) (Row, error) {
	vals := url.Values{}
	vals.Set("id", "eq."+id)
	body, err := c.do(ctx, http.MethodPatch, collection, vals, row, "return=representation")
	if err != nil {
		return nil, err
	}
	return singleRow(collection, body)
}

func (c *RESTClient) Delete(ctx context.Context, collection string, id string) error {
	vals := url.Values{}
	vals.Set("id", "eq."+id)
	_, err := c.do(ctx, http.MethodDelete, collection, vals, nil, "")
	return err
}

func (c *RESTClient) do(ctx context.Context, method, collection string, vals url.Values, payload any, prefer string) ([]byte, error) {
	u := c.baseURL + "/" + collection
	if len(vals) > 0 {
		u += "?" + vals.Encode()
	}

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", collection, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, collection, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", collection, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: status %d: %s", method, collection, resp.StatusCode, truncate(raw))
	}
	return raw, nil
}

// singleRow unwraps the representation array writes come back as.
func singleRow(collection string, body []byte) (Row, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrNotFound
	}
	var rows []Row
	if err := json.Unmarshal(body, &rows); err != nil {
		// Some backends return a bare object for single-row writes.
		var row Row
		if objErr := json.Unmarshal(body, &row); objErr == nil {
			return row, nil
		}
		return nil, fmt.Errorf("decode %s response: %w", collection, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

func truncate(b []byte) string {
	const max = 256
	s := string(b)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
