// Package htmlmeta implements preview.Client by downloading the page and
// reading its OpenGraph, Twitter card and <title> metadata, with
// go-readability as the fallback for pages that carry none.
package htmlmeta

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/time/rate"

	"linkrouter/pkg/domain"
	"linkrouter/pkg/preview"
	"linkrouter/pkg/serrors"
)

// Options configures the client.
type Options struct {
	// UserAgent is sent with every request.
	UserAgent string
	// MaxBodyBytes caps how much of the page is read. Zero means 2 MiB.
	MaxBodyBytes int64
	// RequestsPerSecond and Burst throttle outgoing requests. A zero rate disables throttling.
	RequestsPerSecond float64
	Burst             int
}

const defaultMaxBodyBytes = 2 << 20

// Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	opts       Options
}

var _ preview.Client = (*Client)(nil)

// New returns a Client sending requests through httpClient.
func New(httpClient *http.Client, opts Options) *Client {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return &Client{
		httpClient: httpClient,
		limiter:    limiter,
		opts:       opts,
	}
}

// ParseRetryAfter reads a Retry-After header given either in seconds or as an
// HTTP date. It returns zero when the header is missing or malformed.
func ParseRetryAfter(h http.Header, now time.Time) time.Duration {
	v := strings.TrimSpace(h.Get("Retry-After"))
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}

	return 0
}

// Fetch downloads URL and extracts its preview.
func (c *Client) Fetch(ctx context.Context, URL string) (*domain.Preview, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("could not wait for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not create request")
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5")
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, ErrBlockedAddress) {
			return nil, serrors.Wrap(serrors.ErrForbidden, err, "refusing to fetch %s", req.URL.Host)
		}

		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, serrors.With(serrors.ErrNotFound, "page not found: %d", resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		wait := ParseRetryAfter(resp.Header, time.Now())

		return nil, serrors.Wrap(serrors.ErrRateLimited, &preview.RetryAfterError{After: wait}, "rate limited by %s",
			req.URL.Host)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("fetch failed with status %d", resp.StatusCode)
	}

	finalURL := URL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	out := &domain.Preview{URL: finalURL}
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	out.ContentType = mediaType
	if mediaType != "" && mediaType != "text/html" && mediaType != "application/xhtml+xml" {
		return out, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	if err := Extract(body, finalURL, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Extract fills out from the HTML in body. Explicit metadata wins over the
// readability guess.
func Extract(body []byte, pageURL string, out *domain.Preview) error {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not parse html: %w", err)
	}

	meta := func(keys ...string) string {
		for _, k := range keys {
			sel := fmt.Sprintf(`meta[property=%q], meta[name=%q]`, k, k)
			if v := strings.TrimSpace(doc.Find(sel).First().AttrOr("content", "")); v != "" {
				return v
			}
		}

		return ""
	}

	out.Title = meta("og:title", "twitter:title")
	if out.Title == "" {
		out.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	out.Description = meta("og:description", "twitter:description", "description")
	out.SiteName = meta("og:site_name", "application-name")
	out.Image = absolute(pageURL, meta("og:image", "og:image:url", "twitter:image"))

	if out.Title != "" && out.Description != "" && out.Image != "" {
		return nil
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil //nolint: nilerr
	}
	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(body), parsed)
	if err != nil {
		// pages readability cannot handle still keep the explicit metadata
		return nil //nolint: nilerr
	}
	if out.Title == "" {
		out.Title = strings.TrimSpace(article.Title)
	}
	if out.Description == "" {
		out.Description = strings.TrimSpace(article.Excerpt)
	}
	if out.SiteName == "" {
		out.SiteName = strings.TrimSpace(article.SiteName)
	}
	if out.Image == "" {
		out.Image = absolute(pageURL, article.Image)
	}

	return nil
}

func absolute(base, ref string) string {
	if ref == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}

	return b.ResolveReference(r).String()
}
