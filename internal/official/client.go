// Package official downloads the Cabinet Office holiday list (内閣府
// 「国民の祝日」CSV) so that computed holidays can be checked against it.
//
// The CSV URL is resolved through the e-Gov Data Portal CKAN API, as
// recommended by the Digital Agency of Japan. If the API is unavailable, the
// well-known direct URLs are tried instead.
package official

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	jpholiday "github.com/rabitt1ove/jpholiday-engine"
	"github.com/rabitt1ove/jpholiday-engine/internal/logger"
)

const (
	// CKANAPIURL is the CKAN package endpoint of the holiday dataset.
	CKANAPIURL = "https://data.e-gov.go.jp/data/api/action/package_show?id=cao_20190522_0002"

	// Maximum response sizes to prevent memory exhaustion.
	maxJSONResponseSize = 1 * 1024 * 1024 // 1 MB for CKAN API response
	maxCSVResponseSize  = 5 * 1024 * 1024 // 5 MB for CSV data

	userAgent = "jpholidays/1.0 (+https://github.com/rabitt1ove/jpholiday-engine)"
)

// FallbackURLs are tried in order when the CKAN API fails.
var FallbackURLs = []string{
	"https://www8.cao.go.jp/chosei/shukujitsu/syukujitsu.csv",
	"https://www8.cao.go.jp/chosei/shukujitsu/shukujitsu.csv",
}

// allowedCSVHosts is the set of hostnames a CKAN-resolved URL may point to.
// This prevents SSRF if the CKAN API returns an unexpected URL.
var allowedCSVHosts = map[string]bool{
	"www8.cao.go.jp": true,
	"www.cao.go.jp":  true,
}

// ckanResponse is the part of a CKAN package_show response used here.
type ckanResponse struct {
	Success bool `json:"success"`
	Result  struct {
		Resources []ckanResource `json:"resources"`
	} `json:"result"`
}

type ckanResource struct {
	URL    string `json:"url"`
	Format string `json:"format"`
}

// Client fetches and parses the official CSV.
type Client struct {
	HTTP *http.Client

	// URL, when set, is fetched directly and CKAN resolution is skipped.
	URL string
	// CKANURL is the CKAN package endpoint; empty disables CKAN resolution.
	CKANURL   string
	Fallbacks []string

	Retries    int
	RetryDelay time.Duration // base delay, doubled after every attempt
}

// NewClient returns a Client with the production endpoints.
func NewClient(timeout time.Duration, retries int) *Client {
	return &Client{
		HTTP:       &http.Client{Timeout: timeout},
		CKANURL:    CKANAPIURL,
		Fallbacks:  FallbackURLs,
		Retries:    retries,
		RetryDelay: 2 * time.Second,
	}
}

// Holidays downloads and parses the official holiday list.
func (c *Client) Holidays(ctx context.Context) ([]jpholiday.Holiday, error) {
	body, err := c.fetchCSV(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	decoded := transform.NewReader(io.LimitReader(body, maxCSVResponseSize), japanese.ShiftJIS.NewDecoder())
	return Parse(decoded)
}

// candidates returns the CSV URLs to try, in order: the configured URL
// alone, or the CKAN-resolved URL followed by the fallbacks.
func (c *Client) candidates(ctx context.Context) []string {
	if c.URL != "" {
		return []string{c.URL}
	}

	var urls []string
	if c.CKANURL != "" {
		var (
			pkg      ckanResponse
			resolved string
		)
		err := c.getJSON(ctx, c.CKANURL, &pkg)
		if err == nil {
			resolved, err = pkg.csvURL()
		}
		if err != nil {
			logger.L().Warn().Err(err).Str("url", c.CKANURL).Msg("CKAN lookup failed, using direct URLs")
		} else {
			logger.L().Debug().Str("url", resolved).Msg("resolved CSV URL")
			urls = append(urls, resolved)
		}
	}
	for _, fb := range c.Fallbacks {
		if !slices.Contains(urls, fb) {
			urls = append(urls, fb)
		}
	}
	return urls
}

// csvURL picks the first CSV resource of the package. Only HTTPS URLs on
// allowedCSVHosts are accepted, so a tampered response cannot redirect the
// download elsewhere.
func (r ckanResponse) csvURL() (string, error) {
	if !r.Success {
		return "", errors.New("CKAN package lookup reported failure")
	}
	i := slices.IndexFunc(r.Result.Resources, func(res ckanResource) bool {
		return res.URL != "" && strings.EqualFold(res.Format, "CSV")
	})
	if i < 0 {
		return "", errors.New("CKAN package has no CSV resource")
	}
	u := r.Result.Resources[i].URL
	if err := checkCSVURL(u); err != nil {
		return "", err
	}
	return u, nil
}

func checkCSVURL(raw string) error {
	u, err := url.Parse(raw)
	switch {
	case err != nil:
		return fmt.Errorf("CSV URL: %w", err)
	case u.Scheme != "https":
		return fmt.Errorf("CSV URL %s: scheme %q not allowed", raw, u.Scheme)
	case !allowedCSVHosts[u.Hostname()]:
		return fmt.Errorf("CSV URL %s: host %q not allowed", raw, u.Hostname())
	}
	return nil
}

// newRequest builds a GET request carrying the client's User-Agent.
func newRequest(ctx context.Context, u string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

// getJSON decodes the body of a single GET into v.
func (c *Client) getJSON(ctx context.Context, u string, v any) error {
	req, err := newRequest(ctx, u)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", u, resp.StatusCode)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxJSONResponseSize)).Decode(v); err != nil {
		return fmt.Errorf("GET %s: decoding response: %w", u, err)
	}
	return nil
}

// fetchCSV returns the body of the first candidate URL that answers 200.
func (c *Client) fetchCSV(ctx context.Context) (io.ReadCloser, error) {
	urls := c.candidates(ctx)
	if len(urls) == 0 {
		return nil, errors.New("no CSV URL configured")
	}

	var lastErr error
	for _, u := range urls {
		body, err := c.fetchWithRetry(ctx, u)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}
		return body, nil
	}
	return nil, fmt.Errorf("all URLs failed, last error: %w", lastErr)
}

// fetchWithRetry fetches a URL, retrying 429 and 5xx responses and transport
// errors with exponential backoff.
func (c *Client) fetchWithRetry(ctx context.Context, u string) (io.ReadCloser, error) {
	retries := max(c.Retries, 1)
	var lastErr error
	for attempt := range retries {
		if attempt > 0 {
			delay := c.RetryDelay * time.Duration(1<<(attempt-1))
			logger.L().Info().Dur("delay", delay).Int("attempt", attempt+1).Int("max", retries).Msg("retrying")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		logger.L().Info().Str("url", u).Msg("fetching official CSV")
		req, err := newRequest(ctx, u)
		if err != nil {
			return nil, err
		}

		resp, err := c.HTTP.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("GET %s: %w", u, err)
			logger.L().Warn().Err(err).Str("url", u).Msg("fetch failed")
			if ctx.Err() != nil {
				return nil, lastErr
			}
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("GET %s: status %d", u, resp.StatusCode)
			logger.L().Warn().Int("status", resp.StatusCode).Str("url", u).Msg("fetch failed (retryable)")
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("GET %s: status %d", u, resp.StatusCode)
		}
		return resp.Body, nil
	}
	return nil, lastErr
}
