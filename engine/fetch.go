package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
)

// Resource is a fetched document or stylesheet, decoded to UTF-8.
type Resource struct {
	URL         string
	ContentType string
	Content     string
}

// Fetcher loads resources by URL.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*Resource, error)
}

// ErrUnsupportedScheme is returned for URLs a fetcher cannot load.
var ErrUnsupportedScheme = errors.New("unsupported URL scheme")

// defaultTimeout bounds a single HTTP request of the default fetcher.
const defaultTimeout = 30 * time.Second

// DefaultFetcher loads resources with HTTP(S) or from the local file system.
// URLs without a scheme are treated as file paths.
type DefaultFetcher struct {
	Client *http.Client
}

// NewFetcher creates a fetcher. If client is nil, a client with a default
// timeout is used.
func NewFetcher(client *http.Client) *DefaultFetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &DefaultFetcher{Client: client}
}

// Fetch is part of interface Fetcher.
func (f *DefaultFetcher) Fetch(ctx context.Context, rawURL string) (*Resource, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	switch u.Scheme {
	case "http", "https":
		return f.fetchHTTP(ctx, u)
	case "file", "":
		return fetchFile(u)
	}
	return nil, fmt.Errorf("fetch %s: %w", rawURL, ErrUnsupportedScheme)
}

func (f *DefaultFetcher) fetchHTTP(ctx context.Context, u *url.URL) (*Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u, err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: HTTP status %s", u, resp.Status)
	}
	contentType := resp.Header.Get("Content-Type")
	content, err := decode(resp.Body, contentType)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u, err)
	}
	tracer().Debugf("fetched %s (%s, %d bytes)", u, contentType, len(content))
	return &Resource{URL: u.String(), ContentType: contentType, Content: content}, nil
}

func fetchFile(u *url.URL) (*Resource, error) {
	path := u.Path
	if u.Scheme == "" {
		path = u.String()
	}
	data, err := os.ReadFile(filepath.FromSlash(path))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u, err)
	}
	contentType := ""
	if strings.EqualFold(filepath.Ext(path), ".css") {
		contentType = "text/css"
	}
	content, err := decode(bytes.NewReader(data), contentType)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u, err)
	}
	return &Resource{URL: u.String(), ContentType: contentType, Content: content}, nil
}

// decode converts content to UTF-8, using the charset of the content type
// or, if there is none, sniffing the content.
func decode(r io.Reader, contentType string) (string, error) {
	utf8, err := charset.NewReader(r, contentType)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(utf8)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// resolveReference resolves a possibly relative reference against a base
// URL.
func resolveReference(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil || base == "" {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}
