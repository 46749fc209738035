package engine

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/npillmayer/stylecore/dom"
	"github.com/npillmayer/stylecore/dom/style"
	"github.com/npillmayer/stylecore/dom/style/cascade"
	"github.com/npillmayer/stylecore/dom/style/cssom"
	"github.com/npillmayer/stylecore/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/stylecore/dom/styledtree"
	"go.uber.org/multierr"
)

//go:embed useragent.css
var userAgentCSS string

// UserAgentURL is the location reported for the default stylesheet.
const UserAgentURL = "about:useragent.css"

// Page is a loaded document with its computed styles.
type Page struct {
	URL         string
	Document    *dom.Document
	StyleSheets []*cssom.StyleSheet // in cascade order: user agent, user, author
	RenderTree  *styledtree.Tree
	Warnings    error // non-fatal problems loading secondary resources
}

type config struct {
	fetcher   Fetcher
	matcher   cssom.Matcher
	userAgent string
	user      []userSheet
}

type userSheet struct {
	url, css string
}

// Option configures loading of a page.
type Option func(*config)

// WithFetcher sets the fetcher for documents and linked stylesheets.
func WithFetcher(f Fetcher) Option {
	return func(c *config) {
		c.fetcher = f
	}
}

// WithMatcher sets the selector matcher for the cascade.
func WithMatcher(m cssom.Matcher) Option {
	return func(c *config) {
		c.matcher = m
	}
}

// WithUserStyleSheet adds a stylesheet of user origin. User stylesheets are
// applied in the order they are given. url is used for diagnostics only.
func WithUserStyleSheet(url, css string) Option {
	return func(c *config) {
		c.user = append(c.user, userSheet{url: url, css: css})
	}
}

// WithUserAgentStyleSheet replaces the default stylesheet of the user agent.
func WithUserAgentStyleSheet(css string) Option {
	return func(c *config) {
		c.userAgent = css
	}
}

func newConfig(opts []Option) *config {
	c := &config{userAgent: userAgentCSS}
	for _, opt := range opts {
		opt(c)
	}
	if c.fetcher == nil {
		c.fetcher = NewFetcher(nil)
	}
	return c
}

// Load fetches a document and computes its styles. Failing to fetch or
// parse the document is an error, failing to load one of its stylesheets
// is not (see Page.Warnings).
func Load(ctx context.Context, rawURL string, opts ...Option) (*Page, error) {
	c := newConfig(opts)
	res, err := c.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return c.load(ctx, res.URL, res.Content)
}

// LoadSource computes the styles of a document given as source text. url
// is the base for resolving linked stylesheets; it may be empty.
func LoadSource(ctx context.Context, url, source string, opts ...Option) (*Page, error) {
	return newConfig(opts).load(ctx, url, source)
}

func (c *config) load(ctx context.Context, url, source string) (*Page, error) {
	doc, err := dom.Parse(strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	page := &Page{URL: url, Document: doc}
	page.StyleSheets, page.Warnings = c.styleSheets(ctx, doc, url)
	casc := cascade.New(c.matcher)
	page.RenderTree, err = styledtree.Build(doc, func(doc *dom.Document, id dom.NodeID) (*style.Properties, bool) {
		return casc.ComputeProperties(doc, id, page.StyleSheets)
	})
	if err != nil {
		return nil, fmt.Errorf("render tree for %s: %w", url, err)
	}
	casc.Inheritance(page.RenderTree)
	tracer().Infof("loaded %s: %d nodes, %d rendered, %d stylesheets",
		url, doc.Len(), page.RenderTree.Len(), len(page.StyleSheets))
	return page, nil
}

// styleSheets collects the stylesheets of a document in cascade order.
// Author stylesheets from <style> and <link> elements are kept in document
// order, inline style attributes come last.
func (c *config) styleSheets(ctx context.Context, doc *dom.Document, url string) ([]*cssom.StyleSheet, error) {
	var sheets []*cssom.StyleSheet
	var warnings error
	add := func(sheet *cssom.StyleSheet, err error) {
		warnings = multierr.Append(warnings, err)
		if !sheet.Empty() {
			sheets = append(sheets, sheet)
		}
	}
	if c.userAgent != "" {
		add(douceuradapter.ParseStyleSheet(c.userAgent, style.UserAgentOrigin, UserAgentURL))
	}
	for _, u := range c.user {
		add(douceuradapter.ParseStyleSheet(u.css, style.UserOrigin, u.url))
	}
	for _, id := range doc.Select(isStyleSource) {
		n, _ := doc.NodeByID(id)
		if n.Tag() == "style" {
			add(douceuradapter.StyleElement(doc, id, url))
			continue
		}
		add(c.linkedStyleSheet(ctx, n, url))
	}
	add(douceuradapter.InlineStyles(doc, url))
	return sheets, warnings
}

var isStyleSource dom.NodePredicate = func(n *dom.Node) bool {
	switch n.Tag() {
	case "style":
		return true
	case "link":
		rel, _ := n.Attr("rel")
		for _, r := range strings.Fields(strings.ToLower(rel)) {
			if r == "stylesheet" {
				return true
			}
		}
	}
	return false
}

func (c *config) linkedStyleSheet(ctx context.Context, link *dom.Node, base string) (*cssom.StyleSheet, error) {
	href, ok := link.Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return nil, nil
	}
	if media, ok := link.Attr("media"); ok && !douceuradapter.MediaApplies(media) {
		return nil, nil
	}
	ref := resolveReference(base, strings.TrimSpace(href))
	res, err := c.fetcher.Fetch(ctx, ref)
	if err != nil {
		tracer().Infof("cannot load stylesheet %s: %v", ref, err)
		return nil, err
	}
	return douceuradapter.ParseStyleSheet(res.Content, style.AuthorOrigin, res.URL)
}
