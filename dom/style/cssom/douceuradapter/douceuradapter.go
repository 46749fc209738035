/*
Package douceuradapter creates CSSOM stylesheets from CSS text.

Stylesheet syntax is parsed with github.com/aymerick/douceur, declaration
values are tokenized with github.com/gorilla/css. The adapter also finds
the embedded <style> elements and the style attributes of a document.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stylecore/dom"
	"github.com/npillmayer/stylecore/dom/style"
	"github.com/npillmayer/stylecore/dom/style/cssom"
	"go.uber.org/multierr"
)

// tracer traces with key 'stylecore.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.cssom")
}

// ParseStyleSheet parses CSS text into a stylesheet of a given origin.
//
// Declarations with values which cannot be tokenized are dropped and
// reported in the returned error. The stylesheet is usable even if err is
// non-nil, as long as it is not nil itself.
func ParseStyleSheet(text string, origin style.Origin, url string) (*cssom.StyleSheet, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("stylesheet %s: %w", url, err)
	}
	sheet := cssom.NewStyleSheet(origin, url)
	err = Wrap(c, sheet)
	tracer().Debugf("parsed %s", sheet)
	return sheet, err
}

// Wrap appends the rules of a douceur stylesheet to a CSSOM stylesheet.
// Rules of at-rules are included for @media rules applying to screens;
// other at-rules are skipped.
func Wrap(c *css.Stylesheet, sheet *cssom.StyleSheet) error {
	var errs error
	for _, r := range c.Rules {
		errs = multierr.Append(errs, appendRule(r, sheet))
	}
	return errs
}

func appendRule(r *css.Rule, sheet *cssom.StyleSheet) error {
	if r.Kind == css.AtRule {
		if !strings.EqualFold(r.Name, "@media") || !MediaApplies(r.Prelude) {
			tracer().Debugf("skipping at-rule %s %s", r.Name, r.Prelude)
			return nil
		}
		var errs error
		for _, nested := range r.Rules {
			errs = multierr.Append(errs, appendRule(nested, sheet))
		}
		return errs
	}
	rule := &cssom.Rule{}
	for _, s := range r.Selectors {
		rule.Selectors = append(rule.Selectors, cssom.NewSelector(s))
	}
	decls, err := declarations(r.Declarations, sheet.URL)
	rule.Declarations = decls
	if len(rule.Selectors) > 0 && len(rule.Declarations) > 0 {
		sheet.Rules = append(sheet.Rules, rule)
	}
	return err
}

// MediaApplies checks a media query list for screen media.
func MediaApplies(prelude string) bool {
	for _, q := range strings.Split(prelude, ",") {
		fields := strings.Fields(strings.ToLower(q))
		if len(fields) == 0 {
			return true
		}
		medium := fields[0]
		if medium == "only" && len(fields) > 1 {
			medium = fields[1]
		}
		if medium == "all" || medium == "screen" || strings.HasPrefix(medium, "(") {
			return true
		}
	}
	return false
}

func declarations(decls []*css.Declaration, url string) ([]cssom.Declaration, error) {
	var errs error
	result := make([]cssom.Declaration, 0, len(decls))
	for _, d := range decls {
		v, err := ParseValue(d.Value)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: property %s: %w", url, d.Property, err))
			continue
		}
		result = append(result, cssom.Declaration{
			Property:  strings.ToLower(strings.TrimSpace(d.Property)),
			Value:     v,
			Important: d.Important,
		})
	}
	return result, errs
}

// ParseInlineStyle parses the content of a style attribute into a rule
// bound to the element with the given id.
func ParseInlineStyle(text string, id dom.NodeID, url string) (*cssom.Rule, error) {
	text = strings.TrimSpace(text)
	if text != "" && !strings.HasSuffix(text, ";") {
		text += ";" // douceur drops a final declaration without terminator
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("style attribute of node %d: %w", id, err)
	}
	rule := &cssom.Rule{Selectors: []cssom.Selector{cssom.InlineSelector(id)}}
	rule.Declarations, err = declarations(decls, url)
	return rule, err
}

// ExtractStyleElements searches a document for embedded <style> elements
// and returns their content as author stylesheets, in document order.
// Errors are collected; the stylesheets returned are usable nevertheless.
func ExtractStyleElements(doc *dom.Document, url string) ([]*cssom.StyleSheet, error) {
	ids, err := doc.Query(dom.NewQuery(dom.FindAll, dom.EqualsTag("style")))
	if err != nil {
		return nil, err
	}
	var sheets []*cssom.StyleSheet
	var errs error
	for _, id := range ids {
		sheet, err := StyleElement(doc, id, url)
		errs = multierr.Append(errs, err)
		if sheet != nil {
			sheets = append(sheets, sheet)
		}
	}
	return sheets, errs
}

// StyleElement parses the content of a <style> element into an author
// stylesheet. It returns nil if the element is not a <style> element or
// its media attribute excludes screens.
func StyleElement(doc *dom.Document, id dom.NodeID, url string) (*cssom.StyleSheet, error) {
	n, ok := doc.NodeByID(id)
	if !ok || n.Tag() != "style" {
		return nil, nil
	}
	if media, ok := n.Attr("media"); ok && !MediaApplies(media) {
		tracer().Debugf("skipping <style media=%q>", media)
		return nil, nil
	}
	return ParseStyleSheet(textContent(doc, id), style.AuthorOrigin, url)
}

// InlineStyles collects the style attributes of all elements of a
// document into a single author stylesheet.
func InlineStyles(doc *dom.Document, url string) (*cssom.StyleSheet, error) {
	sheet := cssom.NewStyleSheet(style.AuthorOrigin, url)
	ids, err := doc.Query(dom.NewQuery(dom.FindAll, dom.ContainsAttribute("style")))
	if err != nil {
		return nil, err
	}
	var errs error
	for _, id := range ids {
		n, _ := doc.NodeByID(id)
		text, _ := n.Attr("style")
		rule, err := ParseInlineStyle(text, id, url)
		errs = multierr.Append(errs, err)
		if rule != nil && len(rule.Declarations) > 0 {
			sheet.Rules = append(sheet.Rules, rule)
		}
	}
	return sheet, errs
}

func textContent(doc *dom.Document, id dom.NodeID) string {
	var b strings.Builder
	children, _ := doc.Children(id)
	for _, ch := range children {
		if n, ok := doc.NodeByID(ch); ok && n.Kind() == dom.TextNode {
			b.WriteString(n.Text())
		}
	}
	return b.String()
}
