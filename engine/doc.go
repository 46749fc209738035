/*
Package engine loads HTML documents and computes their styles.

A page is loaded either from a URL or from literal source text. The engine
parses the HTML, collects the stylesheets in cascade order (user agent,
user, author) and hands them to the style resolution core: it builds the
styled tree with the cascade collector and finally runs the inheritance
pass over it.

Network and file access happens exclusively in this package. Failing to
load or parse a secondary resource, such as a linked stylesheet, is not
fatal; those errors are collected as warnings of the page.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecore.engine'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.engine")
}
