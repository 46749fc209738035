/*
Package cssom provides the CSS object model the cascade consumes.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Stylesheets
are ordered sequences of rules; every rule carries an ordered list of
selectors and an ordered list of declarations. A stylesheet has an origin
(user-agent, user or author) and a source URL. Once parsed, stylesheets are
read-only and may be shared between documents.

Parsing CSS text is not done here, but by an adapter package
(see package douceuradapter). Matching selectors against DOM nodes is
de-coupled by interface Matcher. The default implementation relies on the
great work of https://godoc.org/github.com/andybalholm/cascadia.

Declarations of HTML style attributes are represented as rules with an
inline selector, which matches exactly the element carrying the attribute
and has the highest specificity.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stylecore.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.cssom")
}
