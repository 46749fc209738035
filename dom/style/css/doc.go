/*
Package css provides the static knowledge about CSS properties.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS properties resulting of (1) the textual nature of CSS properties
and (2) the complicated semantics of shorthand properties.

The property definition table lists every property the style engine knows
about: whether it is inherited by default, its initial value, the grammar
of its values and, for shorthand properties, the longhands it expands to.
The table is read-only and shared by all cascade passes.

Shorthand declarations are expanded in a deferred manner by a FixList,
scoped to the cascade pass of a single node.

Finally, there are typed accessors for some used values which layout will
need: display modes, dimensions and positions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecore.css'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.css")
}
