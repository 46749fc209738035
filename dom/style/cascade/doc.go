/*
Package cascade computes the style properties of document nodes.

Computing styles is a two step process. First, for every renderable node
the cascade collects the declarations of all matching rules of all
stylesheets. Dynamic values (calc(), attr(), var()) are resolved and the
values are validated against the property definition table. Shorthand
properties are expanded to longhands in a deferred manner. The result is
a set of ranked candidates per property and node; no winner is chosen yet.

Second, the inheritance propagator walks the render tree from the root to
the leafs. It chooses the winning candidate of every property, resolves
CSS-wide keywords and lets inherited properties flow from parents to
children.

Both steps are synchronous and must not run concurrently for the same
document. Stylesheets and the property definition table are read-only and
may be shared between passes over different documents.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecore.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.cascade")
}
