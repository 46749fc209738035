/*
Package style holds the data model of the style-resolution core: CSS values,
specificity, cascade candidates and per-node property records.

A DOM node is styled by a Properties map. Every property record collects the
declarations competing for it (its cascade candidates) and, after the
inheritance pass, the value inherited from the parent and the value the node
actually uses. Conflicts between candidates are resolved lazily, when the
actual value is computed, never on insertion.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylecore.style'
func tracer() tracing.Trace {
	return tracing.Select("stylecore.style")
}
