package dom

import "github.com/npillmayer/stylecore/dom/style"

// DefineCustomProperty binds a custom property ("--name") for a node and
// its descendants. A later definition for the same node replaces an
// earlier one.
func (doc *Document) DefineCustomProperty(id NodeID, name string, value style.Value) {
	if _, ok := doc.NodeByID(id); !ok {
		return
	}
	env, ok := doc.custom[id]
	if !ok {
		env = make(map[string]style.Value)
		doc.custom[id] = env
	}
	env[name] = value
	tracer().Debugf("custom property %s = %s defined at node %d", name, value, id)
}

// ClearCustomProperties removes all custom property bindings of a document.
func (doc *Document) ClearCustomProperties() {
	doc.custom = make(map[NodeID]map[string]style.Value)
}

// CustomProperty looks up a custom property for a node. The nearest
// definition on the node itself or one of its ancestors is returned.
func (doc *Document) CustomProperty(id NodeID, name string) (style.Value, bool) {
	for id != NoNode {
		n, ok := doc.NodeByID(id)
		if !ok {
			break
		}
		if v, ok := doc.custom[id][name]; ok {
			return v, true
		}
		id = n.parent
	}
	return style.None, false
}
