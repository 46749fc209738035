/*
Package domdbg implements helpers to debug a styled document tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/stylecore/dom"
	"github.com/npillmayer/stylecore/dom/style"
	"github.com/npillmayer/stylecore/dom/style/css"
	"github.com/npillmayer/stylecore/dom/styledtree"
	"github.com/xlab/treeprint"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

// DefaultGroups are the style groups shown if a client does not select any.
var DefaultGroups = []string{
	"margin",
	"padding",
	"border",
	"display",
}

// propertyGroup is a set of properties sharing a name prefix, e.g. all
// properties starting with "margin".
type propertyGroup struct {
	Name       string
	Properties []keyValue
}

type keyValue struct {
	Key   string
	Value string
}

// groupOf collects the actual values of a node's properties belonging to
// a group, in insertion order. It returns nil if there are none.
func groupOf(props *style.Properties, name string) *propertyGroup {
	var pg *propertyGroup
	props.Each(func(key string, p *style.Property) {
		if key != name && !strings.HasPrefix(key, name+"-") {
			return
		}
		if p.Actual.IsNone() {
			return
		}
		if pg == nil {
			pg = &propertyGroup{Name: name}
		}
		pg.Properties = append(pg.Properties, keyValue{key, p.Actual.String()})
	})
	return pg
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the styled tree, a
// Writer, and an optional list of style groups. A style group is a
// property name prefix; the diagram will include the actual values of all
// properties belonging to one of the groups.
//
// If the client does not provide a list of style groups, DefaultGroups
// will be used.
//
func ToGraphViz(st *styledtree.Tree, w io.Writer, styleGroups []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = DefaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	err = st.Walk(func(sn *styledtree.StyNode, depth int) error {
		if err := domNode(sn, w, &gparams); err != nil {
			return err
		}
		if parent := styledtree.Node(sn.Parent()); parent != nil {
			return gparams.EdgeTmpl.Execute(w, edge{nodeName(parent), nodeName(sn)})
		}
		return nil
	})
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a styled tree and a testing.T, it will
// create a Graphiviz image of the tree and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(st *styledtree.Tree, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(st, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Log("writing DOM tree image to tree.svg\n")
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *dom.Node
	Name string
}

func nodeName(sn *styledtree.StyNode) string {
	return fmt.Sprintf("node%05d", sn.ID())
}

func domNode(sn *styledtree.StyNode, w io.Writer, gparams *graphParamsType) error {
	name := nodeName(sn)
	if err := gparams.NodeTmpl.Execute(w, &node{sn.DOMNode(), name}); err != nil {
		return err
	}
	return domStyles(sn, name, w, gparams)
}

func domStyles(sn *styledtree.StyNode, name string, w io.Writer, gparams *graphParamsType) error {
	var prev *propertyGroup
	for _, s := range gparams.StyleGroups {
		pg := groupOf(sn.Styles(), s)
		if pg == nil {
			continue
		}
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = gparams.PgedgeTmpl.Execute(w, pgedge{name, pg})
		} else {
			err = gparams.PgpgTmpl.Execute(w, []*propertyGroup{prev, pg})
		}
		if err != nil {
			return err
		}
		prev = pg
	}
	return nil
}

type edge struct {
	From, To string
}

type pgedge struct {
	Name      string
	PropGroup *propertyGroup
}

func shortText(n *dom.Node) string {
	data := n.Text()
	s := "\"\\\""
	if len(data) > 10 {
		s += data[:10] + "...\\\"\""
	} else {
		s += data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Tree dump --------------------------------------------------------

// Dump prints a styled tree, listing the actual values of the properties
// given by name for every node. If no names are given, all properties
// with an actual value are listed.
func Dump(st *styledtree.Tree, w io.Writer, names ...string) error {
	root := treeprint.New()
	branches := make(map[dom.NodeID]treeprint.Tree)
	err := st.Walk(func(sn *styledtree.StyNode, depth int) error {
		parent := root
		if p := styledtree.Node(sn.Parent()); p != nil {
			parent = branches[p.ID()]
		}
		var branch treeprint.Tree
		if sn.DOMNode().Kind() == dom.ElementNode {
			branch = parent.AddMetaBranch(layout(sn.Styles()), label(sn.DOMNode()))
		} else {
			branch = parent.AddBranch(label(sn.DOMNode()))
		}
		branches[sn.ID()] = branch
		for _, kv := range actualValues(sn.Styles(), names) {
			branch.AddMetaNode(kv.Key, kv.Value)
		}
		return nil
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, root.String())
	return err
}

// layout summarizes the display mode and, if not static, the positioning
// scheme of an element.
func layout(props *style.Properties) string {
	s := css.DisplayOf(props).Symbol()
	pos := css.PositionOf(props)
	if pos.IsRelative() || pos.IsAbsolute() || pos.IsFixed() {
		s += " " + pos.String()
		for _, o := range pos.Offsets() {
			if !o.Dim.IsNone() && o.Dim.String() != "auto" {
				s += fmt.Sprintf(" %s=%s", offsetNames[o.Dir], o.Dim)
			}
		}
	}
	return s
}

var offsetNames = [...]string{"top", "right", "bottom", "left"}

func label(n *dom.Node) string {
	switch n.Kind() {
	case dom.TextNode:
		t := strings.Join(strings.Fields(n.Text()), " ")
		if len(t) > 20 {
			t = t[:20] + "…"
		}
		return fmt.Sprintf("%q", t)
	case dom.ElementNode:
		var b strings.Builder
		b.WriteString(n.Tag())
		if id := n.ElementID(); id != "" {
			b.WriteString("#" + id)
		}
		for _, c := range n.Classes() {
			b.WriteString("." + c)
		}
		return b.String()
	}
	return n.NodeName()
}

func actualValues(props *style.Properties, names []string) []keyValue {
	var kvs []keyValue
	if len(names) == 0 {
		props.Each(func(key string, p *style.Property) {
			if !p.Actual.IsNone() {
				kvs = append(kvs, keyValue{key, p.Actual.String()})
			}
		})
		return kvs
	}
	for _, name := range names {
		if v, ok := props.Actual(name); ok {
			kvs = append(kvs, keyValue{name, v.String()})
		}
	}
	return kvs
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.NodeName }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
