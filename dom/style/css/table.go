package css

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/stylecore/dom/style"
	"github.com/npillmayer/stylecore/dom/style/cssom/douceuradapter"
	"gopkg.in/yaml.v3"
)

// ShorthandKind tells how a shorthand distributes its components to its
// longhands.
type ShorthandKind string

// Kinds of shorthand properties.
const (
	NoShorthand ShorthandKind = ""
	FourSides   ShorthandKind = "four-sides" // 1..4 components, CSS box distribution
	Pair        ShorthandKind = "pair"       // 1..2 components, the first one doubles
	AnyOrder    ShorthandKind = "any-order"  // each component goes to the first longhand accepting it
	Ordered     ShorthandKind = "ordered"    // components are positional
)

// Definition is the static metadata of a CSS property.
type Definition struct {
	Name        string        `yaml:"name"`
	Inherited   bool          `yaml:"inherited"`
	InitialText string        `yaml:"initial"`
	Syntax      []string      `yaml:"syntax"`
	Min         int           `yaml:"min"`
	Max         int           `yaml:"max"`
	Comma       bool          `yaml:"comma"`
	Shorthand   ShorthandKind `yaml:"shorthand"`
	Longhands   []string      `yaml:"longhands"`

	initial style.Value
	table   *Table
}

// Initial returns the initial value of a property.
func (d *Definition) Initial() style.Value {
	return d.initial
}

// IsShorthand is true for shorthand properties.
func (d *Definition) IsShorthand() bool {
	return d.Shorthand != NoShorthand
}

func (d *Definition) String() string {
	if d.IsShorthand() {
		return fmt.Sprintf("%s (%s: %s)", d.Name, d.Shorthand, strings.Join(d.Longhands, " "))
	}
	return fmt.Sprintf("%s: %s", d.Name, strings.Join(d.Syntax, " | "))
}

// Table is the read-only property definition table.
type Table struct {
	defs   map[string]*Definition
	custom *Definition
}

//go:embed definitions.yaml
var definitionsYAML []byte

var (
	loadOnce    sync.Once
	definitions *Table
)

// Definitions returns the table of known CSS properties. It is loaded once
// and may be shared between goroutines.
func Definitions() *Table {
	loadOnce.Do(func() {
		t, err := LoadDefinitions(definitionsYAML)
		if err != nil {
			panic(fmt.Sprintf("css: embedded property definitions are defective: %v", err))
		}
		definitions = t
		tracer().Debugf("loaded %d property definitions", t.Len())
	})
	return definitions
}

// ErrCyclicShorthand flags a shorthand which expands, possibly indirectly,
// to itself.
var ErrCyclicShorthand = errors.New("cyclic shorthand definition")

// LoadDefinitions creates a definition table from a YAML document, which is
// a list of property definitions. Properties names must be unique, longhands
// must be defined and shorthands must not nest cyclically.
func LoadDefinitions(data []byte) (*Table, error) {
	var defs []*Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("css definitions: %w", err)
	}
	t := &Table{defs: make(map[string]*Definition, len(defs))}
	for _, d := range defs {
		if _, dup := t.defs[d.Name]; dup || d.Name == "" {
			return nil, fmt.Errorf("css definitions: duplicate or empty property name %q", d.Name)
		}
		if err := t.prepare(d); err != nil {
			return nil, err
		}
		t.defs[d.Name] = d
	}
	t.custom = &Definition{Name: "--*", Inherited: true, Syntax: []string{"<any>"},
		Min: 0, Max: -1, table: t}
	for _, d := range defs {
		for _, lh := range d.Longhands {
			if _, ok := t.defs[lh]; !ok {
				return nil, fmt.Errorf("css definitions: %s: unknown longhand %s", d.Name, lh)
			}
		}
	}
	for _, d := range defs {
		if err := t.checkCycle(d, map[string]bool{}); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) prepare(d *Definition) error {
	d.table = t
	if d.Min == 0 {
		d.Min = 1
	}
	if d.Max == 0 {
		switch d.Shorthand {
		case NoShorthand:
			d.Max = d.Min
		case FourSides:
			d.Max = 4
		case Pair:
			d.Max = 2
		default:
			d.Max = len(d.Longhands)
		}
	}
	switch d.Shorthand {
	case NoShorthand:
	case FourSides, Pair, AnyOrder, Ordered:
		if len(d.Longhands) == 0 {
			return fmt.Errorf("css definitions: shorthand %s without longhands", d.Name)
		}
		if (d.Shorthand == FourSides && len(d.Longhands) != 4) || (d.Shorthand == Pair && len(d.Longhands) != 2) {
			return fmt.Errorf("css definitions: %s: wrong number of longhands for %s", d.Name, d.Shorthand)
		}
	default:
		return fmt.Errorf("css definitions: %s: unknown shorthand kind %q", d.Name, d.Shorthand)
	}
	if d.InitialText != "" {
		v, err := douceuradapter.ParseValue(d.InitialText)
		if err != nil {
			return fmt.Errorf("css definitions: %s: %w", d.Name, err)
		}
		d.initial = v
	}
	return nil
}

func (t *Table) checkCycle(d *Definition, visiting map[string]bool) error {
	if visiting[d.Name] {
		return fmt.Errorf("css definitions: %s: %w", d.Name, ErrCyclicShorthand)
	}
	visiting[d.Name] = true
	defer delete(visiting, d.Name)
	for _, lh := range d.Longhands {
		if err := t.checkCycle(t.defs[lh], visiting); err != nil {
			return err
		}
	}
	return nil
}

// Find looks up the definition of a property. Custom properties
// ("--name") share a common definition, which is inherited and accepts
// any value.
func (t *Table) Find(name string) (*Definition, bool) {
	if strings.HasPrefix(name, "--") && len(name) > 2 {
		return t.custom, true
	}
	d, ok := t.defs[name]
	return d, ok
}

// IsInherited tells if a property is inherited by default. Unknown
// properties are not.
func (t *Table) IsInherited(name string) bool {
	d, ok := t.Find(name)
	return ok && d.Inherited
}

// Len returns the number of definitions.
func (t *Table) Len() int {
	return len(t.defs)
}

// Names returns the names of all defined properties, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.defs))
	for name := range t.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
