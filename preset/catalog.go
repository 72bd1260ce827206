package preset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"sort"
	"strings"

	_ "embed"

	"github.com/0x5844/bbviz"
	"k8s.io/klog/v2"
)

//go:embed presets.tsv
var presetData []byte

const (
	columnName        = 0
	columnDescription = 1
	columnHex         = 2
	expectedColumns   = 3
)

// Catalog is the built-in preset Book, backed by a name prefix tree.
// Catalog is safe for concurrent use once built.
type Catalog struct {
	root   *node
	byName map[string]*Preset
	all    []*Preset
}

// node is one character step in the name tree.
type node struct {
	children map[byte]*node
	preset   *Preset // preset whose full name ends here, if any
}

// NewCatalog builds a Catalog from the embedded TSV data.
func NewCatalog() (*Catalog, error) {
	return parseCatalog(presetData)
}

func parseCatalog(data []byte) (*Catalog, error) {
	c := &Catalog{
		root:   &node{children: make(map[byte]*node)},
		byName: make(map[string]*Preset),
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read preset data: %w", err)
	}

	for i, row := range records {
		if i == 0 {
			continue // header
		}
		if len(row) < expectedColumns {
			klog.Warningf("skipping preset record %d due to insufficient columns (%d)", i+1, len(row))
			continue
		}
		name := strings.TrimSpace(row[columnName])
		value, err := bbviz.ParseHex(row[columnHex])
		if err != nil {
			klog.Warningf("skipping preset %q: %v", name, err)
			continue
		}
		p := &Preset{
			name:        name,
			description: row[columnDescription],
			value:       value,
			order:       len(c.all),
		}
		if err := c.insert(p); err != nil {
			return nil, err
		}
	}

	if len(c.all) == 0 {
		return nil, errors.New("failed to load any valid presets")
	}
	return c, nil
}

// insert adds p to the name tree.
func (c *Catalog) insert(p *Preset) error {
	if p.name == "" {
		return fmt.Errorf("preset %d has an empty name", p.order+1)
	}
	if _, dup := c.byName[p.name]; dup {
		return fmt.Errorf("duplicate preset %q", p.name)
	}
	n := c.root
	for i := 0; i < len(p.name); i++ {
		ch := p.name[i]
		child, ok := n.children[ch]
		if !ok {
			child = &node{children: make(map[byte]*node)}
			n.children[ch] = child
		}
		n = child
	}
	n.preset = p
	c.byName[p.name] = p
	c.all = append(c.all, p)
	return nil
}

// Lookup implements the Book interface.
func (c *Catalog) Lookup(name string) *Preset {
	return c.byName[name]
}

// Find implements the Book interface.
func (c *Catalog) Find(v bbviz.Bitboard) *Preset {
	for _, p := range c.all {
		if p.value == v {
			return p
		}
	}
	return nil
}

// Possible implements the Book interface.
func (c *Catalog) Possible(prefix string) []*Preset {
	n := c.followPath(c.root, prefix)
	if n == nil {
		return []*Preset{}
	}
	presets := []*Preset{}
	for _, n := range c.nodeList(n) {
		if n.preset != nil {
			presets = append(presets, n.preset)
		}
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].order < presets[j].order })
	return presets
}

func (c *Catalog) followPath(n *node, prefix string) *node {
	if prefix == "" {
		return n
	}
	child, ok := n.children[prefix[0]]
	if !ok {
		return nil
	}
	return c.followPath(child, prefix[1:])
}

func (c *Catalog) nodeList(root *node) []*node {
	nodes := []*node{root}
	for i := 0; i < len(nodes); i++ {
		for _, child := range nodes[i].children {
			nodes = append(nodes, child)
		}
	}
	return nodes
}

var _ Book = (*Catalog)(nil)
