package converters

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/chroma/core"
)

var (
	// ErrBadDocument indicates HCL that does not parse or does not match the
	// document schema. The HCL diagnostics are wrapped alongside it.
	ErrBadDocument = errors.New("converters: malformed graph document")

	// ErrBadVertexLabel indicates a vertex block label that is not an integer.
	ErrBadVertexLabel = errors.New("converters: vertex label is not an integer")
)

const (
	methodDecodeHCL     = "DecodeHCL"
	methodDecodeHCLFile = "DecodeHCLFile"

	blockVertex   = "vertex"
	attrName      = "name"
	attrNeighbors = "neighbors"
)

// Document is a decoded graph file.
type Document struct {
	Name  string
	Graph *core.Graph
}

// hclDocument is the top-level schema of a graph file.
type hclDocument struct {
	Name     string       `hcl:"name,optional"`
	Vertices []*hclVertex `hcl:"vertex,block"`
}

// hclVertex is one `vertex "<id>" { ... }` block.
type hclVertex struct {
	Label     string         `hcl:"id,label"`
	Neighbors hcl.Expression `hcl:"neighbors,optional"`
}

// DecodeHCL parses src (named filename in diagnostics) and builds its graph.
//
// Errors:
//   - ErrBadDocument with the HCL diagnostics for syntax or schema problems,
//     including non-integer neighbor values.
//   - ErrBadVertexLabel for a label that is not a base-10 integer.
//   - core errors (ErrDuplicateVertex, ErrDanglingReference, ErrSelfLoop).
func DecodeHCL(src []byte, filename string, opts ...core.GraphOption) (*Document, error) {
	return decode(methodDecodeHCL, hclparse.NewParser(), src, filename, opts)
}

// DecodeHCLFile reads and decodes the file at path.
func DecodeHCLFile(path string, opts ...core.GraphOption) (*Document, error) {
	p := hclparse.NewParser()
	var (
		f     *hcl.File
		diags hcl.Diagnostics
	)
	if isJSON(path) {
		f, diags = p.ParseJSONFile(path)
	} else {
		f, diags = p.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: %s: %w: %w", methodDecodeHCLFile, path, ErrBadDocument, diags)
	}

	return decodeBody(methodDecodeHCLFile, f, opts)
}

func decode(method string, p *hclparse.Parser, src []byte, filename string, opts []core.GraphOption) (*Document, error) {
	var (
		f     *hcl.File
		diags hcl.Diagnostics
	)
	if isJSON(filename) {
		f, diags = p.ParseJSON(src, filename)
	} else {
		f, diags = p.ParseHCL(src, filename)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: %s: %w: %w", method, filename, ErrBadDocument, diags)
	}

	return decodeBody(method, f, opts)
}

func decodeBody(method string, f *hcl.File, opts []core.GraphOption) (*Document, error) {
	var doc hclDocument
	if diags := gohcl.DecodeBody(f.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrBadDocument, diags)
	}

	entries := make([]core.Entry, 0, len(doc.Vertices))
	for _, v := range doc.Vertices {
		id, err := strconv.Atoi(v.Label)
		if err != nil {
			return nil, fmt.Errorf("%s: vertex %q: %w", method, v.Label, ErrBadVertexLabel)
		}
		nbrs, diags := neighborList(v.Neighbors)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%s: vertex %d: %w: %w", method, id, ErrBadDocument, diags)
		}
		entries = append(entries, core.Entry{ID: id, Neighbors: nbrs})
	}

	g, err := core.FromEntries(entries, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return &Document{Name: doc.Name, Graph: g}, nil
}

// neighborList evaluates a neighbors expression into ids. A missing or null
// attribute is an empty list.
func neighborList(expr hcl.Expression) ([]core.VertexID, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() || val.IsNull() {
		return nil, diags
	}

	list, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid neighbors",
			Detail:   fmt.Sprintf("neighbors must be a list of integers: %s.", err),
			Subject:  expr.Range().Ptr(),
		}}
	}
	if !list.IsWhollyKnown() {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid neighbors",
			Detail:   "neighbors must be known at decode time.",
			Subject:  expr.Range().Ptr(),
		}}
	}

	var ids []core.VertexID
	if err := gocty.FromCtyValue(list, &ids); err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid neighbors",
			Detail:   fmt.Sprintf("neighbors must be a list of integers: %s.", err),
			Subject:  expr.Range().Ptr(),
		}}
	}

	return ids, nil
}

// EncodeHCL renders g as an HCL document: the optional name attribute, then
// one vertex block per vertex in g.Order() carrying its recorded neighbors.
// DecodeHCL of the output rebuilds an equal graph with the same order.
func EncodeHCL(name string, g *core.Graph) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	if name != "" {
		body.SetAttributeValue(attrName, cty.StringVal(name))
		body.AppendNewline()
	}
	if g == nil {
		return f.Bytes()
	}

	for _, id := range g.Order() {
		blk := body.AppendNewBlock(blockVertex, []string{strconv.Itoa(id)})
		nbrs, _ := g.Neighbors(id)
		if len(nbrs) == 0 {
			blk.Body().SetAttributeValue(attrNeighbors, cty.ListValEmpty(cty.Number))
			continue
		}
		vals := make([]cty.Value, len(nbrs))
		for i, nb := range nbrs {
			vals[i] = cty.NumberIntVal(int64(nb))
		}
		blk.Body().SetAttributeValue(attrNeighbors, cty.ListVal(vals))
	}

	return hclwrite.Format(f.Bytes())
}

func isJSON(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".json")
}
