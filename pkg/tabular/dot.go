package tabular

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT describes the packed layout and the drawing order as a Graphviz
// graph. The left column shows every field with its bit range and trait
// count; the right column chains the layers back to front, with an edge
// from each packed field to the layers it selects.
func ToDOT(table *PackedTable) string {
	var buf bytes.Buffer
	buf.WriteString("digraph schema {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\"];\n")
	buf.WriteString("\n")

	schema := table.Schema()
	buf.WriteString("  subgraph cluster_fields {\n    label=\"packed fields\";\n")
	for i, f := range schema {
		lo := schema.Offset(i)
		label := fmt.Sprintf("%s\nbits %d..%d\n%d traits", f.Category, lo, lo+f.Width-1, table.TraitTable().Len(f.Category))
		fmt.Fprintf(&buf, "    %q [label=%q];\n", "field:"+f.Category, label)
	}
	buf.WriteString("  }\n\n")

	buf.WriteString("  subgraph cluster_layers {\n    label=\"layers\";\n")
	for i, l := range Layers {
		attrs := fmt.Sprintf("label=%q", fmt.Sprintf("%d. %s", i+1, l.Template))
		if l.Optional {
			attrs += ", style=\"rounded,filled,dashed\", fillcolor=lightgrey"
		}
		fmt.Fprintf(&buf, "    %q [%s];\n", "layer:"+l.Template, attrs)
	}
	for i := 1; i < len(Layers); i++ {
		fmt.Fprintf(&buf, "    %q -> %q [color=grey];\n", "layer:"+Layers[i-1].Template, "layer:"+Layers[i].Template)
	}
	buf.WriteString("  }\n\n")

	for _, l := range Layers {
		fmt.Fprintf(&buf, "  %q -> %q;\n", "field:"+l.Trait, "layer:"+l.Template)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
