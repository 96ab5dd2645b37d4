// Package tabular implements the table-driven generator.
//
// Every index owns one 128-bit packed integer. A [FieldSchema] splits it
// into eight fixed-width codes (least-significant field first), a
// [TraitTable] maps each code to a trait name, and a [Compositor] stacks
// pre-authored SVG fragments from a [TemplateLibrary] in a fixed layer order.
//
// # Data files
//
// The packed table is JSON or JSONC:
//
//	{
//	  "format":  {"background": 4, "outerEyes": 3, ...},   // bit widths
//	  "indices": {"background": ["Blue", "Red"], ...},     // code -> name
//	  "traits":  ["0", "340282366920938463463374607431768211455", ...]
//	}
//
// The template library is JSON or YAML mapping category to trait name to an
// SVG fragment, with optional "width" and "height" canvas keys.
//
// All data is validated when loaded: a [PackedTable] never holds a code its
// [TraitTable] cannot resolve, and [ValidateCompleteness] reports every
// trait name that has no fragment. After loading, every value is immutable
// and a [Generator] is safe for concurrent use.
package tabular
