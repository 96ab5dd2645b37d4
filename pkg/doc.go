// Package pkg provides the core libraries for orbital, a deterministic
// generator of collection artwork and metadata.
//
// # Overview
//
// Every index of a collection maps to exactly one attribute document and one
// SVG image. Two generators implement that mapping:
//
//  1. [procedural] - derives six traits and a rarity score from the index
//     by mixed-radix classification and draws a pattern, a texture and a
//     sparkle animation from them
//  2. [tabular] - decodes a 128-bit packed integer per index into eight
//     trait codes, resolves them to names and stacks pre-authored SVG
//     fragments in a fixed layer order
//
// The remaining packages serve both generators:
//
//   - [collection] - the query surface: GetAttributes and GetData
//   - [pipeline] - caching runner and concurrent gallery export
//   - [cache] - file, Redis and null document caches
//   - [publish] - MongoDB metadata publisher
//   - [config] - TOML configuration
//   - [observability] - render, cache and request hooks
//   - [errors] - coded errors shared by every surface
//   - [attrs] - ordered attribute sets with JSON and CBOR encodings
//   - [detmath] - platform-independent trigonometry
//
// # Architecture
//
//	index
//	  ↓
//	[collection] (bounds check against supply)
//	  ↓
//	[procedural] or [tabular] (pure, deterministic)
//	  ↓
//	[pipeline] (cache, hooks) → CLI, HTTP server, export, publisher
//
// # Quick Start
//
//	coll, _ := collection.New(collection.Info{
//	    Name: "Alkane RoyaltyNFT", Symbol: "alkane-royalty-nft", Supply: 3333,
//	}, procedural.New())
//
//	meta, _ := coll.GetAttributes(42) // {"art_style":"...", ..., "rarity_score":...}
//	svg, _ := coll.GetData(42)        // <?xml ...><svg ...>...</svg>
//
// Table collections load their data once at startup; every structural
// problem is reported before the first query:
//
//	gen, err := tabular.Open("table.jsonc", "templates.yaml")
//
// [procedural]: https://pkg.go.dev/github.com/matzehuels/orbital/pkg/procedural
// [tabular]: https://pkg.go.dev/github.com/matzehuels/orbital/pkg/tabular
// [collection]: https://pkg.go.dev/github.com/matzehuels/orbital/pkg/collection
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/orbital/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/orbital/pkg/cache
// [publish]: https://pkg.go.dev/github.com/matzehuels/orbital/pkg/publish
// [config]: https://pkg.go.dev/github.com/matzehuels/orbital/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/orbital/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/orbital/pkg/errors
// [attrs]: https://pkg.go.dev/github.com/matzehuels/orbital/pkg/attrs
// [detmath]: https://pkg.go.dev/github.com/matzehuels/orbital/pkg/detmath
package pkg
