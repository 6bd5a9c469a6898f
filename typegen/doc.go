// Package typegen is a bidirectional mapping engine between untyped
// JSON/YAML-shaped document trees and statically declared Go data models.
//
// A generator is built once for a root type and is immutable afterwards:
//
//	gen, err := typegen.New[Spec](
//		typegen.WithOverride(Reference{}, "Ref", "$ref"),
//		typegen.WithVariants((*Shape)(nil), Circle{}, Polygon{}),
//	)
//	spec, err := gen.Decode(tree)   // map[string]any -> Spec
//	tree, err := gen.Encode(spec)   // Spec -> map[string]any
//
// The engine consumes and produces already-parsed generic trees (nil, bool,
// int64, float64, string, []any, map[string]any); text parsing and writing
// are external collaborators. Decode and Encode are pure and safe for
// concurrent use on a shared generator.
package typegen
