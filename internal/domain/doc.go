// Package domain contains the traits and specifications model for traitspec.
//
// Traits are flat value holders (geometry, shading, rigging, animation,
// texturing, assembly). Specifications compose traits by reference, one per
// pipeline stage. The domain does not depend on YAML parsing, terminals, or the
// filesystem. Infra/adapters map into/from these types.
package domain
