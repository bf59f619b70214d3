// Package domain contains the core model of the table cipher: keys, grid
// dimensions, grids and the per-round results produced by encoding and
// decoding.
//
// The domain is I/O-agnostic: it does not depend on YAML parsing, the
// terminal, or the filesystem. Infra/adapters map into/from these types.
package domain
