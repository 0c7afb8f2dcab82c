// Package geo holds the static node→coordinate table that sits between the
// routing core and its presentation collaborators: map clicks resolve to the
// nearest node here, and computed paths resolve back to coordinate
// sequences for rendering.
//
// The core itself never consults this package; coordinates are owned by the
// presentation side and graphs know nothing about geography.
//
// Nearest-node semantics (deliberately simple):
//
//   - Distance is plain Euclidean distance in raw (lat, lon) degree space.
//     No geodesic correction, no meridian wrapping. Geodetically crude, but
//     exactly what the simulation wants: cheap, stable, deterministic.
//   - Ties are broken by table iteration order: the earliest-registered node
//     at the minimal distance wins, deterministically.
//
// Errors (sentinel):
//
//   - ErrEmptyTable      – Nearest was called on a table with no entries.
//   - ErrUnknownLocation – a node has no registered coordinate.
package geo
