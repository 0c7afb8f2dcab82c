// This file implements the coordinate Table and its lookups.
package geo

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/routesim/core"
)

// Sentinel errors for coordinate lookups.
var (
	// ErrEmptyTable indicates Nearest was called with no registered nodes.
	ErrEmptyTable = errors.New("geo: coordinate table is empty")

	// ErrUnknownLocation indicates a node has no registered coordinate.
	ErrUnknownLocation = errors.New("geo: no coordinate registered for node")
)

// Coordinate is a raw latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Table maps nodes to coordinates while preserving registration order, so
// nearest-node tie-breaking is deterministic.
//
// Table is built once before serving and read-only afterwards; concurrent
// reads need no locking.
type Table struct {
	order  []core.Node
	coords map[core.Node]Coordinate
}

// NewTable returns an empty coordinate table.
func NewTable() *Table {
	return &Table{coords: make(map[core.Node]Coordinate)}
}

// Set registers (or replaces) the coordinate of id. A replaced node keeps
// its original position in iteration order.
func (t *Table) Set(id core.Node, lat, lon float64) {
	if _, exists := t.coords[id]; !exists {
		t.order = append(t.order, id)
	}
	t.coords[id] = Coordinate{Lat: lat, Lon: lon}
}

// Len returns the number of registered nodes.
func (t *Table) Len() int { return len(t.order) }

// Lookup returns the coordinate of id, or ErrUnknownLocation.
func (t *Table) Lookup(id core.Node) (Coordinate, error) {
	c, ok := t.coords[id]
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrUnknownLocation, id)
	}

	return c, nil
}

// Nearest returns the registered node closest to (lat, lon).
//
// Distance is Euclidean in raw degree space — no geodesic correction. Ties
// are broken by registration order: the earliest node at the minimal
// distance wins. An empty table yields ErrEmptyTable.
//
// Complexity: O(N) over the table.
func (t *Table) Nearest(lat, lon float64) (core.Node, error) {
	if len(t.order) == 0 {
		return "", ErrEmptyTable
	}

	best := t.order[0]
	bestSq := t.squaredDistance(best, lat, lon)
	for _, id := range t.order[1:] {
		// Strict < keeps the earliest-registered node on ties.
		if sq := t.squaredDistance(id, lat, lon); sq < bestSq {
			best, bestSq = id, sq
		}
	}

	return best, nil
}

// PathCoords maps a node path to its coordinate sequence for rendering.
// Any node without a coordinate fails the whole conversion with
// ErrUnknownLocation.
func (t *Table) PathCoords(path []core.Node) ([]Coordinate, error) {
	out := make([]Coordinate, len(path))
	for i, id := range path {
		c, err := t.Lookup(id)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}

// squaredDistance returns the squared degree-space distance from id to
// (lat, lon). Square roots are unnecessary for comparisons.
func (t *Table) squaredDistance(id core.Node, lat, lon float64) float64 {
	c := t.coords[id]
	dLat := c.Lat - lat
	dLon := c.Lon - lon

	return dLat*dLat + dLon*dLon
}
