package components

import (
	"ebiten-caves/generation"
)

// CaveComponent holds the most recent cave generated for a map entity
type CaveComponent struct {
	Cave *generation.Cave
	// Number of successful generations on this entity, starting at 1
	Generation int
	// Draw the room connection lines over the mesh
	ShowPassages bool
	// Draw the wall skirt below the outlines
	ShowWalls bool
}

// NewCaveComponent wraps a freshly generated cave
func NewCaveComponent(cave *generation.Cave) *CaveComponent {
	return &CaveComponent{
		Cave:       cave,
		Generation: 1,
		ShowWalls:  true,
	}
}

// Replace swaps in a newly generated cave and bumps the generation counter
func (c *CaveComponent) Replace(cave *generation.Cave) {
	c.Cave = cave
	c.Generation++
}

// Summary describes the cave in one line for the message log
func (c *CaveComponent) Summary() string {
	if c.Cave == nil {
		return "no cave"
	}
	m := c.Cave.Mesh
	return fmtSummary(c.Cave.Seed, len(c.Cave.Rooms), len(c.Cave.Passages), len(m.Vertices), m.TriangleCount(), len(m.Outlines))
}
