package generation

// Smoother runs the cellular automaton that turns fill noise into caves
type Smoother struct {
	passes int
}

// NewSmoother creates a smoother that applies the given number of passes
func NewSmoother(passes int) *Smoother {
	return &Smoother{passes: passes}
}

// Smooth applies every pass to the grid
func (s *Smoother) Smooth(grid *Grid) {
	for i := 0; i < s.passes; i++ {
		s.SmoothPass(grid)
	}
}

// SmoothPass applies one automaton pass in place. Cells are visited x outer,
// y inner, so later cells see neighbours already updated in this pass.
func (s *Smoother) SmoothPass(grid *Grid) {
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			grid.Tiles[y][x] = smoothedTile(grid.Tiles[y][x], countAdjacentWalls(grid, x, y))
		}
	}
}

// smoothedTile applies the automaton rule: more than 4 wall neighbours
// becomes wall, fewer becomes floor, exactly 4 keeps the current tile
func smoothedTile(current Tile, walls int) Tile {
	switch {
	case walls > 4:
		return TileWall
	case walls < 4:
		return TileFloor
	}
	return current
}

// countAdjacentWalls counts walls in the 8 cells around (x, y)
func countAdjacentWalls(grid *Grid, x, y int) int {
	count := 0
	for nx := x - 1; nx <= x+1; nx++ {
		for ny := y - 1; ny <= y+1; ny++ {
			if nx == x && ny == y {
				continue
			}

			// Count edges as walls
			if !grid.InBounds(nx, ny) {
				count++
				continue
			}

			if grid.Tiles[ny][nx] == TileWall {
				count++
			}
		}
	}
	return count
}
