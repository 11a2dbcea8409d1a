package generation

import "strings"

// Tile is the occupancy state of a single grid cell
type Tile int

// Tile types
const (
	TileFloor Tile = iota
	TileWall
)

// Coord is an integer tile position on the grid
type Coord struct {
	X, Y int
}

// Grid stores the cave occupancy map. Tiles are indexed [y][x].
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// NewGrid creates a grid of the given size with every tile set to floor
func NewGrid(width, height int) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}
}

// ParseGrid builds a grid from rows of '#' (wall) and '.' (floor) characters.
// Row 0 is y = 0.
func ParseGrid(rows ...string) *Grid {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	grid := NewGrid(width, height)
	for y, row := range rows {
		for x := 0; x < width && x < len(row); x++ {
			if row[x] == '#' {
				grid.Tiles[y][x] = TileWall
			}
		}
	}
	return grid
}

// Size returns the grid dimensions
func (g *Grid) Size() (int, int) {
	return g.Width, g.Height
}

// InBounds reports whether (x, y) lies on the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the tile at (x, y). Positions off the grid read as wall.
func (g *Grid) Get(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.Tiles[y][x]
}

// SetTile sets the tile at (x, y); positions off the grid are ignored
func (g *Grid) SetTile(x, y int, tile Tile) {
	if g.InBounds(x, y) {
		g.Tiles[y][x] = tile
	}
}

// IsWall reports whether (x, y) is a wall or off the grid
func (g *Grid) IsWall(x, y int) bool {
	return g.Get(x, y) == TileWall
}

// Count returns how many tiles of the given type the grid holds
func (g *Grid) Count(tile Tile) int {
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y][x] == tile {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.Width, g.Height)
	for y := range g.Tiles {
		copy(clone.Tiles[y], g.Tiles[y])
	}
	return clone
}

// Equal reports whether both grids have the same size and tiles
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y][x] != other.Tiles[y][x] {
				return false
			}
		}
	}
	return true
}

// Rows renders the grid as '#'/'.' rows, y = 0 first
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.Reset()
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y][x] == TileWall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders the grid one row per line
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// PadGrid wraps the grid in a ring of walls `border` tiles thick
func PadGrid(grid *Grid, border int) *Grid {
	padded := NewGrid(grid.Width+border*2, grid.Height+border*2)
	for y := 0; y < padded.Height; y++ {
		for x := 0; x < padded.Width; x++ {
			if x >= border && x < grid.Width+border && y >= border && y < grid.Height+border {
				padded.Tiles[y][x] = grid.Tiles[y-border][x-border]
			} else {
				padded.Tiles[y][x] = TileWall
			}
		}
	}
	return padded
}
