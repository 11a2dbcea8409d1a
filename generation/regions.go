package generation

// Region is one maximal 4-connected group of same-type tiles, in discovery order
type Region []Coord

// RegionFinder flood fills the grid into regions
type RegionFinder struct{}

// NewRegionFinder creates a region finder
func NewRegionFinder() *RegionFinder {
	return &RegionFinder{}
}

// FindRegions returns every region of the given tile type. Seeds are taken
// x outer, y inner so region order is stable for a given grid.
func (f *RegionFinder) FindRegions(grid *Grid, tile Tile) []Region {
	visited := make([][]bool, grid.Height)
	for i := range visited {
		visited[i] = make([]bool, grid.Width)
	}

	var regions []Region
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			if !visited[y][x] && grid.Tiles[y][x] == tile {
				regions = append(regions, f.floodFill(grid, x, y, visited))
			}
		}
	}
	return regions
}

// floodFill collects the region containing (startX, startY) breadth first
func (f *RegionFinder) floodFill(grid *Grid, startX, startY int, visited [][]bool) Region {
	tile := grid.Tiles[startY][startX]
	var region Region

	queue := []Coord{{X: startX, Y: startY}}
	visited[startY][startX] = true

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		region = append(region, curr)

		for _, n := range orthogonalNeighbours(curr) {
			if !grid.InBounds(n.X, n.Y) {
				continue
			}
			if !visited[n.Y][n.X] && grid.Tiles[n.Y][n.X] == tile {
				visited[n.Y][n.X] = true
				queue = append(queue, n)
			}
		}
	}
	return region
}

// orthogonalNeighbours returns the 4 neighbours of c in enqueue order:
// west, south, north, east
func orthogonalNeighbours(c Coord) [4]Coord {
	return [4]Coord{
		{X: c.X - 1, Y: c.Y},
		{X: c.X, Y: c.Y - 1},
		{X: c.X, Y: c.Y + 1},
		{X: c.X + 1, Y: c.Y},
	}
}

// fillRegion sets every tile of the region to the given type
func fillRegion(grid *Grid, region Region, tile Tile) {
	for _, c := range region {
		grid.Tiles[c.Y][c.X] = tile
	}
}
