package generation

// Passage is one carved corridor between two rooms
type Passage struct {
	RoomA int
	RoomB int
	From  Coord
	To    Coord
}

// PassageCarver digs floor corridors between tiles
type PassageCarver struct {
	radius int
}

// NewPassageCarver creates a carver that stamps disks of the given radius
func NewPassageCarver(radius int) *PassageCarver {
	return &PassageCarver{radius: radius}
}

// Carve sets every tile within radius of the line from..to to floor. At
// radius 0 a diagonal step also carves its corner tile so the corridor stays
// 4-connected; larger disks already overlap.
func (p *PassageCarver) Carve(grid *Grid, from, to Coord) {
	line := Line(from, to)
	for i, c := range line {
		if p.radius == 0 && i > 0 {
			prev := line[i-1]
			if prev.X != c.X && prev.Y != c.Y {
				p.drawCircle(grid, Coord{X: c.X, Y: prev.Y})
			}
		}
		p.drawCircle(grid, c)
	}
}

// drawCircle sets the disk dx²+dy² <= r² around c to floor. Tiles off the
// grid or on its border ring are skipped so the border stays solid.
func (p *PassageCarver) drawCircle(grid *Grid, c Coord) {
	r := p.radius
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x, y := c.X+dx, c.Y+dy
			if grid.InBounds(x, y) && !isBorder(x, y, grid.Width, grid.Height) {
				grid.Tiles[y][x] = TileFloor
			}
		}
	}
}

// Line returns the Bresenham line from..to, both ends included
func Line(from, to Coord) []Coord {
	x, y := from.X, from.Y
	dx := to.X - from.X
	dy := to.Y - from.Y

	inverted := false
	step := sign(dx)
	gradientStep := sign(dy)
	longest := abs(dx)
	shortest := abs(dy)

	// Drive along whichever axis moves further
	if longest < shortest {
		inverted = true
		longest, shortest = shortest, longest
		step, gradientStep = gradientStep, step
	}

	line := make([]Coord, 0, longest+1)
	gradientAccumulation := longest / 2
	for i := 0; i < longest; i++ {
		line = append(line, Coord{X: x, Y: y})

		if inverted {
			y += step
		} else {
			x += step
		}

		gradientAccumulation += shortest
		if gradientAccumulation >= longest {
			if inverted {
				x += gradientStep
			} else {
				y += gradientStep
			}
			gradientAccumulation -= longest
		}
	}
	// The error term always lands the walk on the end point
	line = append(line, Coord{X: x, Y: y})
	return line
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
