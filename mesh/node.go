package mesh

// OccupancyMap is the grid marching squares samples. IsWall is only called
// for positions inside Size.
type OccupancyMap interface {
	Size() (width, height int)
	IsWall(x, y int) bool
}

// Node is a point of the sampling lattice that may become a mesh vertex
type Node struct {
	Position    Vec3
	vertexIndex int
}

func newNode(pos Vec3) *Node {
	return &Node{Position: pos, vertexIndex: -1}
}

// ControlNode sits on a grid cell and is active when that cell is a wall.
// It owns the midpoint nodes above it (+Z) and to its right (+X).
type ControlNode struct {
	Node
	Active bool
	Above  *Node
	Right  *Node
}

func newControlNode(pos Vec3, active bool, squareSize float64) *ControlNode {
	return &ControlNode{
		Node:   Node{Position: pos, vertexIndex: -1},
		Active: active,
		Above:  newNode(pos.Add(forward.Scale(squareSize / 2))),
		Right:  newNode(pos.Add(right.Scale(squareSize / 2))),
	}
}

// Square is one marching-squares cell between four control nodes
type Square struct {
	TopLeft, TopRight, BottomRight, BottomLeft *ControlNode
	CentreTop, CentreRight, CentreBottom, CentreLeft *Node

	// Configuration packs the active corners: top-left 8, top-right 4,
	// bottom-right 2, bottom-left 1
	Configuration int
}

func newSquare(topLeft, topRight, bottomRight, bottomLeft *ControlNode) *Square {
	s := &Square{
		TopLeft:      topLeft,
		TopRight:     topRight,
		BottomRight:  bottomRight,
		BottomLeft:   bottomLeft,
		CentreTop:    topLeft.Right,
		CentreRight:  bottomRight.Above,
		CentreBottom: bottomLeft.Right,
		CentreLeft:   bottomLeft.Above,
	}

	if topLeft.Active {
		s.Configuration += 8
	}
	if topRight.Active {
		s.Configuration += 4
	}
	if bottomRight.Active {
		s.Configuration += 2
	}
	if bottomLeft.Active {
		s.Configuration++
	}
	return s
}

// SquareGrid is the lattice of squares built over an occupancy map
type SquareGrid struct {
	Squares [][]*Square // [x][y]
}

// NewSquareGrid places one control node per map cell, centred on the origin,
// and builds the (w-1)x(h-1) squares between them
func NewSquareGrid(m OccupancyMap, squareSize float64) *SquareGrid {
	nodeCountX, nodeCountY := m.Size()
	mapWidth := float64(nodeCountX) * squareSize
	mapHeight := float64(nodeCountY) * squareSize

	controlNodes := make([][]*ControlNode, nodeCountX)
	for x := 0; x < nodeCountX; x++ {
		controlNodes[x] = make([]*ControlNode, nodeCountY)
		for y := 0; y < nodeCountY; y++ {
			pos := Vec3{
				X: -mapWidth/2 + float64(x)*squareSize + squareSize/2,
				Z: -mapHeight/2 + float64(y)*squareSize + squareSize/2,
			}
			controlNodes[x][y] = newControlNode(pos, m.IsWall(x, y), squareSize)
		}
	}

	grid := &SquareGrid{}
	if nodeCountX < 2 || nodeCountY < 2 {
		return grid
	}
	grid.Squares = make([][]*Square, nodeCountX-1)
	for x := 0; x < nodeCountX-1; x++ {
		grid.Squares[x] = make([]*Square, nodeCountY-1)
		for y := 0; y < nodeCountY-1; y++ {
			grid.Squares[x][y] = newSquare(
				controlNodes[x][y+1],
				controlNodes[x+1][y+1],
				controlNodes[x+1][y],
				controlNodes[x][y],
			)
		}
	}
	return grid
}
