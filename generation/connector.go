package generation

import "fmt"

// connection is the closest edge-tile pair found so far between two rooms
type connection struct {
	found    bool
	distance int
	roomA    *Room
	roomB    *Room
	tileA    Coord
	tileB    Coord
}

// consider keeps the pair if it is strictly closer than the current best.
// The first minimum found wins ties.
func (c *connection) consider(roomA, roomB *Room, tileA, tileB Coord) {
	dx := tileA.X - tileB.X
	dy := tileA.Y - tileB.Y
	distance := dx*dx + dy*dy
	if !c.found || distance < c.distance {
		c.found = true
		c.distance = distance
		c.roomA = roomA
		c.roomB = roomB
		c.tileA = tileA
		c.tileB = tileB
	}
}

// RoomConnector links rooms with carved passages until every room can reach
// the main room
type RoomConnector struct {
	carver *PassageCarver
}

// NewRoomConnector creates a connector that digs with the given carver
func NewRoomConnector(carver *PassageCarver) *RoomConnector {
	return &RoomConnector{carver: carver}
}

// ConnectClosestRooms connects every room to its nearest neighbour, then
// keeps joining the closest unreachable room to the reachable set. The main
// room must already be marked accessible. The grid is carved in place.
func (c *RoomConnector) ConnectClosestRooms(grid *Grid, rooms []*Room) ([]Passage, error) {
	passages := c.connectNearest(grid, rooms)

	for {
		var inaccessible, accessible []*Room
		for _, room := range rooms {
			if room.IsAccessibleFromMainRoom {
				accessible = append(accessible, room)
			} else {
				inaccessible = append(inaccessible, room)
			}
		}
		if len(inaccessible) == 0 {
			return passages, nil
		}

		var best connection
		for _, roomA := range inaccessible {
			for _, roomB := range accessible {
				if roomA.IsConnected(roomB) {
					continue
				}
				closestTiles(roomA, roomB, &best)
			}
		}
		if !best.found {
			return passages, fmt.Errorf("%w: %d rooms left after %d passages", ErrUnreachableRooms, len(inaccessible), len(passages))
		}
		passages = append(passages, c.connect(grid, best))
	}
}

// connectNearest gives every room without connections a passage to its
// closest other room
func (c *RoomConnector) connectNearest(grid *Grid, rooms []*Room) []Passage {
	var passages []Passage
	for _, roomA := range rooms {
		if roomA.ConnectedRooms.Size() > 0 {
			continue
		}

		var best connection
		for _, roomB := range rooms {
			if roomA == roomB || roomA.IsConnected(roomB) {
				continue
			}
			closestTiles(roomA, roomB, &best)
		}
		if best.found {
			passages = append(passages, c.connect(grid, best))
		}
	}
	return passages
}

// connect records the connection on both rooms and carves it
func (c *RoomConnector) connect(grid *Grid, best connection) Passage {
	ConnectRooms(best.roomA, best.roomB)
	c.carver.Carve(grid, best.tileA, best.tileB)
	return Passage{
		RoomA: best.roomA.ID,
		RoomB: best.roomB.ID,
		From:  best.tileA,
		To:    best.tileB,
	}
}

// closestTiles compares every edge tile pair of the two rooms against best
func closestTiles(roomA, roomB *Room, best *connection) {
	for _, tileA := range roomA.EdgeTiles {
		for _, tileB := range roomB.EdgeTiles {
			best.consider(roomA, roomB, tileA, tileB)
		}
	}
}
