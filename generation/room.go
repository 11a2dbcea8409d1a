package generation

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Room is a surviving floor region that takes part in the connection graph
type Room struct {
	ID        int
	Tiles     []Coord
	EdgeTiles []Coord
	Size      int

	IsMainRoom               bool
	IsAccessibleFromMainRoom bool
	ConnectedRooms           mapset.Set[*Room]
}

// NewRoom builds a room from a floor region. A tile is an edge tile when any
// of its 4 neighbours is a wall or off the grid.
func NewRoom(region Region, grid *Grid) *Room {
	room := &Room{
		Tiles:          region,
		Size:           len(region),
		ConnectedRooms: mapset.New[*Room](),
	}

	for _, tile := range region {
		for _, n := range orthogonalNeighbours(tile) {
			if grid.IsWall(n.X, n.Y) {
				room.EdgeTiles = append(room.EdgeTiles, tile)
				break
			}
		}
	}
	return room
}

// ConnectRooms records a direct connection between two rooms. If either side
// can reach the main room, so can everything now attached to the other.
func ConnectRooms(roomA, roomB *Room) {
	if roomA.IsAccessibleFromMainRoom {
		roomB.SetAccessibleFromMainRoom()
	} else if roomB.IsAccessibleFromMainRoom {
		roomA.SetAccessibleFromMainRoom()
	}
	roomA.ConnectedRooms.Put(roomB)
	roomB.ConnectedRooms.Put(roomA)
}

// IsConnected reports whether the two rooms share a direct passage
func (r *Room) IsConnected(other *Room) bool {
	return r.ConnectedRooms.Has(other)
}

// SetAccessibleFromMainRoom marks the room and every room reachable through
// its connections as accessible
func (r *Room) SetAccessibleFromMainRoom() {
	if r.IsAccessibleFromMainRoom {
		return
	}
	r.IsAccessibleFromMainRoom = true

	stack := []*Room{r}
	for len(stack) > 0 {
		room := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		room.ConnectedRooms.Each(func(connected *Room) {
			if !connected.IsAccessibleFromMainRoom {
				connected.IsAccessibleFromMainRoom = true
				stack = append(stack, connected)
			}
		})
	}
}

// SortRooms orders rooms largest first and numbers them in that order.
// Equal sizes keep their discovery order.
func SortRooms(rooms []*Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Size > rooms[j].Size
	})
	for i, room := range rooms {
		room.ID = i
	}
}

// ReachableFrom returns every room reachable from start through direct connections
func ReachableFrom(start *Room) mapset.Set[*Room] {
	reachable := mapset.New[*Room]()
	queue := []*Room{start}
	reachable.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		current.ConnectedRooms.Each(func(next *Room) {
			if !reachable.Has(next) {
				reachable.Put(next)
				queue = append(queue, next)
			}
		})
	}
	return reachable
}
