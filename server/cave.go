package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ebiten-caves/generation"
)

// CaveResponse is the JSON form of a generated cave
type CaveResponse struct {
	Seed     string            `json:"seed"`
	Width    int               `json:"width"`
	Height   int               `json:"height"`
	Rows     []string          `json:"rows"` // Row 0 is y = 0, '#' is wall
	Rooms    []RoomResponse    `json:"rooms"`
	Passages []PassageResponse `json:"passages"`
	Mesh     MeshStats         `json:"mesh"`
}

// RoomResponse describes one room
type RoomResponse struct {
	ID        int   `json:"id"`
	Size      int   `json:"size"`
	EdgeTiles int   `json:"edge_tiles"`
	IsMain    bool  `json:"is_main"`
	Connected []int `json:"connected"`
}

// PassageResponse describes one carved connection
type PassageResponse struct {
	RoomA int    `json:"room_a"`
	RoomB int    `json:"room_b"`
	From  [2]int `json:"from"`
	To    [2]int `json:"to"`
}

// MeshStats summarises the generated mesh
type MeshStats struct {
	Vertices     int `json:"vertices"`
	Triangles    int `json:"triangles"`
	Outlines     int `json:"outlines"`
	WallVertices int `json:"wall_vertices"`
}

// CaveHandler serves generated caves
type CaveHandler struct {
	defaults generation.Settings
}

// NewCaveHandler creates a new CaveHandler
func NewCaveHandler(defaults generation.Settings) *CaveHandler {
	return &CaveHandler{defaults: defaults}
}

// GetCave handles GET /api/cave and /api/cave/{seed}
func (h *CaveHandler) GetCave(w http.ResponseWriter, r *http.Request) {
	settings, err := settingsFromQuery(h.defaults, r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if seed := chi.URLParam(r, "seed"); seed != "" {
		settings.Seed = seed
		settings.UseRandomSeed = false
	}

	generator, err := generation.NewGenerator(settings)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cave, err := generator.Generate()
	switch {
	case errors.Is(err, generation.ErrNoViableRooms):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, newCaveResponse(cave))
}

// settingsFromQuery applies query parameter overrides to the defaults
func settingsFromQuery(defaults generation.Settings, query url.Values) (generation.Settings, error) {
	s := defaults

	ints := []struct {
		name   string
		target *int
	}{
		{"width", &s.Width},
		{"height", &s.Height},
		{"fill", &s.RandomFillPercent},
		{"wall_threshold", &s.WallThreshold},
		{"room_threshold", &s.RoomThreshold},
		{"radius", &s.PassageRadius},
	}
	for _, p := range ints {
		raw := query.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return s, fmt.Errorf("%w: invalid %s %q", generation.ErrInvalidConfig, p.name, raw)
		}
		*p.target = v
	}

	if seed := query.Get("seed"); seed != "" {
		s.Seed = seed
	}
	if raw := query.Get("random"); raw != "" {
		random, err := strconv.ParseBool(raw)
		if err != nil {
			return s, fmt.Errorf("%w: invalid random %q", generation.ErrInvalidConfig, raw)
		}
		s.UseRandomSeed = random
	}
	if raw := query.Get("mode"); raw != "" {
		mode, err := generation.ParseFillMode(raw)
		if err != nil {
			return s, err
		}
		s.FillMode = mode
	}
	return s, nil
}

func newCaveResponse(cave *generation.Cave) CaveResponse {
	resp := CaveResponse{
		Seed:     cave.Seed,
		Width:    cave.Grid.Width,
		Height:   cave.Grid.Height,
		Rows:     cave.Grid.Rows(),
		Rooms:    make([]RoomResponse, 0, len(cave.Rooms)),
		Passages: make([]PassageResponse, 0, len(cave.Passages)),
		Mesh: MeshStats{
			Vertices:     len(cave.Mesh.Vertices),
			Triangles:    cave.Mesh.TriangleCount(),
			Outlines:     len(cave.Mesh.Outlines),
			WallVertices: len(cave.Mesh.Walls.Vertices),
		},
	}

	for _, room := range cave.Rooms {
		connected := make([]int, 0, room.ConnectedRooms.Size())
		room.ConnectedRooms.Each(func(other *generation.Room) {
			connected = append(connected, other.ID)
		})
		sort.Ints(connected)

		resp.Rooms = append(resp.Rooms, RoomResponse{
			ID:        room.ID,
			Size:      room.Size,
			EdgeTiles: len(room.EdgeTiles),
			IsMain:    room.IsMainRoom,
			Connected: connected,
		})
	}
	for _, p := range cave.Passages {
		resp.Passages = append(resp.Passages, PassageResponse{
			RoomA: p.RoomA,
			RoomB: p.RoomB,
			From:  [2]int{p.From.X, p.From.Y},
			To:    [2]int{p.To.X, p.To.Y},
		})
	}
	return resp
}
