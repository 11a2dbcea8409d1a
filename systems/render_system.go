package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-caves/components"
	"ebiten-caves/config"
	"ebiten-caves/ecs"
	"ebiten-caves/mesh"
)

// DrawTriangles takes uint16 indices, so batches stay below this many vertices
const maxBatchVertices = math.MaxUint16 - 2

var (
	backgroundColor = color.RGBA{16, 14, 20, 255}
	outlineColor    = color.RGBA{236, 220, 180, 255}
	passageColor    = color.RGBA{255, 210, 0, 255}
	alertColor      = color.RGBA{150, 20, 20, 230}
	panelColor      = color.RGBA{0, 0, 0, 220}
	wallTint        = [3]float32{0.45, 0.36, 0.28}
)

// RenderSystem draws the cave entity through the camera
type RenderSystem struct {
	cameraSystem *CameraSystem
	caveSystem   *CaveSystem
	texture      *Texture
	// 1x1 white source for untextured triangles
	whiteSubImage *ebiten.Image
	showMessages  bool
	hud           hud
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(cameraSystem *CameraSystem, caveSystem *CaveSystem, texture *Texture) *RenderSystem {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &RenderSystem{
		cameraSystem:  cameraSystem,
		caveSystem:    caveSystem,
		texture:       texture,
		whiteSubImage: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		showMessages:  true,
	}
}

// Initialize subscribes the overlay to generation and camera events
func (s *RenderSystem) Initialize(world *ecs.World) {
	s.hud.subscribe(world)
}

// Update counts down the alert banner
func (s *RenderSystem) Update(world *ecs.World, dt float64) {
	s.hud.tick(dt)
}

// ToggleMessages shows or hides the message panel
func (s *RenderSystem) ToggleMessages() {
	s.showMessages = !s.showMessages
}

// Draw renders the walls, the surface, the outlines and the message panel
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	camera := s.cameraSystem.Camera(world)
	caveComp := s.caveSystem.CaveComponent(world)
	if camera == nil || caveComp == nil || caveComp.Cave == nil {
		ebitenutil.DebugPrintAt(screen, "no cave", 8, 24)
		return
	}
	m := caveComp.Cave.Mesh

	// Walls hang below the surface, so they go first and the surface covers
	// whatever parts of them face away from the camera
	if caveComp.ShowWalls && camera.Tilt > 0 {
		s.drawWalls(screen, camera, &m.Walls)
	}
	s.drawSurface(screen, camera, m)
	s.drawOutlines(screen, camera, m)
	if caveComp.ShowPassages {
		s.drawPassages(screen, camera, caveComp)
	}

	ebitenutil.DebugPrintAt(screen, "R/click: regenerate  P: passages  W: walls  T: tilt  arrows/wheel: pan/zoom  F1: messages", 8, 4)
	if s.hud.cameraLabel != "" {
		ebitenutil.DebugPrintAt(screen, s.hud.cameraLabel, 8, config.ViewportHeight-20)
	}
	s.drawAlert(screen)
	if s.showMessages {
		s.drawMessagesPanel(screen)
	}
}

// triangleBatch collects vertices for DrawTriangles and flushes before the
// uint16 index range runs out
type triangleBatch struct {
	dst      *ebiten.Image
	src      *ebiten.Image
	options  *ebiten.DrawTrianglesOptions
	vertices []ebiten.Vertex
	indices  []uint16
}

func (b *triangleBatch) add(a, c, d ebiten.Vertex) {
	if len(b.vertices)+3 > maxBatchVertices {
		b.flush()
	}
	base := uint16(len(b.vertices))
	b.vertices = append(b.vertices, a, c, d)
	b.indices = append(b.indices, base, base+1, base+2)
}

func (b *triangleBatch) flush() {
	if len(b.vertices) == 0 {
		return
	}
	b.dst.DrawTriangles(b.vertices, b.indices, b.src, b.options)
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

// drawSurface draws the wall tops with the texture mapped through the UVs
func (s *RenderSystem) drawSurface(screen *ebiten.Image, camera *components.CameraComponent, m *mesh.CaveMesh) {
	batch := &triangleBatch{
		dst:     screen,
		src:     s.texture.Image,
		options: &ebiten.DrawTrianglesOptions{Address: ebiten.AddressRepeat},
	}

	texSize := float32(s.texture.Size)
	vertex := func(i int) ebiten.Vertex {
		x, y := WorldToScreen(camera, m.Vertices[i], config.ViewportWidth, config.ViewportHeight)
		uv := m.UVs[i]
		return ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: float32(uv.U) * texSize, SrcY: float32(uv.V) * texSize,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}

	for i := 0; i+2 < len(m.Triangles); i += 3 {
		batch.add(vertex(m.Triangles[i]), vertex(m.Triangles[i+1]), vertex(m.Triangles[i+2]))
	}
	batch.flush()
}

// drawWalls draws each wall quad shaded by which way it faces
func (s *RenderSystem) drawWalls(screen *ebiten.Image, camera *components.CameraComponent, walls *mesh.WallMesh) {
	batch := &triangleBatch{
		dst:     screen,
		src:     s.whiteSubImage,
		options: &ebiten.DrawTrianglesOptions{},
	}

	for quad := 0; quad+3 < len(walls.Vertices); quad += 4 {
		left, right := walls.Vertices[quad], walls.Vertices[quad+1]
		shade := wallShade(right.Sub(left))

		vertex := func(i int) ebiten.Vertex {
			x, y := WorldToScreen(camera, walls.Vertices[i], config.ViewportWidth, config.ViewportHeight)
			return ebiten.Vertex{
				DstX: x, DstY: y,
				SrcX: 1, SrcY: 1,
				ColorR: wallTint[0] * shade, ColorG: wallTint[1] * shade, ColorB: wallTint[2] * shade, ColorA: 1,
			}
		}

		// Each quad owns six consecutive indices
		t := quad / 4 * 6
		for k := t; k < t+6 && k+2 < len(walls.Triangles); k += 3 {
			batch.add(vertex(walls.Triangles[k]), vertex(walls.Triangles[k+1]), vertex(walls.Triangles[k+2]))
		}
	}
	batch.flush()
}

// wallShade lights walls running along X more than walls running along Z
func wallShade(along mesh.Vec3) float32 {
	length := math.Hypot(along.X, along.Z)
	if length == 0 {
		return 1
	}
	return float32(0.6 + 0.4*math.Abs(along.X)/length)
}

func (s *RenderSystem) drawOutlines(screen *ebiten.Image, camera *components.CameraComponent, m *mesh.CaveMesh) {
	for _, outline := range m.Outlines {
		for i := 0; i+1 < len(outline); i++ {
			x0, y0 := WorldToScreen(camera, m.Vertices[outline[i]], config.ViewportWidth, config.ViewportHeight)
			x1, y1 := WorldToScreen(camera, m.Vertices[outline[i+1]], config.ViewportWidth, config.ViewportHeight)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1.5, outlineColor, true)
		}
	}
}

// drawPassages draws a line for every carved room connection
func (s *RenderSystem) drawPassages(screen *ebiten.Image, camera *components.CameraComponent, caveComp *components.CaveComponent) {
	cave := caveComp.Cave
	for _, p := range cave.Passages {
		x0, y0 := WorldToScreen(camera, cave.CoordToWorldPoint(p.From), config.ViewportWidth, config.ViewportHeight)
		x1, y1 := WorldToScreen(camera, cave.CoordToWorldPoint(p.To), config.ViewportWidth, config.ViewportHeight)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, passageColor, true)
	}
}

// drawAlert draws the latest generation failure as a banner under the
// controls line
func (s *RenderSystem) drawAlert(screen *ebiten.Image) {
	text, ok := s.hud.activeAlert()
	if !ok {
		return
	}
	vector.DrawFilledRect(screen, 0, 22, config.ScreenWidth, 20, alertColor, false)
	ebitenutil.DebugPrintAt(screen, text, 8, 24)
}

// drawMessagesPanel draws the message log along the bottom of the screen
func (s *RenderSystem) drawMessagesPanel(screen *ebiten.Image) {
	top := float32(config.ViewportHeight)
	vector.DrawFilledRect(screen, 0, top, config.ScreenWidth, config.MessagePanelHeight, panelColor, false)

	maxMessages := config.MessagePanelHeight/config.MessageLineHeight - 1
	for i, msg := range GetMessageLog().RecentMessages(maxMessages) {
		y := config.ViewportHeight + 4 + i*config.MessageLineHeight
		// DebugPrint is monochrome, so the message type shows as a swatch
		vector.DrawFilledRect(screen, 6, float32(y+4), 8, 8, msg.GetColor(), false)
		ebitenutil.DebugPrintAt(screen, msg.Text, 20, y)
	}
}
