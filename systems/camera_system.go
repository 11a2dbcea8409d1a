package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-caves/components"
	"ebiten-caves/config"
	"ebiten-caves/ecs"
	"ebiten-caves/generation"
	"ebiten-caves/mesh"
)

// Camera movement tuning
const (
	panSpeedPixels = 8.0  // Screen pixels per frame while an arrow key is held
	zoomStep       = 1.15 // Zoom factor per mouse wheel notch
	defaultTilt    = 0.5
)

const cameraTag = "camera"

// CameraSystem handles viewport panning, zooming and the oblique wall view
type CameraSystem struct{}

// NewCameraSystem creates a new camera system
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Initialize creates the camera entity and refits it whenever a new cave
// is generated
func (s *CameraSystem) Initialize(world *ecs.World) {
	entity := world.CreateEntity()
	world.TagEntity(entity.ID, cameraTag)
	world.AddComponent(entity.ID, components.Camera, components.NewCameraComponent(config.MinZoom))

	world.GetEventManager().Subscribe(EventCaveGenerated, func(event ecs.Event) {
		generated := event.(CaveGeneratedEvent)
		camera := s.Camera(world)
		if camera == nil {
			return
		}
		FitCamera(camera, generated.Cave, config.ViewportWidth, config.ViewportHeight)
		world.EmitEvent(CameraUpdateEvent{CameraID: entity.ID, X: camera.X, Z: camera.Z, Zoom: camera.Zoom})
	})
}

// Camera returns the component of the entity tagged "camera", or nil before
// Initialize
func (s *CameraSystem) Camera(world *ecs.World) *components.CameraComponent {
	entity := world.FirstWithTag(cameraTag)
	if entity == nil {
		return nil
	}
	comp, exists := world.GetComponent(entity.ID, components.Camera)
	if !exists {
		return nil
	}
	return comp.(*components.CameraComponent)
}

// Update pans with the arrow keys, zooms with the mouse wheel and toggles
// the tilt with T
func (s *CameraSystem) Update(world *ecs.World, dt float64) {
	camera := s.Camera(world)
	if camera == nil {
		return
	}

	// Pan speed is constant on screen, so divide by zoom
	step := panSpeedPixels / camera.Zoom
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		camera.X -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		camera.X += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		camera.Z += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		camera.Z -= step
	}

	if _, wheel := ebiten.Wheel(); wheel != 0 {
		ZoomCamera(camera, math.Pow(zoomStep, wheel))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		if camera.Tilt == 0 {
			camera.Tilt = defaultTilt
		} else {
			camera.Tilt = 0
		}
		GetMessageLog().Addf(MessageTypeSystem, "tilt %.1f", camera.Tilt)
	}
}

// FitCamera centres the camera on the cave and zooms so the padded map
// fills the viewport
func FitCamera(camera *components.CameraComponent, cave *generation.Cave, viewportW, viewportH int) {
	squareSize := cave.SquareSize()
	worldW := float64(cave.Bordered.Width) * squareSize
	worldH := float64(cave.Bordered.Height) * squareSize

	camera.X = 0
	camera.Z = 0
	camera.Zoom = clampZoom(math.Min(float64(viewportW)/worldW, float64(viewportH)/worldH) * config.FitMargin)
}

// ZoomCamera multiplies the zoom by factor within the configured limits
func ZoomCamera(camera *components.CameraComponent, factor float64) {
	camera.Zoom = clampZoom(camera.Zoom * factor)
}

func clampZoom(zoom float64) float64 {
	return math.Max(config.MinZoom, math.Min(config.MaxZoom, zoom))
}

// WorldToScreen projects a mesh point into viewport pixels. World +Z is up
// the screen and points below the surface (negative Y) are pushed down the
// screen by Tilt, which gives the walls their visible depth.
func WorldToScreen(camera *components.CameraComponent, p mesh.Vec3, viewportW, viewportH int) (float32, float32) {
	x := (p.X-camera.X)*camera.Zoom + float64(viewportW)/2
	y := float64(viewportH)/2 - (p.Z-camera.Z)*camera.Zoom - p.Y*camera.Zoom*camera.Tilt
	return float32(x), float32(y)
}

// ScreenToWorld is the inverse of WorldToScreen on the surface plane (Y = 0)
func ScreenToWorld(camera *components.CameraComponent, screenX, screenY float64, viewportW, viewportH int) mesh.Vec3 {
	return mesh.Vec3{
		X: (screenX-float64(viewportW)/2)/camera.Zoom + camera.X,
		Z: (float64(viewportH)/2-screenY)/camera.Zoom + camera.Z,
	}
}
