package ecs

// System processes entities once per frame
type System interface {
	Update(world *World, dt float64)
}
