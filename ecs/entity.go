package ecs

import "sync/atomic"

// EntityID is a unique identifier for an entity
type EntityID uint64

var nextEntityID atomic.Uint64

// NewEntityID returns the next unused entity ID
func NewEntityID() EntityID {
	return EntityID(nextEntityID.Add(1))
}

// Entity is a bag of components addressed by ID. The world indexes tags such
// as "cave" or "camera" so systems find well-known entities without scanning
// components.
type Entity struct {
	ID EntityID
}

// NewEntity creates an entity with a fresh ID
func NewEntity() *Entity {
	return &Entity{ID: NewEntityID()}
}
