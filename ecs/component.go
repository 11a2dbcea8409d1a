package ecs

// ComponentID identifies a component type
type ComponentID uint

// Component is any data attached to an entity
type Component interface{}

// ComponentMap stores an entity's components by type
type ComponentMap map[ComponentID]Component
