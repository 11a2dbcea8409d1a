package ecs

// World owns the viewer's entities, their components and the systems that
// run over them each frame
type World struct {
	entities   map[EntityID]*Entity
	components map[EntityID]ComponentMap
	systems    []System
	// Tag-based entity lookup
	entityTags   map[string]map[EntityID]bool
	eventManager *EventManager
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity),
		components:   make(map[EntityID]ComponentMap),
		entityTags:   make(map[string]map[EntityID]bool),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	entity := NewEntity()
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// AddComponent attaches a component to an entity, replacing any component
// of the same type. Unknown entities are ignored.
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}
	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	componentMap, exists := w.components[entityID]
	if !exists {
		return nil, false
	}
	component, exists := componentMap[componentID]
	return component, exists
}

// AddSystem registers a system to run on every Update
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update runs every system in registration order
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// TagEntity indexes an entity under a tag. Unknown entities are ignored.
func (w *World) TagEntity(entityID EntityID, tag string) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}
	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][entityID] = true
}

// FirstWithTag returns the lowest-ID entity carrying the tag, or nil
func (w *World) FirstWithTag(tag string) *Entity {
	var first *Entity
	for entityID := range w.entityTags[tag] {
		if first == nil || entityID < first.ID {
			first = w.entities[entityID]
		}
	}
	return first
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent sends an event to the world's subscribers
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}
