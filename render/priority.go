package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityStars
	PriorityAtmosphere
	PriorityGlobe
	PriorityConnections
	PriorityParticles
	PriorityHalos
	PriorityNodes
	PriorityLabels
	PriorityLight
	PriorityContent
	PriorityUI
)
