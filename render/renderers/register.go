package renderers

import (
	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/scene"
)

// RegisterScene registers every scene layer, back to front
func RegisterScene(o *render.RenderOrchestrator, s *scene.State) {
	o.Register(NewStarfieldRenderer(s), render.PriorityStars)
	o.Register(NewAtmosphereRenderer(s, &s.OuterAtmosphere), render.PriorityAtmosphere)
	o.Register(NewAtmosphereRenderer(s, &s.Atmosphere), render.PriorityAtmosphere)
	o.Register(NewWireframeRenderer(s, &s.InnerGlobe), render.PriorityGlobe)
	o.Register(NewWireframeRenderer(s, &s.Globe), render.PriorityGlobe)
	o.Register(NewConnectionRenderer(s), render.PriorityConnections)
	o.Register(NewParticleRenderer(s), render.PriorityParticles)
	o.Register(NewHaloRenderer(s), render.PriorityHalos)
	o.Register(NewNodeRenderer(s), render.PriorityNodes)
	o.Register(NewLabelRenderer(s), render.PriorityLabels)
	o.Register(NewMouseLightRenderer(s), render.PriorityLight)
}

// RegisterOverlay registers the content panel and status bar
func RegisterOverlay(o *render.RenderOrchestrator, view *content.View, status func() Status) {
	o.Register(NewContentRenderer(view), render.PriorityContent)
	o.Register(NewStatusRenderer(status), render.PriorityUI)
}
