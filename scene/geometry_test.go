package scene

import (
	"testing"

	"github.com/lixenwraith/folio/vmath"
)

func TestIcosphereWireframe(t *testing.T) {
	tests := []struct {
		name   string
		detail int
		edges  int
	}{
		{"Icosahedron", 0, 30},
		{"Detail 1", 1, 120},
		{"Detail 2", 2, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewIcosphereWireframe(InnerGlobeRadius, tt.detail)
			if len(w.Edges) != tt.edges {
				t.Errorf("Expected %d edges, got %d", tt.edges, len(w.Edges))
			}
			for i, e := range w.Edges {
				if !approx(vmath.V3FMag(e.A), InnerGlobeRadius, 1e-9) || !approx(vmath.V3FMag(e.B), InnerGlobeRadius, 1e-9) {
					t.Fatalf("Edge %d endpoints off the sphere", i)
				}
			}
		})
	}
}

func TestSphereWireframe(t *testing.T) {
	w := NewSphereWireframe(GlobeRadius, GlobeWidthSegments, GlobeHeightSegments)
	want := (GlobeHeightSegments-1)*GlobeWidthSegments + GlobeWidthSegments*GlobeHeightSegments
	if len(w.Edges) != want {
		t.Errorf("Expected %d edges, got %d", want, len(w.Edges))
	}
	for i, e := range w.Edges {
		if !approx(vmath.V3FMag(e.A), GlobeRadius, 1e-9) {
			t.Fatalf("Edge %d start off the sphere", i)
		}
	}
}
