package scene

import (
	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/vmath"
)

// Skill describes one technology node floating around the globe
type Skill struct {
	Name     string
	Icon     string
	Position vmath.Vec3F
	Color    render.RGB
}

// DefaultSkills is the fixed skill set shown by the portfolio
var DefaultSkills = []Skill{
	{Name: "React", Icon: "⚛", Position: vmath.Vec3F{X: 7, Y: 3, Z: 5}, Color: render.Hex(0x61dafb)},
	{Name: "TypeScript", Icon: "TS", Position: vmath.Vec3F{X: 0, Y: 8, Z: 3}, Color: render.Hex(0x3178c6)},
	{Name: "Django", Icon: "dj", Position: vmath.Vec3F{X: -7, Y: -3, Z: 2}, Color: render.Hex(0x092e20)},
	{Name: "Firebase", Icon: "🔥", Position: vmath.Vec3F{X: 3, Y: -7, Z: -3}, Color: render.Hex(0xffca28)},
	{Name: "Clerk", Icon: "◆", Position: vmath.Vec3F{X: -3, Y: 0, Z: 8}, Color: render.Hex(0x6c47ff)},
	{Name: "Expo", Icon: "▲", Position: vmath.Vec3F{X: 0, Y: 3, Z: -8}, Color: render.Hex(0x000020)},
}
