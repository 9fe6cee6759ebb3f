package mesh

import (
	"github.com/ThatOtherAndrew/portalfx/internal/models"
	"github.com/go-gl/mathgl/mgl32"
)

type letter struct {
	name      string
	points    []mgl32.Vec2
	colors    []mgl32.Vec3
	triangles [][3]uint32
}

var (
	red     = mgl32.Vec3{1, 0, 0}
	yellow  = mgl32.Vec3{1, 1, 0}
	green   = mgl32.Vec3{0, 1, 0}
	cyan    = mgl32.Vec3{0, 1, 1}
	magenta = mgl32.Vec3{1, 0, 1}
	black   = mgl32.Vec3{0, 0, 0}
)

// LetterNames lists the letter meshes in display order.
var LetterNames = []string{"J", "D", "T", "II"}

var letters = []letter{
	{
		name: "J",
		points: []mgl32.Vec2{
			{.125, .5}, {-.125, .5}, {.875, .5}, {-.875, .5}, {.875, .75},
			{-.875, .75}, {-.125, -.5}, {.125, -.75}, {-.875, -.5}, {-.875, -.75},
		},
		colors: []mgl32.Vec3{
			red, red, magenta, black, magenta,
			black, yellow, yellow, cyan, cyan,
		},
		triangles: [][3]uint32{
			{0, 1, 4}, {0, 2, 4}, {0, 1, 7}, {1, 3, 5},
			{1, 4, 5}, {1, 6, 7}, {6, 7, 9}, {6, 8, 9},
		},
	},
	{
		name: "D",
		points: []mgl32.Vec2{
			{-.875, .75}, {-.875, -.75}, {-.625, .5}, {-.625, -.5},
			{-.375, .75}, {-.375, -.75}, {.375, 0}, {.875, 0},
		},
		colors: []mgl32.Vec3{
			black, cyan, red, cyan,
			magenta, green, yellow, yellow,
		},
		triangles: [][3]uint32{
			{0, 1, 3}, {0, 2, 3}, {0, 2, 4}, {1, 3, 5},
			{2, 4, 6}, {3, 5, 6}, {4, 6, 7}, {5, 6, 7},
		},
	},
	{
		name: "T",
		points: []mgl32.Vec2{
			{.125, .5}, {-.125, .5}, {.875, .5}, {-.875, .5},
			{.875, .75}, {-.875, .75}, {-.125, -.5}, {.125, -.75},
		},
		colors: []mgl32.Vec3{
			red, red, magenta, black,
			magenta, black, yellow, yellow,
		},
		triangles: [][3]uint32{
			{0, 1, 4}, {0, 2, 4}, {0, 1, 7}, {1, 3, 5},
			{1, 4, 5}, {1, 6, 7},
		},
	},
	{
		name: "II",
		points: []mgl32.Vec2{
			{-.875, .75}, {-.875, .5}, {-.875, -.5}, {-.875, -.75},
			{-.375, .5}, {-.375, -.5}, {-.125, .5}, {-.125, -.5},
			{.125, .5}, {.125, -.5}, {.375, .5}, {.375, -.5},
			{.875, .75}, {.875, .5}, {.875, -.5}, {.875, -.75},
		},
		colors: []mgl32.Vec3{
			black, black, cyan, cyan,
			red, cyan, red, yellow,
			cyan, yellow, cyan, yellow,
			magenta, magenta, yellow, yellow,
		},
		triangles: [][3]uint32{
			{0, 1, 4}, {0, 4, 6}, {0, 6, 12}, {2, 3, 5},
			{3, 5, 7}, {3, 7, 9}, {3, 9, 15}, {4, 5, 7},
			{4, 6, 7}, {6, 8, 12}, {8, 9, 10}, {8, 10, 12},
			{9, 10, 11}, {9, 11, 15}, {10, 12, 13}, {11, 14, 15},
		},
	},
}

// Letters returns flat meshes for J, D, T and II in the z=0 plane, each
// spanning [-0.875, 0.875] horizontally, keyed by name.
func Letters() map[string]*models.Mesh {
	out := make(map[string]*models.Mesh, len(letters))
	for _, l := range letters {
		m := &models.Mesh{Name: l.name, Primitive: models.Triangles}
		for i, p := range l.points {
			m.Vertices = append(m.Vertices, models.Vertex{
				Position: mgl32.Vec3{p.X(), p.Y(), 0},
				Color:    l.colors[i],
				Normal:   mgl32.Vec3{0, 0, 1},
				UV:       mgl32.Vec2{(p.X() + 1) / 2, (p.Y() + 1) / 2},
			})
		}
		for _, t := range l.triangles {
			m.Indices = append(m.Indices, t[0], t[1], t[2])
		}
		out[l.name] = m
	}
	return out
}
