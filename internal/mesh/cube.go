// Package mesh builds the hardcoded meshes the demos draw.
package mesh

import (
	"math"

	"github.com/ThatOtherAndrew/portalfx/internal/models"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	cubeCorners = [8]mgl32.Vec3{
		{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
		{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
	}
	cubeColors = [8]mgl32.Vec3{
		{1, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 1, 0},
		{1, 0, 1}, {1, 0, 1}, {0, 1, 1}, {0, 1, 1},
	}
	cubeNormals = [6]mgl32.Vec3{
		{-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0}, {0, 0, -1}, {0, 0, 1},
	}
	// counter-clockwise corner indices per face, in cubeNormals order
	cubeFaces = [6][4]int{
		{0, 1, 3, 2},
		{4, 6, 7, 5},
		{0, 4, 5, 1},
		{2, 3, 7, 6},
		{0, 2, 6, 4},
		{1, 5, 7, 3},
	}
	quadUVs = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
)

// Cube is the 2x2x2 cube centred on the origin, with corners duplicated per
// face so each face has its own normal and texture coordinates.
func Cube() *models.Mesh {
	m := &models.Mesh{Name: "cube", Primitive: models.Triangles}
	for f, face := range cubeFaces {
		base := uint32(len(m.Vertices))
		for k, c := range face {
			m.Vertices = append(m.Vertices, models.Vertex{
				Position: cubeCorners[c],
				Color:    cubeColors[c],
				Normal:   cubeNormals[f],
				UV:       quadUVs[k],
			})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// Quad covers clip space, for full-screen pattern programs.
func Quad() *models.Mesh {
	m := &models.Mesh{Name: "quad", Primitive: models.TriangleStrip}
	for _, p := range [4]mgl32.Vec2{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		m.Vertices = append(m.Vertices, models.Vertex{
			Position: mgl32.Vec3{p.X(), p.Y(), 0},
			Normal:   mgl32.Vec3{0, 0, 1},
			UV:       mgl32.Vec2{(p.X() + 1) / 2, (p.Y() + 1) / 2},
		})
	}
	return m
}

// Sphere is a unit UV sphere. UVs wrap once around in u and pole to pole in
// v; the seam column is duplicated.
func Sphere(stacks, slices int) *models.Mesh {
	stacks = max(stacks, 2)
	slices = max(slices, 3)
	m := &models.Mesh{Name: "sphere", Primitive: models.Triangles}
	for i := 0; i <= stacks; i++ {
		v := float64(i) / float64(stacks)
		phi := v * math.Pi
		for j := 0; j <= slices; j++ {
			u := float64(j) / float64(slices)
			theta := u * 2 * math.Pi
			n := mgl32.Vec3{
				float32(math.Sin(phi) * math.Cos(theta)),
				float32(math.Cos(phi)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			m.Vertices = append(m.Vertices, models.Vertex{
				Position: n,
				Color:    mgl32.Vec3{1, 1, 1},
				Normal:   n,
				UV:       mgl32.Vec2{float32(u), float32(1 - v)},
			})
		}
	}
	row := uint32(slices + 1)
	for i := range uint32(stacks) {
		for j := range uint32(slices) {
			a := i*row + j
			b := a + row
			m.Indices = append(m.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return m
}

// Octahedron is a unit diamond, used for tear drops.
func Octahedron() *models.Mesh {
	tips := [6]mgl32.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	faces := [8][3]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}
	m := &models.Mesh{Name: "octahedron", Primitive: models.Triangles}
	for _, f := range faces {
		a, b, c := tips[f[0]], tips[f[1]], tips[f[2]]
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		base := uint32(len(m.Vertices))
		for _, p := range [3]mgl32.Vec3{a, b, c} {
			m.Vertices = append(m.Vertices, models.Vertex{Position: p, Color: mgl32.Vec3{1, 1, 1}, Normal: n})
		}
		m.Indices = append(m.Indices, base, base+1, base+2)
	}
	return m
}
