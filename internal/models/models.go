package models

import (
	"time"
	"unsafe"

	"github.com/ThatOtherAndrew/portalfx/internal/config"
	"github.com/ThatOtherAndrew/portalfx/internal/input"
	"github.com/ThatOtherAndrew/portalfx/internal/particle"
	"github.com/ThatOtherAndrew/portalfx/internal/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the single vertex record uploaded for every mesh. Fields a mesh
// does not use stay zero.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Attribute names one field of a GPU record and where it lives inside it.
type Attribute struct {
	Name       string
	Components int32
	Offset     uintptr
}

// Layout describes a record type to the renderer.
type Layout struct {
	Stride     int32
	Attributes []Attribute
}

var VertexLayout = Layout{
	Stride: int32(unsafe.Sizeof(Vertex{})),
	Attributes: []Attribute{
		{Name: "point", Components: 3, Offset: unsafe.Offsetof(Vertex{}.Position)},
		{Name: "color", Components: 3, Offset: unsafe.Offsetof(Vertex{}.Color)},
		{Name: "normal", Components: 3, Offset: unsafe.Offsetof(Vertex{}.Normal)},
		{Name: "uv", Components: 2, Offset: unsafe.Offsetof(Vertex{}.UV)},
	},
}

// Sprite is one particle as the sprite program consumes it.
type Sprite struct {
	Position mgl32.Vec3
	Color    mgl32.Vec4
	Size     float32
}

var SpriteLayout = Layout{
	Stride: int32(unsafe.Sizeof(Sprite{})),
	Attributes: []Attribute{
		{Name: "point", Components: 3, Offset: unsafe.Offsetof(Sprite{}.Position)},
		{Name: "color", Components: 4, Offset: unsafe.Offsetof(Sprite{}.Color)},
		{Name: "size", Components: 1, Offset: unsafe.Offsetof(Sprite{}.Size)},
	},
}

type Primitive int

const (
	Triangles Primitive = iota
	TriangleStrip
	Points
)

type Mesh struct {
	Name      string
	Vertices  []Vertex
	Indices   []uint32
	Primitive Primitive
}

// Program, Buffer and Texture are opaque renderer handles.
type Program uint32

type Buffer struct {
	VAO, VBO, EBO uint32
	Count         int32
	Indexed       bool
	Primitive     Primitive
}

type Texture uint32

// Uniforms is everything a draw call can set on the mesh program.
type Uniforms struct {
	ModelView    mgl32.Mat4
	Persp        mgl32.Mat4
	Color        mgl32.Vec4
	UseFlatColor bool
	UseNormal    bool
	Faceted      bool
	UseTexture   bool
	Texture      Texture
	UVScale      float32
	Lights       []mgl32.Vec3
	Resolution   mgl32.Vec2
	Time         float32
}

type App struct {
	StartTime  time.Time
	Settings   *config.Settings
	State      *scene.State
	Controller *input.Controller
	Pools      []*particle.Pool
}
