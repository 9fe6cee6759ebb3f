// Package glsl embeds the shader programs the drawer compiles at startup.
package glsl

import (
	_ "embed"
)

//go:embed mesh.vert.glsl
var MeshVertex string

//go:embed mesh.frag.glsl
var MeshFragment string

//go:embed sprite.vert.glsl
var SpriteVertex string

//go:embed sprite.frag.glsl
var SpriteFragment string

//go:embed pattern.vert.glsl
var PatternVertex string

//go:embed pattern.frag.glsl
var PatternFragment string

type Program struct {
	Name     string
	Vertex   string
	Fragment string
}

// Programs lists every built-in program by the name draw calls refer to.
func Programs() []Program {
	return []Program{
		{Name: "mesh", Vertex: MeshVertex, Fragment: MeshFragment},
		{Name: "sprite", Vertex: SpriteVertex, Fragment: SpriteFragment},
		{Name: "pattern", Vertex: PatternVertex, Fragment: PatternFragment},
	}
}
