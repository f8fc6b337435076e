// Package scene draws every registered entity as flat-colored triangles.
package scene

import (
	"path/filepath"

	"duckhunt/internal/entity"
	"duckhunt/internal/graphics"
	renderer "duckhunt/internal/graphics/renderer"
	"duckhunt/internal/m4"
	"duckhunt/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	ShadersDir = "assets/shaders/scene"
)

var (
	VertShader = filepath.Join(ShadersDir, "scene.vert")
	FragShader = filepath.Join(ShadersDir, "scene.frag")
)

// gpuMesh is the GPU copy of one entity's buffers.
type gpuMesh struct {
	vao, posVBO, colVBO uint32
	count               int32
	revision            uint64
	frame               uint64
}

// Scene implements entity rendering
type Scene struct {
	shader *graphics.Shader
	meshes map[entity.ID]*gpuMesh
	frame  uint64
}

// NewScene creates a new scene renderable
func NewScene() *Scene {
	return &Scene{meshes: make(map[entity.ID]*gpuMesh)}
}

// Init compiles the scene shader
func (s *Scene) Init() error {
	var err error
	s.shader, err = graphics.NewShader(VertShader, FragShader)
	return err
}

// Render draws each entity with u_matrix = world × view × projection
func (s *Scene) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderScene")()
	s.frame++

	s.shader.Use()
	viewProj := m4.Multiply(ctx.View, ctx.Proj)

	for _, e := range ctx.World.Entities() {
		g := s.upload(e)
		if g.count == 0 {
			continue
		}
		s.shader.SetMatrix4("u_matrix", m4.Multiply(e.WorldMatrix(), viewProj))
		gl.BindVertexArray(g.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, g.count)
	}
	gl.BindVertexArray(0)

	s.evict()
}

// upload creates or refreshes the GPU copy of e. Vertices never change
// after construction; colors are re-sent when the mesh revision moves.
func (s *Scene) upload(e *entity.Entity) *gpuMesh {
	g, ok := s.meshes[e.ID]
	if !ok {
		g = &gpuMesh{}
		gl.GenVertexArrays(1, &g.vao)
		gl.BindVertexArray(g.vao)

		verts := e.VertexBuffer()
		gl.GenBuffers(1, &g.posVBO)
		gl.BindBuffer(gl.ARRAY_BUFFER, g.posVBO)
		if len(verts) > 0 {
			gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
		}
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

		gl.GenBuffers(1, &g.colVBO)
		gl.BindBuffer(gl.ARRAY_BUFFER, g.colVBO)
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointerWithOffset(1, 3, gl.UNSIGNED_BYTE, true, 3, 0)

		g.count = int32(len(verts) / 3)
		s.meshes[e.ID] = g
	}

	if e.Mesh != nil && (!ok || g.revision != e.Mesh.Revision()) {
		colors := e.ColorBuffer()
		gl.BindBuffer(gl.ARRAY_BUFFER, g.colVBO)
		if len(colors) > 0 {
			gl.BufferData(gl.ARRAY_BUFFER, len(colors), gl.Ptr(colors), gl.DYNAMIC_DRAW)
		}
		g.revision = e.Mesh.Revision()
	}

	g.frame = s.frame
	return g
}

// evict frees GPU copies of entities that were not drawn this frame.
func (s *Scene) evict() {
	for id, g := range s.meshes {
		if g.frame != s.frame {
			g.delete()
			delete(s.meshes, id)
		}
	}
}

func (g *gpuMesh) delete() {
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.posVBO)
	gl.DeleteBuffers(1, &g.colVBO)
}

// Dispose cleans up OpenGL resources
func (s *Scene) Dispose() {
	for id, g := range s.meshes {
		g.delete()
		delete(s.meshes, id)
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}
