package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/stlview/internal/scene"
)

// bakedToRaylibMesh converts baked triangles to a Raylib mesh with the lighting in the vertex colors
func bakedToRaylibMesh(tris []scene.BakedTriangle) rl.Mesh {
	triangleCount := len(tris)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	// Allocate arrays
	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	idx := 0
	for _, t := range tris {
		normal := t.CalculateNormal()
		for i, v := range [3]rl.Vector3{toRaylib(t.V1), toRaylib(t.V2), toRaylib(t.V3)} {
			vertices[idx*3+0] = v.X
			vertices[idx*3+1] = v.Y
			vertices[idx*3+2] = v.Z
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			texcoords[idx*2+0] = float32(i & 1)
			texcoords[idx*2+1] = float32(i >> 1)
			colors[idx*4+0] = t.Color.R
			colors[idx*4+1] = t.Color.G
			colors[idx*4+2] = t.Color.B
			colors[idx*4+3] = 255
			idx++
		}
	}

	// Assign mesh data
	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Texcoords = &texcoords[0]
		mesh.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&mesh, false)

	return mesh
}

// meshFor returns the GPU mesh of obj, rebuilding it when the object changed
func (app *App) meshFor(obj *scene.Object) *meshEntry {
	entry, ok := app.Render.meshes[obj]
	if ok && entry.revision == obj.Revision() {
		return entry
	}
	if ok {
		app.unloadEntry(entry)
	}

	entry = &meshEntry{revision: obj.Revision()}
	m := obj.Material()
	if m.Wireframe {
		entry.edges = obj.Edges()
		entry.color = m.Color
	} else if baked := obj.Bake(app.Scene.Lights); len(baked) > 0 {
		entry.mesh = bakedToRaylibMesh(baked)
		entry.hasMesh = true
	}
	app.Render.meshes[obj] = entry
	return entry
}

func (app *App) unloadEntry(entry *meshEntry) {
	if entry.hasMesh {
		rl.UnloadMesh(&entry.mesh)
		entry.hasMesh = false
	}
}

// sweepMeshes releases meshes of objects that left the scene
func (app *App) sweepMeshes() {
	live := make(map[*scene.Object]bool)
	for _, obj := range app.Scene.Objects() {
		live[obj] = true
	}
	for obj, entry := range app.Render.meshes {
		if !live[obj] {
			app.unloadEntry(entry)
			delete(app.Render.meshes, obj)
		}
	}
}

// releaseMeshes unloads every cached mesh
func (app *App) releaseMeshes() {
	for obj, entry := range app.Render.meshes {
		app.unloadEntry(entry)
		delete(app.Render.meshes, obj)
	}
}

// drawScene draws the scene objects and grids in 3D mode
func (app *App) drawScene() {
	app.sweepMeshes()

	for _, obj := range app.Scene.Objects() {
		if !obj.Visible() {
			continue
		}
		entry := app.meshFor(obj)
		if entry.hasMesh {
			rl.DrawMesh(entry.mesh, app.Render.material, rl.MatrixIdentity())
		}
		if entry.edges != nil {
			drawWireframe(entry)
		}
	}

	for _, g := range app.Scene.Grids() {
		drawGrid(g)
	}
}
