package loader

import (
	"cogentcore.org/core/math32"

	"github.com/Carmen-Shannon/oxy-rwx/common"
	"github.com/Carmen-Shannon/oxy-rwx/engine/model"
)

// rwxBuildMeshes regroups the flat decode output into one GPU-layout mesh per material.
// Materials with no triangles produce no mesh. Mesh order follows material order.
//
// Parameters:
//   - result: the decoded flat geometry
//
// Returns:
//   - []model.ImportedMesh: the meshes
func rwxBuildMeshes(result *RWXResult) []model.ImportedMesh {
	byMaterial := make([][]model.Triangle, len(result.Materials))
	for _, tri := range result.Triangles {
		byMaterial[tri.MaterialIndex] = append(byMaterial[tri.MaterialIndex], tri)
	}

	var meshes []model.ImportedMesh
	for i, tris := range byMaterial {
		if len(tris) == 0 {
			continue
		}
		mat := &result.Materials[i]
		var mesh model.ImportedMesh
		if mat.LightSampling == common.LightSamplingVertex {
			mesh = buildSmoothMesh(result, tris, mat)
		} else {
			mesh = buildFlatMesh(result, tris, mat)
		}
		mesh.Name = mat.Name
		mesh.MaterialIndex = i
		if mat.Texture != nil {
			generateTangents(mesh.Vertices, mesh.Indices)
		}

		positions := make([][3]float32, len(mesh.Vertices))
		for j := range mesh.Vertices {
			positions[j] = mesh.Vertices[j].Position
		}
		mesh.BoundingMin, mesh.BoundingMax = common.BoundingBox(positions)
		meshes = append(meshes, mesh)
	}
	return meshes
}

// buildFlatMesh gives every triangle its own three vertices carrying the face normal.
func buildFlatMesh(result *RWXResult, tris []model.Triangle, mat *common.ImportedMaterial) model.ImportedMesh {
	color := materialColor(mat)
	mesh := model.ImportedMesh{
		Vertices: make([]model.GPUVertex, 0, len(tris)*3),
		Indices:  make([]uint32, 0, len(tris)*3),
	}
	for _, tri := range tris {
		p0 := common.ArrayToVec3(result.Vertices[tri.Indices[0]])
		p1 := common.ArrayToVec3(result.Vertices[tri.Indices[1]])
		p2 := common.ArrayToVec3(result.Vertices[tri.Indices[2]])
		normal := faceNormal(p0, p1, p2)
		if normal.Length() < 1e-12 {
			normal = math32.Vec3(0, 1, 0)
		} else {
			normal = normal.Normal()
		}
		for _, idx := range tri.Indices {
			mesh.Indices = append(mesh.Indices, uint32(len(mesh.Vertices)))
			mesh.Vertices = append(mesh.Vertices, model.GPUVertex{
				Position: result.Vertices[idx],
				Normal:   common.Vec3ToArray(normal),
				TexCoord: result.UVs[idx],
				Color:    color,
			})
		}
	}
	return mesh
}

// buildSmoothMesh shares vertices between the triangles of a material and
// averages area-weighted face normals at each shared vertex.
func buildSmoothMesh(result *RWXResult, tris []model.Triangle, mat *common.ImportedMaterial) model.ImportedMesh {
	color := materialColor(mat)
	remap := make(map[uint32]uint32)
	var mesh model.ImportedMesh
	for _, tri := range tris {
		for _, idx := range tri.Indices {
			local, ok := remap[idx]
			if !ok {
				local = uint32(len(mesh.Vertices))
				remap[idx] = local
				mesh.Vertices = append(mesh.Vertices, model.GPUVertex{
					Position: result.Vertices[idx],
					TexCoord: result.UVs[idx],
					Color:    color,
				})
			}
			mesh.Indices = append(mesh.Indices, local)
		}
	}
	generateNormals(mesh.Vertices, mesh.Indices)
	return mesh
}

func materialColor(mat *common.ImportedMaterial) [4]float32 {
	return [4]float32{mat.Color[0], mat.Color[1], mat.Color[2], mat.Opacity}
}

// faceNormal returns the unnormalized normal of triangle p0 p1 p2, with length twice its area.
func faceNormal(p0, p1, p2 math32.Vector3) math32.Vector3 {
	return p1.Sub(p0).Cross(p2.Sub(p0))
}

// generateNormals computes smooth per-vertex normals by accumulating area-weighted face
// normals from every triangle that references each vertex.
//
// Parameters:
//   - vertices: the vertex slice to write normal data into
//   - indices: the triangle index buffer (must be a multiple of 3)
func generateNormals(vertices []model.GPUVertex, indices []uint32) {
	accum := make([]math32.Vector3, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		n := faceNormal(
			common.ArrayToVec3(vertices[i0].Position),
			common.ArrayToVec3(vertices[i1].Position),
			common.ArrayToVec3(vertices[i2].Position),
		)
		for _, idx := range []uint32{i0, i1, i2} {
			accum[idx] = accum[idx].Add(n)
		}
	}

	for i := range vertices {
		if accum[i].Length() < 1e-6 {
			vertices[i].Normal = [3]float32{0, 1, 0}
			continue
		}
		vertices[i].Normal = common.Vec3ToArray(accum[i].Normal())
	}
}

// generateTangents computes per-vertex tangents from UV gradients, orthonormalized
// against the vertex normal. W stores the bitangent handedness (±1).
//
// Parameters:
//   - vertices: the vertex slice to write tangent data into, normals already set
//   - indices: the triangle index buffer (must be a multiple of 3)
func generateTangents(vertices []model.GPUVertex, indices []uint32) {
	tan := make([]math32.Vector3, len(vertices))
	btan := make([]math32.Vector3, len(vertices))

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		p0 := common.ArrayToVec3(vertices[i0].Position)
		edge1 := common.ArrayToVec3(vertices[i1].Position).Sub(p0)
		edge2 := common.ArrayToVec3(vertices[i2].Position).Sub(p0)

		uv0, uv1, uv2 := vertices[i0].TexCoord, vertices[i1].TexCoord, vertices[i2].TexCoord
		du1, dv1 := uv1[0]-uv0[0], uv1[1]-uv0[1]
		du2, dv2 := uv2[0]-uv0[0], uv2[1]-uv0[1]

		det := du1*dv2 - dv1*du2
		if det == 0 {
			continue
		}
		inv := 1 / det
		t := edge1.MulScalar(dv2).Sub(edge2.MulScalar(dv1)).MulScalar(inv)
		b := edge2.MulScalar(du1).Sub(edge1.MulScalar(du2)).MulScalar(inv)

		for _, idx := range []uint32{i0, i1, i2} {
			tan[idx] = tan[idx].Add(t)
			btan[idx] = btan[idx].Add(b)
		}
	}

	for i := range vertices {
		normal := common.ArrayToVec3(vertices[i].Normal)
		ortho := tan[i].Sub(normal.MulScalar(normal.Dot(tan[i])))
		if ortho.Length() < 1e-6 {
			vertices[i].Tangent = [4]float32{1, 0, 0, 1}
			continue
		}
		ortho = ortho.Normal()
		w := float32(1)
		if normal.Cross(ortho).Dot(btan[i]) < 0 {
			w = -1
		}
		vertices[i].Tangent = [4]float32{ortho.X, ortho.Y, ortho.Z, w}
	}
}
