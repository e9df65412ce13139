package quarkgl

import "math"

// SphereMesh builds a UV sphere centered on the origin.
func SphereMesh(radius float32, widthSeg, heightSeg int) Mesh {
	widthSeg = max(widthSeg, 3)
	heightSeg = max(heightSeg, 2)

	verts := make([]Vertex, 0, (widthSeg+1)*(heightSeg+1))
	for y := 0; y <= heightSeg; y++ {
		v := float64(y) / float64(heightSeg)
		theta := v * math.Pi
		st, ct := math.Sincos(theta)
		for x := 0; x <= widthSeg; x++ {
			u := float64(x) / float64(widthSeg)
			phi := u * 2 * math.Pi
			sp, cp := math.Sincos(phi)
			verts = append(verts, Vertex{Pos: V3(
				-radius*float32(cp*st),
				radius*float32(ct),
				radius*float32(sp*st),
			)})
		}
	}

	row := widthSeg + 1
	indices := make([]uint16, 0, widthSeg*heightSeg*6)
	for y := 0; y < heightSeg; y++ {
		for x := 0; x < widthSeg; x++ {
			a := uint16(y*row + x + 1)
			b := uint16(y*row + x)
			c := uint16((y+1)*row + x)
			d := uint16((y+1)*row + x + 1)
			// The pole rows collapse to points; skip their degenerate halves.
			if y != 0 {
				indices = append(indices, a, b, d)
			}
			if y != heightSeg-1 {
				indices = append(indices, b, c, d)
			}
		}
	}
	return Mesh{Vertices: verts, Indices: indices}
}

// CylinderMesh builds a capped cylinder of the given height centered on the
// origin along Y.
func CylinderMesh(radiusTop, radiusBottom, height float32, radialSeg int) Mesh {
	radialSeg = max(radialSeg, 3)
	half := height / 2

	verts := make([]Vertex, 0, radialSeg*2+2)
	for i := 0; i < radialSeg; i++ {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(radialSeg))
		verts = append(verts,
			Vertex{Pos: V3(radiusTop*float32(s), half, radiusTop*float32(c))},
			Vertex{Pos: V3(radiusBottom*float32(s), -half, radiusBottom*float32(c))},
		)
	}
	top := uint16(len(verts))
	verts = append(verts, Vertex{Pos: V3(0, half, 0)})
	bottom := uint16(len(verts))
	verts = append(verts, Vertex{Pos: V3(0, -half, 0)})

	indices := make([]uint16, 0, radialSeg*12)
	for i := 0; i < radialSeg; i++ {
		j := (i + 1) % radialSeg
		t0, b0 := uint16(i*2), uint16(i*2+1)
		t1, b1 := uint16(j*2), uint16(j*2+1)
		indices = append(indices,
			t0, b0, t1,
			t1, b0, b1,
			top, t0, t1,
			bottom, b1, b0,
		)
	}
	return Mesh{Vertices: verts, Indices: indices}
}
