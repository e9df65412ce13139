package quarkgl

// Material is a minimal surface description.
type Material struct {
	BaseColor Color
	// Metalness tints highlights with the base color and dims diffuse light.
	Metalness float32
	// Roughness widens and weakens highlights. 1 (or unset) means none.
	Roughness float32
}

// AmbientLight lights every surface uniformly.
type AmbientLight struct {
	Color     Color
	Intensity float32
}

// SpotLight is a cone light at Position aimed at Target.
type SpotLight struct {
	Position  Vec3
	Target    Vec3
	Color     Color
	Intensity float32
	Angle     float32 // cone half-angle in radians
	Penumbra  float32 // 0..1 share of the cone that fades out
	Enabled   bool
}

// Camera is a perspective camera.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	FOVYRad float32
	Near    float32
	Far     float32
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect float32) Mat4 {
	fov := c.FOVYRad
	if fov == 0 {
		fov = 1
	}
	return Mat4Perspective(fov, aspect, c.Near, c.Far)
}

// Vertex is a mesh vertex in object space.
type Vertex struct {
	Pos Vec3
}

// Mesh is a triangle mesh placed in the scene by its node fields.
type Mesh struct {
	Enabled bool

	Vertices []Vertex
	Indices  []uint16 // triangle list

	Position Vec3
	Rotation Vec3 // Euler XYZ, radians
	Scale    Vec3 // zero means 1,1,1

	Material Material
}

// Transform composes the node fields into a model matrix.
func (m *Mesh) Transform() Mat4 {
	return Mat4Compose(m.Position, m.Rotation, m.Scale)
}

// Scene is a collection of objects to render.
type Scene struct {
	Camera  Camera
	Ambient AmbientLight

	meshes []Mesh
	spots  []SpotLight
}

// NewScene returns an empty scene with a camera at z=3 looking at the origin.
func NewScene() *Scene {
	return &Scene{
		Camera: Camera{
			Position: V3(0, 0, 3),
			Up:       V3(0, 1, 0),
			FOVYRad:  1,
			Near:     0.05,
			Far:      100,
		},
	}
}

// AddMesh adds a mesh and returns its id.
func (s *Scene) AddMesh(m Mesh) int {
	if m.Material.BaseColor == (Color{}) {
		m.Material.BaseColor = RGB(0xCC, 0xCC, 0xCC)
	}
	if m.Material.Roughness == 0 {
		m.Material.Roughness = 1
	}
	m.Enabled = true
	s.meshes = append(s.meshes, m)
	return len(s.meshes) - 1
}

// Mesh returns the mesh node for id, or nil.
func (s *Scene) Mesh(id int) *Mesh {
	if s == nil || id < 0 || id >= len(s.meshes) {
		return nil
	}
	return &s.meshes[id]
}

// AddSpotLight adds an enabled spot light and returns its id.
func (s *Scene) AddSpotLight(l SpotLight) int {
	l.Enabled = true
	s.spots = append(s.spots, l)
	return len(s.spots) - 1
}

// SpotLight returns the light for id, or nil.
func (s *Scene) SpotLight(id int) *SpotLight {
	if s == nil || id < 0 || id >= len(s.spots) {
		return nil
	}
	return &s.spots[id]
}

// Meshes reports the number of meshes.
func (s *Scene) Meshes() int { return len(s.meshes) }

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	for i := range s.meshes {
		if !s.meshes[i].Enabled {
			continue
		}
		fn(&s.meshes[i])
	}
}
