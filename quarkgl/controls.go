package quarkgl

// OrbitController places a camera on a sphere around Target.
type OrbitController struct {
	Target Vec3
	Yaw    float32
	Pitch  float32
	Radius float32

	MinRadius float32
	MaxRadius float32
}

// Apply moves cam onto the orbit and aims it at Target.
func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.Radius
	if r == 0 {
		r = 3
	}
	m := Mat4Mul(Mat4RotateY(c.Yaw), Mat4RotateX(c.Pitch))
	p := Mat4MulPoint(m, V3(0, 0, r))

	cam.Position = c.Target.Add(p)
	cam.Target = c.Target
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}

// Rotate adds to yaw and pitch; pitch stays short of the poles.
func (c *OrbitController) Rotate(deltaYaw, deltaPitch float32) {
	const limit = 1.5
	c.Yaw += deltaYaw
	c.Pitch = clampF32(c.Pitch+deltaPitch, -limit, limit)
}

// Zoom changes the radius within [MinRadius, MaxRadius] where set.
func (c *OrbitController) Zoom(delta float32) {
	c.Radius += delta
	if c.MinRadius != 0 && c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius != 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}
