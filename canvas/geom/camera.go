package geom

// Camera is the viewpoint used by ProjectTo2D. Only its z coordinate takes
// part in the projection.
type Camera struct {
	Position Vector3
}

// NewCamera returns a camera placed at pos.
func NewCamera(pos Vector3) *Camera { return &Camera{Position: pos} }

// ProjectTo2D maps v onto the z = 0 drawing plane as seen from cam.
//
// A nil camera, or a point already on z = 0, projects orthographically: x and
// y are kept and z is dropped.
func (v Vector3) ProjectTo2D(cam *Camera) Vector3 {
	zd := 1.0
	if v.z != 0 && cam != nil {
		zd = float64(v.z)/float64(v.z-cam.Position.z) + 1
	}
	return Vector3{
		x: truncate(float64(v.x) / zd),
		y: truncate(float64(v.y) / zd),
	}
}

// Projectable reports whether ProjectTo2D(cam) is free of a division by zero.
//
// It is false when v sits level with the camera (z == camera z, which
// collapses onto the origin) or halfway to it (2z == camera z, which saturates).
func (v Vector3) Projectable(cam *Camera) bool {
	if v.z == 0 || cam == nil {
		return true
	}
	cz := cam.Position.z
	return v.z != cz && 2*v.z != cz
}
