// Package orbgl is a small software 3D engine for the viewer.
//
// It renders triangle meshes into a caller-provided Target with a depth
// buffer and per-vertex (Gouraud) lighting, and provides the supporting
// interaction math: an orbit camera controller, screen-space ray
// generation with analytic ray/sphere intersection for picking, and
// centripetal Catmull-Rom curve sampling.
//
// Pipeline (fixed):
//
//	Scene → Transform → Lighting → Projection → Rasterization → Frame output.
//
// Overlay primitives (polylines, markers) are drawn after the mesh pass
// and are depth-tested against it, so geometry hugging a surface can be
// occluded by it. The engine allocates once and reuses its buffers in
// the render hot path.
package orbgl
