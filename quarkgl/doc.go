// Package quarkgl is a small software 3D engine that draws into a caller-provided
// pixel Target.
//
// A Scene holds a camera, an ambient light, spot lights and meshes. Meshes are
// scene-graph nodes: their Position, Rotation and Scale are plain fields that
// the caller mutates between frames and the renderer composes on every Render.
//
// Pipeline (fixed):
//
//	Scene → Transform → Lighting → Projection → Rasterization → Target.
//
// Shading is flat per triangle. Spot lights follow the usual cone model: full
// strength inside angle*(1-penumbra), fading to zero at angle.
package quarkgl
