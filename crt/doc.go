// Package crt implements a CRT-style post-processing effect for 2D scenes:
// barrel distortion, scanlines, sync wobble, vignette, desaturation, gamma,
// a phosphor mask and static noise.
//
// The package does not render anything itself. A host engine supplies the
// Scene, Renderer and Camera collaborators; a Controller attaches the
// effect to every camera of a scene and keeps each Effect instance's
// uniforms in sync with the caller's Options. Package ebitenhost provides a
// host built on Ebitengine.
//
// Every Controller operation is a no-op on a renderer that cannot run
// shaders, so callers never need to branch on backend capability:
//
//	fx := crt.NewController(scene)
//	fx.Enable(&crt.Options{Curvature: crt.Float(0.3)})
//	fx.Update(crt.PresetByID("arcade").Options)
//	fx.Toggle(nil)
package crt
