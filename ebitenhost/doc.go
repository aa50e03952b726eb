// Package ebitenhost runs crt effects on Ebitengine.
//
// A Renderer owns the effect registry and compiles each registered Kage
// program once, on first draw. Cameras carry the attached effect
// instances and chain them with DrawRectShader, feeding each instance's
// uniforms straight from what the effect pushed. A Scene ties cameras to a
// renderer and turns ebiten's Layout calls into resize events.
package ebitenhost
