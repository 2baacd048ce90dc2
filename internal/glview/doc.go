// Package glview implements render.Backend with OpenGL 4.1 core and GLFW.
//
// All methods must be called from the main OS thread; callers lock it with
// runtime.LockOSThread in an init function.
package glview
