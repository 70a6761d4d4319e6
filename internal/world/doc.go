// Package world owns the body store of one simulation session and drives it
// frame by frame.
//
//   - [World]: the body store (Spawn, Step, Bodies, Clear)
//   - [Simulator]: headless fixed-dt driver with metric and observer hooks
//
// A World is not safe for concurrent use. Independent sessions each get their
// own World.
package world
