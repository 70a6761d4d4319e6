// Package viz is the interactive terminal front end: a Bubble Tea program
// that drives a world.World once per tick and renders the bodies on a
// Braille canvas.
//
// # Key Bindings
//
//	Space - Spawn a ball
//	C     - Clear all balls
//	P     - Pause/Resume
//	Tab   - Cycle parameter
//	Up/K  - Increase parameter (+5%)
//	Down/J - Decrease parameter (-5%)
//	M     - Cycle material
//	E     - Cycle environment
//	Q     - Quit
//
// The step duration is the wall-clock time between ticks and is passed to
// the physics unclamped.
package viz
