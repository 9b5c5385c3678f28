// Package viz is the terminal frontend.
//
// A [Canvas] is a braille-dot [render.Surface]: each terminal cell holds a
// 2x4 block of dots, and the ball's translucent fill is drawn with an
// ordered dither. [Model] hosts a session under bubbletea, driving frames
// from tea.Tick and turning mouse messages into queued pointer events.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset the ball to the center
//	T     - Cycle color themes
//	Q     - Quit
package viz
