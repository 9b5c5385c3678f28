// Package physics steps a single ball inside a rectangular viewport.
//
// [Move] advances a [Body] by one explicit Euler step per animation frame:
// gravity, then acceleration, then position. A bound hit reverses and
// damps the velocity component by the restitution coefficient and clamps
// the ball back inside. The floor also applies horizontal friction.
//
//	b := physics.NewBody(view)
//	hit := physics.Move(&b, physics.DefaultWorld(), view)
//	if hit.Has(physics.Floor) {
//	    // bounced
//	}
//
// Units are pixels and frames. Nothing here depends on wall-clock time.
package physics
