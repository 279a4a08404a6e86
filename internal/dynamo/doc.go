// Package dynamo provides the fixed-step integration core shared by the
// physlab demos.
//
// The package defines the vocabulary used by every numerical demo:
//
//   - [State]: vector representing system state
//   - [RHS]: right-hand-side function dy/dt = f(t, y)
//   - [System]: ODE system with bound physical parameters
//   - [Stepper]: single-step numerical integrator
//   - [Simulator]: runs a system over a time grid
//
// # Example
//
//	osc := physics.NewSpringOscillator(1, 10, 0.5)
//	grid := dynamo.LinearGrid(0, 20, 500)
//	sim := dynamo.New(osc, integrators.NewRK4())
//	result, err := sim.Run(ctx, dynamo.State{1, 0}, grid)
//
// # Time grids
//
// [Integrate] derives the step from the first two grid points and uses it
// for every step. Non-uniform grids are accepted silently; use
// [CheckUniform] or [Config.StrictGrid] to reject them.
package dynamo
