// Package physics provides the mechanical models behind the demos.
//
//   - [SpringOscillator]: damped mass on a spring, a [dynamo.System] and
//     [dynamo.Hamiltonian]
//   - [Projectile]: closed-form ballistic flight
//   - [Loop]: body detaching from a vertical circular track
//
// # Energy Conservation
//
// With zero damping the oscillator's total energy is conserved, which makes
// it the reference check for the RK4 integrator:
//
//	osc := physics.NewSpringOscillator(1, 10, 0)
//	rows, _ := integrators.Solve(osc.Derive, dynamo.State{1, 0}, grid)
//	drift := osc.EnergySeries(rows).MaxDrift()
package physics
