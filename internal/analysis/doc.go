// Package analysis provides signal analysis for integrated trajectories.
//
// [PowerSpectrum] and [DominantFrequency] estimate the ringing frequency
// of an oscillator from its sampled position, for comparison with the
// closed-form natural frequency.
package analysis
