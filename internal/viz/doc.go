// Package viz renders figures in the terminal.
//
// [Canvas] is a Braille pixel canvas with 2x4 sub-pixels per cell;
// [Canvas.PlotXY] scales a polyline onto it. [EnergyChart] draws the
// oscillator energies with asciigraph, and the lipgloss styles here are
// shared by the command summaries and the animation.
package viz
