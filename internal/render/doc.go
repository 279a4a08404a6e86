// Package render turns demo results into gonum/plot figures and writes
// them as PNG, SVG or PDF files, or as animated GIFs.
//
// A [Figure] is anything that can draw itself onto a canvas: a single
// plot, a vertical stack of panels sharing a time axis, or a plot with a
// color bar. [Save] picks the output format from the file extension.
package render
