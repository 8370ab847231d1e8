// Package theme defines the color presets a loom project can adopt and
// generates the theme source file that components read their colors
// from.
package theme
