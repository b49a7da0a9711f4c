// Package tokens extracts design-token records from Figma file data.
//
// Three independent extraction strategies are provided: the Variables API
// payload, the published styles table, and a raw traversal of the node tree
// for swatch instances and corner radii. Every strategy emits plain record
// values; nothing is persisted between runs.
package tokens

import (
	"fmt"
	"math"
)

// Color is a single named color token. Name keeps the original slash-
// delimited path; Collection, Group and Shade carry the breakdown when the
// source provides one.
type Color struct {
	Name        string
	Hex         string
	Description string
	Collection  string
	Group       string
	Shade       string
}

// TextStyle is a typography token sourced from the Styles API or the manual
// token table.
type TextStyle struct {
	Name          string
	FontFamily    string
	FontSize      float64
	FontWeight    float64
	LineHeight    float64
	LetterSpacing float64
}

// Border is a stroke or corner-radius token. Radius holds a uniform radius;
// CornerRadii holds four per-corner values when they differ.
type Border struct {
	Name        string
	Color       string
	Weight      float64
	Radius      float64
	CornerRadii []float64
}

// Component is a scaffolding candidate discovered in the file.
type Component struct {
	ID          string
	Name        string
	Description string
}

// RGBAToHex converts color channels (floats in [0, 1]) to an uppercase hex
// string. The alpha byte is appended only for translucent colors.
func RGBAToHex(r, g, b, a float64) string {
	hex := fmt.Sprintf("#%02X%02X%02X", channel(r), channel(g), channel(b))
	if a < 1 {
		hex += fmt.Sprintf("%02X", channel(a))
	}
	return hex
}

func channel(v float64) int {
	return int(math.Round(v * 255))
}
