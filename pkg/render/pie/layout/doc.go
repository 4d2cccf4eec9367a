// Package layout computes the geometry of a card pie chart.
//
// # Proportions
//
// [Compute] turns ordered (card, weight, name) triples into [Slice] values
// carrying each slice's share of the total as a percentage and its display
// label:
//
//	slices, err := layout.Compute([]layout.WeightedSlice{
//	    {Key: "Dark Magician", Weight: 12, Name: "Spellcasters"},
//	    {Key: "Blue-Eyes White Dragon", Weight: 8, Name: "Dragons"},
//	})
//	// slices[0].Label == "Spellcasters (12, 60%)"
//
// # Wedges
//
// [Build] lays the slices out as contiguous [Wedge] values around the circle,
// starting at [StartAngle] and running counterclockwise. Angles are in
// degrees measured from the positive x-axis; the last wedge always ends
// exactly one full turn after the first one starts.
//
// Wedges know nothing about pixels. [Wedge.Boundary] and [Wedge.Contains]
// take the chart center in image coordinates (y pointing down) so callers
// can build clip paths and test membership without repeating the angle
// conversion.
package layout
