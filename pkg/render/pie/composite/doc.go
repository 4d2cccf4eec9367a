// Package composite layers card artwork into pie wedges.
//
// A chart is drawn in two passes. [Outline] strokes the boundary of every
// wedge first; [Composite] then draws each wedge's artwork centered on the
// chart center through a clip mask shaped exactly like the wedge. Artwork
// pixels outside the wedge are never painted, and since all artwork comes
// after all outlines it covers the inner half of every stroke and is never
// covered by a neighbouring wedge's outline.
//
// Composite resets its clip before returning, so consecutive calls on the
// same canvas do not affect each other.
package composite
