// Package styles defines the visual appearance of a card pie chart: canvas
// background, wedge outlines, and the faces used for labels and the title.
//
// Colors are given as strings in the deck file. [ParseColor] accepts CSS/SVG
// color names ("black", "rebeccapurple"), hex triplets ("#000", "#1e90ff"),
// the single-letter shorthands b g r c m y k w, and "none"/"transparent".
package styles
