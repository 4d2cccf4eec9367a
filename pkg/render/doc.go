// Package render groups the chart renderers.
//
// cardpie draws a single chart type, the card pie, in the [pie] subpackage
// tree:
//
//   - [pie/layout]: proportions, labels and wedge geometry
//   - [pie/styles]: colors, outline width and font faces
//   - [pie/composite]: clips card artwork into one wedge
//   - [pie]: the canvas that holds wedges, labels and the title
//   - [pie/sink]: PNG output, tightly cropped to the drawn content
//
// [pie]: github.com/matzehuels/cardpie/pkg/render/pie
// [pie/layout]: github.com/matzehuels/cardpie/pkg/render/pie/layout
// [pie/styles]: github.com/matzehuels/cardpie/pkg/render/pie/styles
// [pie/composite]: github.com/matzehuels/cardpie/pkg/render/pie/composite
// [pie/sink]: github.com/matzehuels/cardpie/pkg/render/pie/sink
package render
