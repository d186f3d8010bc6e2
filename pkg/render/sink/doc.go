// Package sink writes rendered output.
//
// # Formats
//
//   - [RenderSVG]: a drawing as a standalone SVG document
//   - [RenderJSON]: a scene as a pretty-printed JSON document
//   - [RenderPNG] and [RenderPDF]: SVG converted with rsvg-convert
//
// All sinks are deterministic: the same input yields byte-identical output,
// which is what makes artifact caching by input parameters sound.
//
// # Themes
//
// Node, label and leader colours are set through CSS classes in an embedded
// style sheet, so the same drawing can be emitted in the light or dark theme
// with [WithTheme].
package sink
