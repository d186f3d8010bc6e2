// Package draw turns a topology scene into a flat, ordered list of drawing
// instructions.
//
// The list is format-neutral: sinks in [render/sink] write it as SVG (and,
// through SVG, as PNG or PDF), and tests can inspect it without parsing
// markup. Shapes appear in paint order, so later shapes cover earlier ones:
//
//  1. Connection lines between the two rings
//  2. The resource gauge ring
//  3. VM nodes (inner ring)
//  4. XNode nodes (outer ring)
//  5. Callout labels
//
// Colours that depend on the theme (label text, leader lines) are expressed
// as CSS classes; sinks map classes to colours.
package draw
