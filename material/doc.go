// Package material classifies heightmap bytes into terrain materials and
// colours them for previews.
//
// Heights are the 0..255 bytes a heightmap is stored as. The default
// thresholds put the waterline at 41, sand below 43, grass below 150 and
// rock below 180; everything above is snow.
package material
