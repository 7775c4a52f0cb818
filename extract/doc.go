// Package extract writes decoded document geometry out to files:
// bitmaps as paletted BMP, meshes as Wavefront OBJ, and text elements
// as plain text.
package extract
