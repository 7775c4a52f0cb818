// Package doldoc decodes the legacy DolDoc binary document container,
// recovering the vector-graphics primitives (lines, circles, meshes,
// bitmaps, text, polygons, splines) stored inside it.
//
// A document is a NUL-terminated text preamble followed by zero or more
// chunks. Each chunk is a 16-byte little-endian header
// {id, flags, size, refCount} and size payload bytes; the payload is a
// tagged element stream decoded by the sprite package.
//
// Decode a file:
//
//	data, _ := os.ReadFile("drawing.dd")
//	doc, err := doldoc.ParseDocument(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, chunk := range doc.Chunks {
//	    for _, elem := range chunk.Elements {
//	        fmt.Println(elem)
//	    }
//	}
//
// Two behaviors the legacy format left ambiguous are configurable via
// ParseDocumentWithOptions: whether a chunk's declared size must match
// the bytes its element stream consumed (SizePolicy), and which of the
// two observed format revisions to decode (sprite.Revision).
//
// There is no write path: the originating application is discontinued
// and the format is read-only by design of this library.
package doldoc
