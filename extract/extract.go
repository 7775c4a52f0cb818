package extract

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/templetools/doldoc"
	"github.com/templetools/doldoc/sprite"
)

// vgaPalette maps the document's 16 palette indices to their classic
// display colors.
var vgaPalette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xFF}, // BLACK
	color.RGBA{0x00, 0x00, 0xAA, 0xFF}, // BLUE
	color.RGBA{0x00, 0xAA, 0x00, 0xFF}, // GREEN
	color.RGBA{0x00, 0xAA, 0xAA, 0xFF}, // CYAN
	color.RGBA{0xAA, 0x00, 0x00, 0xFF}, // RED
	color.RGBA{0xAA, 0x00, 0xAA, 0xFF}, // PURPLE
	color.RGBA{0xAA, 0x55, 0x00, 0xFF}, // BROWN
	color.RGBA{0xAA, 0xAA, 0xAA, 0xFF}, // LTGRAY
	color.RGBA{0x55, 0x55, 0x55, 0xFF}, // DKGRAY
	color.RGBA{0x55, 0x55, 0xFF, 0xFF}, // LTBLUE
	color.RGBA{0x55, 0xFF, 0x55, 0xFF}, // LTGREEN
	color.RGBA{0x55, 0xFF, 0xFF, 0xFF}, // LTCYAN
	color.RGBA{0xFF, 0x55, 0x55, 0xFF}, // LTRED
	color.RGBA{0xFF, 0x55, 0xFF, 0xFF}, // LTPURPLE
	color.RGBA{0xFF, 0xFF, 0x55, 0xFF}, // YELLOW
	color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, // WHITE
}

// Extract writes a decoded document's extractable geometry to dir:
// bitmaps as 16-color paletted BMP files, meshes as Wavefront OBJ, and
// text elements as plain text. It returns the paths written. File names
// follow chunk<ID>_<elementIndex>.<ext>.
func Extract(doc *doldoc.Document, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string
	for _, chunk := range doc.Chunks {
		for i, elem := range chunk.Elements {
			var (
				path string
				err  error
			)
			switch p := elem.Payload.(type) {
			case sprite.BitMap:
				path = filepath.Join(dir, fmt.Sprintf("chunk%d_%d.bmp", chunk.ID, i))
				err = writeBitMap(path, p)
			case sprite.Mesh:
				path = filepath.Join(dir, fmt.Sprintf("chunk%d_%d.obj", chunk.ID, i))
				err = writeMesh(path, p)
			case sprite.Text:
				path = filepath.Join(dir, fmt.Sprintf("chunk%d_%d.txt", chunk.ID, i))
				err = os.WriteFile(path, p.Text, 0o644)
			default:
				continue
			}
			if err != nil {
				return written, fmt.Errorf("chunk %d element %d: %w", chunk.ID, i, err)
			}
			written = append(written, path)
		}
	}
	return written, nil
}

// writeBitMap renders the bitmap's palette indices as a BMP. The stored
// data carries one byte per pixel with the palette index in the low
// nibble; the high nibble is a secondary attribute and is ignored here.
func writeBitMap(path string, bm sprite.BitMap) error {
	w, h := int(bm.Width), int(bm.Height)
	img := image.NewPaletted(image.Rect(0, 0, w, h), vgaPalette)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetColorIndex(x, y, bm.Data[y*w+x]&0x0F)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeMesh emits the mesh as a Wavefront OBJ: v lines for vertices,
// f lines with 1-based indices for triangles.
func writeMesh(path string, m sprite.Mesh) error {
	var b strings.Builder
	for _, v := range m.Vertices {
		fmt.Fprintf(&b, "v %d %d %d\n", v.X, v.Y, v.Z)
	}
	for _, t := range m.Triangles {
		fmt.Fprintf(&b, "f %d %d %d\n", t.A+1, t.B+1, t.C+1)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
