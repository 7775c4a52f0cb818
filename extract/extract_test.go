package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/templetools/doldoc"
	"github.com/templetools/doldoc/sprite"
)

func testDocument() *doldoc.Document {
	return &doldoc.Document{
		Preamble: "test",
		Chunks: []doldoc.Chunk{
			{
				ID: 3,
				Elements: []sprite.Element{
					{Opcode: sprite.OpBitMap, Name: "BitMap", Payload: sprite.BitMap{
						Width:  2,
						Height: 2,
						Data:   []byte{0x00, 0x04, 0x0E, 0x0F},
					}},
					{Opcode: sprite.OpMesh, Name: "Mesh", Payload: sprite.Mesh{
						Vertices:  []sprite.Vertex{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}, {X: 0, Y: 10, Z: 0}},
						Triangles: []sprite.Triangle{{Color: 4, A: 0, B: 1, C: 2}},
					}},
					{Opcode: sprite.OpText, Name: "Text", Payload: sprite.Text{X: 1, Y: 2, Text: []byte("hello")}},
					{Opcode: sprite.OpEnd, Name: "End"},
				},
			},
		},
	}
}

func TestExtract_WritesAllKinds(t *testing.T) {
	dir := t.TempDir()
	written, err := Extract(testDocument(), dir)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("expected 3 files, got %d: %v", len(written), written)
	}

	wantNames := []string{"chunk3_0.bmp", "chunk3_1.obj", "chunk3_2.txt"}
	for i, want := range wantNames {
		if filepath.Base(written[i]) != want {
			t.Errorf("expected %q, got %q", want, filepath.Base(written[i]))
		}
	}
}

func TestExtract_BitmapRoundTrips(t *testing.T) {
	dir := t.TempDir()
	written, err := Extract(testDocument(), dir)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	f, err := os.Open(written[0])
	if err != nil {
		t.Fatalf("open bmp: %v", err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("decode bmp: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("expected 2x2 image, got %dx%d", b.Dx(), b.Dy())
	}
	// Index 0x0F is WHITE.
	r, g, bl, _ := img.At(1, 1).RGBA()
	if r != 0xFFFF || g != 0xFFFF || bl != 0xFFFF {
		t.Errorf("expected white pixel at (1,1), got %d,%d,%d", r, g, bl)
	}
}

func TestExtract_MeshOBJ(t *testing.T) {
	dir := t.TempDir()
	written, err := Extract(testDocument(), dir)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	data, err := os.ReadFile(written[1])
	if err != nil {
		t.Fatalf("read obj: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "v 10 0 0\n") {
		t.Errorf("missing vertex line in %q", content)
	}
	if !strings.Contains(content, "f 1 2 3\n") {
		t.Errorf("expected 1-based face indices in %q", content)
	}
}

func TestExtract_TextContent(t *testing.T) {
	dir := t.TempDir()
	written, err := Extract(testDocument(), dir)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	data, err := os.ReadFile(written[2])
	if err != nil {
		t.Fatalf("read txt: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("expected %q, got %q", "hello", data)
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	dir := t.TempDir()
	written, err := Extract(&doldoc.Document{}, dir)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(written) != 0 {
		t.Errorf("expected no files, got %v", written)
	}
}
