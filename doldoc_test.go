package doldoc

import (
	"bytes"
	"encoding/binary"
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/templetools/doldoc/errors"
	"github.com/templetools/doldoc/sprite"
)

// chunkHeader appends a 16-byte little-endian chunk header.
func chunkHeader(buf []byte, id, flags, size, refCount uint32) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, id)
	buf = binary.LittleEndian.AppendUint32(buf, flags)
	buf = binary.LittleEndian.AppendUint32(buf, size)
	buf = binary.LittleEndian.AppendUint32(buf, refCount)
	return buf
}

func TestParse_PreambleOnly(t *testing.T) {
	doc, err := ParseDocument([]byte("Hello\x00"))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if doc.Preamble != "Hello" {
		t.Errorf("expected preamble %q, got %q", "Hello", doc.Preamble)
	}
	if len(doc.Chunks) != 0 {
		t.Errorf("expected no chunks, got %d", len(doc.Chunks))
	}
}

func TestParse_PreambleWithoutNUL(t *testing.T) {
	doc, err := ParseDocument([]byte("Hello"))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if doc.Preamble != "Hello" {
		t.Errorf("expected preamble %q, got %q", "Hello", doc.Preamble)
	}
	if len(doc.Chunks) != 0 {
		t.Errorf("expected no chunks, got %d", len(doc.Chunks))
	}
}

func TestParse_EmptyInput(t *testing.T) {
	doc, err := ParseDocument(nil)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if doc.Preamble != "" || len(doc.Chunks) != 0 {
		t.Errorf("expected empty document, got %+v", doc)
	}
}

func TestParse_SingleChunk(t *testing.T) {
	payload := []byte{sprite.OpColor, 0x04, sprite.OpEnd}
	data := []byte("title\x00")
	data = chunkHeader(data, 7, 0x20, uint32(len(payload)), 2)
	data = append(data, payload...)

	doc, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if len(doc.Chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(doc.Chunks))
	}
	chunk := doc.Chunks[0]
	if chunk.ID != 7 || chunk.Flags != 0x20 || chunk.Size != 3 || chunk.RefCount != 2 {
		t.Errorf("unexpected chunk header: %+v", chunk)
	}
	if len(chunk.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(chunk.Elements))
	}
	if chunk.Elements[0].Name != "Color" || chunk.Elements[1].Name != "End" {
		t.Errorf("unexpected elements: %v", chunk.Elements)
	}
}

func TestParse_MultipleChunks(t *testing.T) {
	line := binary.LittleEndian.AppendUint32([]byte{sprite.OpLine}, 0)
	for _, v := range []uint32{0, 100, 50} {
		line = binary.LittleEndian.AppendUint32(line, v)
	}
	line = append(line, sprite.OpEnd)

	data := []byte("\x00")
	data = chunkHeader(data, 1, 0, 1, 0)
	data = append(data, sprite.OpEnd)
	data = chunkHeader(data, 2, 0, uint32(len(line)), 0)
	data = append(data, line...)

	doc, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if len(doc.Chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(doc.Chunks))
	}
	if doc.Chunks[0].ID != 1 || doc.Chunks[1].ID != 2 {
		t.Errorf("chunk order not preserved: %d, %d", doc.Chunks[0].ID, doc.Chunks[1].ID)
	}
	if len(doc.Chunks[1].Elements) != 2 {
		t.Errorf("expected 2 elements in chunk 2, got %d", len(doc.Chunks[1].Elements))
	}
}

func TestParse_ShortTrailerIsNormalEnd(t *testing.T) {
	data := []byte("\x00")
	data = chunkHeader(data, 1, 0, 1, 0)
	data = append(data, sprite.OpEnd)
	data = append(data, 0xAB, 0xCD) // fewer than 16 bytes: not a header

	doc, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if len(doc.Chunks) != 1 {
		t.Errorf("expected 1 chunk, got %d", len(doc.Chunks))
	}
}

func TestParse_TruncatedPayload(t *testing.T) {
	data := []byte("\x00")
	data = chunkHeader(data, 1, 0, 10, 0)
	data = append(data, sprite.OpEnd) // only 1 of 10 declared bytes

	_, err := ParseDocument(data)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseContainer, Kind: errors.KindTruncated}) {
		t.Fatalf("expected truncated_payload, got %v", err)
	}
}

func TestParse_EmptyChunkPayload(t *testing.T) {
	data := []byte("\x00")
	data = chunkHeader(data, 1, 0, 0, 0)

	_, err := ParseDocument(data)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseStream, Kind: errors.KindUnexpectedEOF}) {
		t.Fatalf("expected unexpected_eof for size=0 chunk, got %v", err)
	}
}

func TestParse_SizePolicy(t *testing.T) {
	// Payload declares 3 bytes but the stream ends after 1 (End).
	data := []byte("\x00")
	data = chunkHeader(data, 1, 0, 3, 0)
	data = append(data, sprite.OpEnd, 0xFF, 0xFF)

	doc, err := ParseDocumentWithOptions(data, Options{SizePolicy: SizePolicyLenient})
	if err != nil {
		t.Fatalf("lenient decode failed: %v", err)
	}
	if len(doc.Chunks) != 1 || len(doc.Chunks[0].Elements) != 1 {
		t.Errorf("lenient decode lost the chunk: %+v", doc.Chunks)
	}

	_, err = ParseDocumentWithOptions(data, Options{SizePolicy: SizePolicyStrict})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseContainer, Kind: errors.KindTrailingData}) {
		t.Fatalf("expected trailing_data under strict policy, got %v", err)
	}
}

func TestParse_LenientSkipsToNextChunk(t *testing.T) {
	// The second chunk must decode even though the first has slack.
	data := []byte("\x00")
	data = chunkHeader(data, 1, 0, 3, 0)
	data = append(data, sprite.OpEnd, 0xFF, 0xFF)
	data = chunkHeader(data, 2, 0, 1, 0)
	data = append(data, sprite.OpEnd)

	doc, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if len(doc.Chunks) != 2 || doc.Chunks[1].ID != 2 {
		t.Fatalf("expected 2 chunks, got %+v", doc.Chunks)
	}
}

func TestParse_StreamErrorCarriesChunkContext(t *testing.T) {
	data := []byte("\x00")
	data = chunkHeader(data, 9, 0, 1, 0)
	data = append(data, 0x1E) // unknown opcode

	_, err := ParseDocument(data)
	if err == nil {
		t.Fatal("expected error")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseStream, Kind: errors.KindUnknownOpcode}) {
		t.Fatalf("expected unknown_opcode, got %v", err)
	}
	var derr *errors.Error
	if !stderrors.As(err, &derr) || derr.Opcode != 0x1E {
		t.Errorf("expected opcode 0x1E in error chain, got %+v", derr)
	}
}

func TestParse_LegacyRevision(t *testing.T) {
	payload := []byte{sprite.OpPoint}
	for _, v := range []uint32{1, 2, 3} {
		payload = binary.LittleEndian.AppendUint32(payload, v)
	}
	payload = append(payload, sprite.OpEnd)

	data := []byte("\x00")
	data = chunkHeader(data, 1, 0, uint32(len(payload)), 0)
	data = append(data, payload...)

	doc, err := ParseDocumentWithOptions(data, Options{Revision: sprite.RevisionLegacy})
	if err != nil {
		t.Fatalf("legacy decode failed: %v", err)
	}
	p := doc.Chunks[0].Elements[0].Payload.(sprite.Point)
	if p != (sprite.Point{X: 1, Y: 2, Z: 3}) {
		t.Errorf("got %+v", p)
	}
}

func TestParse_Idempotent(t *testing.T) {
	payload := []byte{sprite.OpColor, 0x01, sprite.OpEnd}
	data := []byte("doc\x00")
	data = chunkHeader(data, 1, 0, uint32(len(payload)), 0)
	data = append(data, payload...)

	a, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("first decode failed: %v", err)
	}
	b, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("second decode failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("decoding the same bytes twice must yield equal documents")
	}
}

func TestReadDocument(t *testing.T) {
	data := []byte("stream\x00")
	data = chunkHeader(data, 1, 0, 1, 0)
	data = append(data, sprite.OpEnd)

	doc, err := ReadDocument(bytes.NewReader(data), DefaultOptions())
	if err != nil {
		t.Fatalf("ReadDocument failed: %v", err)
	}
	if doc.Preamble != "stream" || len(doc.Chunks) != 1 {
		t.Errorf("unexpected document: %+v", doc)
	}
}
