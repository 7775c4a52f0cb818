package doldoc

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/templetools/doldoc/errors"
	"github.com/templetools/doldoc/internal/binary"
	"github.com/templetools/doldoc/sprite"
)

// SizePolicy controls how a chunk's declared payload size is reconciled
// against the bytes its element stream actually consumed. The legacy
// reader never cross-checked the two, so Lenient is the default.
type SizePolicy uint8

const (
	// SizePolicyLenient trusts the declared size and discards any
	// payload bytes left after the End element.
	SizePolicyLenient SizePolicy = iota

	// SizePolicyStrict rejects a chunk whose element stream does not
	// consume exactly the declared payload size.
	SizePolicyStrict
)

// Options configure a document decode.
type Options struct {
	SizePolicy SizePolicy
	Revision   sprite.Revision
}

// DefaultOptions returns the lenient, modern-revision configuration.
func DefaultOptions() Options {
	return Options{SizePolicy: SizePolicyLenient, Revision: sprite.RevisionModern}
}

// Chunk is one length-framed region of the document holding an element
// stream plus bookkeeping. Size is the declared byte length of the
// payload region.
type Chunk struct {
	Elements []sprite.Element
	ID       uint32
	Flags    uint32
	Size     uint32
	RefCount uint32
}

// Document is a fully decoded doldoc container. Values are immutable
// once decoding returns.
type Document struct {
	Preamble string
	Chunks   []Chunk
}

// ParseDocument decodes a doldoc container with default options.
func ParseDocument(data []byte) (*Document, error) {
	return ParseDocumentWithOptions(data, DefaultOptions())
}

// ParseDocumentWithOptions decodes a doldoc container: a NUL-terminated
// text preamble followed by zero or more chunks, each a 16-byte
// little-endian header {id, flags, size, refCount} and size payload
// bytes. Fewer than 16 bytes remaining after a chunk is the normal end
// of the document.
func ParseDocumentWithOptions(data []byte, opts Options) (*Document, error) {
	doc := &Document{}

	pos := 0
	if i := bytes.IndexByte(data, 0x00); i >= 0 {
		doc.Preamble = string(data[:i])
		pos = i + 1
	} else {
		// Preamble terminated by end of input; no chunks follow.
		doc.Preamble = string(data)
		return doc, nil
	}

	for len(data)-pos >= 16 {
		hdr := binary.NewReader(data[pos : pos+16])
		id, _ := hdr.ReadU32()
		flags, _ := hdr.ReadU32()
		size, _ := hdr.ReadU32()
		refCount, _ := hdr.ReadU32()

		payloadStart := pos + 16
		remaining := len(data) - payloadStart
		if int(size) > remaining {
			return nil, fmt.Errorf("chunk %d: %w", id, errors.Truncated(payloadStart, size, uint32(remaining)))
		}
		payload := data[payloadStart : payloadStart+int(size)]

		elems, consumed, err := sprite.DecodeElements(payload, opts.Revision)
		if err != nil {
			return nil, fmt.Errorf("chunk %d (payload at %d): %w", id, payloadStart, err)
		}
		if opts.SizePolicy == SizePolicyStrict && consumed != int(size) {
			return nil, fmt.Errorf("chunk %d: %w", id, errors.TrailingData(payloadStart+consumed, size, consumed))
		}

		Logger().Debug("decoded chunk",
			zap.Uint32("id", id),
			zap.Uint32("size", size),
			zap.Int("consumed", consumed),
			zap.Int("elements", len(elems)))

		doc.Chunks = append(doc.Chunks, Chunk{
			ID:       id,
			Flags:    flags,
			Size:     size,
			RefCount: refCount,
			Elements: elems,
		})
		pos = payloadStart + int(size)
	}

	return doc, nil
}

// ReadDocument slurps r and decodes it as a doldoc container.
func ReadDocument(r io.Reader, opts Options) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return ParseDocumentWithOptions(data, opts)
}
