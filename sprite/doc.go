// Package sprite decodes the tagged element streams stored inside doldoc
// chunk payloads.
//
// An element stream is a sequence of records, each a 1-byte opcode
// followed by an opcode-specific payload, terminated by the End opcode
// (0x00). The opcode byte indexes a static 30-entry table mapping it to a
// display name and a decoder kind; several opcodes share a kind when they
// differ in meaning but not in wire layout.
//
// All multi-byte fields are little-endian, 32-bit signed unless noted;
// the Ellipse and Polygon rotation angles are 64-bit IEEE-754 floats.
//
// Decode a payload region:
//
//	elems, consumed, err := sprite.DecodeElements(payload, sprite.RevisionModern)
//
// The decoder is strictly sequential and never seeks backward. The opcode
// table and decoder registry are read-only after init, so decoding
// independent payloads from separate goroutines is safe.
package sprite
