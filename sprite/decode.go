package sprite

import (
	stderrors "errors"

	"github.com/templetools/doldoc/errors"
	"github.com/templetools/doldoc/internal/binary"
)

// Revision selects between the two observed format revisions. They differ
// in the Point payload (modern stores x,y; legacy adds z) and in how the
// Color byte is interpreted (legacy masks it to the low nibble). The
// revision is chosen by the caller, never inferred from the stream.
type Revision uint8

const (
	RevisionModern Revision = iota
	RevisionLegacy
)

func (r Revision) String() string {
	switch r {
	case RevisionModern:
		return "modern"
	case RevisionLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// decodeFunc consumes one element payload from the cursor. The opcode
// byte has already been consumed.
type decodeFunc func(r *binary.Reader, rev Revision) (any, error)

// decoders registers one decode function per kind. KindShift is
// intentionally absent: the Shift payload layout was never pinned down,
// so decoding that opcode fails with unimplemented_decoder rather than
// guessing at field widths.
var decoders = map[Kind]decodeFunc{
	KindEnd:            decodeEmpty,
	KindColor:          decodeColor,
	KindDitherColor:    decodeDitherColor,
	KindThick:          decodeThick,
	KindPlanarSymmetry: decodePlanarSymmetry,
	KindTransform:      decodeEmpty,
	KindPoint:          decodePoint,
	KindPolyPoint:      decodePolyPoint,
	KindLine:           decodeLine,
	KindPolyLine:       decodePolyLine,
	KindRect:           decodeRect,
	KindCircle:         decodeCircle,
	KindEllipse:        decodeEllipse,
	KindPolygon:        decodePolygon,
	KindBSpline:        decodeBSpline,
	KindFloodFill:      decodeFloodFill,
	KindBitMap:         decodeBitMap,
	KindMesh:           decodeMesh,
	KindArrow:          decodeArrow,
	KindText:           decodeText,
}

// DecodeElements decodes one chunk payload into its element sequence.
// It reads tagged records until the End element, which is included in the
// result, and reports the number of payload bytes consumed. Reaching the
// end of the payload before an End element is an error, as is any opcode
// outside the table or without a registered decoder.
func DecodeElements(payload []byte, rev Revision) ([]Element, int, error) {
	r := binary.NewReader(payload)
	var elems []Element
	for {
		off := r.Position()
		op, err := r.ReadByte()
		if err != nil {
			return nil, off, errors.UnexpectedEOF(errors.PhaseStream, off, "end of payload before End element")
		}
		if int(op) >= len(opcodeTable) {
			return nil, off, errors.UnknownOpcode(op, off)
		}
		entry := opcodeTable[op]
		dec, ok := decoders[entry.Kind]
		if !ok {
			return nil, off, errors.Unimplemented(op, entry.Name, off)
		}
		payloadVal, err := dec(r, rev)
		if err != nil {
			return nil, r.Position(), wrapReadError(op, entry.Name, r.Position(), err)
		}
		elems = append(elems, Element{Opcode: op, Name: entry.Name, Payload: payloadVal})
		if entry.Kind == KindEnd {
			return elems, r.Position(), nil
		}
	}
}

// wrapReadError converts cursor failures into structured element errors.
// The cursor checks lengths before consuming, so the reported offset is
// where the failed read began.
func wrapReadError(op byte, name string, offset int, err error) error {
	kind := errors.KindUnexpectedEOF
	if !stderrors.Is(err, binary.ErrShortRead) && !stderrors.Is(err, binary.ErrNoTerminator) {
		kind = errors.KindTruncated
	}
	return errors.Wrap(errors.PhaseElement, kind, op, name, offset, err)
}

func decodeEmpty(*binary.Reader, Revision) (any, error) {
	return nil, nil
}

func decodeColor(r *binary.Reader, rev Revision) (any, error) {
	b, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if rev == RevisionLegacy {
		// Older files keep a secondary attribute in the high nibble.
		b &= 0x0F
	}
	return ColorAttr{Color: Color(b)}, nil
}

func decodeDitherColor(r *binary.Reader, _ Revision) (any, error) {
	c1, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	c2, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	return DitherColor{Color1: Color(c1), Color2: Color(c2)}, nil
}

func decodeThick(r *binary.Reader, _ Revision) (any, error) {
	t, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	return Thick{Thickness: t}, nil
}

func decodePlanarSymmetry(r *binary.Reader, _ Revision) (any, error) {
	v, err := readI32s(r, 4)
	if err != nil {
		return nil, err
	}
	return PlanarSymmetry{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

func decodePoint(r *binary.Reader, rev Revision) (any, error) {
	n := 2
	if rev == RevisionLegacy {
		n = 3
	}
	v, err := readI32s(r, n)
	if err != nil {
		return nil, err
	}
	p := Point{X: v[0], Y: v[1]}
	if rev == RevisionLegacy {
		p.Z = v[2]
	}
	return p, nil
}

func decodePolyPoint(r *binary.Reader, _ Revision) (any, error) {
	v, err := readI32s(r, 3)
	if err != nil {
		return nil, err
	}
	count := v[2]
	if count < 0 {
		return nil, binary.ErrShortRead
	}
	// The run data layout past the header was never finished by the
	// format's producer; skip it instead of materializing points.
	if err := r.Skip(int(count) * 3); err != nil {
		return nil, err
	}
	return PolyPoint{X: v[0], Y: v[1], Count: count}, nil
}

func decodeLine(r *binary.Reader, _ Revision) (any, error) {
	v, err := readI32s(r, 4)
	if err != nil {
		return nil, err
	}
	return Line{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

func decodePolyLine(r *binary.Reader, _ Revision) (any, error) {
	count, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if count < 0 || int(count)*8 > r.Remaining() {
		return nil, binary.ErrShortRead
	}
	points := make([]Coord, count)
	for i := range points {
		v, err := readI32s(r, 2)
		if err != nil {
			return nil, err
		}
		points[i] = Coord{X: v[0], Y: v[1]}
	}
	return PolyLine{Points: points}, nil
}

func decodeRect(r *binary.Reader, _ Revision) (any, error) {
	v, err := readI32s(r, 4)
	if err != nil {
		return nil, err
	}
	return Rect{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

func decodeCircle(r *binary.Reader, _ Revision) (any, error) {
	v, err := readI32s(r, 3)
	if err != nil {
		return nil, err
	}
	return Circle{X: v[0], Y: v[1], Radius: v[2]}, nil
}

func decodeEllipse(r *binary.Reader, _ Revision) (any, error) {
	v, err := readI32s(r, 4)
	if err != nil {
		return nil, err
	}
	angle, err := r.ReadF64()
	if err != nil {
		return nil, err
	}
	return Ellipse{X: v[0], Y: v[1], Width: v[2], Height: v[3], Angle: angle}, nil
}

func decodePolygon(r *binary.Reader, _ Revision) (any, error) {
	v, err := readI32s(r, 4)
	if err != nil {
		return nil, err
	}
	angle, err := r.ReadF64()
	if err != nil {
		return nil, err
	}
	sides, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	return Polygon{X: v[0], Y: v[1], Width: v[2], Height: v[3], Angle: angle, Sides: sides}, nil
}

func decodeBSpline(r *binary.Reader, _ Revision) (any, error) {
	count, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if count < 0 || int(count)*12 > r.Remaining() {
		return nil, binary.ErrShortRead
	}
	points := make([]CtrlPoint, count)
	for i := range points {
		v, err := readI32s(r, 3)
		if err != nil {
			return nil, err
		}
		points[i] = CtrlPoint{X: v[0], Y: v[1], Angle: v[2]}
	}
	return BSpline{Points: points}, nil
}

func decodeFloodFill(r *binary.Reader, _ Revision) (any, error) {
	v, err := readI32s(r, 2)
	if err != nil {
		return nil, err
	}
	return FloodFill{X: v[0], Y: v[1]}, nil
}

func decodeBitMap(r *binary.Reader, _ Revision) (any, error) {
	v, err := readI32s(r, 4)
	if err != nil {
		return nil, err
	}
	w, h := v[2], v[3]
	if w < 0 || h < 0 {
		return nil, binary.ErrShortRead
	}
	data, err := r.ReadBytes(int(w) * int(h))
	if err != nil {
		return nil, err
	}
	return BitMap{X: v[0], Y: v[1], Width: w, Height: h, Data: data}, nil
}

func decodeMesh(r *binary.Reader, _ Revision) (any, error) {
	vc, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	tc, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if vc < 0 || tc < 0 || int(vc)*12+int(tc)*16 > r.Remaining() {
		return nil, binary.ErrShortRead
	}
	vertices := make([]Vertex, vc)
	for i := range vertices {
		v, err := readI32s(r, 3)
		if err != nil {
			return nil, err
		}
		vertices[i] = Vertex{X: v[0], Y: v[1], Z: v[2]}
	}
	triangles := make([]Triangle, tc)
	for i := range triangles {
		v, err := readI32s(r, 4)
		if err != nil {
			return nil, err
		}
		triangles[i] = Triangle{Color: v[0], A: v[1], B: v[2], C: v[3]}
	}
	return Mesh{Vertices: vertices, Triangles: triangles}, nil
}

func decodeArrow(r *binary.Reader, _ Revision) (any, error) {
	v, err := readI32s(r, 4)
	if err != nil {
		return nil, err
	}
	return Arrow{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

func decodeText(r *binary.Reader, _ Revision) (any, error) {
	v, err := readI32s(r, 2)
	if err != nil {
		return nil, err
	}
	text, err := r.ReadCString()
	if err != nil {
		return nil, err
	}
	return Text{X: v[0], Y: v[1], Text: text}, nil
}

func readI32s(r *binary.Reader, n int) ([4]int32, error) {
	var out [4]int32
	for i := 0; i < n; i++ {
		v, err := r.ReadI32()
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}
