package sprite

// Element opcodes as stored in the document byte stream. The opcode byte
// doubles as the index into the opcode table.
const (
	OpEnd               byte = 0x00
	OpColor             byte = 0x01
	OpDitherColor       byte = 0x02
	OpThick             byte = 0x03
	OpPlanarSymmetry    byte = 0x04
	OpTransformOn       byte = 0x05
	OpTransformOff      byte = 0x06
	OpShift             byte = 0x07
	OpPoint             byte = 0x08
	OpPolyPoint         byte = 0x09
	OpLine              byte = 0x0A
	OpPolyLine          byte = 0x0B
	OpRect              byte = 0x0C
	OpRotatedRect       byte = 0x0D
	OpCircle            byte = 0x0E
	OpEllipse           byte = 0x0F
	OpPolygon           byte = 0x10
	OpBSpline2          byte = 0x11
	OpBSpline2Closed    byte = 0x12
	OpBSpline3          byte = 0x13
	OpBSpline3Closed    byte = 0x14
	OpFloodFill         byte = 0x15
	OpFloodFillNotColor byte = 0x16
	OpBitMap            byte = 0x17
	OpMesh              byte = 0x18
	OpShiftableMesh     byte = 0x19
	OpArrow             byte = 0x1A
	OpText              byte = 0x1B
	OpTextBox           byte = 0x1C
	OpTextDiamond       byte = 0x1D
)

// Color is a palette index into the document's fixed 16-color palette.
type Color byte

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Purple
	Brown
	LtGray
	DkGray
	LtBlue
	LtGreen
	LtCyan
	LtRed
	LtPurple
	Yellow
	White
)

var colorNames = [...]string{
	Black:    "BLACK",
	Blue:     "BLUE",
	Green:    "GREEN",
	Cyan:     "CYAN",
	Red:      "RED",
	Purple:   "PURPLE",
	Brown:    "BROWN",
	LtGray:   "LTGRAY",
	DkGray:   "DKGRAY",
	LtBlue:   "LTBLUE",
	LtGreen:  "LTGREEN",
	LtCyan:   "LTCYAN",
	LtRed:    "LTRED",
	LtPurple: "LTPURPLE",
	Yellow:   "YELLOW",
	White:    "WHITE",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "INVALID"
}

// Kind identifies which payload decoder an opcode uses. Several opcodes
// share a kind: the distinction between them is representational only.
type Kind uint8

const (
	KindEnd Kind = iota
	KindColor
	KindDitherColor
	KindThick
	KindPlanarSymmetry
	KindTransform
	KindShift
	KindPoint
	KindPolyPoint
	KindLine
	KindPolyLine
	KindRect
	KindCircle
	KindEllipse
	KindPolygon
	KindBSpline
	KindFloodFill
	KindBitMap
	KindMesh
	KindArrow
	KindText
)

var kindNames = [...]string{
	KindEnd:            "End",
	KindColor:          "Color",
	KindDitherColor:    "DitherColor",
	KindThick:          "Thick",
	KindPlanarSymmetry: "PlanarSymmetry",
	KindTransform:      "Transform",
	KindShift:          "Shift",
	KindPoint:          "Point",
	KindPolyPoint:      "PolyPoint",
	KindLine:           "Line",
	KindPolyLine:       "PolyLine",
	KindRect:           "Rect",
	KindCircle:         "Circle",
	KindEllipse:        "Ellipse",
	KindPolygon:        "Polygon",
	KindBSpline:        "BSpline",
	KindFloodFill:      "FloodFill",
	KindBitMap:         "BitMap",
	KindMesh:           "Mesh",
	KindArrow:          "Arrow",
	KindText:           "Text",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}
