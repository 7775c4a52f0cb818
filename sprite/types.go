package sprite

import "fmt"

// Element is one decoded drawing primitive from an element stream.
// Payload holds the kind-specific payload struct; End and Transform
// elements carry a nil payload.
type Element struct {
	Payload any
	Name    string
	Opcode  byte
}

// Coord is an x,y pair used by polyline sequences.
type Coord struct {
	X, Y int32
}

// CtrlPoint is one B-spline control point.
type CtrlPoint struct {
	X, Y, Angle int32
}

// Vertex is one mesh vertex.
type Vertex struct {
	X, Y, Z int32
}

// Triangle is one mesh face. A, B and C index into the vertex list.
type Triangle struct {
	Color, A, B, C int32
}

// ColorAttr sets the current drawing color.
type ColorAttr struct {
	Color Color
}

// DitherColor sets a dithered pair of palette colors.
type DitherColor struct {
	Color1, Color2 Color
}

// Thick sets the current line thickness.
type Thick struct {
	Thickness int32
}

// PlanarSymmetry sets a symmetry axis through (X1,Y1)-(X2,Y2).
type PlanarSymmetry struct {
	X1, Y1, X2, Y2 int32
}

// Point is a single point. Z is only populated by the legacy format
// revision; modern files store x,y.
type Point struct {
	X, Y, Z int32
}

// PolyPoint is a point run header. The run data itself (Count*3 bytes)
// is skipped, not materialized; the payload structure past the header is
// unfinished in the format's only known producer.
type PolyPoint struct {
	X, Y, Count int32
}

// Line is a segment from (X1,Y1) to (X2,Y2).
type Line struct {
	X1, Y1, X2, Y2 int32
}

// PolyLine is an order-significant sequence of connected points.
type PolyLine struct {
	Points []Coord
}

// Rect covers both the axis-aligned and rotated rect opcodes.
type Rect struct {
	X1, Y1, X2, Y2 int32
}

// Circle is a circle of Radius centered at (X,Y).
type Circle struct {
	X, Y, Radius int32
}

// Ellipse is an ellipse with a rotation angle in radians.
type Ellipse struct {
	Angle               float64
	X, Y, Width, Height int32
}

// Polygon is a regular polygon with Sides sides and a rotation angle.
type Polygon struct {
	Angle               float64
	X, Y, Width, Height int32
	Sides               int32
}

// BSpline holds the control points for both spline degrees; the degree
// distinction lives in the element name only.
type BSpline struct {
	Points []CtrlPoint
}

// FloodFill starts a fill at (X,Y); covers both fill opcodes.
type FloodFill struct {
	X, Y int32
}

// BitMap is a Width x Height pixel block at (X,Y). Data is the raw byte
// run; each byte packs two 4-bit palette indices.
// TODO: expand Data into per-pixel indices (high nibble is the left pixel).
type BitMap struct {
	Data                []byte
	X, Y, Width, Height int32
}

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Vertices  []Vertex
	Triangles []Triangle
}

// Arrow is a segment with an arrow head at (X2,Y2).
type Arrow struct {
	X1, Y1, X2, Y2 int32
}

// Text places a NUL-terminated byte string at (X,Y); covers the Text,
// Text Box and Text Diamond opcodes.
type Text struct {
	Text []byte
	X, Y int32
}

// String renders a one-line summary of the element, matching the legacy
// reader's listing output.
func (e Element) String() string {
	switch p := e.Payload.(type) {
	case nil:
		return e.Name
	case ColorAttr:
		return fmt.Sprintf("%s %s", e.Name, p.Color)
	case DitherColor:
		return fmt.Sprintf("%s %s/%s", e.Name, p.Color1, p.Color2)
	case Thick:
		return fmt.Sprintf("%s %d", e.Name, p.Thickness)
	case PlanarSymmetry:
		return fmt.Sprintf("%s (%d, %d), (%d, %d)", e.Name, p.X1, p.Y1, p.X2, p.Y2)
	case Point:
		return fmt.Sprintf("%s (%d,%d)", e.Name, p.X, p.Y)
	case PolyPoint:
		return fmt.Sprintf("%s (%d,%d) %d points", e.Name, p.X, p.Y, p.Count)
	case Line:
		return fmt.Sprintf("%s (%d, %d), (%d, %d)", e.Name, p.X1, p.Y1, p.X2, p.Y2)
	case PolyLine:
		return fmt.Sprintf("%s %d points", e.Name, len(p.Points))
	case Rect:
		return fmt.Sprintf("%s (%d, %d), (%d, %d)", e.Name, p.X1, p.Y1, p.X2, p.Y2)
	case Circle:
		return fmt.Sprintf("%s (%d, %d):%dR", e.Name, p.X, p.Y, p.Radius)
	case Ellipse:
		return fmt.Sprintf("%s (%d,%d):%dW,%dH @%g", e.Name, p.X, p.Y, p.Width, p.Height, p.Angle)
	case Polygon:
		return fmt.Sprintf("%s (%d,%d):%dW,%dH %d sides @%g", e.Name, p.X, p.Y, p.Width, p.Height, p.Sides, p.Angle)
	case BSpline:
		return fmt.Sprintf("%s %d control points", e.Name, len(p.Points))
	case FloodFill:
		return fmt.Sprintf("%s (%d, %d)", e.Name, p.X, p.Y)
	case BitMap:
		return fmt.Sprintf("%s (%d,%d):%dW,%dH", e.Name, p.X, p.Y, p.Width, p.Height)
	case Mesh:
		return fmt.Sprintf("%s %dV,%dT", e.Name, len(p.Vertices), len(p.Triangles))
	case Arrow:
		return fmt.Sprintf("%s (%d, %d), (%d, %d)", e.Name, p.X1, p.Y1, p.X2, p.Y2)
	case Text:
		return fmt.Sprintf("%s %d,%d:%q", e.Name, p.X, p.Y, p.Text)
	default:
		return fmt.Sprintf("%s (opcode 0x%02X)", e.Name, e.Opcode)
	}
}
