package sprite

import "fmt"

type tableEntry struct {
	Name string
	Kind Kind
}

// opcodeTable is the static registry mapping each opcode byte to its
// display name and decoder kind. The index is the opcode. Aliased names
// (Rect/Rotated Rect, the four spline variants, the two fills, the two
// meshes, the three text shapes, Transform On/Off) share a kind: they
// differ in meaning, not in wire layout.
var opcodeTable = [...]tableEntry{
	OpEnd:               {"End", KindEnd},
	OpColor:             {"Color", KindColor},
	OpDitherColor:       {"Dither Color", KindDitherColor},
	OpThick:             {"Thick", KindThick},
	OpPlanarSymmetry:    {"Planar Symmetry", KindPlanarSymmetry},
	OpTransformOn:       {"Transform On", KindTransform},
	OpTransformOff:      {"Transform Off", KindTransform},
	OpShift:             {"Shift", KindShift},
	OpPoint:             {"Point", KindPoint},
	OpPolyPoint:         {"PolyPoint", KindPolyPoint},
	OpLine:              {"Line", KindLine},
	OpPolyLine:          {"PolyLine", KindPolyLine},
	OpRect:              {"Rect", KindRect},
	OpRotatedRect:       {"Rotated Rect", KindRect},
	OpCircle:            {"Circle", KindCircle},
	OpEllipse:           {"Ellipse", KindEllipse},
	OpPolygon:           {"Polygon", KindPolygon},
	OpBSpline2:          {"BSpline2", KindBSpline},
	OpBSpline2Closed:    {"BSpline2 Closed", KindBSpline},
	OpBSpline3:          {"BSpline3", KindBSpline},
	OpBSpline3Closed:    {"BSpline3 Closed", KindBSpline},
	OpFloodFill:         {"Flood Fill", KindFloodFill},
	OpFloodFillNotColor: {"Flood Fill Not Color", KindFloodFill},
	OpBitMap:            {"BitMap", KindBitMap},
	OpMesh:              {"Mesh", KindMesh},
	OpShiftableMesh:     {"Shiftable Mesh", KindMesh},
	OpArrow:             {"Arrow", KindArrow},
	OpText:              {"Text", KindText},
	OpTextBox:           {"Text Box", KindText},
	OpTextDiamond:       {"Text Diamond", KindText},
}

// TableSize returns the number of opcodes the table defines. Any opcode
// byte >= TableSize() is unknown.
func TableSize() int {
	return len(opcodeTable)
}

// OpcodeName returns the display name for an opcode byte.
func OpcodeName(op byte) (string, bool) {
	if int(op) >= len(opcodeTable) {
		return "", false
	}
	return opcodeTable[op].Name, true
}

// OpcodeKind returns the decoder kind for an opcode byte.
func OpcodeKind(op byte) (Kind, bool) {
	if int(op) >= len(opcodeTable) {
		return 0, false
	}
	return opcodeTable[op].Kind, true
}

func init() {
	// The table is process-wide and read-only; verify it is internally
	// consistent before anything decodes through it.
	for op, entry := range opcodeTable {
		if entry.Name == "" {
			panic(fmt.Sprintf("sprite: opcode 0x%02X has no table entry", op))
		}
		if int(entry.Kind) >= len(kindNames) {
			panic(fmt.Sprintf("sprite: opcode 0x%02X has invalid kind %d", op, entry.Kind))
		}
	}
	for kind := range decoders {
		found := false
		for _, entry := range opcodeTable {
			if entry.Kind == kind {
				found = true
				break
			}
		}
		if !found {
			panic(fmt.Sprintf("sprite: decoder registered for kind %s with no opcode", kind))
		}
	}
}
