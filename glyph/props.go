package glyph

// Alignment tells the renderer where a glyph narrower than its advance
// is anchored inside the advance box.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCentre
	AlignBefore
)

// Stacking describes how a combining glyph stacks relative to its base.
type Stacking uint8

const (
	StackUp Stacking = iota
	StackDown
	StackBeforeAndAfter
	StackUpAndDown
	StackNone
)

// Directive opcodes. An opcode of OpIllegal excludes the glyph from the
// final repertoire; opcodes in [OpExpandFirst, OpExpandLast] replace the
// glyph with up to 7 concatenated target codepoints taken from ExtInfo.
const (
	OpIllegal     = 0xFF
	OpExpandFirst = 0x80
	OpExpandLast  = 0x87
)

// AnchorCount is the number of diacritics anchor slots per glyph.
const AnchorCount = 6

// Anchor is one diacritics attachment point, decoded from the tag
// column. X and Y are 7-bit pixel coordinates; the Used flags record
// whether the sheet author declared the respective component.
type Anchor struct {
	X, Y  int
	XUsed bool
	YUsed bool
}

// Directive is the glyph's compiler directive word.
type Directive struct {
	Opcode uint8
	Arg1   uint8
	Arg2   uint8
}

// Props is the per-glyph metadata record decoded from a sheet's tag
// column (or synthesized for fixed-width sheets).
type Props struct {
	Width       int // advance in cells, 0..31
	IsLowHeight bool
	NudgeX      int // signed pixel offset applied at composition time
	NudgeY      int
	Anchors     [AnchorCount]Anchor
	Align       Alignment
	Stack       Stacking
	WriteOnTop  int // -1 = not a mark, 0..15 = mark-class id
	ExtInfo     [15]uint32
	HasKernData bool
	IsKernYType bool
	KerningMask uint32 // 24 bits
	Directive   Directive
}

// DefaultProps returns a property record for a glyph without tag data:
// the given fixed width, no kerning, no directive, not a mark.
func DefaultProps(width int) Props {
	return Props{
		Width:       width,
		WriteOnTop:  -1,
		KerningMask: 0xFF,
	}
}

// IsIllegal reports whether the glyph is excluded from the repertoire.
func (p Props) IsIllegal() bool {
	return p.Directive.Opcode == OpIllegal
}

// IsExpansion reports whether the glyph carries an expansion directive
// (replace this glyph with a concatenation of other codepoints).
func (p Props) IsExpansion() bool {
	return p.Directive.Opcode >= OpExpandFirst && p.Directive.Opcode <= OpExpandLast
}

// ExtInfoCount returns how many ExtInfo words the tag column carries
// for this glyph. Only stacking of type before-and-after and expansion
// directives use the extension area.
func (p Props) ExtInfoCount() int {
	if p.Stack == StackBeforeAndAfter {
		return 2
	}
	if p.IsExpansion() {
		return 7
	}
	return 0
}

// ExpansionTargets returns the target codepoints of an expansion
// directive, in order. Zero words terminate the list.
func (p Props) ExpansionTargets() []rune {
	if !p.IsExpansion() {
		return nil
	}
	targets := make([]rune, 0, 7)
	for i := 0; i < 7; i++ {
		if p.ExtInfo[i] == 0 {
			break
		}
		targets = append(targets, rune(p.ExtInfo[i]))
	}
	return targets
}
