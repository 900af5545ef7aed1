package glyph

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func plainGlyph(code rune, width int) *Glyph {
	return &Glyph{Code: code, Props: DefaultProps(width), Bitmap: NewBitmap(width, 4)}
}

func TestStorePutAfterFreezePanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.glyph")
	defer teardown()
	store := NewStore()
	store.Put(plainGlyph(0x41, 5))
	store.Freeze()
	defer func() {
		if recover() == nil {
			t.Errorf("Put after Freeze did not panic")
		}
	}()
	store.Put(plainGlyph(0x42, 5))
}

func TestStoreExistsExcludesIllegal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.glyph")
	defer teardown()
	store := NewStore()
	store.Put(plainGlyph(0x41, 5))
	bad := plainGlyph(0x42, 5)
	bad.Props.Directive.Opcode = OpIllegal
	store.Put(bad)

	if !store.Exists(0x41) {
		t.Errorf("legal glyph reported missing")
	}
	if store.Exists(0x42) {
		t.Errorf("illegal glyph reported present")
	}
	if store.Exists(0x43) {
		t.Errorf("unknown codepoint reported present")
	}
	if store.Len() != 2 {
		t.Errorf("Len = %d, expected 2 (illegal glyphs are stored)", store.Len())
	}
}

func TestStoreCodesAscending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.glyph")
	defer teardown()
	store := NewStore()
	for _, cp := range []rune{0x44, 0x41, 0xAC00, 0x43} {
		store.Put(plainGlyph(cp, 5))
	}
	store.Freeze()
	codes := store.Codes()
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("Codes not strictly ascending at %d: %#x >= %#x", i, codes[i-1], codes[i])
		}
	}
}

func TestPromoteInternalForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.glyph")
	defer teardown()
	store := NewStore()

	public := plainGlyph(0x915, 0) // authored empty
	store.Put(public)
	internal := plainGlyph(0xF0140, 7)
	internal.Bitmap[1][2] = true
	store.Put(internal)

	occupied := plainGlyph(0x916, 4)
	occupied.Bitmap[0][0] = true
	store.Put(occupied)

	store.PromoteInternalForms([]FormRemap{
		{Public: 0x915, Internal: 0xF0140},
		{Public: 0x916, Internal: 0xF0140},
		{Public: 0x917, Internal: 0xF0141}, // neither side present
	})

	g, _ := store.Get(0x915)
	if !g.Bitmap.At(1, 2) {
		t.Errorf("empty public glyph did not receive the internal bitmap")
	}
	if g.Props.Width != 7 {
		t.Errorf("promoted width = %d, expected 7", g.Props.Width)
	}
	g, _ = store.Get(0x916)
	if g.Props.Width != 4 {
		t.Errorf("non-empty public glyph was overwritten")
	}
}

func TestExpansionsGating(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.glyph")
	defer teardown()
	store := NewStore()
	store.Put(plainGlyph(0x41, 5))
	store.Put(plainGlyph(0x42, 5))

	good := plainGlyph(0x100, 0)
	good.Props.Directive.Opcode = OpExpandFirst
	good.Props.ExtInfo[0] = 0x41
	good.Props.ExtInfo[1] = 0x42
	store.Put(good)

	dangling := plainGlyph(0x101, 0)
	dangling.Props.Directive.Opcode = OpExpandFirst
	dangling.Props.ExtInfo[0] = 0x9999 // not in the store
	store.Put(dangling)

	exps := store.Expansions()
	if len(exps) != 1 {
		t.Fatalf("got %d expansions, expected 1 (dangling target must be dropped)", len(exps))
	}
	if exps[0].Source != 0x100 {
		t.Errorf("expansion source = %#x", exps[0].Source)
	}
	if len(exps[0].Targets) != 2 || exps[0].Targets[0] != 0x41 || exps[0].Targets[1] != 0x42 {
		t.Errorf("expansion targets = %v", exps[0].Targets)
	}
}

func TestComposeFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.glyph")
	defer teardown()
	store := NewStore()

	a := plainGlyph(0x41, 3)
	a.Bitmap[0][0] = true
	store.Put(a)
	b := plainGlyph(0x42, 4)
	b.Bitmap[2][1] = true
	store.Put(b)

	src := plainGlyph(0x100, 0)
	src.Props.Directive.Opcode = OpExpandFirst
	src.Props.ExtInfo[0] = 0x41
	src.Props.ExtInfo[1] = 0x42
	store.Put(src)

	store.ComposeFallback()

	g, _ := store.Get(0x100)
	if g.Props.Width != 7 {
		t.Errorf("composite width = %d, expected 3+4", g.Props.Width)
	}
	if !g.Bitmap.At(0, 0) {
		t.Errorf("first target's pixel missing from composite")
	}
	if !g.Bitmap.At(2, 3+1) {
		t.Errorf("second target's pixel not shifted by the first target's advance")
	}
}
