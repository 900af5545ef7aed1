package builder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"gopkg.in/yaml.v3"

	"github.com/curioustorvald/tsbbuild/sheet"
)

// A build against an empty asset directory degrades to warnings: every
// sheet is skipped, no syllables are composed, and the repertoire is
// just the override glyphs.
func TestBuildEmptyAssets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.builder")
	defer teardown()
	art, err := Build(Config{AssetsDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := len(art.Report.Warnings()); got < len(sheet.Catalog) {
		t.Errorf("%d warnings, expected at least one per missing sheet (%d)", got, len(sheet.Catalog))
	}
	if art.Report.HasErrors() {
		t.Errorf("missing sheets must warn, not error: %v", art.Report.Errors())
	}
	if !art.Store.Frozen() {
		t.Errorf("store not frozen after the build")
	}
	if len(art.GlyphOrder) == 0 || art.GlyphOrder[0] != ".notdef" {
		t.Fatalf("glyph order does not start with .notdef: %v", art.GlyphOrder)
	}
	// the compatibility jamo placeholders come from applyOverrides
	if _, ok := art.CMap[0x3130]; !ok {
		t.Errorf("compatibility jamo placeholder missing from the cmap")
	}
	if _, ok := art.CMap[0xFFE00]; ok {
		t.Errorf("internal control range leaked into the cmap")
	}
	if len(art.Kern) != 0 {
		t.Errorf("kerning pairs generated without kern-tagged glyphs")
	}
}

func TestWriteArtifacts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tsb.builder")
	defer teardown()
	art, err := Build(Config{AssetsDir: t.TempDir(), NoBitmap: true})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	outDir := t.TempDir()
	if err := WriteArtifacts(art, outDir); err != nil {
		t.Fatalf("WriteArtifacts: %v", err)
	}

	for _, name := range []string{"glyphs.order", "cmap.tsv", "metrics.tsv", "contours.tsv", "manifest.yaml"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("artifact %s missing: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "strike.ttx")); err == nil {
		t.Errorf("strike.ttx written although the strike was skipped")
	}

	data, err := os.ReadFile(filepath.Join(outDir, "manifest.yaml"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatalf("manifest does not parse: %v", err)
	}
	if m.UnitsPerEm != sheet.UnitsPerEm || m.Ascent != sheet.Ascent {
		t.Errorf("manifest metrics = (%d, %d)", m.UnitsPerEm, m.Ascent)
	}
	if m.Glyphs != len(art.GlyphOrder) {
		t.Errorf("manifest glyph count = %d, expected %d", m.Glyphs, len(art.GlyphOrder))
	}

	order, err := os.ReadFile(filepath.Join(outDir, "glyphs.order"))
	if err != nil {
		t.Fatalf("read glyph order: %v", err)
	}
	if !strings.HasPrefix(string(order), ".notdef\n") {
		t.Errorf("glyph order file does not start with .notdef")
	}

	cmap, err := os.ReadFile(filepath.Join(outDir, "cmap.tsv"))
	if err != nil {
		t.Fatalf("read cmap: %v", err)
	}
	if !strings.Contains(string(cmap), "U+3130\tuni3130\n") {
		t.Errorf("cmap file missing the compatibility jamo entry")
	}
}
