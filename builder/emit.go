package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/curioustorvald/tsbbuild/sheet"
)

// Manifest summarizes a finished build. It heads the artifact
// directory so the assembler (and a human) can sanity-check a run
// without parsing the payload files.
type Manifest struct {
	Family     string `yaml:"family"`
	UnitsPerEm int    `yaml:"unitsPerEm"`
	Ascent     int    `yaml:"ascent"`
	Descent    int    `yaml:"descent"`
	LineGap    int    `yaml:"lineGap"`
	XHeight    int    `yaml:"xHeight"`
	CapHeight  int    `yaml:"capHeight"`
	Glyphs     int    `yaml:"glyphs"`
	CmapSize   int    `yaml:"cmapEntries"`
	KernPairs  int    `yaml:"kernPairs"`
	StrikePPEM int    `yaml:"strikePpem,omitempty"`
	Warnings   int    `yaml:"warnings"`
}

// WriteArtifacts serializes the build artifacts into dir: the glyph
// order, character map, metrics and contour lists as line-oriented
// text, the shaping rules as feature-file source, the bitmap strike as
// TTX, and a YAML manifest.
func WriteArtifacts(art *Artifacts, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var order strings.Builder
	for _, name := range art.GlyphOrder {
		order.WriteString(name)
		order.WriteByte('\n')
	}
	if err := writeFile(dir, "glyphs.order", order.String()); err != nil {
		return err
	}

	var cmap strings.Builder
	for _, cp := range sortedKeys(art.CMap) {
		fmt.Fprintf(&cmap, "U+%04X\t%s\n", cp, art.CMap[cp])
	}
	if err := writeFile(dir, "cmap.tsv", cmap.String()); err != nil {
		return err
	}

	var metrics strings.Builder
	var contours strings.Builder
	for _, name := range art.GlyphOrder {
		m := art.Metrics[name]
		fmt.Fprintf(&metrics, "%s\t%d\t%d\n", name, m.Advance, m.LSB)
		contours.WriteString(name)
		for _, c := range art.Outlines[name] {
			fmt.Fprintf(&contours, "\t%d,%d,%d,%d", c.X0, c.Y0, c.X1, c.Y1)
		}
		contours.WriteByte('\n')
	}
	if err := writeFile(dir, "metrics.tsv", metrics.String()); err != nil {
		return err
	}
	if err := writeFile(dir, "contours.tsv", contours.String()); err != nil {
		return err
	}

	if art.FeatureText != "" {
		if err := writeFile(dir, "features.fea", art.FeatureText+"\n"); err != nil {
			return err
		}
	}
	if art.Strike != nil {
		if err := writeFile(dir, "strike.ttx", art.Strike.TTX()); err != nil {
			return err
		}
	}

	manifest := Manifest{
		Family:     "Terrarum Sans Bitmap",
		UnitsPerEm: sheet.UnitsPerEm,
		Ascent:     sheet.Ascent,
		Descent:    sheet.Descent,
		LineGap:    sheet.LineGap,
		XHeight:    sheet.XHeight,
		CapHeight:  sheet.CapHeight,
		Glyphs:     len(art.GlyphOrder),
		CmapSize:   len(art.CMap),
		KernPairs:  len(art.Kern),
		Warnings:   len(art.Report.Warnings()),
	}
	if art.Strike != nil {
		manifest.StrikePPEM = art.Strike.PPEM
	}
	out, err := yaml.Marshal(&manifest)
	if err != nil {
		return err
	}
	return writeFile(dir, "manifest.yaml", string(out))
}

func writeFile(dir, name, content string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
}

func sortedKeys(m map[rune]string) []rune {
	keys := make([]rune, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
