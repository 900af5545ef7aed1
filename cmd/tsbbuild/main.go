/*
Command tsbbuild compiles TGA/BMP sprite sheets into font-assembler
artifacts: traced outlines, metrics, a character map, OpenType feature
source and an embedded bitmap strike.

Usage:

	tsbbuild [-o outdir] [-parallel] [-no-bitmap] [-no-features] <assets-dir>

# License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.

Copyright © CuriousTorvald
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/curioustorvald/tsbbuild/builder"
)

// tracer traces with key 'tsb.build'
func tracer() tracing.Trace {
	return tracing.Select("tsb.build")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.tsb.build":   "Info",
		"trace.tsb.sheet":   "Info",
		"trace.tsb.glyph":   "Info",
		"trace.tsb.hangul":  "Info",
		"trace.tsb.kern":    "Info",
		"trace.tsb.feature": "Info",
		"trace.tsb.builder": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	outdir := flag.String("o", "build", "Output directory for assembler artifacts")
	parallel := flag.Bool("parallel", false, "Decode sheets concurrently")
	noBitmap := flag.Bool("no-bitmap", false, "Skip the embedded bitmap strike")
	noFeatures := flag.Bool("no-features", false, "Skip kerning and shaping-rule synthesis")
	flag.Parse()

	switch *tlevel {
	case "Debug":
		setTraceLevels(tracing.LevelDebug)
	case "Info":
		setTraceLevels(tracing.LevelInfo)
	case "Error":
		setTraceLevels(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(2)
	}

	if flag.NArg() != 1 {
		pterm.Error.Println("need exactly one assets directory argument")
		flag.Usage()
		os.Exit(2)
	}
	assets := flag.Arg(0)
	if info, err := os.Stat(assets); err != nil || !info.IsDir() {
		pterm.Error.Printf("assets directory not found: %s\n", assets)
		os.Exit(1)
	}

	pterm.Info.Println("Terrarum Sans Bitmap artifact builder")
	pterm.Printf("  Assets: %s\n", assets)
	pterm.Printf("  Output: %s\n", *outdir)

	t0 := time.Now()
	art, err := builder.Build(builder.Config{
		AssetsDir:  assets,
		Concurrent: *parallel,
		NoBitmap:   *noBitmap,
		NoFeatures: *noFeatures,
	})
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	for _, w := range art.Report.Warnings() {
		pterm.Warning.Println(w.String())
	}
	if err := builder.WriteArtifacts(art, *outdir); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	pterm.Info.Printf("Done! Built %d glyphs in %.1fs\n", len(art.GlyphOrder), time.Since(t0).Seconds())
}

func setTraceLevels(level tracing.TraceLevel) {
	for _, key := range []string{
		"tsb.build", "tsb.sheet", "tsb.glyph", "tsb.hangul",
		"tsb.kern", "tsb.feature", "tsb.builder",
	} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
