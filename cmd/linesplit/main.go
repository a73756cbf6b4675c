// Command linesplit partitions SEG-Y trace files into per-line output
// files based on the survey path geometry: straight passes become lines,
// turns and large positional gaps become split points.
//
// Usage:
//
//	linesplit [flags] survey1.sgy [survey2.sgy ...]
//
// Each input is processed independently; a failure in one file does not
// stop the batch.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/banshee-data/survey.lines/internal/config"
	"github.com/banshee-data/survey.lines/internal/linedb"
	"github.com/banshee-data/survey.lines/internal/report"
	"github.com/banshee-data/survey.lines/internal/seg"
	"github.com/banshee-data/survey.lines/internal/segy"
)

var (
	configPath = flag.String("config", "", "path to segmentation tuning JSON (optional)")
	outDir     = flag.String("out", ".", "directory for per-line output files")
	dbPath     = flag.String("db", "", "sqlite catalog to record runs into (optional)")
	reportPath = flag.String("report", "", "write an HTML segmentation report here (optional)")
	plotDir    = flag.String("plots", "", "write PNG debug plots into this directory (optional)")
	coords     = flag.String("coords", "", "trace header coordinate pair: source, group or cdp")
	dryRun     = flag.Bool("dry-run", false, "segment and report only, write no output files")

	critRadius = flag.Float64("rcrit", 0, "critical turning radius in metres (overrides config)")
	minTurn    = flag.Float64("dmin", 0, "minimum turn distance in metres (overrides config)")
	maxGap     = flag.Float64("dgap", 0, "maximum trace gap in metres (overrides config)")
	minLine    = flag.Float64("lmin", 0, "minimum line length in metres (overrides config)")
	stride     = flag.Int("stride", 0, "curvature estimation stride in traces (overrides config)")
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: linesplit [flags] survey.sgy [...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := config.EmptySegmentationConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadSegmentationConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	params := seg.ParamsFromTuning(cfg)
	applyOverrides(&params)

	coordSource := cfg.GetCoordSource()
	if *coords != "" {
		coordSource = *coords
	}

	var catalog *linedb.LineDB
	if *dbPath != "" {
		var err error
		catalog, err = linedb.NewLineDB(*dbPath)
		if err != nil {
			log.Fatalf("open catalog: %v", err)
		}
		defer catalog.Close()
	}

	failures := 0
	for _, path := range flag.Args() {
		if err := processFile(path, params, coordSource, catalog); err != nil {
			log.Printf("%s: %v", path, err)
			failures++
		}
	}
	if failures > 0 {
		log.Fatalf("%d of %d files failed", failures, flag.NArg())
	}
}

// applyOverrides replaces config-derived parameters with any explicitly
// set flag values.
func applyOverrides(p *seg.Params) {
	if *critRadius > 0 {
		p.CriticalRadius = *critRadius
	}
	if *minTurn > 0 {
		p.MinTurnDistance = *minTurn
	}
	if *maxGap > 0 {
		p.MaxGap = *maxGap
	}
	if *minLine > 0 {
		p.MinLineLength = *minLine
	}
	if *stride > 0 {
		p.Stride = *stride
	}
}

// lineFileName derives the output file name for one line of an input file:
// survey.sgy -> survey.line003.sgy
func lineFileName(input string, index int) string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s.line%03d%s", stem, index, ext)
}

func processFile(path string, params seg.Params, coordSource string, catalog *linedb.LineDB) error {
	f, err := segy.Open(path)
	if err != nil {
		return err
	}
	points, err := f.Coordinates(coordSource)
	if err != nil {
		return err
	}
	log.Printf("%s: %d traces", path, len(points))

	lines, err := seg.Segment(points, params)
	if err != nil {
		return err
	}

	outputs := make([]string, len(lines))
	if !*dryRun {
		for i, l := range lines {
			out := filepath.Join(*outDir, lineFileName(path, i))
			if err := f.WriteRangeFile(out, l.First, l.Last); err != nil {
				return err
			}
			outputs[i] = out
			log.Printf("%s: traces %d-%d, %.0fm", out, l.First, l.Last, l.Length)
		}
	}

	if catalog != nil {
		runID, err := catalog.RecordRun(linedb.Run{
			SourceFile:  path,
			CoordSource: coordSource,
			TraceCount:  len(points),
			Params:      params,
		}, lines, outputs)
		if err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		log.Printf("%s: recorded run %s", path, runID)
	}

	if *reportPath != "" || *plotDir != "" {
		radius := seg.RadiusSignal(points, params.Stride)
		if *reportPath != "" {
			if err := report.WriteHTML(*reportPath, points, radius, lines, params); err != nil {
				return err
			}
		}
		if *plotDir != "" {
			stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			if err := report.WriteRadiusPlot(filepath.Join(*plotDir, stem+".radius.png"), radius, params.CriticalRadius); err != nil {
				return err
			}
			if err := report.WritePathPlot(filepath.Join(*plotDir, stem+".path.png"), points, lines); err != nil {
				return err
			}
		}
	}
	return nil
}
