// Command worldgen loads a YAML configuration, runs the terrain/hydrology/
// transport pipeline, validates the result against the universal
// invariants, and writes JSON and/or SVG artifacts.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/islandgen/worldgen/pkg/collab"
	"github.com/islandgen/worldgen/pkg/export"
	"github.com/islandgen/worldgen/pkg/network"
	"github.com/islandgen/worldgen/pkg/terrain"
	"github.com/islandgen/worldgen/pkg/validate"
	"github.com/islandgen/worldgen/pkg/worldgen"
)

const version = "0.1.0"

var (
	configPath = flag.String("config", "", "Path to YAML configuration file (required)")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	format     = flag.String("format", "json", "Export format: json, svg, or all")
	seedFlag   = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("worldgen version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, svg, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading configuration from %s\n", *configPath)
	}

	cfg, err := worldgen.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", cfg.Seed, *seedFlag)
		}
		cfg.Seed = uint32(*seedFlag)
	}

	if *verbose {
		fmt.Printf("Using seed: %d, mapSize: %v, algorithm: %s\n", cfg.Seed, cfg.MapSize, cfg.GenerationAlgorithm)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	gen := worldgen.Get(cfg.GenerationAlgorithm)
	if gen == nil {
		return fmt.Errorf("no generator registered for algorithm %q: %w", cfg.GenerationAlgorithm, worldgen.ErrAlgorithmNotImplemented)
	}

	start := time.Now()
	if *verbose {
		fmt.Println("Generating world...")
	}

	snap, err := gen.Generate(cfg, func(percent int, stage string) {
		if *verbose {
			fmt.Printf("  [%3d%%] %s\n", percent, stage)
		}
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	elapsed := time.Since(start)

	report := validate.Validate(snap)
	if !report.Passed {
		fmt.Fprintf(os.Stderr, "Warning: generated world failed %d invariant(s): %v\n", len(report.Errors), report.Errors)
	}

	settlements, err := seedSettlementsAndRoads(snap, cfg, *verbose)
	if err != nil {
		return fmt.Errorf("collaborator pass failed: %w", err)
	}

	if *verbose {
		fmt.Printf("Generation completed in %v\n", elapsed)
		printStats(snap)
		fmt.Printf("  Settlements: %d\n", len(settlements))
	}

	baseName := fmt.Sprintf("world_%d", cfg.Seed)

	if *format == "json" || *format == "all" {
		if err := exportJSON(snap, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVG(snap, cfg, baseName); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully generated world (seed=%d) in %v\n", cfg.Seed, elapsed)
	return nil
}

func exportJSON(snap *worldgen.Snapshot, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}
	if err := export.SaveJSONToFile(snap, filename); err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	return nil
}

func exportSVG(snap *worldgen.Snapshot, cfg *worldgen.Config, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}
	opts := export.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("World (seed=%d)", cfg.Seed)
	if err := export.SaveSVGToFile(snap, filename, opts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	return nil
}

// seedSettlementsAndRoads runs the out-of-scope CadastralSubdivider and
// SettlementSeeder collaborators over the generated snapshot, then links
// consecutive settlements with A*-found roads, records traffic over them,
// and runs one upgrade pass, so the transport network reflects the
// settlements it was built to serve rather than sitting at its
// just-constructed, all-trailless baseline.
func seedSettlementsAndRoads(snap *worldgen.Snapshot, cfg *worldgen.Config, verbose bool) ([]collab.Settlement, error) {
	seeder := collab.NewCoastalSettlementSeeder(nil)
	settlements, err := seeder.Seed(snap, snap.Network)
	if err != nil {
		return nil, fmt.Errorf("seed settlements: %w", err)
	}
	if len(settlements) < 2 {
		return settlements, nil
	}

	mesh := &terrain.Mesh{Sites: snap.Cells, Bounds: snap.Bounds}
	var paths []network.PathResult
	for i := 1; i < len(settlements); i++ {
		from, to := settlements[i-1].AnchorSite, settlements[i].AnchorSite
		result := network.FindPath(snap.Network, mesh, from, to)
		if !result.Success {
			if verbose {
				fmt.Printf("  no route between settlements %q and %q\n", settlements[i-1].Name, settlements[i].Name)
			}
			continue
		}
		snap.Network.RecordUsage(result.EdgeIDs, 1)
		paths = append(paths, result)
	}
	snap.SettlementPaths = paths
	snap.Network.ProcessUpgrades(cfg.Network.ToNetworkConfig())

	return settlements, nil
}

func printStats(snap *worldgen.Snapshot) {
	var land, coast int
	for _, c := range snap.Cells {
		if c.IsLand {
			land++
		}
		if c.IsCoast {
			coast++
		}
	}
	fmt.Println("\nWorld statistics:")
	fmt.Printf("  Sites: %d (land: %d, coast: %d)\n", len(snap.Cells), land, coast)
	fmt.Printf("  Edges: %d (rivers: %d)\n", len(snap.Edges), len(snap.Rivers))
	fmt.Printf("  Lakes: %d\n", len(snap.Lakes))
	if snap.Network != nil {
		fmt.Printf("  Network edges: %d, crossings: %d\n", len(snap.Network.Edges), len(snap.Network.Crossings))
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: worldgen -config <config.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'worldgen -help' for detailed help")
}

func printHelp() {
	fmt.Printf("worldgen version %s\n\n", version)
	fmt.Println("A command-line tool for generating procedural island worlds.")
	fmt.Println("\nUsage:")
	fmt.Println("  worldgen -config <config.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML configuration file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: json, svg, or all (default: json)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the seed from config (0 = use config seed)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
}
