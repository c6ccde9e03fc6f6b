package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/ironsheep/shape-detect-mcp/internal/detection"
	"github.com/ironsheep/shape-detect-mcp/internal/imaging"
	"github.com/ironsheep/shape-detect-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = server.Version
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("shape-detect-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		case "detect":
			if err := runDetect(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "detect: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("SHAPE_MCP_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("Shape Detect MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(server.WithDebug(debug))
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printUsage() {
	fmt.Println("shape-detect-mcp - MCP server for geometric shape detection")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  shape-detect-mcp [options]              Run the MCP server on stdin/stdout")
	fmt.Println("  shape-detect-mcp detect [flags] <image>  Detect shapes in one image and print JSON")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Detect flags:")
	fmt.Println("  -threshold N       Foreground luminance cutoff (default 128)")
	fmt.Println("  -min-area N        Minimum region size in pixels (default 28)")
	fmt.Println("  -dp-ratio F        Simplification tolerance ratio (default 0.02)")
	fmt.Println("  -colinear-tol F    Colinear pruning tolerance in degrees (default 6)")
	fmt.Println("  -invert            Detect light shapes on a dark background")
	fmt.Println("  -region NAME       Detect only in top-left, center, right-half, ...")
	fmt.Println("  -overlay PATH      Also write a PNG with the detected outlines")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  SHAPE_MCP_LOG_LEVEL=debug    Enable debug logging")
}

// runDetect implements the detect subcommand.
func runDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	cfg := detection.DefaultConfig()
	fs.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "foreground luminance cutoff (0-255)")
	fs.IntVar(&cfg.MinArea, "min-area", cfg.MinArea, "minimum region size in pixels")
	fs.Float64Var(&cfg.DouglasPeuckerRatio, "dp-ratio", cfg.DouglasPeuckerRatio, "simplification tolerance as a fraction of the perimeter")
	fs.Float64Var(&cfg.ColinearToleranceDeg, "colinear-tol", cfg.ColinearToleranceDeg, "colinear pruning tolerance in degrees")
	invert := fs.Bool("invert", false, "detect light shapes on a dark background")
	region := fs.String("region", "", "restrict detection to a named region (top-left, center, right-half, ...)")
	overlay := fs.String("overlay", "", "write an overlay PNG to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one image path, got %d", fs.NArg())
	}
	path := fs.Arg(0)

	img, err := imaging.NewImageCache().Load(path)
	if err != nil {
		return err
	}

	result, err := imaging.DetectInImage(img, *region, *invert, cfg)
	if err != nil {
		return err
	}

	if *overlay != "" {
		if err := imaging.WriteOverlay(*overlay, img, result.Shapes, imaging.DefaultOverlayOptions()); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}
