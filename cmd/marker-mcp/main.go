package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/marker-tools-mcp/internal/config"
	"github.com/ironsheep/marker-tools-mcp/internal/detection"
	"github.com/ironsheep/marker-tools-mcp/internal/marker"
	"github.com/ironsheep/marker-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("marker-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	det := newDetector(cfg)

	if len(os.Args) > 1 && os.Args[1] == "locate" {
		if err := runLocate(os.Args[2:], det, os.Stdout); err != nil {
			log.Fatalf("locate: %v", err)
		}
		return
	}

	if cfg.Debug() {
		log.Printf("Marker MCP Server v%s (built %s, commit %s), detector %s", Version, BuildTime, GitCommit, cfg.Detector)
	}

	srv := server.New(cfg, det)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// newDetector builds the configured keypoint detector. ORB needs a gocv
// build; without one the pure Go FAST detector is used instead.
func newDetector(cfg *config.Config) marker.KeypointDetector {
	if cfg.Detector == config.DetectorORB {
		orb, err := detection.NewORB(cfg.MaxFeatures, cfg.FastThreshold)
		if err == nil {
			return orb
		}
		log.Printf("ORB detector unavailable, using FAST: %v", err)
	}
	return detection.NewFAST(cfg.MaxFeatures, cfg.FastThreshold)
}

func printHelp() {
	fmt.Println("marker-tools-mcp - MCP server for locating checker-board markers")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  marker-tools-mcp [options]")
	fmt.Println("  marker-tools-mcp locate <image> <x1> <y1> <x2> <y2>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  locate           Run the locator once on a region and print the result")
	fmt.Println()
	fmt.Println("Environment variables (also read from .env):")
	fmt.Println("  MARKER_MCP_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println("  MARKER_DETECTOR=fast|orb      Keypoint detector (orb needs a gocv build)")
	fmt.Println("  MARKER_MAX_FEATURES=1000      Keypoint cap per neighborhood")
	fmt.Println("  MARKER_FAST_THRESHOLD=5       FAST segment test threshold")
	fmt.Println("  MARKER_OVERLAY_SCALE=3        Default overlay upscale")
	fmt.Println()
	fmt.Println("Without a command the server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
