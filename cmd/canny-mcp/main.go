package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/canny-edge-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("canny-edge-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("canny-edge-mcp - MCP server for Canny edge detection")
			fmt.Println()
			fmt.Println("Usage: canny-edge-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  CANNY_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  CANNY_MCP_KERNEL_SIZE=5      Default Gaussian kernel length (odd, >= 3)")
			fmt.Println("  CANNY_MCP_SIGMA=1.4          Default Gaussian sigma")
			fmt.Println("  CANNY_MCP_LOW=40             Default hysteresis low threshold")
			fmt.Println("  CANNY_MCP_HIGH=100           Default hysteresis high threshold")
			fmt.Println("  CANNY_MCP_WORKERS=1          Row-band workers per detection")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := server.ConfigFromEnv()
	if Version != "dev" {
		cfg.Version = Version
	}
	if cfg.Debug {
		log.Printf("Canny MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Defaults: %+v", cfg.Defaults)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
