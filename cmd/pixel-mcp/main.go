package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ironsheep/pixel-pipeline-mcp/internal/pixel"
	"github.com/ironsheep/pixel-pipeline-mcp/internal/server"
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
			fmt.Printf("pixel-pipeline-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("pixel-pipeline-mcp - MCP server for lazy pixel filter pipelines and blending")
			fmt.Println()
			fmt.Println("Usage: pixel-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PIXEL_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  PIXEL_MCP_SEQUENTIAL=1       Render on a single goroutine")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("PIXEL_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Pixel MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		pixel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	sequential := os.Getenv("PIXEL_MCP_SEQUENTIAL") == "1"

	srv := server.New(server.WithSequential(sequential))
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
