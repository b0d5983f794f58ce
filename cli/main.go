package main

import (
	"fmt"
	"os"
)

var (
	// Version is set at build time via ldflags
	// Example: go build -ldflags="-X main.Version=v1.2.3"
	Version = "dev"
)

// Default config path
const defaultConfigPath = "config.yaml"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	// Handle version command
	if command == "version" || command == "--version" || command == "-v" {
		fmt.Printf("songprep version %s\n", Version)
		os.Exit(0)
	}

	switch command {
	case "process":
		os.Exit(processCommand(os.Args[2:]))
	case "identify":
		os.Exit(identifyCommand(os.Args[2:]))
	case "help", "--help", "-h":
		printUsage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `songprep - Download, identify, tag, and normalize songs

USAGE:
    songprep <command> [flags] <url|file> [...]

COMMANDS:
    process     Download (or take existing files), resolve metadata, tag, and normalize
    identify    Fingerprint files and print the best metadata match without modifying them
    version     Show version information

FLAGS:
    -h, --help    Show this help message

EXAMPLES:
    songprep process https://www.youtube.com/watch?v=dQw4w9WgXcQ
    songprep process -files -skip ./incoming/*.mp3
    songprep identify song.mp3

For more information, see https://github.com/sv4u/songprep
`)
}
