// geomtool is a CLI front-end for the 3D geometry calculators.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/geomkit/internal/config"
	"github.com/Faultbox/geomkit/internal/logger"
	"github.com/Faultbox/geomkit/internal/tools"
	"github.com/Faultbox/geomkit/pkg/geometry"
	"go.uber.org/zap"
)

func main() {
	config.ParseFlags()
	args := config.Args()

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := args[0]
	switch command {
	case "list", "ls":
		cmdList()
	case "example":
		cmdExample(args[1:])
	case "config":
		cmdConfig(args[1:], cfg)
	case "help", "-h", "--help":
		printUsage()
	default:
		code := cmdRun(command, args[1:], cfg)
		logger.Sync()
		os.Exit(code)
	}
}

func printUsage() {
	fmt.Println(`geomtool - 3D geometry calculator

Usage:
  geomtool [flags] <tool> [input-file]

Reads a YAML or JSON input document from input-file (or stdin when omitted
or "-") and writes the result record to stdout.

Commands:
  list                 List available tools
  example <tool>       Print an example input document for a tool
  config init [path]   Write the effective config (default: user config dir)
  <tool> [input-file]  Run a tool

Flags:
  -config <path>       Config file (default ./geomtool.yaml)
  -format json|yaml    Output format
  -precision N         Round output to N decimal places
  -debug               Enable debug logging
  -log-file <path>     Also write logs to a rotated file

Examples:
  geomtool list
  geomtool example plane_intersection > planes.json
  geomtool -precision 6 plane_intersection planes.json
  echo '{"a": {"x": 3, "y": 4}, "b": {"x": 1}}' | geomtool vector_projection`)
}

func cmdList() {
	for _, t := range tools.List() {
		fmt.Printf("  %-28s %s\n", t.Name, t.Description)
	}
}

func cmdExample(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: geomtool example <tool>")
		os.Exit(1)
	}
	t, ok := tools.Lookup(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown tool: %s\n", args[0])
		os.Exit(1)
	}
	fmt.Println(t.Example)
}

func cmdConfig(args []string, cfg *config.Config) {
	if len(args) < 1 || args[0] != "init" {
		fmt.Fprintln(os.Stderr, "Usage: geomtool config init [path]")
		os.Exit(1)
	}

	path := config.DefaultPath()
	if len(args) > 1 {
		path = args[1]
	}
	if _, err := os.Stat(path); err == nil {
		logger.Warn("overwriting existing config", zap.String("path", path))
	}

	var err error
	if len(args) > 1 {
		err = cfg.SaveTo(path)
	} else {
		err = cfg.Save()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config written", zap.String("path", path))
	fmt.Println(path)
}

// cmdRun executes a tool and returns the process exit code:
// 1 for usage and input errors, 2 for geometry failures.
func cmdRun(name string, args []string, cfg *config.Config) int {
	if _, ok := tools.Lookup(name); !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", name)
		printUsage()
		return 1
	}

	input, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return 1
	}

	logger.Info("running tool", zap.String("tool", name), zap.Int("input_bytes", len(input)))
	result, err := tools.Run(name, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, geometry.ErrInvalidArgument) || errors.Is(err, geometry.ErrDegenerate) {
			return 2
		}
		return 1
	}

	if err := tools.Write(os.Stdout, result, cfg.Output); err != nil {
		logger.Error("writing result", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error writing result: %v\n", err)
		return 1
	}
	logger.Info("tool finished", zap.String("tool", name), zap.String("format", cfg.Output.Format))
	return 0
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		logger.Debug("reading input from stdin")
		return io.ReadAll(os.Stdin)
	}
	logger.Debug("reading input file", zap.String("path", args[0]))
	return os.ReadFile(args[0])
}
