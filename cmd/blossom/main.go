// blossom is a CLI for generating procedural botanical meshes from YAML
// request documents.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/blossom/internal/config"
	"github.com/Faultbox/blossom/internal/generator"
	"github.com/Faultbox/blossom/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "gen":
		cmdGenerate(args)
	case "init":
		cmdInit(args)
	case "presets":
		cmdPresets()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`blossom - procedural flower and inflorescence mesh generator

Usage:
  blossom <command> [options]

Commands:
  generate [request.yaml] [-o out.json]  Generate a mesh from a request
  init [-preset name] <request.yaml>     Write a starter request document
  presets                                List the built-in flower presets

Examples:
  blossom generate
  blossom generate lupine.yaml -o lupine.json
  blossom init -preset daisy daisy.yaml`)
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	output := fs.String("o", "", "Write the generated buffers as JSON")
	fs.Parse(args)

	requestPath := ""
	if fs.NArg() > 0 {
		requestPath = fs.Arg(0)
	}

	req, err := config.Load(requestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(req.Logging.Level, req.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	result, err := generator.Generate(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Preset:    %s\n", req.Flower.Preset)
	if req.Inflorescence != nil {
		fmt.Printf("Pattern:   %s\n", req.Inflorescence.Pattern)
	}
	fmt.Printf("Vertices:  %d\n", result.VertexCount())
	fmt.Printf("Triangles: %d\n", result.TriangleCount())

	if *output != "" {
		if err := writeBuffers(result, *output); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *output, err)
			os.Exit(1)
		}
		fmt.Printf("Written:   %s\n", *output)
	}
}

// writeBuffers dumps the raw result buffers as JSON. This is the result
// contract made inspectable, not an export format.
func writeBuffers(result *generator.Result, path string) error {
	doc := struct {
		Positions []float32 `json:"positions"`
		Normals   []float32 `json:"normals"`
		UVs       []float32 `json:"uvs"`
		Colors    []float32 `json:"colors"`
		Indices   []uint32  `json:"indices"`
	}{
		Positions: result.Positions,
		Normals:   result.Normals,
		UVs:       result.UVs,
		Colors:    result.Colors,
		Indices:   result.Indices,
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func cmdInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	preset := fs.String("preset", "lily", "Flower preset to seed the request with")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: blossom init [-preset name] <request.yaml>")
		os.Exit(1)
	}

	req := config.DefaultForPreset(*preset)
	if req.Flower.Preset != *preset {
		fmt.Fprintf(os.Stderr, "Unknown preset: %s (run 'blossom presets')\n", *preset)
		os.Exit(1)
	}

	path := fs.Arg(0)
	if err := req.SaveTo(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Written: %s\n", path)
}

func cmdPresets() {
	fmt.Println(`Built-in flower presets:
  lily        Six curled, twisted petals around a single pistil
  five-petal  Wide ruffled petals with two stamen whorls
  daisy       Dense golden-spiral head on a flat receptacle`)
}
