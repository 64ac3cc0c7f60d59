// testmodel is a CLI for instantiating the compiled-in test meshes and
// exporting the welded result.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "list", "ls":
		cmdList(args)
	case "params":
		cmdParams(args)
	case "build", "b":
		cmdBuild(args)
	case "info":
		cmdInfo(args)
	case "watch":
		cmdWatch(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`testmodel - test mesh generator

Usage:
  testmodel <command> [options]

Commands:
  list                       List compiled-in models
  params                     Show operator parameters and defaults
  build [options]            Cook a model and export it (-o file.glb|file.obj)
  info [options]             Cook a model and print statistics
  watch -config <file>       Re-export whenever the config file changes
  config [-o file]           Write a default config file

Build options:
  -config file   -model name   -primitive poly|points   -scale s
  -center x,y,z  -keep-axes    -normals=false           -time t
  -o file        -format glb|obj                        -debug

Examples:
  testmodel list
  testmodel build -model cube -scale 2 -o cube.glb
  testmodel info -model octahedron -primitive points
  testmodel watch -config testmodel.yaml -o live.obj`)
}
