package main

import "github.com/orthanc-tools/embedres/cmd"

// main is the entry point of the embedres CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
