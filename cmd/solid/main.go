// Package main provides the solid CLI.
package main

import "github.com/mesh-intelligence/solid/internal/cli"

func main() {
	cli.Execute()
}
