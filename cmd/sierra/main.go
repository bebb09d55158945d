// Package main provides the sierra CLI.
package main

import "github.com/mesh-intelligence/sierra/internal/cli"

func main() {
	cli.Execute()
}
