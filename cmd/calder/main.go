// Package main provides the calder CLI.
package main

import "github.com/calder-lang/calder/internal/cli"

func main() {
	cli.Execute()
}
