// Package main is the entry point for the seqalign CLI.
package main

import "github.com/molecbio/seqalign/internal/cli"

func main() {
	cli.Execute()
}
