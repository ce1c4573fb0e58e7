package main

import (
	"fmt"
	"os"

	"github.com/solifugus/adf"
	"github.com/spf13/cobra"
)

var checkNoInfer bool

var checkCmd = &cobra.Command{
	Use:     "check <file>",
	Aliases: []string{"parse"},
	Short:   "Parse and validate an ADF file",
	Args:    cobra.ExactArgs(1),
	Run:     checkRun,
}

func init() {
	checkCmd.Flags().BoolVar(&checkNoInfer, "no-infer", false, "disable scalar type inference")
}

func checkRun(cmd *cobra.Command, args []string) {
	opts := adf.DefaultParseOptions()
	opts.InferTypes = !checkNoInfer

	doc, err := adf.ParseFileWithOptions(args[0], opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Println("valid ADF document")
	fmt.Printf("  %d keys in root\n", len(doc.AsMap()))
	if rel := doc.RelativeSections(); len(rel) > 0 {
		fmt.Printf("  %d relative sections\n", len(rel))
	}
}
