package main

import (
	"fmt"
	"os"

	"github.com/solifugus/adf"
	"github.com/spf13/cobra"
)

type ConvertParams struct {
	Format  string // output format: json, toml, yaml
	Output  string // output file path, stdout when empty
	NoInfer bool   // disable type inference
}

var convertParams ConvertParams

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert an ADF file to JSON, TOML, or YAML",
	Args:  cobra.ExactArgs(1),
	Run:   convertRun,
}

func init() {
	convertCmd.Flags().StringVarP(&convertParams.Format, "format", "t", "json", "output format: json, toml, yaml")
	convertCmd.Flags().StringVarP(&convertParams.Output, "output", "o", "", "output file path (default stdout)")
	convertCmd.Flags().BoolVar(&convertParams.NoInfer, "no-infer", false, "disable scalar type inference")
}

func convertRun(cmd *cobra.Command, args []string) {
	opts := adf.DefaultParseOptions()
	opts.InferTypes = !convertParams.NoInfer

	doc, err := adf.ParseFileWithOptions(args[0], opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	var out string
	switch convertParams.Format {
	case "json":
		out, err = doc.ToJSON()
	case "toml":
		out, err = doc.ToTOML()
	case "yaml":
		out, err = doc.ToYAML()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", convertParams.Format)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if convertParams.Output == "" {
		fmt.Println(out)
		return
	}
	if err := os.WriteFile(convertParams.Output, []byte(out+"\n"), 0644); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
