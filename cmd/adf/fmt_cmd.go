package main

import (
	"fmt"
	"os"

	"github.com/solifugus/adf"
	"github.com/spf13/cobra"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Rewrite an ADF file in canonical serialized form",
	Args:  cobra.ExactArgs(1),
	Run:   fmtRun,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result back to the file instead of stdout")
}

func fmtRun(cmd *cobra.Command, args []string) {
	doc, err := adf.ParseFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if fmtWrite {
		if err := doc.Save(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}
	fmt.Println(doc.Serialize())
}
