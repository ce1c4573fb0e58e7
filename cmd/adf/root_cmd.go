package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adf",
	Short: "Adf parses and converts Augmentable Data Format documents.",
	Long:  "Adf parses Augmentable Data Format documents and converts them to JSON, TOML, or YAML, or rewrites them in canonical form.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of adf",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("adf v0.1")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(fmtCmd)
}
