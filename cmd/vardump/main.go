// Command vardump renders a YAML or JSON document as a variable dump.
//
// The document is read from a file argument or stdin; each top-level
// mapping entry becomes one named variable in the output tree.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bjaus/vardump"
	"github.com/spf13/cobra"
)

var (
	format   string
	maxDepth int
	style    string
	output   string
)

func init() {
	rootCmd.Flags().StringVarP(&format, "format", "f", "html", "Output format (html or text)")
	rootCmd.Flags().IntVarP(&maxDepth, "max-depth", "d", vardump.DefaultMaxDepth, "Maximum nesting depth")
	rootCmd.Flags().StringVarP(&style, "style", "s", "", "CSS declarations for the HTML container")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Write output to file instead of stdout")
}

var rootCmd = &cobra.Command{
	Use:   "vardump [file]",
	Short: "Render a YAML or JSON document as a variable dump",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		vars, err := vardump.ParseDocument(data)
		if err != nil {
			return fmt.Errorf("failed to parse document: %w", err)
		}
		f, err := vardump.ParseFormat(format)
		if err != nil {
			return err
		}
		opts := []vardump.Option{
			vardump.WithFormat(f),
			vardump.WithMaxDepth(maxDepth),
		}
		if style != "" {
			opts = append(opts, vardump.WithStyle(style))
		}
		var w io.Writer = cmd.OutOrStdout()
		if output != "" {
			file, err := os.Create(output)
			if err != nil {
				return err
			}
			defer file.Close()
			w = file
		}
		return vardump.Write(w, vars, opts...)
	},
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
