// Package main is the entry point for wpmockgen.
// wpmockgen turns a manifest of WordPress platform functions into the Go
// forwarding functions of the wp facade.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flemzord/wpmock/internal/manifest"
	"github.com/spf13/cobra"
)

// Set by goreleaser ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errStale is returned by check when the generated file is out of date.
var errStale = errors.New("generated file is out of date")

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wpmockgen",
		Short:         "Generate wp facade functions from a manifest",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(generateCmd(), checkCmd(), initCmd(), versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print wpmockgen version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wpmockgen %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func generateCmd() *cobra.Command {
	var (
		manifestPath string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the forwarding functions for a manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := render(manifestPath)
			if err != nil {
				return err
			}
			if output == "-" {
				_, err := cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(output, src, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "manifest.yaml", "Manifest file")
	cmd.Flags().StringVarP(&output, "output", "o", "functions_gen.go", "Output file, - for stdout")

	return cmd
}

func checkCmd() *cobra.Command {
	var generated string

	cmd := &cobra.Command{
		Use:   "check <manifest>",
		Short: "Validate a manifest and optionally the file generated from it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := render(args[0])
			if err != nil {
				return err
			}
			if generated != "" {
				current, err := os.ReadFile(generated)
				if err != nil {
					return fmt.Errorf("reading %s: %w", generated, err)
				}
				if !bytes.Equal(current, src) {
					return fmt.Errorf("%s: %w, run wpmockgen generate", generated, errStale)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&generated, "generated", "", "Fail if this generated file is out of date")

	return cmd
}

// render loads, validates and generates the code for a manifest file.
func render(path string) ([]byte, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	params, err := NewCodegenParams(m, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Generate(&buf, params); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
