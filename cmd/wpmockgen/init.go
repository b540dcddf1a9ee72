package main

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/flemzord/wpmock/internal/manifest"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func initCmd() *cobra.Command {
	var (
		output    string
		pkg       string
		functions []string
		noInput   bool
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a manifest",
		Long: `Scaffold a manifest file.

Without --no-input an interactive form asks for the package and the
function names. Behaviors and Go names can be edited in the file afterwards.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !noInput {
				if err := askScaffold(&pkg, &functions, &force, output); err != nil {
					return err
				}
			}
			if _, err := os.Stat(output); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", output)
			}

			m := scaffold(pkg, functions)
			if err := manifest.Validate(m); err != nil {
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer f.Close()
			if err := writeManifest(f, m); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s with %d functions\n", output, len(m.Functions))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "manifest.yaml", "Manifest file to create")
	cmd.Flags().StringVar(&pkg, "package", "wp", "Go package of the generated functions")
	cmd.Flags().StringSliceVarP(&functions, "function", "f", nil, "Platform function name (repeatable)")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "Use the flags without asking")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing manifest")

	return cmd
}

// askScaffold fills the scaffold parameters from an interactive form.
func askScaffold(pkg *string, functions *[]string, force *bool, output string) error {
	names := strings.Join(*functions, "\n")
	fields := []huh.Field{
		huh.NewInput().
			Title("Go package").
			Value(pkg).
			Validate(func(s string) error {
				if !token.IsIdentifier(s) {
					return errors.New("not a Go identifier")
				}
				return nil
			}),
		huh.NewText().
			Title("Platform functions, one per line").
			Value(&names),
	}
	if _, err := os.Stat(output); err == nil {
		fields = append(fields, huh.NewConfirm().
			Title(fmt.Sprintf("Overwrite %s?", output)).
			Value(force))
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return err
	}
	*functions = strings.Fields(names)
	return nil
}

// scaffold builds a manifest forwarding every name.
func scaffold(pkg string, names []string) *manifest.Manifest {
	m := &manifest.Manifest{Package: pkg}
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		e := manifest.Entry{Name: name}
		if manifest.GoName(name) == "" {
			e.GoName = fmt.Sprintf("Func%d", len(m.Functions))
		}
		m.Functions = append(m.Functions, e)
	}
	return m
}

func writeManifest(w io.Writer, m *manifest.Manifest) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return enc.Close()
}
