package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flemzord/wpmock/internal/manifest"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleManifest = `package: wp
functions:
  - name: get_option
  - name: esc_html
    behavior: passthru
`

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	m := writeFile(t, dir, "manifest.yaml", sampleManifest)
	out := filepath.Join(dir, "functions_gen.go")

	if _, err := run(t, "generate", "-m", m, "-o", out); err != nil {
		t.Fatalf("generate: %v", err)
	}
	src, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "func GetOption(args ...any) any") {
		t.Errorf("unexpected output:\n%s", src)
	}

	stdout, err := run(t, "generate", "-m", m, "-o", "-")
	if err != nil {
		t.Fatalf("generate to stdout: %v", err)
	}
	if stdout != string(src) {
		t.Error("stdout output differs from file output")
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	m := writeFile(t, dir, "manifest.yaml", sampleManifest)
	gen := filepath.Join(dir, "functions_gen.go")

	if _, err := run(t, "check", m); err != nil {
		t.Fatalf("check: %v", err)
	}

	writeFile(t, dir, "functions_gen.go", "package wp\n")
	_, err := run(t, "check", m, "--generated", gen)
	if !errors.Is(err, errStale) {
		t.Errorf("expected errStale, got %v", err)
	}

	if _, err := run(t, "generate", "-m", m, "-o", gen); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "check", m, "--generated", gen); err != nil {
		t.Errorf("check after generate: %v", err)
	}
}

func TestCheckCommand_Invalid(t *testing.T) {
	m := writeFile(t, t.TempDir(), "manifest.yaml", "package: wp\nfunctions:\n  - name: echo\n")
	_, err := run(t, "check", m)
	if err == nil || !strings.Contains(err.Error(), "reserved word") {
		t.Errorf("expected reserved word error, got %v", err)
	}
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "manifest.yaml")

	_, err := run(t, "init", "--no-input", "-o", out, "--package", "wp",
		"-f", "get_option", "-f", "__", "-f", "get_option")
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	m, err := manifest.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Functions) != 2 {
		t.Fatalf("functions = %+v", m.Functions)
	}
	if m.Functions[1].GoName != "Func1" {
		t.Errorf("GoName = %q, want Func1", m.Functions[1].GoName)
	}
	if err := manifest.Validate(m); err != nil {
		t.Errorf("Validate: %v", err)
	}

	if _, err := run(t, "init", "--no-input", "-o", out, "-f", "x"); err == nil {
		t.Error("expected error when the manifest exists")
	}
	if _, err := run(t, "init", "--no-input", "--force", "-o", out, "-f", "is_admin"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "wpmockgen dev") {
		t.Errorf("version output = %q", out)
	}
}
