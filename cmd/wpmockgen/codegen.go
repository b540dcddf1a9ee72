package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"text/template"

	"github.com/flemzord/wpmock/internal/manifest"
	"github.com/flemzord/wpmock/pkg/function"
)

// CodegenParams controls the generated forwarding functions.
type CodegenParams struct {
	// Source is the manifest file name quoted in the header.
	Source string

	// Package is the package clause of the generated file.
	Package string

	// External is true when the file lives outside the wp package and must
	// import it.
	External bool

	Functions []CodegenFunction
}

// CodegenFunction is one forwarding function.
type CodegenFunction struct {
	Name     string
	GoName   string
	Behavior string
	Echo     bool
	Doc      string
}

const wpImport = "github.com/flemzord/wpmock/pkg/wp"

var genTmpl = template.Must(template.New("functions").Parse(`// Code generated by wpmockgen from {{.Source}}; DO NOT EDIT.

package {{.Package}}

{{if .External}}import (
	"github.com/flemzord/wpmock/pkg/function"
	"` + wpImport + `"
)
{{else}}import "github.com/flemzord/wpmock/pkg/function"
{{end}}
func init() {
{{- range .Functions}}
	function.Define({{printf "%q" .Name}}, function.{{.Behavior}})
{{- end}}
}
{{range .Functions}}
// {{.GoName}} forwards {{.Name}}.
{{- if .Doc}}
//
// {{.Doc}}
{{- end}}
func {{.GoName}}(args ...any) {{if not .Echo}}any {{end}}{
	{{if not .Echo}}return {{end}}{{if $.External}}wp.{{end}}Call({{printf "%q" .Name}}, args...)
}
{{end}}`))

// NewCodegenParams validates m and converts it to template parameters.
func NewCodegenParams(m *manifest.Manifest, source string) (CodegenParams, error) {
	if err := manifest.Validate(m); err != nil {
		return CodegenParams{}, err
	}
	params := CodegenParams{
		Source:   source,
		Package:  m.Package,
		External: m.Package != "wp",
	}
	for _, e := range m.Functions {
		b, _ := e.Kind()
		params.Functions = append(params.Functions, CodegenFunction{
			Name:     e.Name,
			GoName:   e.Identifier(),
			Behavior: behaviorIdent(b),
			Echo:     b == function.Echo,
			Doc:      e.Doc,
		})
	}
	return params, nil
}

func behaviorIdent(b function.Behavior) string {
	switch b {
	case function.Passthru:
		return "Passthru"
	case function.Echo:
		return "Echo"
	default:
		return "Forward"
	}
}

// Generate writes the gofmt-ed forwarding functions to w.
func Generate(w io.Writer, params CodegenParams) error {
	var buf bytes.Buffer
	if err := genTmpl.Execute(&buf, params); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}
	_, err = w.Write(src)
	return err
}
