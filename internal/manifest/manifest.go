// Package manifest loads and validates the list of platform functions the
// wp facade forwards.
package manifest

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/flemzord/wpmock/pkg/function"
	"gopkg.in/yaml.v3"
)

// Manifest is the top-level manifest structure.
type Manifest struct {
	// Package is the Go package the forwarding functions are generated in.
	Package string `yaml:"package"`

	// Functions lists the platform functions, in output order.
	Functions []Entry `yaml:"functions"`
}

// Entry describes one platform function.
type Entry struct {
	// Name is the platform name, e.g. "get_option".
	Name string `yaml:"name"`

	// GoName overrides the derived Go identifier.
	GoName string `yaml:"go_name,omitempty"`

	// Behavior is "forward" (default), "passthru" or "echo".
	Behavior string `yaml:"behavior,omitempty"`

	// Doc is appended to the generated doc comment.
	Doc string `yaml:"doc,omitempty"`
}

// Identifier returns the Go name of the forwarding function.
func (e Entry) Identifier() string {
	if e.GoName != "" {
		return e.GoName
	}
	return GoName(e.Name)
}

// Kind parses the entry behavior.
func (e Entry) Kind() (function.Behavior, error) {
	switch e.Behavior {
	case "", "forward":
		return function.Forward, nil
	case "passthru":
		return function.Passthru, nil
	case "echo":
		return function.Echo, nil
	}
	return 0, fmt.Errorf("unknown behavior %q", e.Behavior)
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: reading %s: %w", path, err)
	}
	m, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("manifest: parsing %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest. Unknown keys are rejected.
func Parse(raw []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(strings.NewReader(string(raw)))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the package name and every entry, reporting all problems.
func Validate(m *Manifest) error {
	var errs []error

	if m.Package == "" {
		errs = append(errs, errors.New("manifest: package is required"))
	} else if !token.IsIdentifier(m.Package) {
		errs = append(errs, fmt.Errorf("manifest: invalid package name %q", m.Package))
	}
	if len(m.Functions) == 0 {
		errs = append(errs, errors.New("manifest: at least one function is required"))
	}

	names := make(map[string]int)
	idents := make(map[string]int)
	for i, e := range m.Functions {
		if err := function.ValidateName(e.Name); err != nil {
			errs = append(errs, fmt.Errorf("manifest: functions[%d]: %w", i, err))
			continue
		}
		if prev, dup := names[e.Name]; dup {
			errs = append(errs, fmt.Errorf("manifest: functions[%d]: %q already declared at functions[%d]", i, e.Name, prev))
		}
		names[e.Name] = i

		if _, err := e.Kind(); err != nil {
			errs = append(errs, fmt.Errorf("manifest: functions[%d]: %w", i, err))
		}

		id := e.Identifier()
		if !token.IsIdentifier(id) || !token.IsExported(id) {
			errs = append(errs, fmt.Errorf("manifest: functions[%d]: %q is not an exported Go identifier (set go_name)", i, id))
			continue
		}
		if prev, dup := idents[id]; dup {
			errs = append(errs, fmt.Errorf("manifest: functions[%d]: Go name %s already used by functions[%d]", i, id, prev))
		}
		idents[id] = i
	}

	return errors.Join(errs...)
}

// GoName derives an exported Go identifier from a platform name:
// get_option → GetOption, Vendor\do_thing → VendorDoThing.
func GoName(name string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '\\' }) {
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}
