// cmd/injgen/main.go
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// This binary generates compile-time injection components.
//
// It reads a JSON spec listing bindings (a name, a Go type and the
// constructor that builds it from other bindings) and injection targets,
// then writes a component with:
//   - one memoised Provide<Name>() method per binding
//   - one Inject<Target>(t *Target) method per target
//
// All dependency resolution happens here, at generation time: the generated
// code is plain constructor calls in dependency order.

// Binding is one node of the component graph.
type Binding struct {
	// Name is used for method naming (Provide<Name>) and as the dep reference.
	Name string `json:"name"`

	// Type is the Go type the constructor returns.
	Type string `json:"type"`

	// Constructor is a function in the target package. It is called with the
	// values of Deps, in order.
	Constructor string `json:"constructor"`

	// Deps are binding names.
	Deps []string `json:"deps"`
}

// Injection assigns one binding to one field of a target.
type Injection struct {
	Field   string `json:"field"`
	Binding string `json:"binding"`
}

// Target is a struct type that receives bindings through field assignment.
type Target struct {
	Type       string      `json:"type"`
	Injections []Injection `json:"injections"`
}

// Spec is the full input schema consumed by the generator.
type Spec struct {
	Package   string    `json:"package"`
	Component string    `json:"component"`
	Bindings  []Binding `json:"bindings"`
	Targets   []Target  `json:"targets"`
}

// templateBinding is a Binding with the derived names the template needs.
type templateBinding struct {
	Binding
	Field string
	Args  string
}

type templateData struct {
	Spec     Spec
	Bindings []templateBinding
}

// run executes the generator and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("injgen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	specPath := flags.String("spec", "", "path to component.inject.json")
	outPath := flags.String("out", "", "output .gen.go file path")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*specPath) == "" || strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: injgen -spec <file.inject.json> -out <file.gen.go>")
		return 2
	}

	specBytes, err := os.ReadFile(*specPath)
	must(err)

	var spec Spec
	must(json.Unmarshal(specBytes, &spec))

	validateSpec(&spec)

	src, err := render(spec)
	must(err)

	must(writeFileAtomic(filepath.Clean(*outPath), src, 0o644))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// render executes the template for a validated spec and gofmts the result.
func render(spec Spec) ([]byte, error) {
	data := templateData{Spec: spec}
	for _, b := range spec.Bindings {
		args := make([]string, len(b.Deps))
		for i, dep := range b.Deps {
			args[i] = "c.Provide" + dep + "()"
		}
		data.Bindings = append(data.Bindings, templateBinding{
			Binding: b,
			Field:   lowerFirst(b.Name),
			Args:    strings.Join(args, ", "),
		})
	}

	var out bytes.Buffer
	if err := genTemplate.Execute(&out, data); err != nil {
		return nil, err
	}
	return format.Source(out.Bytes())
}

// validateSpec panics with a descriptive error when the spec cannot produce
// a compilable component.
func validateSpec(spec *Spec) {
	var missingFields []string

	requireNonEmpty := func(fieldName, value string) {
		if strings.TrimSpace(value) == "" {
			missingFields = append(missingFields, fieldName)
		}
	}

	requireNonEmpty("package", spec.Package)
	requireNonEmpty("component", spec.Component)

	if len(spec.Bindings) == 0 {
		missingFields = append(missingFields, "bindings (must have at least 1)")
	}

	if len(missingFields) > 0 {
		panic(fmt.Errorf("spec missing required fields: %v", missingFields))
	}

	byName := make(map[string]Binding, len(spec.Bindings))
	for _, b := range spec.Bindings {
		if b.Name == "" || b.Type == "" || b.Constructor == "" {
			panic(fmt.Errorf("each binding must have name/type/constructor; got: %+v", b))
		}
		if _, ok := byName[b.Name]; ok {
			panic(fmt.Errorf("duplicate binding name: %s", b.Name))
		}
		byName[b.Name] = b
	}

	for _, b := range spec.Bindings {
		for _, dep := range b.Deps {
			if _, ok := byName[dep]; !ok {
				panic(fmt.Errorf("binding %s depends on unknown binding %s", b.Name, dep))
			}
		}
	}

	checkAcyclic(spec.Bindings, byName)

	for _, t := range spec.Targets {
		if t.Type == "" || len(t.Injections) == 0 {
			panic(fmt.Errorf("each target must have a type and at least one injection; got: %+v", t))
		}
		seenFields := make(map[string]struct{}, len(t.Injections))
		for _, inj := range t.Injections {
			if _, ok := byName[inj.Binding]; !ok {
				panic(fmt.Errorf("target %s injects unknown binding %s", t.Type, inj.Binding))
			}
			if _, ok := seenFields[inj.Field]; ok {
				panic(fmt.Errorf("target %s injects field %s twice", t.Type, inj.Field))
			}
			seenFields[inj.Field] = struct{}{}
		}
	}
}

// checkAcyclic panics with the offending path when the bindings form a cycle.
// Memoised providers would otherwise recurse forever at runtime.
func checkAcyclic(bindings []Binding, byName map[string]Binding) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(bindings))

	var visit func(name string, path []string)
	visit = func(name string, path []string) {
		switch state[name] {
		case done:
			return
		case visiting:
			panic(fmt.Errorf("dependency cycle: %s", strings.Join(append(path, name), " -> ")))
		}
		state[name] = visiting
		for _, dep := range byName[name].Deps {
			visit(dep, append(path, name))
		}
		state[name] = done
	}

	for _, b := range bindings {
		visit(b.Name, nil)
	}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// genTemplate is the Go source template for the component.
var genTemplate = template.Must(
	template.New("injgen").Parse(`// Code generated by injgen; DO NOT EDIT.

package {{.Spec.Package}}

// {{.Spec.Component}} is a compile-time wired component.
// Every binding is constructed at most once per component.
type {{.Spec.Component}} struct {
{{- range .Bindings}}
	{{.Field}} {{.Type}}
	has{{.Name}} bool
{{- end}}
}

// New{{.Spec.Component}} returns an empty {{.Spec.Component}}; bindings are built on first use.
func New{{.Spec.Component}}() *{{.Spec.Component}} {
	return &{{.Spec.Component}}{}
}
{{range .Bindings}}
// Provide{{.Name}} returns the component's {{.Type}}.
func (c *{{$.Spec.Component}}) Provide{{.Name}}() {{.Type}} {
	if !c.has{{.Name}} {
		c.{{.Field}} = {{.Constructor}}({{.Args}})
		c.has{{.Name}} = true
	}
	return c.{{.Field}}
}
{{end}}
{{- range .Spec.Targets}}
// Inject{{.Type}} assigns the component's bindings to t.
func (c *{{$.Spec.Component}}) Inject{{.Type}}(t *{{.Type}}) {
{{- range .Injections}}
	t.{{.Field}} = c.Provide{{.Binding}}()
{{- end}}
}
{{end}}`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes to a temporary file in the target directory and
// renames it over targetPath, so readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	tmpFile, err := createTempFile(filepath.Dir(targetPath), filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	return renameFile(tmpPath, targetPath)
}

// must panics if err is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
