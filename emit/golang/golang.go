// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package golang renders a [model.Program] as Go source: one file per
// module, with a struct or named type per emitted [model.Type] and
// MarshalUPER/UnmarshalUPER methods implementing the CodecDriver contract
// (asn1c.dev/asn1c/uper's Writer/Reader pair).
package golang

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"asn1c.dev/asn1c/model"
)

// Options configures the rendered output.
type Options struct {
	// Package is the Go package name emitted at the top of each file.
	// Defaults to the module's name, lowercased and stripped of
	// non-identifier characters, if empty.
	Package string

	// ImportPath is the import path used to reach asn1c.dev/asn1c/uper.
	// Defaults to "asn1c.dev/asn1c/uper".
	ImportPath string
}

// Render renders every module in prog, returning one formatted Go source
// file per module keyed by module name.
func Render(prog *model.Program, opts Options) (map[string][]byte, error) {
	out := make(map[string][]byte, len(prog.Modules))
	for _, m := range prog.Modules {
		src, err := renderModule(m, opts)
		if err != nil {
			return nil, fmt.Errorf("emit/golang: module %s: %w", m.Name, err)
		}
		out[m.Name] = src
	}
	return out, nil
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by asn1c; DO NOT EDIT.

package {{.Package}}

import (
	"fmt"
{{if .NeedsRoot}}	"asn1c.dev/asn1c"
{{end}}	"{{.ImportPath}}"
)

{{range .Decls}}{{.}}
{{end}}`))

type fileData struct {
	Package    string
	ImportPath string
	Decls      []string
	NeedsRoot  bool
}

func renderModule(m *model.Module, opts Options) ([]byte, error) {
	pkg := opts.Package
	if pkg == "" {
		pkg = sanitizePackageName(m.Name)
	}
	importPath := opts.ImportPath
	if importPath == "" {
		importPath = "asn1c.dev/asn1c/uper"
	}

	g := &generator{}
	data := fileData{Package: pkg, ImportPath: importPath}
	for _, t := range m.Types {
		decl, err := g.renderType(t)
		if err != nil {
			return nil, err
		}
		if strings.Contains(decl, "asn1.") {
			data.NeedsRoot = true
		}
		data.Decls = append(data.Decls, decl)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w\n%s", err, buf.String())
	}
	return formatted, nil
}

func sanitizePackageName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "asn1gen"
	}
	return b.String()
}

// generator holds rendering state for one module (currently stateless, but
// kept as a type so per-module caching can be added without changing the
// call sites in Render).
type generator struct{}

func (g *generator) renderType(t *model.Type) (string, error) {
	switch t.Kind {
	case model.KindStruct:
		return g.renderStruct(t)
	case model.KindChoice:
		return g.renderChoice(t)
	case model.KindEnum:
		return g.renderEnum(t)
	case model.KindIntAlias:
		return g.renderIntAlias(t)
	case model.KindBytesAlias:
		return g.renderBytesAlias(t)
	case model.KindStringAlias:
		return g.renderStringAlias(t)
	case model.KindListAlias:
		return g.renderListAlias(t)
	default:
		return "", fmt.Errorf("unsupported emitted kind %v for %s", t.Kind, t.Name)
	}
}
