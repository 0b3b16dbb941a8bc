// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command asn1gen is a thin go:generate wrapper around asn1/inline: it
// reads one or more ASN.1 module files, compiles them with
// inline.CompileModules, renders Go source with asn1/emit/golang, and writes the
// result next to the caller. A typical invocation lives in a source
// comment:
//
//	//go:generate go run asn1c.dev/asn1c/cmd/asn1gen -o station_gen.go station.asn1
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"asn1c.dev/asn1c/emit/golang"
	"asn1c.dev/asn1c/inline"
)

func main() {
	if err := newCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var (
		out        string
		pkg        string
		importPath string
	)
	cmd := &cobra.Command{
		Use:           "asn1gen -o <output.go> <input.asn1>...",
		Short:         "Generate Go source for an ASN.1 schema",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(out, pkg, importPath, args)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file path (required)")
	cmd.Flags().StringVar(&pkg, "package", "", "generated package name (default: the sanitized ASN.1 module name)")
	cmd.Flags().StringVar(&importPath, "uper-import", "", "import path for the uper codec package")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func run(out, pkg, importPath string, inputs []string) error {
	schemas := make([]string, 0, len(inputs))
	for _, path := range inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		schemas = append(schemas, string(data))
	}

	prog, err := inline.CompileModules(schemas...)
	if err != nil {
		return err
	}

	files, err := golang.Render(prog, golang.Options{Package: pkg, ImportPath: importPath})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	// Multiple modules concatenate into the single requested output file,
	// in module-name order for reproducible output; golang.Render already
	// gofmt-normalized each one individually.
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var content []byte
	for _, name := range names {
		content = append(content, files[name]...)
	}

	if err := os.WriteFile(out, content, 0o644); err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}
	return nil
}
