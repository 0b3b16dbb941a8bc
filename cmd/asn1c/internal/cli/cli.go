// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the asn1c command-line surface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
	"golang.org/x/sync/errgroup"

	"asn1c.dev/asn1c"
	"asn1c.dev/asn1c/emit/protobuf"
	"asn1c.dev/asn1c/emit/rust"
	"asn1c.dev/asn1c/emit/sql"
	"asn1c.dev/asn1c/model"
	"asn1c.dev/asn1c/parser"
	"asn1c.dev/asn1c/resolve"
)

// version is set at build time via -ldflags "-X .../cli.version=v1.2.3".
var version = "v0.0.0-dev"

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Execute runs the asn1c root command against os.Args, returning a non-nil
// error when any input fails to compile. main translates that into exit
// code 1.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:           "asn1c -t <target> <outdir> <input.asn1>...",
		Short:         "Compile ASN.1 modules to a target representation",
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), target, args[0], args[1:])
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", `output target: "rust", "proto", or "sql"`)
	_ = cmd.MarkFlagRequired("target")

	if semver.IsValid(version) {
		cmd.Version = version
	} else {
		cmd.Version = version + " (unofficial build)"
	}
	return cmd
}

func run(ctx context.Context, target, outDir string, inputs []string) error {
	switch target {
	case "rust", "proto", "sql":
	default:
		return fmt.Errorf(`unknown target %q: want "rust", "proto", or "sql"`, target)
	}

	mods := make([]*asn1.Module, 0, len(inputs))
	for _, path := range inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		m, err := parser.Parse(string(data))
		if err != nil {
			return fmt.Errorf("%s:%s", path, err)
		}
		mods = append(mods, m)
		logger.DebugContext(ctx, "parsed module", "path", path, "module", m.Name)
	}

	res, err := resolve.Resolve(mods)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	prog, err := model.Project(res)
	if err != nil {
		return fmt.Errorf("project: %w", err)
	}

	files, err := renderTarget(target, prog)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", outDir, err)
	}
	return writeFiles(ctx, outDir, files)
}

func renderTarget(target string, prog *model.Program) (map[string][]byte, error) {
	switch target {
	case "rust":
		return rust.Render(prog)
	case "proto":
		return protobuf.Render(prog, protobuf.Options{})
	case "sql":
		return sql.Render(prog, sql.Options{})
	default:
		return nil, fmt.Errorf("unknown target %q", target)
	}
}

// writeFiles writes every rendered file to outDir, one goroutine per file:
// emission is per-module independent by construction (each emitter keys its
// output map by module name), so this is safe to parallelise.
func writeFiles(ctx context.Context, outDir string, files map[string][]byte) error {
	g, ctx := errgroup.WithContext(ctx)
	for name, content := range files {
		name, content := name, content
		g.Go(func() error {
			path := filepath.Join(outDir, filepath.FromSlash(name))
			if err := os.WriteFile(path, content, 0o644); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.DebugContext(ctx, "wrote file", "path", path, "bytes", len(content))
			return nil
		})
	}
	return g.Wait()
}
