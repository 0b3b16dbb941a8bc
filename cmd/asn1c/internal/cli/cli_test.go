// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunSQLTarget(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "station.asn1")
	require.NoError(t, os.WriteFile(input, []byte(`
Station-Module DEFINITIONS AUTOMATIC TAGS ::= BEGIN
StationID ::= INTEGER (0..65535)
Beacon ::= SEQUENCE {
    id StationID,
    label UTF8String
}
END
`), 0o644))

	outDir := filepath.Join(dir, "out")
	err := run(context.Background(), "sql", outDir, []string{input})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "station_module.sql"))
	require.NoError(t, err)
	require.Contains(t, string(data), "CREATE TABLE beacon (")
}

func TestRunUnknownTarget(t *testing.T) {
	err := run(context.Background(), "cobol", t.TempDir(), nil)
	require.Error(t, err)
}

func TestRunParseError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.asn1")
	require.NoError(t, os.WriteFile(input, []byte("not valid asn1"), 0o644))

	err := run(context.Background(), "sql", filepath.Join(dir, "out"), []string{input})
	require.Error(t, err)
	require.Contains(t, err.Error(), input)
}
