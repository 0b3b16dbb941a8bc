// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	prog, err := Compile(`
M DEFINITIONS AUTOMATIC TAGS ::= BEGIN
StationID ::= INTEGER (0..65535)
END
`)
	require.NoError(t, err)
	require.Len(t, prog.Modules, 1)
	require.Len(t, prog.Modules[0].Types, 1)
	require.Equal(t, "StationID", prog.Modules[0].Types[0].Name)
}

func TestCompileInvalidSyntax(t *testing.T) {
	_, err := Compile(`M DEFINITIONS ::= BEGIN Foo ::= 123 END`)
	require.Error(t, err)
}
