package header

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeader = Header{SPDX: "MIT", Name: "Jane Doe", Year: "2026"}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestApply(t *testing.T) {
	t.Run("prepends header", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "main.go", "package main\n")

		n := Apply([]string{path}, testHeader)
		assert.Equal(t, 1, n)

		got := read(t, path)
		assert.Equal(t, "// SPDX-License-Identifier: MIT\n// Copyright (c) 2026 Jane Doe\n\npackage main\n", got)
	})

	t.Run("idempotent", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "main.go", "package main\n")

		assert.Equal(t, 1, Apply([]string{path}, testHeader))
		first := read(t, path)

		assert.Equal(t, 0, Apply([]string{path}, testHeader))
		assert.Equal(t, first, read(t, path))
	})

	t.Run("shebang stays first line", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "run.js", "#!/usr/bin/env node\nconsole.log(1);\n")

		assert.Equal(t, 1, Apply([]string{path}, testHeader))

		lines := strings.Split(read(t, path), "\n")
		require.GreaterOrEqual(t, len(lines), 5)
		assert.Equal(t, "#!/usr/bin/env node", lines[0])
		assert.Equal(t, "// SPDX-License-Identifier: MIT", lines[1])
		assert.Equal(t, "// Copyright (c) 2026 Jane Doe", lines[2])
		assert.Equal(t, "", lines[3])
		assert.Equal(t, "console.log(1);", lines[4])
	})

	t.Run("shebang without trailing newline", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "run.sh", "#!/bin/sh")

		assert.Equal(t, 1, Apply([]string{path}, testHeader))
		got := read(t, path)
		assert.True(t, strings.HasPrefix(got, "#!/bin/sh\n"), "shebang must stay first: %q", got)
		assert.Contains(t, got, "# SPDX-License-Identifier: MIT")
	})

	t.Run("hash marker for scripts", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "setup.py", "print(1)\n")

		assert.Equal(t, 1, Apply([]string{path}, testHeader))
		assert.True(t, strings.HasPrefix(read(t, path), "# SPDX-License-Identifier: MIT\n# Copyright (c) 2026 Jane Doe\n\n"))
	})

	t.Run("unreadable file skipped silently", func(t *testing.T) {
		dir := t.TempDir()
		good := writeFile(t, dir, "a.go", "package a\n")
		missing := filepath.Join(dir, "gone.go")

		n := Apply([]string{missing, good}, testHeader)
		assert.Equal(t, 1, n)
		assert.Contains(t, read(t, good), Marker)
	})

	t.Run("count excludes already-licensed files", func(t *testing.T) {
		dir := t.TempDir()
		fresh := writeFile(t, dir, "a.go", "package a\n")
		done := writeFile(t, dir, "b.go", "// SPDX-License-Identifier: ISC\npackage b\n")

		assert.Equal(t, 1, Apply([]string{fresh, done}, testHeader))
	})

	t.Run("preserves file mode", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "run.sh")
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho hi\n"), 0755))

		assert.Equal(t, 1, Apply([]string{path}, testHeader))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	})
}

func TestPlan(t *testing.T) {
	t.Run("does not modify the file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "main.go", "package main\n")

		before, after, ok := Plan(path, testHeader)
		require.True(t, ok)
		assert.Equal(t, "package main\n", before)
		assert.Contains(t, after, Marker)
		assert.Equal(t, "package main\n", read(t, path))
	})

	t.Run("not ok for licensed file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "a.go", "// SPDX-License-Identifier: MIT\n")

		_, _, ok := Plan(path, testHeader)
		assert.False(t, ok)
	})
}

func TestMarkerFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "//"},
		{"index.ts", "//"},
		{"style.css", "//"},
		{"setup.PY", "#"},
		{"schema.sql", "--"},
		{"init.lua", "--"},
		{"noext", "//"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, markerFor(tc.path), "markerFor(%q)", tc.path)
	}
}
