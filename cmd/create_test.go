package cmd

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestCreate(t *testing.T) {
	t.Run("writes license file", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("create", "mit", "-n", "Jane Doe")
		env.contains(out, "wrote LICENSE (MIT)")

		content := env.read("LICENSE")
		env.contains(content, "MIT License")
		env.contains(content, "Jane Doe")
		env.contains(content, strconv.Itoa(time.Now().Year()))
	})

	t.Run("identifier is case-insensitive", func(t *testing.T) {
		env := newTestEnv(t)

		env.run("create", "ApAcHe-2.0", "-n", "Jane Doe")
		env.contains(env.read("LICENSE"), "Apache License")
	})

	t.Run("explicit year", func(t *testing.T) {
		env := newTestEnv(t)

		env.run("create", "mit", "-n", "Jane Doe", "-y", "1999")
		env.contains(env.read("LICENSE"), "Copyright (c) 1999 Jane Doe")
	})

	t.Run("custom output file", func(t *testing.T) {
		env := newTestEnv(t)

		env.run("create", "isc", "-n", "Jane Doe", "--file", "COPYING")
		if !env.exists("COPYING") {
			t.Fatal("create --file COPYING did not write COPYING")
		}
		if env.exists("LICENSE") {
			t.Error("create --file COPYING also wrote LICENSE")
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("LICENSE", "existing content")

		out, err := env.runErr("create", "mit", "-n", "Jane Doe")
		if err == nil {
			t.Fatal("create over existing LICENSE succeeded, want error")
		}
		env.contains(out, "already exists")
		env.equals(env.read("LICENSE"), "existing content")
	})

	t.Run("force overwrites", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("LICENSE", "existing content")

		env.run("create", "mit", "-n", "Jane Doe", "--force")
		env.contains(env.read("LICENSE"), "MIT License")
	})

	t.Run("uses configured default license", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "license.default", "mit")

		env.run("create", "-n", "Jane Doe")
		env.contains(env.read("LICENSE"), "MIT License")
	})

	t.Run("no license and no default fails", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("create", "-n", "Jane Doe")
		if err == nil {
			t.Fatal("create without license succeeded, want error")
		}
		env.contains(out, "license.default")
	})

	t.Run("unknown license lists available", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("create", "gpl-99", "-n", "Jane Doe")
		if err == nil {
			t.Fatal("create gpl-99 succeeded, want error")
		}
		env.contains(out, "MIT")
	})

	t.Run("missing name fails with guidance", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("create", "mit")
		if err == nil {
			t.Fatal("create without name succeeded, want error")
		}
		env.contains(out, "licenser config author.name")
	})

	t.Run("name from config", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "author.name", "Config Holder")

		env.run("create", "mit")
		env.contains(env.read("LICENSE"), "Config Holder")
	})

	t.Run("name from package.json", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("package.json", `{"name": "demo", "author": "Manifest Holder <mh@example.com>"}`)

		env.run("create", "mit")
		env.contains(env.read("LICENSE"), "Manifest Holder")
	})

	t.Run("headers flag injects matched files", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("src/main.go", "package main\n")
		env.write("src/lib/util.go", "package lib\n")
		env.write("src/readme.txt", "notes\n")

		out := env.run("create", "mit", "-n", "Jane Doe", "--headers", "src/**/*.go")
		env.contains(out, "2 files modified")
		env.contains(env.read("src/main.go"), "SPDX-License-Identifier: MIT")
		env.contains(env.read("src/lib/util.go"), "SPDX-License-Identifier: MIT")
		if strings.Contains(env.read("src/readme.txt"), "SPDX") {
			t.Error("create --headers modified a non-matching file")
		}
	})

	t.Run("json output", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("create", "mit", "-n", "Jane Doe", "-o", "json")
		env.contains(out, `"license":"MIT"`)
		env.contains(out, `"file":"LICENSE"`)
	})
}
