package cmd

import "testing"

func TestVersion(t *testing.T) {
	t.Run("text output", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("version")
		env.contains(out, "licenser dev")
		env.contains(out, "go version:")
		env.contains(out, "platform:")
	})

	t.Run("json output", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("version", "-o", "json")
		env.contains(out, `"build_tag":"dev"`)
		env.contains(out, `"go_version":`)
	})
}
