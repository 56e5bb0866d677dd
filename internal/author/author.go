// Package author resolves the copyright holder name used in generated
// licenses and injected headers.
//
// Resolution order: explicit configuration, then the version-control user
// name (git config), then the author field of a package.json manifest in
// the working directory. Every source is best-effort; an empty result is
// valid and the CLI decides whether a name is required for a given command.
package author

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jpl-au/licenser/internal/config"
)

// Detect returns the author name for dir, or "" when no source provides one.
func Detect(dir string) string {
	if cfg, err := config.Load(); err == nil && cfg.Author.Name != "" {
		return cfg.Author.Name
	}
	if name := gitUserName(dir); name != "" {
		return name
	}
	return manifestAuthor(dir)
}

// gitUserName shells out to git for the configured user name.
// Returns "" when git is missing, the command fails, or nothing is set.
func gitUserName(dir string) string {
	cmd := exec.Command("git", "config", "--get", "user.name")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// manifest is the subset of package.json we care about. The author field
// is either a plain string ("Jane Doe <jane@example.com>") or an object
// with a name property; both forms appear in the wild.
type manifest struct {
	Author json.RawMessage `json:"author"`
}

// manifestAuthor reads the author from a package.json in dir, if present.
func manifestAuthor(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return ""
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil || len(m.Author) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(m.Author, &s); err == nil {
		// String form may carry "<email>" and "(url)" suffixes.
		if i := strings.IndexAny(s, "<("); i >= 0 {
			s = s[:i]
		}
		return strings.TrimSpace(s)
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(m.Author, &obj); err == nil {
		return strings.TrimSpace(obj.Name)
	}
	return ""
}
