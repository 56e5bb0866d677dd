/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/
package main

import (
	"github.com/jpl-au/licenser/cmd"

	// Import extensions - each registers itself via init()
	_ "github.com/jpl-au/licenser/extension/all"
)

func main() {
	cmd.Execute()
}
