// Package flagx contains a small helper for pre-parsing the config-file flag
// before the rest of the configuration (which may itself come from that file)
// is loaded.
package flagx

import (
	"os"
	"strings"
)

// ConfigFileFlag scans args for a -c/-config/--config flag and returns its
// value, or "" if the flag is absent. Both "-config path" and "-config=path"
// forms are accepted. Other flags are left alone so packages can define
// their own without clashing with the standard flag package.
func ConfigFileFlag(args []string) string {
	isConfigFlag := func(name string) bool {
		name = strings.TrimLeft(name, "-")
		return name == "c" || name == "config"
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, value, ok := strings.Cut(arg, "="); ok {
			if isConfigFlag(name) {
				return value
			}
			continue
		}

		if isConfigFlag(arg) && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			return args[i+1]
		}
	}

	return ""
}

// ConfigFileFromArgs is a convenience wrapper over os.Args.
func ConfigFileFromArgs() string {
	return ConfigFileFlag(os.Args[1:])
}
