package config

import (
	"flag"
	"os"
	"strings"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-b string   storage backend: memory, sqlite, redis, postgres
//	-s string   sqlite database path
//	-r string   redis address (host:port)
//	-d string   postgres DSN
//
// Only known flags are passed to the flag set so the config-file flag (and
// anything test frameworks add) does not trip parsing.
func parseFlags(cfg *Config) {
	args := filterArgs(os.Args[1:], []string{"-b", "-s", "-r", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (memory|sqlite|redis|postgres)")
	fs.StringVar(&cfg.SQLitePath, "s", cfg.SQLitePath, "sqlite database path")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address (host:port)")
	fs.StringVar(&cfg.PostgresDSN, "d", cfg.PostgresDSN, "postgres DSN")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

// filterArgs keeps only the allowed flags (and their values) from args.
// Both "-f value" and "-f=value" forms are recognized.
func filterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}
