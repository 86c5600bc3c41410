package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gotasks/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   database DSN (SQLite file/URI or postgres:// DSN)
//	-s string   session cookie HMAC secret key
//	-t int      session validity, hours
//	-r int      "remember" session validity, hours
//	-o string   task list sort order: "asc" or "desc"
//	-v          debug logging
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers in hours and then converted
//     to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-r", "-o", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidityDuration := fs.Int("t", int(config.SessionValidityDuration.Hours()), "session_validity_duration (in hours)")
	rememberValidityDuration := fs.Int("r", int(config.RememberValidityDuration.Hours()), "remember_validity_duration (in hours)")

	fs.StringVar(&config.TaskSortOrder, "o", config.TaskSortOrder, "task sort order (asc or desc)")
	fs.BoolVar(&config.Debug, "v", config.Debug, "debug logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidityDuration) * time.Hour
	config.RememberValidityDuration = time.Duration(*rememberValidityDuration) * time.Hour
}
