package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-s string   session JWT HMAC secret key
//	-t int      session credential validity, minutes
//	-l int      challenge TTL, seconds
//	-r int      challenge reap interval, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration
// flags are accepted as integers and converted to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-l", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidityDuration := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session_validity_duration (in minutes)")
	challengeTTL := fs.Int("l", int(config.ChallengeTTL.Seconds()), "challenge_ttl (in seconds)")
	reapInterval := fs.Int("r", int(config.ReapInterval.Seconds()), "reap_interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidityDuration) * time.Minute
	config.ChallengeTTL = time.Duration(*challengeTTL) * time.Second
	config.ReapInterval = time.Duration(*reapInterval) * time.Second
}
