package config

import (
	"flag"
	"os"
	"time"

	"github.com/dpetrov/authms/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret
//	-t int      token TTL, minutes
//	-b int      bcrypt cost factor
//	-r bool     re-issue token on successful verification
//
// os.Args is filtered to the flags handled here first, so the -c/-config
// flags consumed by the JSON layer do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-b", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.JWTSecret, "s", config.JWTSecret, "JWT secret key")

	tokenTTL := fs.Int("t", int(config.TokenTTL.Minutes()), "token TTL (in minutes)")

	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost factor")
	fs.BoolVar(&config.RenewOnVerify, "r", config.RenewOnVerify, "re-issue token on verification")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t is whole minutes, so writing it back unconditionally would truncate
	// a sub-minute TTL coming from the JSON or env layers. Apply it only when
	// the flag was actually passed.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenTTL = time.Duration(*tokenTTL) * time.Minute
		}
	})
}
