package config

import (
	"encoding/json"
	"os"

	"github.com/dpetrov/authms/internal/flagx"
	"github.com/dpetrov/authms/internal/timex"
)

// JsonConfig is the DTO for the optional JSON config file. TokenTTL uses
// timex.Duration so the file may hold either "2h" or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	DatabaseDSN      string         `json:"database_dsn"`
	JWTSecret        string         `json:"jwt_secret"`
	TokenTTL         timex.Duration `json:"token_ttl"`
	BcryptCost       int            `json:"bcrypt_cost"`
	RenewOnVerify    *bool          `json:"renew_on_verify"`
}

// parseJson overlays values from the JSON file named by -c/-config, when one
// is given. Absent fields keep their current (default) values. An unreadable
// or invalid file is a startup error and panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.JWTSecret != "" {
		config.JWTSecret = c.JWTSecret
	}
	if c.TokenTTL.Duration != 0 {
		config.TokenTTL = c.TokenTTL.Duration
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.RenewOnVerify != nil {
		config.RenewOnVerify = *c.RenewOnVerify
	}
}
