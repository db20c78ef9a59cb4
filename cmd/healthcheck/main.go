package main

import (
	"cmp"
	"context"
	"github.com/rs/zerolog"
	"github.com/sirrobot01/realdebrid/internal/config"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid"
	"os"
	"time"
)

// healthcheck exits 0 when the API answers /time with the configured
// base URL and proxy. It needs no token.
func main() {
	cfg, err := config.Load(cmp.Or(os.Getenv("RD_CONFIG"), config.DefaultPath()))
	if err != nil {
		os.Exit(1)
	}

	rdConfig, opts := cfg.Client(zerolog.Nop(), "")
	rdConfig.Token = ""
	debrid, err := realdebrid.New(rdConfig, opts...)
	if err != nil {
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := debrid.Time(ctx); err != nil {
		os.Exit(1)
	}

	os.Exit(0)
}
