package main

import (
	"context"
	"log"

	"github.com/dpetrov/authms/internal/client/cli"
	"github.com/dpetrov/authms/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
