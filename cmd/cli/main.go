package main

import (
	"context"
	"log"
	"os"

	"github.com/lingvocheck/client/internal/buildinfo"
	"github.com/lingvocheck/client/internal/client/cli"
	"github.com/lingvocheck/client/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
