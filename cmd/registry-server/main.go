package main

import (
	"flag"
	"log"

	"github.com/democracychain/democracy-chain/pkg/app"
	"github.com/democracychain/democracy-chain/pkg/app/api"
	"github.com/democracychain/democracy-chain/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var runner app.Runner = api.NewServer(cfg)
	if err := runner.Run(); err != nil {
		log.Fatalf("registry server: %v", err)
	}
}
