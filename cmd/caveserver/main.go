package main

import (
	"flag"
	"log"
	"net/http"

	"ebiten-caves/config"
	"ebiten-caves/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	configPath := flag.String("config", "", "JSON generation config used as request defaults")
	flag.Parse()

	cfg := config.DefaultGenerationConfig()
	if *configPath != "" {
		loaded, err := config.LoadGenerationConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	defaults, err := cfg.ToSettings()
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Serving caves on %s", *addr)
	if err := http.ListenAndServe(*addr, server.SetupRoutes(defaults)); err != nil {
		log.Fatal(err)
	}
}
