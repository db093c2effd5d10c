package main

import (
	"log"
	"net/http"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}

	if !cfg.Production() {
		if err := db.SeedAdmin(database, auth.DevEmail, auth.DevName, auth.DevPassword); err != nil {
			log.Printf("admin seed failed: %v", err)
		}
	}

	srv, err := server.New(database, cfg, "web/templates")
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv); err != nil {
		log.Fatal(err)
	}
}
