package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	justaserver "github.com/Ghenzhiyiya/Just-A-Server"
	"github.com/Ghenzhiyiya/Just-A-Server/config"
)

func main() {
	log.SetPrefix("justaserver: ")

	cfg, err := config.FromArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("usage: %s [port] [document root]: %v", os.Args[0], err)
	}

	if err = cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	app := justaserver.New(cfg)
	app.NotifyOnStart(func() {
		log.Printf("listening on http://%s", app.Addr())
		log.Printf("document root: %s", cfg.Root)
		log.Println("press Ctrl+C to stop")
	})

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-signals
		log.Printf("%s received, exiting", sig)
		os.Exit(0)
	}()

	if err = app.Serve(); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
