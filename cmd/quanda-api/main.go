package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/quanda-dev/quanda/internal/config"
	"github.com/quanda-dev/quanda/internal/logger"
	"github.com/quanda-dev/quanda/internal/router"
	"github.com/quanda-dev/quanda/internal/setup"
)

func main() {
	log.SetFlags(log.Lshortfile)

	var configFolder string
	var storageKind string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&storageKind, "storage", "postgres", "backing store: postgres or memory")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJson)

	deps, err := setup.SetupDependencies(cfg, storageKind)
	if err != nil {
		log.Fatal(err)
	}
	defer deps.Cleanup()

	r := router.New(deps)

	log.Print("Server started")
	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	log.Fatal(http.ListenAndServe(":"+httpPort, r))
}
