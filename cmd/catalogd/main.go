package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/openmerch/catalogd/config"
	"github.com/openmerch/catalogd/internal/adminapi"
	"github.com/openmerch/catalogd/internal/app"
	"github.com/openmerch/catalogd/internal/webserver"
)

var (
	configFile = flag.String("c", "catalogd.yml", "config file path")
	initDb     = flag.Bool("initdb", false, "drop and recreate the database schema, then exit")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	application := app.NewApplication(cfg)
	if err := application.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "init application: %v\n", err)
		os.Exit(1)
	}
	defer application.Release()

	if *initDb {
		application.InitDb()
		zap.S().Info("database schema recreated")
		return
	}

	webserver.Init(application)
	webserver.Health()
	adminapi.InitRouter()

	go func() {
		if err := webserver.Instance().Listen(); err != nil {
			zap.S().Errorf("web server stopped: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	zap.S().Info("shutting down")
}
