package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/sidharth1507/DNS-Server/internal/config"
	"github.com/sidharth1507/DNS-Server/internal/logging"
	"github.com/sidharth1507/DNS-Server/internal/server"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "", "Configuration file path")
	flag.StringVar(&configFile, "c", "", "Configuration file path (shorthand)")
	flag.Usage = usage
	flag.Parse()

	loader := config.NewLoader()
	if configFile != "" {
		loader.SetConfigPaths([]string{configFile})
	}

	cfg, err := loader.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// An optional "host port" argument pair overrides the configured upstream
	switch flag.NArg() {
	case 0:
	case 2:
		cfg.Upstream.Address = net.JoinHostPort(flag.Arg(0), flag.Arg(1))
	default:
		usage()
		os.Exit(2)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logger.Sync()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case sig := <-sigChan:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		if err := srv.Close(); err != nil {
			logger.Error("error during shutdown", zap.Error(err))
		}
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}

	logger.Info("server stopped")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-config file] [upstream-host upstream-port]\n", os.Args[0])
	flag.PrintDefaults()
}
