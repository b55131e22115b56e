package main

import (
	"fmt"
	"os"

	v1 "cdn_manager/api/v1"
	"cdn_manager/internal/cli"
	"cdn_manager/internal/config"
	"cdn_manager/internal/db"
	"cdn_manager/internal/display"
	"cdn_manager/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()

	// 1. Load configuration (INI file if CDN_CONFIG_FILE points at one,
	// otherwise environment with .env autoload)
	var cfg *config.Config
	var err error
	if iniPath := os.Getenv("CDN_CONFIG_FILE"); iniPath != "" {
		cfg, err = config.LoadFromINI(iniPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	if level, perr := logrus.ParseLevel(cfg.LogLevel); perr == nil {
		logger.SetLevel(level)
	}

	// 2. Parse the command line
	args, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	// 3. Open the store
	gdb, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close(gdb)

	if err := db.Migrate(gdb); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	s := store.New(gdb)

	// 4. Dispatch
	if args.Command == cli.CmdServe {
		addr := args.Addr
		if addr == "" {
			addr = cfg.HTTPAddr
		}

		gin.SetMode(gin.ReleaseMode)
		r := gin.New()
		r.Use(gin.Recovery())
		v1.SetupRouter(r, s, logger)

		logger.Infof("Server starting on %s", addr)
		if err := r.Run(addr); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
		return
	}

	fmt.Print(display.Banner())
	if err := cli.Run(args, cfg, s, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "  %s✗ %v%s\n\n", display.Red, err, display.Reset)
		os.Exit(1)
	}
}
