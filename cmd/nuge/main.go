package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/cute-angelia/nuge/components/inuge"
	"github.com/cute-angelia/nuge/utils/conf"
	"github.com/cute-angelia/nuge/utils/ibininfo"
	"github.com/cute-angelia/nuge/utils/ilog"
	"github.com/rs/zerolog/log"
)

var (
	configFile  string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "Path to the config file (optional)")
	flag.BoolVar(&showVersion, "version", false, "Print build info and exit")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println(ibininfo.String())
		return
	}

	conf.SetDefaults()
	if configFile != "" {
		conf.MustLoadConfigFile(configFile)
	}
	cfg, err := conf.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	if err := ilog.Init(
		ilog.WithLevel(cfg.LogLevel),
		ilog.WithConsole(cfg.LogConsole),
		ilog.WithFile(cfg.LogFile),
	); err != nil {
		fmt.Fprintln(os.Stderr, "log:", err)
		os.Exit(1)
	}

	c := inuge.New(
		inuge.WithAddr(cfg.Addr),
		inuge.WithStaticDir(cfg.StaticDir),
		inuge.WithMaxCount(cfg.MaxCount),
		inuge.WithApiLog(cfg.ApiLog),
		inuge.WithLogger(log.Logger),
	)

	_, port, err := net.SplitHostPort(c.Addr())
	if err != nil {
		port = c.Addr()
	}
	fmt.Printf("Server running at: http://127.0.0.1:%s\n", port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.Run(ctx); err != nil {
		log.Error().Err(err).Msg("nuge exited")
		stop()
		os.Exit(1)
	}
}
