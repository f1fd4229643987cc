// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command countries prints the country catalogue once and exits.
//
// Usage:
//
//	countries [-endpoint URL] [-timeout D] [-search TEXT] [-v] [code]
//
// Without a code it prints one "flag name" line per country. With a code it
// prints that country's details. The exit status is 1 when the fetch fails or
// the code is unknown, and 2 on usage errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/countries/internal/core/country"
	"github.com/taibuivan/countries/internal/platform/constants"
	"github.com/taibuivan/countries/internal/platform/graphql"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	endpoint string
	timeout  time.Duration
	search   string
	verbose  bool
	code     string
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options

	flags := flag.NewFlagSet("countries", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.endpoint, "endpoint", constants.DefaultGraphQLEndpoint, "GraphQL endpoint URL")
	flags.DurationVar(&opts.timeout, "timeout", constants.DefaultFetchTimeout, "fetch timeout")
	flags.StringVar(&opts.search, "search", "", "only list countries whose name contains TEXT")
	flags.BoolVar(&opts.verbose, "v", false, "log fetch progress to stderr")
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "usage: countries [-endpoint URL] [-timeout D] [-search TEXT] [-v] [code]")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	switch flags.NArg() {
	case 0:
	case 1:
		opts.code = flags.Arg(0)
	default:
		flags.Usage()
		return opts, errors.New("at most one country code may be given")
	}

	if opts.timeout <= 0 {
		return opts, errors.New("-timeout must be positive")
	}

	return opts, nil
}

// run executes one fetch and renders the result. It returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, "countries:", err)
		return exitUsage
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	client := graphql.NewClient(opts.endpoint,
		graphql.WithHTTPClient(&http.Client{Timeout: opts.timeout}),
		graphql.WithUserAgent(constants.AppName+"/"+constants.AppVersion),
	)

	store := country.NewStateStore(ctx, country.NewGraphQLRepository(client), logger,
		country.WithFetchTimeout(opts.timeout),
	)
	<-store.Load()

	service := country.NewService(store, logger)

	if opts.code != "" {
		view := service.Detail(opts.code)
		if err := country.WriteDetail(stdout, view); err != nil {
			fmt.Fprintln(stderr, "countries:", err)
			return exitError
		}
		if view.Phase != country.PhaseSuccess {
			return exitError
		}
		return exitOK
	}

	view, _ := service.List(country.ListQuery{Search: opts.search})
	if err := country.WriteList(stdout, view); err != nil {
		fmt.Fprintln(stderr, "countries:", err)
		return exitError
	}
	if view.Phase != country.PhaseSuccess {
		return exitError
	}
	return exitOK
}
