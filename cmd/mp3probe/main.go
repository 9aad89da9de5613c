// Command mp3probe inspects MPEG Audio elementary streams. It scans each
// input file, reports the recovered frame sequence and how many bytes had
// to be skipped during resynchronization, and can rewrite a cleaned stream
// or extract decoded PCM to a WAV file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

var version = "dev"

func main() {
	var (
		jsonOut  = flag.Bool("json", false, "emit one JSON report per file")
		wavOut   = flag.String("wav", "", "decode to PCM and write a WAV file (single input only)")
		cleanOut = flag.String("clean", "", "rewrite validated frames only, dropping resync noise (single input only)")
		maxSkip  = flag.Int64("max-skip", -1, "fail when skipped bytes exceed N (-1 disables)")
		verbose  = flag.Bool("v", false, "log resync events")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose || os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "usage: mp3probe [flags] file...\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if (*wavOut != "" || *cleanOut != "") && len(files) != 1 {
		slog.Error("-wav and -clean take exactly one input file")
		os.Exit(2)
	}

	slog.Debug("mp3probe starting", "version", version, "files", len(files))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, stopping", "signal", sig)
		cancel()
	}()

	reports := make([]*report, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			r, err := probeFile(ctx, path, *maxSkip)
			reports[i] = r
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}

	runErr := g.Wait()

	enc := json.NewEncoder(os.Stdout)
	for _, r := range reports {
		if r == nil {
			continue
		}
		if *jsonOut {
			if err := enc.Encode(r); err != nil {
				slog.Error("encoding report", "error", err)
				os.Exit(1)
			}
			continue
		}
		r.print(os.Stdout)
	}

	if runErr != nil {
		slog.Error("probe failed", "error", runErr)
		os.Exit(1)
	}

	if *cleanOut != "" {
		if err := writeClean(ctx, files[0], *cleanOut); err != nil {
			slog.Error("writing cleaned stream", "error", err)
			os.Exit(1)
		}
	}
	if *wavOut != "" {
		if err := writeWAV(files[0], *wavOut); err != nil {
			slog.Error("writing WAV", "error", err)
			os.Exit(1)
		}
	}
}
