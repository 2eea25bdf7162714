package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"strings"

	"yeardial/internal/render"
	"yeardial/pkg/dial"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	out := flag.String("out", "dial.png", "output PNG path")
	scale := flag.Float64("scale", 2, "pixel scale multiplier")
	drag := flag.String("drag", "", "pointer path in local coordinates, e.g. \"-40,10;0,-50\"")
	verbose := flag.Bool("v", false, "log every input event")
	var overrides kvList
	flag.Var(&overrides, "set", "dial option in key=value form: min, max, value, label (repeatable)")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *out, *scale, *drag, overrides); err != nil {
		logger.Error("dialsnap failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, out string, scale float64, drag string, overrides []string) error {
	opts := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("override %q: expected key=value", kv)
		}
		opts[parts[0]] = parts[1]
	}

	w, err := dial.New(dial.FromMap(opts), dial.WithLogger(logger))
	if err != nil {
		return err
	}
	w.Root().AddListener(func(ev dial.InputEvent) {
		logger.Debug("dial input", "value", ev.Value, "seq", ev.Seq)
	})

	events, err := parseDrag(drag)
	if err != nil {
		return err
	}
	for _, ev := range events {
		w.HandlePointer(ev)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := png.Encode(f, render.Rasterize(w.Scene(), scale)); err != nil {
		f.Close()
		os.Remove(out)
		return fmt.Errorf("encode %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(out)
		return fmt.Errorf("close %s: %w", out, err)
	}
	logger.Info("dial rendered", "out", out, "value", w.Value(), "events", len(events))
	return nil
}
