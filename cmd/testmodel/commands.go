package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/testmodel/internal/builder"
	"github.com/Faultbox/testmodel/internal/config"
	"github.com/Faultbox/testmodel/internal/logger"
	"github.com/Faultbox/testmodel/internal/operator"
	"github.com/Faultbox/testmodel/internal/watch"
	"github.com/Faultbox/testmodel/pkg/dataset"
	"github.com/Faultbox/testmodel/pkg/export"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	logger.Sync()
	os.Exit(1)
}

// setup parses flags, loads config and initializes logging.
func setup(name string, args []string) (*config.Flags, *config.Config) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		fatalf("%v", err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fatalf("logger: %v", err)
	}
	logger.Sugar.Debugf("Config: %+v", cfg)
	return flags, cfg
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func cmdList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.Parse(args)

	fmt.Printf("%-14s %-14s %8s %8s %8s %10s\n", "TOKEN", "LABEL", "VERTS", "INDICES", "NORMALS", "TRIANGLES")
	for _, m := range dataset.Models() {
		ds := dataset.Lookup(m)
		fmt.Printf("%-14s %-14s %8d %8d %8d %10d\n",
			ds.Name, ds.Label, ds.VertexCount(), ds.IndexCount(), ds.NormalCount(), ds.TriangleCount())
	}
}

func cmdParams(args []string) {
	fs := flag.NewFlagSet("params", flag.ExitOnError)
	fs.Parse(args)

	fmt.Printf("Operator: %s (%s)\n\n", operator.OperatorName, operator.OperatorLabel)
	for _, tpl := range operator.Templates() {
		fmt.Printf("  %-20s %-8s %-34s default %s", tpl.Name, tpl.Type, tpl.Label, formatDefaults(tpl))
		if tpl.Range != nil {
			fmt.Printf("  range %g..%g", tpl.Range.Min, tpl.Range.Max)
		}
		fmt.Println()
		for i, c := range tpl.Choices {
			fmt.Printf("      %d  %-12s %s\n", i, c.Token, c.Label)
		}
	}
}

func formatDefaults(tpl operator.Template) string {
	if tpl.Type == operator.ParmChoice && len(tpl.Defaults) > 0 {
		idx := int(tpl.Defaults[0])
		if idx >= 0 && idx < len(tpl.Choices) {
			return tpl.Choices[idx].Token
		}
	}
	if tpl.Type == operator.ParmToggle && len(tpl.Defaults) > 0 {
		if tpl.Defaults[0] != 0 {
			return "on"
		}
		return "off"
	}
	parts := make([]string, len(tpl.Defaults))
	for i, d := range tpl.Defaults {
		parts[i] = fmt.Sprintf("%g", d)
	}
	return strings.Join(parts, ",")
}

func cmdBuild(args []string) {
	_, cfg := setup("build", args)
	defer logger.Sync()

	ctx, cancel := signalContext()
	defer cancel()

	table, err := newTable(logger.Named("operator"))
	if err != nil {
		fatalf("%v", err)
	}

	detail, stats, err := cook(ctx, table, cfg)
	if errors.Is(err, builder.ErrCancelled) {
		fatalf("interrupted after %d triangles", stats.Triangles)
	}
	if err != nil {
		fatalf("%v", err)
	}

	if err := export.WriteFile(cfg.Export.Output, cfg.Export.Format, cfg.Parameters.Model, detail); err != nil {
		fatalf("export: %v", err)
	}

	fmt.Printf("Wrote: %s (%d points, %d faces)\n", cfg.Export.Output, detail.NumPoints(), detail.NumPrimitives())
}

func cmdInfo(args []string) {
	_, cfg := setup("info", args)
	defer logger.Sync()

	ctx, cancel := signalContext()
	defer cancel()

	table, err := newTable(logger.Named("operator"))
	if err != nil {
		fatalf("%v", err)
	}

	model, err := dataset.ParseModel(cfg.Parameters.Model)
	if err != nil {
		fatalf("%v", err)
	}
	ds := dataset.Lookup(model)

	detail, stats, err := cook(ctx, table, cfg)
	if err != nil && !errors.Is(err, builder.ErrCancelled) {
		fatalf("%v", err)
	}

	valid := "ok"
	if verr := ds.Validate(); verr != nil {
		valid = verr.Error()
	}
	lo, hi := detail.Bounds()

	fmt.Printf("Model:     %s (%s)\n", ds.Label, valid)
	fmt.Printf("Source:    %d vertices, %d triangles, %d normals\n", ds.VertexCount(), ds.TriangleCount(), ds.NormalCount())
	fmt.Printf("Points:    %d (%d corners welded)\n", stats.Points, stats.Welded)
	fmt.Printf("Faces:     %d\n", stats.Faces)
	fmt.Printf("Normals:   %v\n", stats.Normals)
	fmt.Printf("Bounds:    (%g, %g, %g) - (%g, %g, %g)\n", lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
	if err != nil {
		fmt.Printf("Status:    interrupted after %d of %d triangles\n", stats.Triangles, ds.TriangleCount())
	}
}

func cmdWatch(args []string) {
	flags, cfg := setup("watch", args)
	defer logger.Sync()

	path := flags.ConfigPath()
	if path == "" {
		fmt.Fprintln(os.Stderr, "Usage: testmodel watch -config <file> [-o output]")
		os.Exit(1)
	}
	// Output comes from flags or the initial config; parameters are
	// re-read from the file on every change.
	output, format := cfg.Export.Output, cfg.Export.Format

	ctx, cancel := signalContext()
	defer cancel()

	log := logger.Named("watch")
	table, err := newTable(logger.Named("operator"))
	if err != nil {
		fatalf("%v", err)
	}

	w, err := watch.New(path, log)
	if err != nil {
		fatalf("%v", err)
	}
	defer w.Close()

	log.Info("watching", zap.String("config", path), zap.String("output", output))

	err = w.Run(ctx, func(ctx context.Context) error {
		fileCfg, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		detail, _, err := cook(ctx, table, fileCfg)
		if errors.Is(err, builder.ErrCancelled) {
			return context.Canceled
		}
		if err != nil {
			return err
		}
		if err := export.WriteFile(output, format, fileCfg.Parameters.Model, detail); err != nil {
			return err
		}
		log.Info("exported", zap.String("output", output), zap.Int("points", detail.NumPoints()))
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fatalf("%v", err)
	}
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	out := fs.String("o", "", "Output path (default: user config dir)")
	fs.Parse(args)

	cfg := config.Default()
	if *out == "" {
		if err := cfg.Save(); err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("Wrote: %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
		return
	}
	if err := cfg.SaveTo(*out); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("Wrote: %s\n", *out)
}
