// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command dxrtinfo creates a dxrt runtime and prints the ranked adapters.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gogpu/dxrt"
	"github.com/gogpu/dxrt/companion"
	"github.com/gogpu/dxrt/config"
	"github.com/gogpu/dxrt/loader"
	_ "github.com/gogpu/dxrt/loader/halloader"
	_ "github.com/gogpu/wgpu/hal/allbackends"
)

const defaultLogLevel = "warn"

func main() {
	var levelVar slog.LevelVar
	levelVar.Set(slog.LevelWarn)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &levelVar}))
	dxrt.SetLogger(logger)

	if err := newRootCommand(&levelVar).Execute(); err != nil {
		logger.Error("dxrtinfo failed", "error", err)
		switch {
		case errors.Is(err, dxrt.ErrExtensionUnsatisfiable):
			os.Exit(3)
		case errors.Is(err, dxrt.ErrEnumeration):
			os.Exit(4)
		}
		os.Exit(1)
	}
}

// flags holds command-line settings. Non-empty values win over the config file.
type flags struct {
	configPath string
	logLevel   string
	loaderName string
	adapter    string
	filterName string
	companion  string
	all        bool
}

func newRootCommand(levelVar *slog.LevelVar) *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "dxrtinfo",
		Short:         "List the adapters a dxrt runtime would use, best first",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(f)
			if err != nil {
				return err
			}
			level, err := parseLogLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			levelVar.Set(level)
			return run(cmd.OutOrStdout(), cfg, f)
		},
	}

	fl := root.Flags()
	fl.StringVar(&f.configPath, "config", "", "Configuration file (.yaml, .toml or .json)")
	fl.StringVar(&f.logLevel, "log-level", "", "Log verbosity (debug, info, warn, error); default "+defaultLogLevel)
	fl.StringVar(&f.loaderName, "loader", "", "Loader name (registered: "+strings.Join(loader.Available(), ", ")+")")
	fl.StringVar(&f.adapter, "adapter", "", "Preferred adapter name, overrides "+dxrt.EnvDefaultAdapter)
	fl.StringVar(&f.filterName, "filter", "", "Keep adapters whose name contains this, overrides "+dxrt.EnvFilterDeviceName)
	fl.StringVar(&f.companion, "companion-extensions", "", "Space-separated extra instance extensions")
	fl.BoolVar(&f.all, "all", false, "Disable the device filter")
	return root
}

// resolveConfig loads the config file and applies the flags that do not
// map to environment variables.
func resolveConfig(f flags) (config.Config, error) {
	var cfg config.Config
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return cfg, err
		}
	}
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&cfg.LogLevel, f.logLevel)
	override(&cfg.Loader, f.loaderName)
	override(&cfg.Companion, f.companion)
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	return cfg, nil
}

// envLookup layers flags over the environment over the config file.
func envLookup(cfg config.Config, f flags) func(string) string {
	base := cfg.Env(nil)
	return func(key string) string {
		switch {
		case key == dxrt.EnvDefaultAdapter && f.adapter != "":
			return f.adapter
		case key == dxrt.EnvFilterDeviceName && f.filterName != "":
			return f.filterName
		}
		return base(key)
	}
}

func run(w io.Writer, cfg config.Config, f flags) error {
	env := envLookup(cfg, f)
	opts := []dxrt.Option{dxrt.WithEnv(env)}
	if cfg.Loader != "" {
		l := loader.Get(cfg.Loader)
		if l == nil {
			return fmt.Errorf("unknown loader %q", cfg.Loader)
		}
		opts = append(opts, dxrt.WithLoader(l))
	}
	if cfg.ApplicationName != "" {
		opts = append(opts, dxrt.WithApplication(cfg.ApplicationName, 0))
	}
	if names := companion.ParseNames(cfg.Companion); len(names) > 0 {
		opts = append(opts, dxrt.WithCompanion(companion.NewStatic(names, nil)))
	}
	if f.all {
		opts = append(opts, dxrt.WithFilter(dxrt.AcceptAll))
	}

	rt, err := dxrt.New(opts...)
	if err != nil {
		return err
	}
	defer rt.Close()

	fmt.Fprintf(w, "Instance extensions: %s\n\n", strings.Join(rt.Instance().Extensions(), ", "))

	adapters := rt.Adapters()
	if len(adapters) == 0 {
		fmt.Fprintln(w, "No adapters found.")
		return nil
	}

	var data [][]string
	for i, a := range adapters {
		p := a.DeviceProperties()
		data = append(data, []string{
			strconv.Itoa(i),
			a.Name(),
			a.DeviceType().String(),
			p.Backend.String(),
			fmt.Sprintf("%04x:%04x", p.VendorID, p.DeviceID),
			loader.FormatVersion(p.APIVersion),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"INDEX", "NAME", "TYPE", "BACKEND", "PCI ID", "API"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
	return nil
}

func parseLogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error", "err":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", value)
	}
}
