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

	"github.com/pterm/pterm"

	c "lautenbacher.net/blinkin/config"
	"lautenbacher.net/blinkin/logging"
	p "lautenbacher.net/blinkin/pattern"
	"lautenbacher.net/blinkin/tui"
)

type options struct {
	configFile string
	list       bool
	pattern    string
	preset     string
	maxDuty    float64
	dutyType   string
	browse     bool
	watch      bool
	serve      string
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("blinkin", flag.ContinueOnError)
	fs.StringVar(&opts.configFile, "config", c.CONFILE, "Path to the config file")
	fs.BoolVar(&opts.list, "list", false, "Print the pattern table")
	fs.StringVar(&opts.pattern, "pattern", "", "Print every conversion of a pattern, given by name or code")
	fs.StringVar(&opts.preset, "preset", "", "Print the pattern and duty of a configured preset")
	fs.Float64Var(&opts.maxDuty, "max", 0, "Max duty of the PWM output (overrides Output.MaxDuty)")
	fs.StringVar(&opts.dutyType, "type", "", "Duty type of the PWM output (overrides Output.Type)")
	fs.BoolVar(&opts.browse, "browse", false, "Browse the pattern table in a TUI")
	fs.BoolVar(&opts.watch, "watch", false, "Log the duty of every preset and again whenever the config changes")
	fs.StringVar(&opts.serve, "serve", "", "Serve the pattern table and config API on this address, e.g. :8080")
	err := fs.Parse(args)
	return opts, err
}

// loadConfig reads the config file. A missing default config file is
// not an error, the built in defaults are used instead.
func loadConfig(opts options) (*c.Config, error) {
	conf, err := c.ReadConfig(opts.configFile)
	if err != nil {
		if opts.configFile == c.CONFILE && errors.Is(err, os.ErrNotExist) {
			return c.Default(), nil
		}
		return nil, err
	}
	return conf, nil
}

func outputFor(conf *c.Config, opts options) (c.OutputConfig, error) {
	out := conf.Output
	if opts.maxDuty != 0 {
		out.MaxDuty = opts.maxDuty
	}
	if opts.dutyType != "" {
		out.Type = c.DutyType(opts.dutyType)
	}
	return out, out.Validate()
}

func printTable(w io.Writer, out c.OutputConfig) error {
	rows, err := tui.Rows(out)
	if err != nil {
		return err
	}
	data := append(pterm.TableData{tui.Header}, rows...)
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)
	return nil
}

func printPattern(w io.Writer, pat p.Pattern, out c.OutputConfig) error {
	row, err := tui.Row(pat, out)
	if err != nil {
		return err
	}
	data := pterm.TableData{}
	for i, title := range tui.Header {
		data = append(data, []string{title, row[i]})
	}
	data = append(data, []string{"Output", fmt.Sprintf("%s max %g", out.Type, out.MaxDuty)})
	table, err := pterm.DefaultTable.WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)
	return nil
}

func logPresets(conf *c.Config) {
	for _, name := range conf.PresetNames() {
		pat, duty, err := conf.ResolvePreset(name)
		if err != nil {
			slog.Error("Can't resolve preset", "preset", name, "error", err)
			continue
		}
		slog.Info("Preset", "preset", name, "pattern", pat, "code", pat.Code(), "duty", duty, "pulse", pat.AsPulseWidth())
	}
}

func serve(ctx context.Context, addr, cfile string) error {
	mux := http.NewServeMux()
	mux.Handle("/api/config", c.ConfigHandler(cfile))
	mux.Handle("/api/patterns", c.PatternsHandler(cfile))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() {
		slog.Info("Serving API", "addr", addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func run(ctx context.Context, opts options, w io.Writer) error {
	conf, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if err := logging.Init(conf.Logging.Level, conf.Logging.Format, conf.Logging.File, opts.browse); err != nil {
		return fmt.Errorf("can't set up logging: %w", err)
	}
	out, err := outputFor(conf, opts)
	if err != nil {
		return err
	}
	slog.Debug("Output configured", "type", out.Type, "max", out.MaxDuty, "presets", len(conf.Presets))

	switch {
	case opts.pattern != "":
		pat, err := p.Parse(opts.pattern)
		if err != nil {
			return err
		}
		return printPattern(w, pat, out)
	case opts.preset != "":
		pat, ok := conf.Presets[opts.preset]
		if !ok {
			return fmt.Errorf("%w: %q", c.ErrUnknownPreset, opts.preset)
		}
		return printPattern(w, pat, out)
	case opts.browse:
		browser := tui.NewBrowser(out)
		if opts.watch {
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			go func() {
				err := c.Watch(ctx, opts.configFile, func(conf *c.Config) {
					if err := browser.SetOutput(conf.Output); err != nil {
						slog.Error("Can't apply changed output", "error", err)
					}
				})
				if err != nil {
					slog.Error("Can't watch config file", "error", err)
				}
			}()
		}
		err := browser.Run()
		if rerr := logging.Release(os.Stderr); rerr != nil && err == nil {
			err = rerr
		}
		return err
	case opts.watch || opts.serve != "":
		return watchAndServe(ctx, opts)
	default:
		return printTable(w, out)
	}
}

func watchAndServe(ctx context.Context, opts options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 2)
	running := 0
	if opts.watch {
		conf, err := c.ReadConfig(opts.configFile)
		if err != nil {
			return err
		}
		logPresets(conf)
		running++
		go func() { errc <- c.Watch(ctx, opts.configFile, logPresets) }()
	}
	if opts.serve != "" {
		running++
		go func() { errc <- serve(ctx, opts.serve, opts.configFile) }()
	}

	var firstErr error
	for ; running > 0; running-- {
		if err := <-errc; err != nil && firstErr == nil {
			firstErr = err
			cancel()
		}
	}
	return firstErr
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, opts, os.Stdout)
	if err != nil {
		slog.Error("blinkin failed", "error", err)
	}
	if cerr := logging.Close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "closing log: %v\n", cerr)
	}
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// Local Variables:
// compile-command: "go build"
// End:
