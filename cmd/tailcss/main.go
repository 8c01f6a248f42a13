package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/benbjohnson/tailcss"
	"github.com/benbjohnson/tailcss/buildcache"
	"github.com/benbjohnson/tailcss/expand"
	"github.com/benbjohnson/tailcss/extract"
	"github.com/benbjohnson/tailcss/internal/config"
	"github.com/benbjohnson/tailcss/internal/logger"
	"github.com/benbjohnson/tailcss/theme"
	"github.com/benbjohnson/tailcss/variant"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch os.Args[1] {
	case "build":
		err = cmdBuild(ctx, os.Args[2:], os.Stdout)
	case "variants":
		err = cmdVariants(os.Stdout)
	case "expand":
		err = cmdExpand(os.Args[2:], os.Stdout)
	case "version":
		fmt.Println(version)
	case "help", "-h", "--help":
		usage(os.Stdout)
	default:
		fmt.Fprintln(os.Stderr, "unknown command:", os.Args[1])
		usage(os.Stderr)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "tailcss - utility-class CSS compiler")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tailcss build [-o out.css] [-theme theme.toml] [-cache file] [-workers n] [-minify] <globs...>")
	fmt.Fprintln(w, "  tailcss variants")
	fmt.Fprintln(w, "  tailcss expand <class>...")
	fmt.Fprintln(w, "  tailcss version")
}

// buildOptions holds the flags of the build command.
type buildOptions struct {
	output   string
	theme    string
	cache    string
	metrics  string
	workers  int
	minify   bool
	logLevel string
	content  []string
}

func parseBuildArgs(args []string, cfg *config.Config) (*buildOptions, error) {
	opt := &buildOptions{}
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.StringVar(&opt.output, "o", cfg.Output, "output CSS file, - for stdout")
	fs.StringVar(&opt.theme, "theme", cfg.Theme, "TOML theme file")
	fs.StringVar(&opt.cache, "cache", cfg.Cache, "build cache file")
	fs.StringVar(&opt.metrics, "metrics", "", "write Prometheus metrics to file")
	fs.IntVar(&opt.workers, "workers", cfg.Workers, "number of workers")
	fs.BoolVar(&opt.minify, "minify", cfg.Minify, "minify output")
	fs.StringVar(&opt.logLevel, "log-level", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opt.content = fs.Args()
	if len(opt.content) == 0 {
		opt.content = cfg.Content
	}
	if len(opt.content) == 0 {
		return nil, errors.New("build requires at least one content glob")
	} else if opt.workers < 1 {
		return nil, errors.New("-workers must be a positive integer")
	}
	return opt, nil
}

func cmdBuild(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	opt, err := parseBuildArgs(args, cfg)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(opt.logLevel)
	if err != nil {
		return err
	}
	if err := logger.Init(level, zap.String("cmd", "build")); err != nil {
		return err
	}
	log := logger.Log
	defer func() { _ = log.Sync() }()

	th := theme.Default()
	if opt.theme != "" {
		if th, err = theme.Load(opt.theme); err != nil {
			return err
		}
	}

	files, err := globAll(opt.content)
	if err != nil {
		return err
	} else if len(files) == 0 {
		return errors.Errorf("no files match %v", opt.content)
	}

	var cache *buildcache.Cache
	if opt.cache != "" {
		if cache, err = buildcache.Open(opt.cache); err != nil {
			return err
		}
	}

	classes, err := scan(ctx, files, cache, opt.workers, log)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics, err := tailcss.NewMetrics(reg)
	if err != nil {
		return err
	}

	g := tailcss.NewGenerator(
		tailcss.WithLogger(log),
		tailcss.WithWorkers(opt.workers),
		tailcss.WithTheme(th),
		tailcss.WithMetrics(metrics),
	)
	result, err := g.Generate(ctx, classes)
	if err != nil {
		return err
	}
	if len(result.Skipped) > 0 {
		log.Warn("skipped classes", zap.Int("n", len(result.Skipped)), zap.Error(result.Skipped))
	}

	var buf bytes.Buffer
	p := tailcss.Printer{Indent: "  "}
	if err := p.Print(&buf, result.Rules.Rules()); err != nil {
		return err
	}
	css := buf.Bytes()
	if opt.minify {
		if css, err = tailcss.Minify(css); err != nil {
			return err
		}
	}

	if err := writeOutput(opt.output, css, stdout); err != nil {
		return err
	}

	if cache != nil {
		if n := cache.Prune(files); n > 0 {
			log.Debug("pruned build cache", zap.Int("files", n))
		}
		if err := cache.Save(); err != nil {
			return err
		}
	}
	if opt.metrics != "" {
		if err := prometheus.WriteToTextfile(opt.metrics, reg); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}

	log.Info("build complete",
		zap.Int("files", len(files)),
		zap.Int("classes", len(classes)),
		zap.String("output", opt.output),
		zap.Int("bytes", len(css)),
	)
	return nil
}

// scan extracts class tokens from every file, consulting the build cache for
// files that haven't changed. Tokens are returned in file order.
func scan(ctx context.Context, files []string, cache *buildcache.Cache, workers int, log *zap.Logger) ([]string, error) {
	lists := make([][]string, len(files))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, path := range files {
		i, path := i, path
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			modTime, err := buildcache.ModTime(path)
			if err != nil {
				return err
			}
			if cache != nil {
				if a, ok := cache.Lookup(path, modTime); ok {
					log.Debug("cached", zap.String("file", path))
					lists[i] = a
					return nil
				}
			}

			a, err := extract.File(path)
			if err != nil {
				return err
			}
			log.Debug("scanned", zap.String("file", path), zap.Int("classes", len(a)))
			if cache != nil {
				cache.Store(path, modTime, a)
			}
			lists[i] = a
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return extract.Merge(lists...), nil
}

func writeOutput(path string, b []byte, stdout io.Writer) error {
	if path == "-" || path == "" {
		_, err := stdout.Write(b)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}

func cmdVariants(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tORDER\tSELECTOR")
	for _, e := range variant.Default().Entries() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.Name, e.Kind, e.Order, e.Selector)
	}
	return tw.Flush()
}

func cmdExpand(args []string, w io.Writer) error {
	if len(args) == 0 {
		return errors.New("expand requires at least one class")
	}

	e := expand.New(variant.Default())
	for _, tok := range args {
		a, ok, err := e.Expand(tok)
		if err != nil {
			return err
		} else if !ok {
			a = []string{tok}
		}
		fmt.Fprintf(w, "%s\t%v\n", tok, a)
	}
	return nil
}
