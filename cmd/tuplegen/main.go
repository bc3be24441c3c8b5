// tuplegen renders the tuple package sources and keeps the committed copy in
// sync. By default it regenerates every file in the output directory; with
// -check it verifies the committed files instead, and with -init it walks
// through creating a tuplegen.yaml interactively.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"facette.io/natsort"
	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"github.com/amp-labs/tuples/cli"
	"github.com/amp-labs/tuples/errors"
	"github.com/amp-labs/tuples/internal/gen"
	"github.com/amp-labs/tuples/logger"
	"github.com/amp-labs/tuples/script"
)

//nolint:gochecknoglobals
var (
	flagMaxArity = flag.Int("max-arity", 0, "maximum tuple arity to generate (overrides the config file)")
	flagDir      = flag.String("dir", "", "output directory (overrides the config file)")
	flagConfig   = flag.String("config", defaultConfigFile, "path to the tuplegen config file")
	flagCheck    = flag.Bool("check", false, "verify the committed files instead of writing them")
	flagInit     = flag.Bool("init", false, "interactively create a config file")
	flagQuiet    = flag.Bool("q", false, "only log warnings and errors")
)

func main() {
	flag.Parse()

	opts := []script.Option{script.EnableFlagParse(false)}

	if *flagQuiet {
		opts = append(opts, script.LogLevel(slog.LevelWarn))
	}

	script.New("tuplegen", opts...).Run(realMain)
}

func realMain(ctx context.Context) error {
	if *flagInit {
		return runInit(ctx)
	}

	cfg, err := loadConfig(*flagConfig)
	if err != nil {
		return script.ExitWithError(err)
	}

	if *flagMaxArity > 0 {
		cfg.MaxArity = *flagMaxArity
	}

	if *flagDir != "" {
		cfg.Dir = *flagDir
	}

	generator, err := gen.New(cfg.MaxArity)
	if err != nil {
		return script.ExitWithError(err)
	}

	files, err := generator.Files()
	if err != nil {
		return script.ExitWithError(err)
	}

	log := logger.Get(ctx).With("dir", cfg.Dir, "maxArity", cfg.MaxArity)

	if *flagCheck {
		if err := checkFiles(cfg.Dir, files); err != nil {
			return script.ExitWithError(err)
		}

		log.Info("generated files are up to date", "files", len(files))

		return nil
	}

	if err := writeFiles(ctx, cfg.Dir, files); err != nil {
		return script.ExitWithError(err)
	}

	log.Info("wrote generated files", "files", len(files))

	return nil
}

// writeFiles renders each file to a uniquely named temporary sibling and
// renames it into place, so an interrupted run never leaves a half-written
// file behind.
func writeFiles(ctx context.Context, dir string, files []gen.File) error {
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec,mnd
		return fmt.Errorf("creating output directory: %w", err)
	}

	pool := pond.NewPool(runtime.NumCPU())
	defer pool.StopAndWait()

	tasks := make([]pond.Task, 0, len(files))

	for _, file := range files {
		tasks = append(tasks, pool.SubmitErr(func() error {
			return writeFile(ctx, dir, file)
		}))
	}

	errs := &errors.Collection{}
	for _, task := range tasks {
		errs.Add(task.Wait())
	}

	return errs.GetError()
}

func writeFile(ctx context.Context, dir string, file gen.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := filepath.Join(dir, file.Name)
	tmp := target + "." + uuid.NewString() + ".tmp"

	if err := os.WriteFile(tmp, file.Source, 0o644); err != nil { //nolint:gosec,mnd
		return fmt.Errorf("writing %s: %w", file.Name, err)
	}

	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)

		return fmt.Errorf("replacing %s: %w", file.Name, err)
	}

	logger.Get(ctx).Debug("wrote file", "name", file.Name, "bytes", len(file.Source))

	return nil
}

// checkFiles compares the rendered sources against the committed files and
// reports the stale ones in natural name order.
func checkFiles(dir string, files []gen.File) error {
	var stale []string

	for _, file := range files {
		existing, err := os.ReadFile(filepath.Join(dir, file.Name))
		if err != nil {
			if os.IsNotExist(err) {
				stale = append(stale, file.Name)

				continue
			}

			return fmt.Errorf("reading %s: %w", file.Name, err)
		}

		if xxh3.Hash(existing) != xxh3.Hash(file.Source) {
			stale = append(stale, file.Name)
		}
	}

	if len(stale) == 0 {
		return nil
	}

	natsort.Sort(stale)

	return fmt.Errorf("%w: %s", errors.ErrDrift, strings.Join(stale, ", "))
}

func runInit(ctx context.Context) error {
	if !cli.IsInteractive() {
		return fmt.Errorf("%w: cannot run the init wizard", errors.ErrNotTerminal)
	}

	maxArity, err := cli.PromptIntRange("Maximum arity", 1, gen.MaxSupportedArity, gen.DefaultMaxArity)
	if err != nil {
		return err
	}

	dir, err := cli.PromptStringDefault("Output directory", defaultConfig().Dir)
	if err != nil {
		return err
	}

	path := *flagConfig

	if _, err := os.Stat(path); err == nil {
		overwrite, err := cli.PromptConfirm(path + " exists, overwrite")
		if err != nil {
			return err
		}

		if !overwrite {
			return nil
		}
	}

	cfg := config{MaxArity: maxArity, Dir: dir}
	if err := cfg.save(path); err != nil {
		return err
	}

	logger.Get(ctx).Info("wrote config", "path", path, "maxArity", maxArity, "dir", dir)

	return nil
}
