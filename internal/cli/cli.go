package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/babarot/brm/internal/config"
	"github.com/babarot/brm/internal/debug"
	"github.com/babarot/brm/internal/env"
	"github.com/babarot/brm/internal/location"
	"github.com/babarot/brm/internal/record"
	"github.com/babarot/brm/internal/trash"
	"github.com/babarot/brm/internal/ui"
	"github.com/babarot/brm/internal/utils/log"
	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"github.com/rs/xid"
)

type Option struct {
	Force        bool   `short:"f" long:"force" description:"Delete permanently instead of moving to the trash"`
	TrashPath    bool   `short:"t" long:"trash-path" description:"Print the trash directory"`
	Empty        bool   `short:"d" long:"delete-trash-contents" description:"Permanently delete everything in the trash"`
	Restore      bool   `short:"r" long:"restore" description:"Restore trashed entries by name (choose interactively when none are given)"`
	List         bool   `short:"l" long:"list" description:"List trashed entries with their original paths"`
	SetTrashPath string `long:"set-trash-path" description:"Persist a new trash directory" value-name:"PATH"`
	Completions  string `long:"generate-completions" description:"Print a shell completion script" value-name:"SHELL" choice:"bash" choice:"zsh" choice:"fish"`
	Fzf          bool   `long:"fzf" description:"Choose files in the current directory interactively"`
	Config       string `long:"config" description:"Path to config file" default:""`

	Meta MetaOption `group:"Meta Options"`
}

type MetaOption struct {
	Version bool   `short:"V" long:"version" description:"Show version"`
	Debug   string `long:"debug" description:"View debug logs (default: \"full\")" optional-value:"full" optional:"yes" choice:"full" choice:"live"`
}

type CLI struct {
	version Version
	option  Option
	config  config.Config
	engine  *trash.Engine

	stdout io.Writer
	stderr io.Writer
}

var runID = sync.OnceValue(func() string {
	id := xid.New().String()
	return id
})

func Run(v Version) error {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = v.AppName
	parser.Usage = "[OPTIONS] [PATH...]"
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	if err := checkConflicts(opt, args); err != nil {
		return err
	}

	// these need neither config nor trash
	switch {
	case opt.Meta.Version:
		fmt.Fprint(os.Stdout, v.Print())
		return nil
	case opt.Completions != "":
		return printCompletion(os.Stdout, opt.Completions, v.AppName)
	}

	cfg, err := loadConfig(opt.Config)
	if err != nil {
		return err
	}

	closeLog, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	defer slog.Debug("main function finished\n\n")
	slog.Debug("main function started", "version", v.Version, "revision", v.Revision, "buildDate", v.BuildDate)
	slog.Debug("config loaded", "config", dump(cfg))

	switch opt.Meta.Debug {
	case "live":
		return debug.Logs(os.Stdout, env.BRM_LOG_PATH, cfg.Logging.Enabled, true)
	case "full":
		return debug.Logs(os.Stdout, env.BRM_LOG_PATH, cfg.Logging.Enabled, false)
	}

	loc, err := location.Resolve(cfg, env.BRM_RECORD_PATH)
	if err != nil {
		return err
	}

	store := record.New(loc.RecordPath, record.WithLockTimeout(cfg.Record.Timeout()))

	// -d asks for a typed YES
	engine, err := trash.New(loc, store, cfg.Protected,
		trash.WithConfirmer(ui.Confirmer{Strict: opt.Empty}))
	if err != nil {
		return err
	}

	cli := CLI{
		version: v,
		option:  opt,
		config:  cfg,
		engine:  engine,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	if err := cli.Run(args); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.run failed: %w", err))
		return err
	}
	return nil
}

func (c CLI) Run(args []string) error {
	switch {
	case c.option.TrashPath:
		return c.PrintTrashPath()

	case c.option.SetTrashPath != "":
		return c.ChangeTrashPath(c.option.SetTrashPath)

	case c.option.Empty:
		return c.Empty()

	case c.option.List:
		return c.List()

	case c.option.Restore:
		return c.Restore(args)

	default:
		return c.Put(args)
	}
}

// loadConfig parses the config file. A file without path_to_trash can be
// reset to the defaults after confirmation.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Parse(path)
	if err == nil {
		return cfg, nil
	}

	var missing *config.MissingKeyError
	if !errors.As(err, &missing) {
		return cfg, err
	}

	fmt.Fprintln(os.Stderr, missing.Render())
	if !(ui.Confirmer{}).Confirm("Reset the config file to the defaults?") {
		return cfg, err
	}
	if err := config.Reset(missing.Path); err != nil {
		return cfg, err
	}
	return config.Parse(path)
}

func setupLogger(cfg config.Config) (func(), error) {
	if !cfg.Logging.Enabled {
		log.Discard()
		return func() {}, nil
	}

	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	w, err := log.NewRotateWriter(env.BRM_LOG_PATH, cfg.Logging.Rotation.MaxSize, cfg.Logging.Rotation.MaxFiles)
	if err != nil {
		// logging must never keep the command from running
		fmt.Fprintf(os.Stderr, "warning: cannot open log file: %v\n", err)
		log.Discard()
		return func() {}, nil
	}

	logger := log.New(
		log.UseOutput(w),
		log.UseLevel(level),
		log.UseReportCaller(true),
		log.AsDefault(),
	)
	slog.SetDefault(logger.With("run_id", runID()))

	return func() { _ = w.Close() }, nil
}

func dump(v any) string {
	p := pp.New()
	p.SetColoringEnabled(false)
	return p.Sprint(v)
}
