package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/packlist/internal/config"
	"github.com/idilsaglam/packlist/internal/logging"
	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/store/jsonstore"
	"github.com/idilsaglam/packlist/internal/tui"
	"github.com/idilsaglam/packlist/internal/ui"
)

// Options redirect the command streams. Nil writers mean stdout/stderr.
type Options struct {
	Out, Err io.Writer
}

// usageError marks failures caused by how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, a ...any) error {
	return usageError{fmt.Errorf(format, a...)}
}

// runTUI is swapped out in tests.
var runTUI = tui.Run

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	ui.SetOutput(opt.Out, opt.Err)
	defer ui.SetOutput(nil, nil)

	root := newRootCmd()
	if opt.Out != nil {
		root.SetOut(opt.Out)
	}
	if opt.Err != nil {
		root.SetErr(opt.Err)
	}
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

type rootFlags struct {
	config string
	seed   string
	out    string
	sort   string
	color  string
	theme  string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:           "packlist",
		Short:         "A packing list for your next trip",
		Long:          "packlist opens an interactive packing list. Add items, tick them off as you pack, and sort by input order, description or packed status.",
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(f)
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "config file (default $XDG_CONFIG_HOME/packlist/config.toml)")
	pf.StringVar(&f.seed, "seed", "", "JSON file with the initial items")
	pf.StringVar(&f.sort, "sort", "", "sort mode: input, description or packed")
	pf.StringVar(&f.color, "color", "", "color output: auto, always or never")
	pf.StringVar(&f.theme, "theme", "", "theme: "+strings.Join(ui.Themes, ", "))
	root.Flags().StringVar(&f.out, "out", "", "write the list to this JSON file on quit")

	root.AddCommand(newShowCmd(f), newSortModesCmd())
	return root
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

// session is everything a command needs after config and seed are loaded.
type session struct {
	cfg    config.Config
	log    *logrus.Logger
	sorter *packing.Sorter
	mode   packing.SortMode
	items  []model.Item
}

func openSession(f *rootFlags) (*session, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return nil, err
	}

	theme := cfg.UI.Theme
	if f.theme != "" {
		theme = f.theme
	}
	if !ui.KnownTheme(theme) {
		return nil, usagef("unknown theme %q (want %s)", theme, strings.Join(ui.Themes, ", "))
	}
	ui.SetTheme(theme)
	color := cfg.UI.Color
	if f.color != "" {
		color = f.color
	}
	if err := ui.SetColorMode(color); err != nil {
		return nil, usageError{err}
	}

	sortName := cfg.UI.Sort
	if f.sort != "" {
		sortName = f.sort
	}
	mode, err := packing.ParseSortMode(sortName)
	if err != nil {
		return nil, usageError{err}
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	items := []model.Item{}
	if f.seed != "" {
		items, err = jsonstore.Load(f.seed)
		if err != nil {
			return nil, fmt.Errorf("load seed: %w", err)
		}
	}
	log.WithFields(logrus.Fields{"items": len(items), "mode": mode.String()}).Info("session opened")

	return &session{
		cfg:    cfg,
		log:    log,
		sorter: packing.NewSorter(cfg.UI.Locale),
		mode:   mode,
		items:  items,
	}, nil
}

func runInteractive(f *rootFlags) error {
	s, err := openSession(f)
	if err != nil {
		return err
	}

	final, err := runTUI(packing.NewList(s.items), packing.NewSequence(s.items), tui.Options{
		Sort:   s.mode,
		Sorter: s.sorter,
		Logger: s.log.WithField("component", "tui"),
	})
	if err != nil {
		return err
	}
	s.log.WithField("items", len(final)).Info("session closed")

	if f.out == "" {
		return nil
	}
	if err := jsonstore.Save(f.out, final); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	ui.OK(fmt.Sprintf("exported %d items to %s", len(final), f.out))
	return nil
}

func newSortModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort-modes",
		Short: "List the accepted sort modes",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range packing.SortModes {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", m.String(), m.Label())
			}
			return nil
		},
	}
}
