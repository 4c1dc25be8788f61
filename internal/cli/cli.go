package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"memocal/internal/calendar"
	"memocal/internal/config"
	"memocal/internal/logs"
	"memocal/internal/memo"
)

// TUIFunc launches the interactive calendar on an opened slot
type TUIFunc func(cfg *config.Config, slot memo.Slot, store memo.Store) error

// session carries what every subcommand needs once flags are parsed
type session struct {
	flags  config.CLIFlags
	now    func() time.Time
	cfg    *config.Config
	slot   memo.Slot
	closer io.Closer
}

func (s *session) open() error {
	cfg, err := config.Load(s.flags)
	if err != nil {
		return err
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := logs.Initialize(cfg.DataDir); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	slot, closer, err := memo.OpenSlot(cfg)
	if err != nil {
		return fmt.Errorf("open %s slot: %w", cfg.Backend, err)
	}

	s.cfg = cfg
	s.slot = slot
	s.closer = closer
	return nil
}

// load reads the notes. An unusable slot is logged and reported on stderr,
// and the command carries on with an empty store.
func (s *session) load(cmd *cobra.Command) memo.Store {
	store, err := memo.ReadStore(s.slot)
	if err != nil {
		logs.Logger.Printf("Warning: %v, starting empty", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; continuing with no notes\n", err)
	}
	return store
}

func (s *session) close() error {
	defer logs.Close()
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

// NewRootCommand builds the memocal command tree. Running it without a
// subcommand calls runTUI.
func NewRootCommand(now func() time.Time, runTUI TUIFunc) *cobra.Command {
	if now == nil {
		now = time.Now
	}
	s := &session{now: now}

	rootCmd := &cobra.Command{
		Use:           "memocal",
		Short:         "Month calendar with one note per day",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if runTUI == nil {
				return cmd.Help()
			}
			if err := config.EnsureConfigFile(); err != nil {
				logs.Logger.Printf("Warning: could not create config file: %v", err)
			}
			return runTUI(s.cfg, s.slot, s.load(cmd))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&s.flags.DataDir, "dir", "d", "", "data directory (default ~/memocal)")
	rootCmd.PersistentFlags().StringVar(&s.flags.Backend, "backend", "", "storage backend: file or sqlite")

	rootCmd.AddCommand(noteCmd(s))
	rootCmd.AddCommand(gridCmd(s))
	rootCmd.AddCommand(printCmd(s))

	return rootCmd
}

// monthArg resolves an optional YYYY-MM argument, defaulting to the current month
func monthArg(args []string, now time.Time) (time.Time, error) {
	if len(args) == 0 || args[0] == "" {
		return calendar.FirstOfMonth(now), nil
	}
	t, err := time.Parse(calendar.MonthLayout, args[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (want YYYY-MM)", args[0])
	}
	return calendar.FirstOfMonth(t), nil
}

// dayArg parses a YYYY-MM-DD argument. "today" is accepted as a shorthand.
func dayArg(arg string, now time.Time) (time.Time, error) {
	if arg == "today" {
		return calendar.Day(now), nil
	}
	t, err := calendar.ParseDayKey(arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", arg)
	}
	return t, nil
}
