package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"memocal/internal/calendar"
	"memocal/internal/memo"
)

func noteCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"n"},
		Short:   "Read and write day notes",
	}

	cmd.AddCommand(noteGetCmd(s))
	cmd.AddCommand(noteSetCmd(s))
	cmd.AddCommand(noteListCmd(s))
	return cmd
}

func noteGetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get <YYYY-MM-DD|today>",
		Short: "Print the note for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := dayArg(args[0], s.now())
			if err != nil {
				return err
			}

			note := s.load(cmd).Get(day)
			if note == "" {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), note)
			return nil
		},
	}
}

func noteSetCmd(s *session) *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "set <YYYY-MM-DD|today> [text...]",
		Short: "Replace the note for a day",
		Long:  "Replace the note for a day. With no text the note is cleared.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := dayArg(args[0], s.now())
			if err != nil {
				return err
			}

			text := strings.Join(args[1:], " ")
			if fromStdin {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = strings.TrimSuffix(string(data), "\n")
			}

			if _, err := s.load(cmd).Set(s.slot, day, text); err != nil {
				return fmt.Errorf("save note: %w", err)
			}

			if text == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", calendar.DayKey(day))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", calendar.DayKey(day))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the note text from stdin")
	return cmd
}

func noteListCmd(s *session) *cobra.Command {
	var month string
	var width int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List days that have a note",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := s.load(cmd).NonEmpty()

			if month != "" {
				ref, err := monthArg([]string{month}, s.now())
				if err != nil {
					return err
				}
				entries = inMonth(entries, ref)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No notes found.")
				return nil
			}

			for _, e := range entries {
				fmt.Fprintf(out, "%s  %s\n", e.Key, ansi.Truncate(memo.Preview(e.Text), max(10, width-12), "…"))
			}
			fmt.Fprintf(out, "\n%d note(s)\n", len(entries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "only list notes in this month (YYYY-MM)")
	cmd.Flags().IntVarP(&width, "width", "w", 80, "truncate lines to this width")
	return cmd
}

func inMonth(entries []memo.Entry, ref time.Time) []memo.Entry {
	prefix := ref.Format(calendar.MonthLayout) + "-"
	var filtered []memo.Entry
	for _, e := range entries {
		if strings.HasPrefix(e.Key, prefix) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
