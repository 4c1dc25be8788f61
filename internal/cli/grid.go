package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"memocal/internal/calendar"
	"memocal/internal/printout"
)

func gridCmd(s *session) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "grid [YYYY-MM]",
		Short: "Render a month grid to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := monthArg(args, s.now())
			if err != nil {
				return err
			}

			view := calendar.NewMonthView(ref)
			fmt.Fprintln(cmd.OutOrStdout(), printout.Render(view, s.load(cmd), width))
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", printout.DefaultWidth, "sheet width in columns")
	return cmd
}

func printCmd(s *session) *cobra.Command {
	var width int
	var dir string

	cmd := &cobra.Command{
		Use:   "print [YYYY-MM]",
		Short: "Write a month sheet to the print directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := monthArg(args, s.now())
			if err != nil {
				return err
			}

			if dir == "" {
				dir = s.cfg.PrintDir
			}

			path, err := printout.WriteFile(dir, calendar.NewMonthView(ref), s.load(cmd), width)
			if err != nil {
				return fmt.Errorf("print %s: %w", ref.Format(calendar.MonthLayout), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Printed to %s\n", path)
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", printout.DefaultWidth, "sheet width in columns")
	cmd.Flags().StringVarP(&dir, "out", "o", "", "output directory (default print_dir from config)")
	return cmd
}
