package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cfbdynasty/roster-stats/internal/logic"
	"github.com/cfbdynasty/roster-stats/internal/workbook"
)

func advanceCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "advance <university>",
		Short: "Graduate seniors and promote classes into the next season sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.logger.Sync()

			if to == "" {
				year, err := strconv.Atoi(from)
				if err != nil {
					return fmt.Errorf("--to is required when --from is not a year: %q", from)
				}
				to = strconv.Itoa(year + 1)
			}

			university := args[0]
			snap, err := e.local.Load(cmd.Context(), university, from)
			if err != nil {
				return err
			}
			next := logic.AdvanceSeason(snap, to)

			path := e.local.Path(university)
			if err := workbook.WriteSheet(path, next); err != nil {
				return err
			}
			e.logger.Sugar().Infow("Season advanced", "university", university, "from", from, "to", to,
				"players", next.Len(), "graduated", snap.Len()-next.Len(), "path", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Season sheet to advance from")
	cmd.Flags().StringVar(&to, "to", "", "Season sheet to create (default: from + 1)")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
