package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/cfbdynasty/roster-stats/internal/logic"
)

func compareCmd() *cobra.Command {
	var universities, view, by string
	cmd := &cobra.Command{
		Use:   "compare <season>",
		Short: "Build one view for several universities and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.logger.Sync()

			keys := e.registry.Keys()
			if universities != "" {
				keys = strings.Split(universities, ",")
			}
			svc := logic.NewRosterService(e.source, nil, e.logger)
			tables, err := svc.Compare(cmd.Context(), keys, logic.TableRequest{
				Season: args[0],
				View:   logic.View(view),
				By:     by,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), tables)
		},
	}
	cmd.Flags().StringVar(&universities, "universities", "", "Comma separated university keys (default: all)")
	cmd.Flags().StringVar(&view, "view", string(logic.ViewDevTraits), "View to compare")
	cmd.Flags().StringVar(&by, "by", "position", "Grouping attribute for dev trait views")
	return cmd
}
