package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cfbdynasty/roster-stats/internal/logic"
	"github.com/cfbdynasty/roster-stats/internal/models"
)

func tableCmd() *cobra.Command {
	var view, by, format string
	cmd := &cobra.Command{
		Use:   "table <university> <season>",
		Short: "Print a dense count table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.logger.Sync()

			svc := logic.NewRosterService(e.source, nil, e.logger)
			table, err := svc.Table(cmd.Context(), logic.TableRequest{
				University: args[0],
				Season:     args[1],
				View:       logic.View(view),
				By:         by,
			})
			if err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), table, format)
		},
	}
	cmd.Flags().StringVar(&view, "view", string(logic.ViewDevTraits), "View: dev-traits, star-elite, pipeline, classes, position-groups")
	cmd.Flags().StringVar(&by, "by", "position", "Grouping attribute for dev trait views")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	return cmd
}

func printTable(w io.Writer, table *models.CountTable, format string) error {
	switch format {
	case "json":
		return writeJSON(w, table)
	case "text":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := append(append([]string(nil), table.Keys...), "count", "rank")
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range table.Rows {
		ranks := make([]string, len(r.Ranks))
		for i, rank := range r.Ranks {
			ranks[i] = fmt.Sprint(rank)
		}
		cells := append([]string{r.Group}, r.Values...)
		cells = append(cells, fmt.Sprint(r.Count), strings.Join(ranks, "."))
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
