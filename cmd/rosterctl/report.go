package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cfbdynasty/roster-stats/internal/logic"
	"github.com/cfbdynasty/roster-stats/internal/models"
)

func reportCmd() *cobra.Command {
	var minOverall int
	var side, secondaryGroup string
	cmd := &cobra.Command{
		Use:   "report <university> <season>",
		Short: "Print draft candidates, young player quality and archetypes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.logger.Sync()

			snap, err := e.source.Load(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			candidates, err := logic.DraftCandidates(snap, minOverall)
			if err != nil {
				return err
			}
			archetypes := logic.Archetypes(snap, models.Side(strings.ToUpper(side)), secondaryGroup)
			return printReport(cmd.OutOrStdout(), candidates, logic.YoungPlayerQuality(snap), archetypes)
		},
	}
	cmd.Flags().IntVar(&minOverall, "min-overall", logic.DefaultDraftOverall, "Minimum starting overall for draft candidates")
	cmd.Flags().StringVar(&side, "side", string(models.Defense), "Side of the ball for archetypes: OFF, DEF or ST")
	cmd.Flags().StringVar(&secondaryGroup, "secondary-group", "", "Restrict archetypes to a secondary group, e.g. DB")
	return cmd
}

func printReport(w io.Writer, candidates []models.DraftCandidate, quality []models.GroupQuality, archetypes []models.ArchetypeCount) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "POSSIBLE NON-SENIOR DRAFTED PLAYERS")
	fmt.Fprintln(tw, "name\tposition\tclass\tred_shirt\tdev_trait\toverall_start")
	for _, c := range candidates {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\t%d\n", c.Name, c.Position, c.Class, c.RedShirt, c.DevTrait, c.OverallStart)
	}

	fmt.Fprintln(tw, "\nYOUNG PLAYER QUALITY")
	fmt.Fprintln(tw, "group\tavg_overall_start\tcount")
	for _, q := range quality {
		avg := "-"
		if q.AvgOverallStart != nil {
			avg = fmt.Sprintf("%.1f", *q.AvgOverallStart)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", q.Group, avg, q.Count)
	}

	fmt.Fprintln(tw, "\nARCHETYPES")
	fmt.Fprintln(tw, "position\tarchetype\tsecondary_group\tcount")
	for _, a := range archetypes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", a.Position, a.Archetype, a.SecondaryGroup, a.Count)
	}
	return tw.Flush()
}
