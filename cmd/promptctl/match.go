package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"prompt-studio-api/internal/interfaces/http/dto"
)

func newMatchCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "match [需求描述|-]",
		Short: "为需求匹配框架模板",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			tk, _, err := loadToolkit(cmd, root, nil)
			if err != nil {
				return err
			}

			input = strings.TrimSpace(input)
			tpl := tk.Matcher.Match(input)
			scores := tk.Matcher.Scores(input)
			if root.jsonOut {
				return writeJSON(cmd.OutOrStdout(), dto.MatchResponse{Template: tpl, Scores: scores})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n\n", tpl.ID, tpl.Name)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range scores {
				fmt.Fprintf(tw, "%s\t%d\n", s.TemplateID, s.Score)
			}
			return tw.Flush()
		},
	}
}
