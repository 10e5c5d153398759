package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"prompt-studio-api/internal/domain/entity"
	"prompt-studio-api/internal/interfaces/http/dto"
)

func newTemplatesCmd(root *rootOptions) *cobra.Command {
	var (
		category   string
		complexity int
		useCase    string
	)
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "列出框架模板",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, _, err := loadToolkit(cmd, root, nil)
			if err != nil {
				return err
			}

			var list []entity.Template
			switch {
			case useCase != "":
				list = tk.Catalog.Recommend(useCase)
			case category != "":
				list = tk.Catalog.FilterByCategory(entity.TemplateCategory(category))
			case complexity > 0:
				list = tk.Catalog.FilterByComplexity(complexity)
			default:
				list = tk.Catalog.List()
			}

			if root.jsonOut {
				return writeJSON(cmd.OutOrStdout(), dto.TemplateListResponse{Templates: list, Total: len(list)})
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tCOMPLEXITY\tSTRUCTURE")
			for _, t := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", t.ID, t.Name, t.Category, t.Complexity, strings.Join(t.Structure, " / "))
			}
			return tw.Flush()
		},
	}

	f := cmd.Flags()
	f.StringVar(&category, "category", "", "按分类过滤")
	f.IntVar(&complexity, "complexity", 0, "按复杂度过滤（1-5）")
	f.StringVar(&useCase, "use-case", "", "按使用场景推荐")
	return cmd
}
