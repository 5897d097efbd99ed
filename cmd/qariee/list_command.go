package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all reciters in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.catalogStore()
			if err != nil {
				return err
			}
			doc, err := store.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetEscapeHTML(false)
				enc.SetIndent("", "  ")
				return enc.Encode(doc.Reciters)
			}

			fmt.Fprintf(out, "Qariee reciters (v%s), total %d\n", doc.Version, len(doc.Reciters))

			rows := make([][]string, 0, len(doc.Reciters))
			for i, reciter := range doc.Reciters {
				rows = append(rows, []string{
					fmt.Sprintf("%d", i+1),
					reciter.ID,
					reciter.NameEN,
					reciter.NameAR,
					reciter.ColorPrimary + " / " + reciter.ColorSecondary,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "ID", "English Name", "Arabic Name", "Colors"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	return cmd
}
