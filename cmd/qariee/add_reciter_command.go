package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"qariee/internal/catalog"
)

func newAddReciterCommand(ctx *commandContext) *cobra.Command {
	var nameEN string
	var nameAR string

	cmd := &cobra.Command{
		Use:   "add-reciter <reciter-id>",
		Short: "Add a new reciter to the catalog",
		Long: `Add a new reciter to db.json.

The id must be kebab-case (e.g. saad-alghamdi). Card colors are derived
deterministically from the id.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if nameEN == "" {
				return errors.New("--name-en is required")
			}
			if nameAR == "" {
				return errors.New("--name-ar is required")
			}

			store, err := ctx.catalogStore()
			if err != nil {
				return err
			}

			reciterID := args[0]
			primary, secondary := catalog.ColorsForSeed(reciterID)

			doc, err := store.AddReciter(catalog.Reciter{
				ID:             reciterID,
				NameEN:         nameEN,
				NameAR:         nameAR,
				ColorPrimary:   primary,
				ColorSecondary: secondary,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Added reciter %s (catalog v%s)\n", reciterID, doc.Version)
			fmt.Fprintf(out, "Colors: %s / %s\n", primary, secondary)
			fmt.Fprintln(out, "\nNext steps:")
			fmt.Fprintf(out, "  1. Upload audio: qariee upload-audio %s <base-url>\n", reciterID)
			fmt.Fprintln(out, "  2. Sync to CDN:  qariee sync")
			fmt.Fprintln(out, "  3. Update app:   qariee generate-db")
			return nil
		},
	}

	cmd.Flags().StringVarP(&nameEN, "name-en", "e", "", "English display name")
	cmd.Flags().StringVarP(&nameAR, "name-ar", "a", "", "Arabic display name")
	return cmd
}
