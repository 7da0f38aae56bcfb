package commands

import (
	"github.com/spf13/cobra"
	"github.com/transmute-dev/transmute/catalog"
	"github.com/transmute-dev/transmute/display"
)

// TargetsCmd represents the targets command
var TargetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List supported target languages",
	Long: `Display every language transmute can emit, with the file extension
and comment style used for generated output.

Examples:
  transmute targets            # Table of target languages
  transmute targets --json     # Machine-readable list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		languages := catalog.All()

		if display.ShouldOutputJSON(cmd) {
			type entry struct {
				ID        string `json:"id"`
				Name      string `json:"name"`
				Extension string `json:"extension"`
			}
			entries := make([]entry, 0, len(languages))
			for _, lang := range languages {
				entries = append(entries, entry{ID: lang.ID, Name: lang.Name, Extension: lang.Extension})
			}
			return display.OutputJSON(entries)
		}

		return display.RenderTargets(languages)
	},
}
