package display

import (
	"github.com/pterm/pterm"

	"github.com/transmute-dev/transmute/catalog"
)

// NewProgress starts a progress bar for a batch conversion. Callers must
// Increment it per file and Stop it when done.
func NewProgress(title string, total int) (*pterm.ProgressbarPrinter, error) {
	return pterm.DefaultProgressbar.
		WithTitle(title).
		WithTotal(total).
		WithRemoveWhenDone(true).
		Start()
}

// Success prints a green success line.
func Success(msg string) {
	pterm.Success.Println(msg)
}

// Warning prints a yellow warning line.
func Warning(msg string) {
	pterm.Warning.Println(msg)
}

// RenderTargets prints the supported languages as a table.
func RenderTargets(languages []catalog.Language) error {
	data := pterm.TableData{{"ID", "Language", "Extension"}}
	for _, l := range languages {
		data = append(data, []string{l.ID, l.Name, l.Extension})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
