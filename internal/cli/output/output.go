// Package output holds the CLI's terminal styling and table rendering.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// Header prints a styled section header.
func Header(w io.Writer, text string) {
	fmt.Fprintln(w, headerStyle.Render(text))
}

// Dim prints de-emphasized text.
func Dim(w io.Writer, text string) {
	fmt.Fprintln(w, dimStyle.Render(text))
}

// NewTable returns a table writer with the gatewire house style.
func NewTable(w io.Writer, columns ...interface{}) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row(columns))
	return t
}
