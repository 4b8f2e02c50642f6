package cli

import (
	"fmt"
	"io"

	"habits-cli/internal/domain/entity"

	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9E3B"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
)

func renderRecords(w io.Writer, records []*entity.HabitRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No habits found")
		return
	}

	fmt.Fprintln(w, headerStyle.Render("Name | Periodicity | Duration"))
	for _, record := range records {
		fmt.Fprintln(w, record.String())
	}
}

func renderNames(w io.Writer, names []string) {
	if len(names) == 0 {
		fmt.Fprintln(w, "No habits found")
		return
	}

	for _, name := range names {
		fmt.Fprintf(w, "- %s\n", name)
	}
}

func renderNotice(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, noticeStyle.Render(fmt.Sprintf(format, args...)))
}
