// Package output provides formatters for menu and task list output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasker/internal/task"
)

// NoTasks is printed in place of an empty listing.
const NoTasks = "No tasks at the moment."

// FormatTask formats one listing line.
// Format: "{N}: {DESCRIPTION} [{STATUS}]\n"
func FormatTask(w io.Writer, st *Styler, e task.Entry) {
	label := st.Render(statusTone(e.Status), e.Status.Label())
	fmt.Fprintf(w, "%d: %s [%s]\n", e.Position, normalizeDescription(e.Description), label)
}

// FormatList formats a full listing. An empty listing prints NoTasks.
func FormatList(w io.Writer, st *Styler, entries []task.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, st.Render(ToneNotice, NoTasks))
		return
	}
	for _, e := range entries {
		FormatTask(w, st, e)
	}
}

// Println writes a message line in the given tone.
func Println(w io.Writer, st *Styler, tone Tone, msg string) {
	fmt.Fprintln(w, st.Render(tone, msg))
}

// Prompt writes a prompt without a trailing newline.
func Prompt(w io.Writer, st *Styler, tone Tone, msg string) {
	fmt.Fprint(w, st.Render(tone, msg))
}

func statusTone(s task.Status) Tone {
	if s == task.StatusCompleted {
		return ToneSuccess
	}
	return ToneWarning
}

// normalizeDescription replaces line breaks with spaces so each task
// occupies exactly one line.
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	return strings.ReplaceAll(desc, "\n", " ")
}
