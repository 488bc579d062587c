package main

import (
	"fmt"
	"io"
)

// printSummary writes one summary section: the language-appropriate header
// followed by the summary text and a separating blank line.
func printSummary(w io.Writer, level SummaryLevel, lang Language, summary string) {
	fmt.Fprintf(w, "%s\n%s\n\n", level.Header[lang], summary)
}
