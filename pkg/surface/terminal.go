package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/seqscore/seqscore/pkg/scoring"
)

// TerminalRenderer renders a model summary as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorBold  = "\033[1m"
	colorDim   = "\033[2m"
)

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, s scoring.Summary) error {
	fmt.Fprintf(w, "%s\n\n", bold(colored(s.Model, colorCyan)))

	if s.Match != nil || s.Mismatch != nil {
		fmt.Fprintf(w, "  match:    %v\n", s.Match)
		fmt.Fprintf(w, "  mismatch: %v\n", s.Mismatch)
	} else {
		fmt.Fprintf(w, "  alphabet: %s\n", s.Alphabet)
		fmt.Fprintln(w, "  matrix:")
		fmt.Fprintf(w, "        %s\n", dim(headerRow(s.Alphabet)))
		for i, row := range s.Matrix {
			parts := make([]string, len(row))
			for j, v := range row {
				parts[j] = fmt.Sprintf("%5v", v)
			}
			label := " "
			if i < len(s.Alphabet) {
				label = string(s.Alphabet[i])
			}
			fmt.Fprintf(w, "    %s %s\n", dim(label), strings.Join(parts, " "))
		}
	}

	if s.GapOpen != nil || s.GapExtend != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  gap_open:   %v\n", s.GapOpen)
		fmt.Fprintf(w, "  gap_extend: %v\n", s.GapExtend)
	}
	if s.Insertion != nil || s.Deletion != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  insertion: %v\n", s.Insertion)
		fmt.Fprintf(w, "  deletion:  %v\n", s.Deletion)
	}

	return nil
}

func headerRow(alphabet string) string {
	parts := make([]string, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		parts[i] = fmt.Sprintf("%5c", alphabet[i])
	}
	return strings.Join(parts, " ")
}
