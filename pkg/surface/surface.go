// Package surface renders scoring-model summaries for different output
// targets: terminal text and JSON.
package surface

import (
	"io"

	"github.com/seqscore/seqscore/pkg/scoring"
)

// Renderer produces formatted output from a model summary.
type Renderer interface {
	// Render writes the formatted summary to the writer.
	Render(w io.Writer, s scoring.Summary) error
}
