package surface

import (
	"encoding/json"
	"io"

	"github.com/seqscore/seqscore/pkg/scoring"
)

// JSONRenderer marshals a model summary to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, s scoring.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
