package app

import (
	"fmt"
	"io"

	"github.com/specialistvlad/canopy/internal/forest"
)

// Report writes the two result lines. The second line is indented to sit
// under the text of the first.
func Report(w io.Writer, r forest.Result) error {
	_, err := fmt.Fprintf(w,
		"Day 8: %d trees are visible from the outside.\n"+
			"       The highest possible scenic score is %d\n",
		r.Visible, r.BestScore)
	return err
}
