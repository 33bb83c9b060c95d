package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/trilocate/dbg"
)

// Colored one-line description of a pass, for printing traces to a terminal.
func (v Visit) DbgString() string {
	var step aurora.Value
	switch v.Step {
	case Found:
		step = aurora.Green(v.Step)
	case Tiebreak:
		step = aurora.Yellow(v.Step)
	default:
		step = aurora.Cyan(v.Step)
	}

	s := fmt.Sprintf("edge %d of triangle %d (%s): %s", v.Edge, v.Triangle, dbg.Name(v.Triangle), step)
	if v.Vertex {
		s += aurora.Magenta(" at vertex").String()
	}
	return s
}
