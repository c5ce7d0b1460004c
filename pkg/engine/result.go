package engine

import (
	"fmt"
	"strings"
)

type SearchResult struct {
	// Chosen column
	Column int
	// Rule that decided the move, ShortcutNone after a full search
	Shortcut Shortcut
	// Score of every root column (nil after a shortcut), ImpossibleScore for illegal ones
	Scores []int
	Depth  int
	// Number of resolved search jobs
	Nodes   uint64
	TimeMs  int
	Threads int
	Policy  MultithreadPolicy
}

func (r SearchResult) String() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("column %d", r.Column))

	if r.Shortcut != ShortcutNone {
		builder.WriteString(fmt.Sprintf(" shortcut %s", r.Shortcut))
		return builder.String()
	}

	builder.WriteString(fmt.Sprintf(" depth %d nodes %d time %dms threads %d (%s) scores [",
		r.Depth, r.Nodes, r.TimeMs, r.Threads, r.Policy))
	for i, score := range r.Scores {
		if i > 0 {
			builder.WriteByte(' ')
		}
		if score == ImpossibleScore {
			builder.WriteByte('-')
		} else {
			builder.WriteString(fmt.Sprintf("%d", score))
		}
	}
	builder.WriteByte(']')
	return builder.String()
}
