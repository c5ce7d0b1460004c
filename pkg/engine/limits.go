package engine

import (
	"encoding/json"
	"runtime"
	"strings"
)

type Limits struct {
	Depth    int
	NThreads int
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

func DefaultLimits() *Limits {
	return &Limits{
		Depth:    DefaultDepth,
		NThreads: runtime.NumCPU(),
	}
}

// Set the number of plies searched below the root move
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = depth
	return l
}

// Set the size of the root worker pool
func (l *Limits) SetThreads(threads int) *Limits {
	l.NThreads = max(threads, 1)
	return l
}
