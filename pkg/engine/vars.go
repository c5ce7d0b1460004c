package engine

import "time"

const (
	// Evaluate root columns on a bounded pool of goroutines (see Limits.NThreads),
	// every column gets its own copy of the board
	MultithreadRootParallel MultithreadPolicy = iota

	// Evaluate the root columns one by one on the calling goroutine
	MultithreadSequential
)

func (p MultithreadPolicy) String() string {
	if p == MultithreadSequential {
		return "sequential"
	}
	return "root-parallel"
}

// Default number of plies searched below the root move
const DefaultDepth = 4

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for the random column order of the
// tactical solver, by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
