package engine

// Listener function callback, will receive the search result
type ListenerFunc func(SearchResult)

// Called with a root column and its score
type ColumnListenerFunc func(col, score int)

type StatsListener struct {
	// called for every root column once all of them are evaluated,
	// in column order
	onColumn ColumnListenerFunc

	// called when the search ends, also after a tactical shortcut
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

// Attach root column callback. It's invoked on the searching goroutine after
// the workers have joined, so there is no need for synchronization here
func (listener *StatsListener) OnColumn(onColumn ColumnListenerFunc) *StatsListener {
	listener.onColumn = onColumn
	return listener
}

// Attach 'on search end' callback
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invokeColumns(scores []int) {
	if listener.onColumn == nil {
		return
	}
	for col, score := range scores {
		listener.onColumn(col, score)
	}
}

func (listener *StatsListener) invokeStop(result SearchResult) {
	if listener.onStop != nil {
		listener.onStop(result)
	}
}
