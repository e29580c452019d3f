package driver

import "time"

// Stage describes what happens to a file.
type Stage string

const (
	// StageLoad is reading the file from disk.
	StageLoad Stage = "load"
	// StageLex is scanning the file.
	StageLex Stage = "lex"
	// StageCache means the tokens came from the token cache.
	StageCache Stage = "cache"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the file was tokenized completely.
	StatusDone Status = "done"
	// StatusError indicates a load failure or a lexical fault.
	StatusError Status = "error"
)

// Event reports progress for a file (or for the whole run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Tokens  int
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use: TokenizeDir reports from its workers.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
