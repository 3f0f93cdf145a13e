package subtitle

// represents single subtitle cue: a time range plus display text
type Cue struct {
	Start string // rendered timestamp, HH:MM:SS,mmm
	End   string
	Text  string // one or more non-empty lines joined with "\n"
}
