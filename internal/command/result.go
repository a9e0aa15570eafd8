package command

// Result is the outcome of executing an intent. Like Intent it is a closed
// set; every variant is an immutable snapshot returned exactly once.
type Result interface {
	isResult()
}

// Success reports a completed operation with a user-facing message and an
// optional structured data map.
type Success struct {
	Message string
	Data    map[string]any
}

// Failure reports an operation that cannot be completed by re-prompting.
type Failure struct {
	Message string
}

// NeedMoreInfo reports missing required fields. The original intent is
// carried so the caller can merge a follow-up answer into it.
type NeedMoreInfo struct {
	Intent        Intent
	MissingFields []string
	Prompt        string
}

// NeedConfirmation asks the user to confirm before the operation runs.
type NeedConfirmation struct {
	Preview string
}

// NotRecognized carries the original text of an unclassifiable command.
type NotRecognized struct {
	OriginalText string
}

// MultipleAdded aggregates a composite command. Only successful children
// contribute to Summary; Failed counts the children that were dropped.
type MultipleAdded struct {
	Count   int
	Failed  int
	Summary string
}

func (Success) isResult()          {}
func (Failure) isResult()          {}
func (NeedMoreInfo) isResult()     {}
func (NeedConfirmation) isResult() {}
func (NotRecognized) isResult()    {}
func (MultipleAdded) isResult()    {}
