package executor

import (
	"context"
	"strings"

	"life-assistant/internal/command"
)

// executeMultiple runs each child intent through the same Execute entry
// point, strictly in order, so a later child's reads see earlier children's
// writes. Only successful children contribute to the summary; failures are
// counted and logged but their detail is not surfaced in the result.
func (e *Executor) executeMultiple(ctx context.Context, it command.MultipleIntent) command.Result {
	var (
		messages []string
		failed   int
	)

	for i, child := range it.Children {
		switch res := e.Execute(ctx, child).(type) {
		case command.Success:
			messages = append(messages, res.Message)
		case command.MultipleAdded:
			messages = append(messages, res.Summary)
			failed += res.Failed
		default:
			failed++
			e.l.Warnf(ctx, "%s: child %d dropped: %#v", LogPrefixMultiple, i, res)
		}
	}

	if len(messages) == 0 {
		return command.Failure{Message: MsgAllChildrenFailed}
	}

	return command.MultipleAdded{
		Count:   len(messages),
		Failed:  failed,
		Summary: strings.Join(messages, "；"),
	}
}
