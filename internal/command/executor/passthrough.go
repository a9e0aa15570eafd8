package executor

import (
	"context"
	"fmt"

	"life-assistant/internal/command"
)

// executeTimeTrack is a stateless passthrough: there is no timer entity to
// persist, only a confirmation for the caller.
func (e *Executor) executeTimeTrack(ctx context.Context, it command.TimeTrackIntent) command.Result {
	activity := it.Activity
	if activity == "" {
		activity = "当前活动"
	}

	var msg string
	switch it.Action {
	case command.TimeTrackStart:
		msg = fmt.Sprintf("开始计时：%s", activity)
	case command.TimeTrackStop:
		msg = fmt.Sprintf("已停止计时：%s", activity)
	case command.TimeTrackPause:
		msg = "计时已暂停"
	case command.TimeTrackResume:
		msg = "继续计时"
	default:
		return command.Failure{Message: "无法识别的计时操作"}
	}

	return command.Success{
		Message: msg,
		Data:    map[string]any{"action": string(it.Action)},
	}
}

// executeNavigate echoes the destination; actual navigation belongs to the
// caller.
func (e *Executor) executeNavigate(ctx context.Context, it command.NavigateIntent) command.Result {
	if it.Destination == "" {
		return command.NeedMoreInfo{
			Intent:        it,
			MissingFields: []string{"destination"},
			Prompt:        "想打开哪个页面？",
		}
	}
	return command.Success{
		Message: fmt.Sprintf("正在打开%s", it.Destination),
		Data:    map[string]any{"destination": it.Destination},
	}
}
