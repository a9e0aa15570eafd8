package telegram

import (
	"fmt"
	"strings"

	"life-assistant/internal/command"
)

// Handler messages
const (
	MsgWelcome = "👋 欢迎使用 *生活助手*！\n\n直接用一句话告诉我要做什么：\n• 💰 记账：\"午饭花了25块\"\n• ✅ 待办：\"提醒我明天下午3点开会\"\n• 📔 日记：\"今天很开心，记一下\"\n• 🏃 习惯：\"跑步打卡\"\n• 🎯 目标：\"这个月读完3本书\"\n\n发送 /help 查看更多例子"
	MsgHelp    = "*使用方法：*\n\n一句话可以包含多条命令，例如：\n`昨天午饭花了25块，再提醒我明天开会`\n\n还可以问我：\n`这个月花了多少钱`\n`跑步坚持几天了`\n`我的目标进度怎么样`"

	MsgProcessingError   = "处理出错了，请稍后再试。"
	MsgVoiceNotSupported = "🎤 收到语音啦，语音识别还在开发中，先打字告诉我吧~"
)

// FormatResult renders an execution result as a Markdown reply. Every result
// variant has a branch; an unhandled variant falls back to a generic line
// rather than silence.
func FormatResult(result command.Result) string {
	switch res := result.(type) {
	case command.Success:
		return "✅ " + res.Message
	case command.Failure:
		return "❌ " + res.Message
	case command.NeedMoreInfo:
		return "❓ " + res.Prompt
	case command.NeedConfirmation:
		return fmt.Sprintf("⚠️ %s\n\n回复\"确认\"继续", res.Preview)
	case command.NotRecognized:
		if strings.TrimSpace(res.OriginalText) == "" {
			return "🤔 没听懂，换个说法试试？"
		}
		return fmt.Sprintf("🤔 没听懂这句话：%s\n换个说法试试？", res.OriginalText)
	case command.MultipleAdded:
		reply := fmt.Sprintf("✅ 完成 *%d* 条命令\n%s", res.Count, res.Summary)
		if res.Failed > 0 {
			reply += fmt.Sprintf("\n\n⚠️ 有 %d 条没有执行成功", res.Failed)
		}
		return reply
	default:
		return "✅ 好的"
	}
}
