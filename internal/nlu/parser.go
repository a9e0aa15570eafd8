package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"life-assistant/internal/command"
	"life-assistant/pkg/gemini"
)

// Parse extracts a command intent from free text
// Convention: Method accepts context.Context as first parameter
func (p *SemanticParser) Parse(ctx context.Context, text string, history []string) command.Intent {
	historyContext := ""
	if len(history) > 0 {
		historyContext = PromptHistoryPrefix
		for i, msg := range history {
			historyContext += fmt.Sprintf("%d. %s\n", i+1, msg)
		}
		historyContext += "\n"
	}

	prompt := historyContext + gemini.BuildIntentPrompt(text, p.timeContext())

	resp, err := p.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Role: "user",
				Parts: []gemini.Part{
					{Text: prompt},
				},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature: ParserTemperature,
		},
	})
	if err != nil {
		p.l.Warnf(ctx, "%s: %s: %v", LogPrefixParse, ErrMsgLLMCallFailed, err)
		return command.UnknownIntent{OriginalText: text}
	}

	responseText := stripCodeFences(resp.FirstText())
	if responseText == "" {
		p.l.Warnf(ctx, "%s: %s", LogPrefixParse, ErrMsgEmptyResponse)
		return command.UnknownIntent{OriginalText: text}
	}

	var out payload
	if err := json.Unmarshal([]byte(responseText), &out); err != nil {
		p.l.Warnf(ctx, "%s: %s: %v", LogPrefixParse, ErrMsgJSONParseFailed, err)
		return command.UnknownIntent{OriginalText: text}
	}

	intent := out.toIntent(text, 0)
	p.l.Infof(ctx, "%s: parsed %T from %q", LogPrefixParse, intent, text)
	return intent
}

// timeContext anchors relative date phrases for the model.
func (p *SemanticParser) timeContext() string {
	loc, err := time.LoadLocation(p.timezone)
	if err != nil {
		loc = time.Local
	}
	now := p.now().In(loc)
	return fmt.Sprintf("%s (%s)", now.Format(time.RFC3339), now.Weekday())
}

// stripCodeFences removes a surrounding markdown code block if present
// (```json ... ```); models add them despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
