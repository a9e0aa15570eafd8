package nlu

// Log prefixes
const (
	LogPrefixParse = "internal.nlu.Parse"
)

// Parser configuration
const (
	ParserTemperature = 0.1

	PromptHistoryPrefix = "最近的对话：\n"

	// MaxNestingDepth bounds composite intents. Payloads nested deeper
	// than this are treated as unknown.
	MaxNestingDepth = 2
)

// Warning messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed, falling back to unknown"
	ErrMsgEmptyResponse   = "Empty LLM response, falling back to unknown"
	ErrMsgJSONParseFailed = "Failed to parse JSON, falling back to unknown"
)
