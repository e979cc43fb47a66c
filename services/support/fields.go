package support

import (
	"context"

	"github.com/shepstack/supportai/services/ai"
)

// Derived field prompts. The wording is part of the cache identity:
// changing a prompt invalidates every previously cached derivation.
const (
	sentimentPrompt = "classify as positive, neutral, or negative\n\nRespond with only the result, no explanation."
	summaryPrompt   = "summarize in one sentence\n\nRespond with only the result, no explanation."
)

// MessageSentiment derives the Message.sentiment field: positive,
// neutral, or negative.
func (s *Service) MessageSentiment(ctx context.Context, data any) (string, error) {
	contextText, err := serializeContext(data)
	if err != nil {
		return "", err
	}
	return s.invoker.Invoke(ctx, s.sentimentRequest(contextText))
}

// MessageSummary derives the Message.summary field: a one-sentence
// summary of the message.
func (s *Service) MessageSummary(ctx context.Context, data any) (string, error) {
	contextText, err := serializeContext(data)
	if err != nil {
		return "", err
	}
	return s.invoker.Invoke(ctx, s.summaryRequest(contextText))
}

func (s *Service) sentimentRequest(contextText string) ai.Request {
	return ai.Request{
		Prompt:    sentimentPrompt,
		Context:   contextText,
		CacheHint: contextHint("Message_sentiment_", contextText),
	}
}

func (s *Service) summaryRequest(contextText string) ai.Request {
	return ai.Request{
		Prompt:    summaryPrompt,
		Context:   contextText,
		CacheHint: contextHint("Message_summary_", contextText),
	}
}
