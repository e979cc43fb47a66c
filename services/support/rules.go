package support

import (
	"context"
	"fmt"
	"strings"

	"github.com/shepstack/supportai/services/ai"
)

const ruleTemplate = "Analyze this text and determine if it: %s\n\nText: %s\n\nRespond with only \"true\" or \"false\"."

// SoundsFrustrated evaluates the "Auto-escalate frustrated customers"
// rule against a message body.
func (s *Service) SoundsFrustrated(ctx context.Context, messageContent string) (bool, error) {
	return s.evaluateRule(ctx, "rule_1_", "sounds frustrated or angry", messageContent)
}

// LooksLikeSpam evaluates the "Flag potential spam" rule against a
// message body.
func (s *Service) LooksLikeSpam(ctx context.Context, messageContent string) (bool, error) {
	return s.evaluateRule(ctx, "rule_2_", "looks like spam or marketing", messageContent)
}

// evaluateRule asks the model a yes/no question about the text and
// interprets the reply. Anything other than "true" (after trimming,
// case-insensitive) is false; a provider failure fails the rule's
// operation rather than defaulting to false.
func (s *Service) evaluateRule(ctx context.Context, hintPrefix, condition, text string) (bool, error) {
	result, err := s.invoker.Invoke(ctx, ai.Request{
		Prompt:    fmt.Sprintf(ruleTemplate, condition, text),
		CacheHint: contextHint(hintPrefix, text),
	})
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(result), "true"), nil
}
