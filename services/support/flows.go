package support

import (
	"context"
	"fmt"

	"github.com/shepstack/supportai/services/ai"
)

const flowSuffix = "\n\nProvide a clear, actionable response."

// flowSteps maps step names to their action prompts and fixed cache
// hints. Hints are per-step constants: a flow step's response is
// shared across runs regardless of the flow context it carries.
var flowSteps = map[string]struct {
	action string
	hint   string
}{
	"index-knowledge-base": {
		action: "indexes it for search",
		hint:   "flow_company_uploads_knowledge_base_step_5",
	},
	"search-knowledge-base": {
		action: "search knowledge base for relevant articles",
		hint:   "flow_customer_asks_a_question_step_3",
	},
	"generate-answer": {
		action: "generate answer based on knowledge base context",
		hint:   "flow_customer_asks_a_question_step_4",
	},
	"escalation-check": {
		action: "confidence score below 60 percent",
		hint:   "flow_ai_escalates_to_agent_step_1",
	},
}

// ErrUnknownFlowStep is returned for a step name with no registered action
type ErrUnknownFlowStep struct {
	Step string
}

func (e *ErrUnknownFlowStep) Error() string {
	return fmt.Sprintf("unknown flow step: %q", e.Step)
}

// FlowStepNames lists the registered flow step names
func FlowStepNames() []string {
	names := make([]string, 0, len(flowSteps))
	for name := range flowSteps {
		names = append(names, name)
	}
	return names
}

// FlowStep runs the named flow step with the given flow context
func (s *Service) FlowStep(ctx context.Context, step string, flowContext any) (string, error) {
	def, ok := flowSteps[step]
	if !ok {
		return "", &ErrUnknownFlowStep{Step: step}
	}

	contextText, err := serializeContext(flowContext)
	if err != nil {
		return "", err
	}

	return s.invoker.Invoke(ctx, ai.Request{
		Prompt:    def.action + flowSuffix,
		Context:   contextText,
		CacheHint: def.hint,
	})
}

// IndexKnowledgeBase runs step 5 of the "Company uploads knowledge
// base" flow.
func (s *Service) IndexKnowledgeBase(ctx context.Context, flowContext any) (string, error) {
	return s.FlowStep(ctx, "index-knowledge-base", flowContext)
}

// SearchKnowledgeBase runs step 3 of the "Customer asks a question" flow
func (s *Service) SearchKnowledgeBase(ctx context.Context, flowContext any) (string, error) {
	return s.FlowStep(ctx, "search-knowledge-base", flowContext)
}

// GenerateAnswer runs step 4 of the "Customer asks a question" flow
func (s *Service) GenerateAnswer(ctx context.Context, flowContext any) (string, error) {
	return s.FlowStep(ctx, "generate-answer", flowContext)
}

// EscalationCheck runs step 1 of the "AI escalates to agent" flow
func (s *Service) EscalationCheck(ctx context.Context, flowContext any) (string, error) {
	return s.FlowStep(ctx, "escalation-check", flowContext)
}
