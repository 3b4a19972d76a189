package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/100percenttuna/undertow/pkg/config"
	"github.com/100percenttuna/undertow/pkg/gateway"
	"github.com/100percenttuna/undertow/pkg/llm"
	"github.com/100percenttuna/undertow/pkg/metrics"
	"github.com/100percenttuna/undertow/pkg/models"
	"github.com/100percenttuna/undertow/pkg/router"
)

// maxParseRecovery bounds the schema-repair loop: after the initial call, at
// most this many re-prompts before OUTPUT_PARSE/OUTPUT_VALIDATION surfaces.
const maxParseRecovery = 2

// schemaRepairDirective is appended on parse recovery together with the
// failing raw output.
const schemaRepairDirective = "Your previous response did not match the required JSON schema. " +
	"Respond again with ONLY a valid JSON object matching the schema exactly. " +
	"Problem: %s"

// Recorder persists agent results with their stories. Implemented by
// services.StoryService; nil disables persistence (tests).
type Recorder interface {
	SaveAgentRecord(ctx context.Context, req models.CreateAgentRecordRequest) error
}

// Runtime executes agents under the uniform contract.
type Runtime struct {
	router   *router.Router
	gateway  *gateway.Gateway
	cfg      *config.Config
	recorder Recorder
}

// NewRuntime creates the execution envelope. recorder may be nil.
func NewRuntime(r *router.Router, g *gateway.Gateway, cfg *config.Config, recorder Recorder) *Runtime {
	return &Runtime{
		router:   r,
		gateway:  g,
		cfg:      cfg,
		recorder: recorder,
	}
}

// Run executes one agent call under the execution contract:
// input validation, routing, gateway call (cache/budget/retry inside),
// bounded parse recovery, confidence range checks, quality scoring,
// metadata emission, persistence.
//
// All failures return Result{Success: false}; Run never returns a Go error.
func (rt *Runtime) Run(ctx context.Context, ag Agent, in Input) Result {
	start := time.Now()
	meta := Metadata{
		TaskName:    ag.TaskName(),
		Version:     ag.Version(),
		ExecutionID: uuid.New().String(),
	}
	log := slog.With(
		"task", meta.TaskName,
		"story_id", in.StoryID,
		"execution_id", meta.ExecutionID,
	)

	// 1. Input validation.
	if err := ag.ValidateInput(in); err != nil {
		return rt.fail(ctx, in, meta, start, ErrValidation, err.Error())
	}

	// 2. Routing. The decision is pinned for the whole call, recovery
	// re-prompts included.
	decision, err := rt.router.Route(meta.TaskName, ag.TierOverride())
	if err != nil {
		return rt.fail(ctx, in, meta, start, ErrProviderUnavailable, err.Error())
	}
	meta.Provider = decision.Provider
	meta.Tier = string(decision.Tier)
	if decision.FellBack {
		metrics.AgentCalls.WithLabelValues(meta.TaskName, "failover").Inc()
	}

	// 3. Initial gateway call.
	messages := ag.BuildMessages(in)
	result, gerr := rt.complete(ctx, ag, in, decision, messages)
	if gerr != nil {
		kind := mapGatewayKind(ctx, gerr)
		return rt.fail(ctx, in, meta, start, kind, gerr.Message)
	}
	rt.accumulate(&meta, result)

	// 4. Parse + output validation with bounded schema-repair recovery.
	out, parseFailure := rt.parseAndValidate(ag, in, result.Content)
	recoveries := 0
	for parseFailure != nil && recoveries < maxParseRecovery {
		recoveries++
		log.Warn("Agent output rejected, attempting schema repair",
			"attempt", recoveries, "kind", parseFailure.Kind, "error", parseFailure.Message)

		repairMessages := append(append([]llm.Message{}, messages...),
			llm.Message{Role: llm.RoleAssistant, Content: result.Content},
			llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf(schemaRepairDirective, parseFailure.Message)},
		)
		result, gerr = rt.complete(ctx, ag, in, decision, repairMessages)
		if gerr != nil {
			kind := mapGatewayKind(ctx, gerr)
			meta.Retries += recoveries
			return rt.fail(ctx, in, meta, start, kind, gerr.Message)
		}
		rt.accumulate(&meta, result)
		out, parseFailure = rt.parseAndValidate(ag, in, result.Content)
	}
	meta.Retries += recoveries
	if parseFailure != nil {
		return rt.fail(ctx, in, meta, start, parseFailure.Kind, parseFailure.Message)
	}

	// 5. Quality self-assessment.
	if assessor, ok := ag.(QualityAssessor); ok {
		score := assessor.AssessQuality(out, in)
		if score < 0 {
			score = 0
		} else if score > 1 {
			score = 1
		}
		meta.QualityScore = score
	} else {
		meta.QualityScore = 1
	}

	meta.ModelUsed = result.ModelUsed
	meta.CacheHit = result.CacheHit
	meta.LatencyMS = int(time.Since(start).Milliseconds())

	status := "success"
	if meta.CacheHit {
		status = "cache_hit"
	}
	metrics.AgentCalls.WithLabelValues(meta.TaskName, status).Inc()

	res := Result{Success: true, Output: out, Metadata: meta}
	rt.persist(ctx, in, res)
	return res
}

// complete issues one gateway call with the agent's settings.
func (rt *Runtime) complete(ctx context.Context, ag Agent, in Input, decision router.Decision, messages []llm.Message) (*gateway.CompletionResult, *gateway.Error) {
	input := gateway.CompletionInput{
		TaskName:        ag.TaskName(),
		PromptVersion:   ag.Version(),
		SchemaVersion:   ag.Version(),
		Provider:        decision.Provider,
		Model:           decision.Model,
		Tier:            decision.Tier,
		Messages:        messages,
		Temperature:     temperatureFor(ag.ResponseFormat()),
		MaxOutputTokens: maxTokensFor(ag.ResponseFormat()),
		ResponseFormat:  ag.ResponseFormat(),
		Timeout:         rt.cfg.Timeouts.Agent,
		CacheKind:       ag.CacheKind(),
		Critical:        in.Critical,
		StoryID:         in.StoryID,
		RunID:           in.RunID,
	}
	result, err := rt.gateway.Complete(ctx, input)
	if err != nil {
		return nil, gateway.AsError(err)
	}
	return result, nil
}

// parseAndValidate converts raw content into a validated output, applying the
// confidence range policy.
func (rt *Runtime) parseAndValidate(ag Agent, in Input, raw string) (Output, *Failure) {
	out, err := ag.ParseOutput(raw)
	if err != nil {
		return nil, &Failure{Kind: ErrOutputParse, Message: err.Error()}
	}
	if err := out.Validate(); err != nil {
		return nil, &Failure{Kind: ErrOutputValidation, Message: err.Error()}
	}

	clampAllowed := rt.cfg.Pipeline.ClampConfidence && !rt.cfg.Pipeline.StrictMode
	for _, c := range out.ConfidenceFields() {
		if c == nil {
			continue
		}
		if *c < 0 || *c > 1 {
			if !clampAllowed {
				return nil, &Failure{
					Kind:    ErrOutputValidation,
					Message: fmt.Sprintf("confidence %v outside [0,1]", *c),
				}
			}
			if *c < 0 {
				*c = 0
			} else {
				*c = 1
			}
		}
	}
	return out, nil
}

// accumulate folds one gateway result's accounting into the metadata.
// Recovery re-prompts add to the same execution's totals.
func (rt *Runtime) accumulate(meta *Metadata, result *gateway.CompletionResult) {
	meta.InputTokens += result.InputTokens
	meta.OutputTokens += result.OutputTokens
	meta.CostUSD += result.CostUSD
	meta.Retries += result.Retries
}

// fail builds, records, and returns a failure result.
func (rt *Runtime) fail(ctx context.Context, in Input, meta Metadata, start time.Time, kind ErrorKind, message string) Result {
	meta.LatencyMS = int(time.Since(start).Milliseconds())
	metrics.AgentCalls.WithLabelValues(meta.TaskName, "failure").Inc()
	res := Result{
		Success:  false,
		Err:      &Failure{Kind: kind, Message: message},
		Metadata: meta,
	}
	rt.persist(ctx, in, res)
	return res
}

// persist writes the agent record. Best-effort: persistence failures are
// logged, never surfaced into the pipeline.
func (rt *Runtime) persist(ctx context.Context, in Input, res Result) {
	if rt.recorder == nil || in.StoryID == "" {
		return
	}

	req := models.CreateAgentRecordRequest{
		StoryID:      in.StoryID,
		Pass:         in.Pass,
		Stage:        in.Stage,
		TaskName:     res.Metadata.TaskName,
		Version:      res.Metadata.Version,
		ExecutionID:  res.Metadata.ExecutionID,
		Success:      res.Success,
		Provider:     res.Metadata.Provider,
		ModelUsed:    res.Metadata.ModelUsed,
		Tier:         res.Metadata.Tier,
		InputTokens:  res.Metadata.InputTokens,
		OutputTokens: res.Metadata.OutputTokens,
		CostUSD:      res.Metadata.CostUSD,
		LatencyMS:    res.Metadata.LatencyMS,
		Retries:      res.Metadata.Retries,
		CacheHit:     res.Metadata.CacheHit,
	}
	if res.Success {
		score := res.Metadata.QualityScore
		req.QualityScore = &score
		req.Output = outputToMap(res.Output)
	} else {
		req.ErrorKind = string(res.Err.Kind)
		req.ErrorMessage = res.Err.Message
	}

	// Persist on a background context: the record must survive story
	// cancellation mid-stage.
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := rt.recorder.SaveAgentRecord(writeCtx, req); err != nil {
		slog.Error("Failed to persist agent record",
			"task", res.Metadata.TaskName,
			"story_id", in.StoryID,
			"error", err)
	}
}

// outputToMap renders a typed output as a JSON-shaped map for persistence.
func outputToMap(out Output) map[string]interface{} {
	raw, err := json.Marshal(out)
	if err != nil {
		return map[string]interface{}{"_marshal_error": err.Error()}
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]interface{}{"_marshal_error": err.Error()}
	}
	return m
}

// mapGatewayKind translates gateway error kinds into agent error kinds,
// distinguishing caller cancellation from provider timeouts.
func mapGatewayKind(ctx context.Context, gerr *gateway.Error) ErrorKind {
	if errors.Is(ctx.Err(), context.Canceled) {
		return ErrCancelled
	}
	switch gerr.Kind {
	case gateway.KindBudgetDenied:
		return ErrBudgetDenied
	case gateway.KindCircuitOpen:
		return ErrCircuitOpen
	case gateway.KindRateLimited:
		return ErrRateLimited
	case gateway.KindServerError:
		return ErrServer
	case gateway.KindNetworkError:
		return ErrNetwork
	case gateway.KindTimeout:
		return ErrTimeout
	case gateway.KindClientError, gateway.KindInvalidResponse:
		return ErrInvalidResponse
	default:
		return ErrInvalidResponse
	}
}

// temperatureFor picks deterministic settings for JSON tasks and a modest
// creative temperature for prose.
func temperatureFor(format llm.ResponseFormat) float64 {
	if format == llm.ResponseFormatJSON {
		return 0.1
	}
	return 0.7
}

// maxTokensFor sizes the output budget per format.
func maxTokensFor(format llm.ResponseFormat) int {
	if format == llm.ResponseFormatJSON {
		return 4096
	}
	return 8192
}
