package analysis

import (
	"context"
	"errors"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	apperrors "github.com/truthos/meeting-intelligence/errors"
	"github.com/truthos/meeting-intelligence/internal/domain/entities"
	"github.com/truthos/meeting-intelligence/pkg/llm"
)

// Retry constants are fixed and documented rather than configurable: the
// transport retry window bounds a synchronous request-path call, and the
// single schema retry covers provider nondeterminism.
const (
	schemaRetries         = 1
	transportInitialDelay = 1 * time.Second
	transportMaxElapsed   = 15 * time.Second
	transportMaxInterval  = 5 * time.Second
)

// Completer is the provider surface the agent needs; satisfied by *llm.Client.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Provider() string
	Model() string
}

// Agent calls the external LLM and enforces the output contract. It is
// stateless between calls and carries no cache of its own; whether a result
// was computed before is entirely the derived store's concern.
type Agent struct {
	client Completer
	parser *Parser
	logger *zap.Logger
}

// NewAgent constructs an analysis agent
func NewAgent(client Completer, logger *zap.Logger) *Agent {
	return &Agent{
		client: client,
		parser: NewParser(),
		logger: logger,
	}
}

// Model returns the model identifier recorded on derived rows.
func (a *Agent) Model() string {
	return a.client.Model()
}

// Run analyzes one transcript. Invalid provider output is retried once with
// identical input; a second schema failure surfaces as SchemaViolation.
// Transport and availability failures are retried with bounded backoff and
// surface as UpstreamError. Neither failure persists anything.
func (a *Agent) Run(ctx context.Context, transcript string) (entities.AnalysisPayload, error) {
	user := buildUserPrompt(transcript)

	var lastParseErr error
	for attempt := 0; attempt <= schemaRetries; attempt++ {
		content, err := a.complete(ctx, user)
		if err != nil {
			return entities.AnalysisPayload{}, apperrors.ErrUpstream(a.client.Provider(), err)
		}

		payload, parseErr := a.parser.ParsePayload(content)
		if parseErr == nil {
			return payload, nil
		}
		lastParseErr = parseErr

		if a.logger != nil {
			a.logger.Warn("provider returned invalid analysis output",
				zap.Int("attempt", attempt+1),
				zap.Error(parseErr),
			)
		}
	}

	return entities.AnalysisPayload{}, apperrors.ErrSchemaViolation(lastParseErr)
}

// complete performs one logical provider call with transport-level retries.
// Rate limits and 5xx responses back off and retry; other 4xx responses are
// permanent (a bad key will not heal by waiting).
func (a *Agent) complete(ctx context.Context, user string) (string, error) {
	var content string

	operation := func() error {
		out, err := a.client.Complete(ctx, systemPrompt, user)
		if err != nil {
			var statusErr *llm.StatusError
			if errors.As(err, &statusErr) && !statusErr.Retryable() {
				return backoff.Permanent(err)
			}
			return err
		}
		content = out
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = transportInitialDelay
	bo.MaxInterval = transportMaxInterval
	bo.MaxElapsedTime = transportMaxElapsed

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return content, nil
}
