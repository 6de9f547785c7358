package analysis

import (
	"context"
	stdErrors "errors"
	"testing"

	"github.com/truthos/meeting-intelligence/errors"
	"github.com/truthos/meeting-intelligence/pkg/llm"
)

// fakeCompleter returns queued responses in order; a nil entry means an error.
type fakeCompleter struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", stdErrors.New("no more queued responses")
}

func (f *fakeCompleter) Provider() string { return "fake" }
func (f *fakeCompleter) Model() string    { return "fake-model" }

func TestAgentRun_Success(t *testing.T) {
	fc := &fakeCompleter{responses: []string{validOutput}}
	agent := NewAgent(fc, nil)

	payload, err := agent.Run(context.Background(), "transcript text")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if payload.Summary == "" {
		t.Fatal("summary not populated")
	}
	if fc.calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", fc.calls)
	}
}

func TestAgentRun_SchemaRetryThenSuccess(t *testing.T) {
	fc := &fakeCompleter{responses: []string{`{"sentiment":"confused`, validOutput}}
	agent := NewAgent(fc, nil)

	if _, err := agent.Run(context.Background(), "transcript text"); err != nil {
		t.Fatalf("retry did not recover: %v", err)
	}
	if fc.calls != 2 {
		t.Fatalf("expected 2 provider calls, got %d", fc.calls)
	}
}

func TestAgentRun_SchemaViolationAfterRetry(t *testing.T) {
	fc := &fakeCompleter{responses: []string{`not json`, `still not json`}}
	agent := NewAgent(fc, nil)

	_, err := agent.Run(context.Background(), "transcript text")
	if err == nil {
		t.Fatal("expected schema violation")
	}
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != errors.ErrorCode_SCHEMA_VIOLATION {
		t.Fatalf("expected SCHEMA_VIOLATION, got %v", err)
	}
	if fc.calls != 2 {
		t.Fatalf("expected exactly 2 provider calls, got %d", fc.calls)
	}
}

func TestAgentRun_NonRetryableStatusIsUpstream(t *testing.T) {
	statusErr := &llm.StatusError{StatusCode: 401, Body: "invalid api key"}
	fc := &fakeCompleter{errs: []error{statusErr}}
	agent := NewAgent(fc, nil)

	_, err := agent.Run(context.Background(), "transcript text")
	if err == nil {
		t.Fatal("expected upstream error")
	}
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != errors.ErrorCode_UPSTREAM_ERROR {
		t.Fatalf("expected UPSTREAM_ERROR, got %v", err)
	}
	// 401 must not be retried.
	if fc.calls != 1 {
		t.Fatalf("expected 1 provider call for a permanent failure, got %d", fc.calls)
	}
}

func TestAgentRun_RetryableStatusRetriesThenSucceeds(t *testing.T) {
	fc := &fakeCompleter{
		errs:      []error{&llm.StatusError{StatusCode: 500, Body: "transient"}},
		responses: []string{"", validOutput},
	}
	agent := NewAgent(fc, nil)

	if _, err := agent.Run(context.Background(), "transcript text"); err != nil {
		t.Fatalf("transient failure did not recover: %v", err)
	}
	if fc.calls != 2 {
		t.Fatalf("expected 2 provider calls, got %d", fc.calls)
	}
}
