package webclient

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"
)

// DefaultMessageDuration is how long inline form messages stay visible.
const DefaultMessageDuration = 5 * time.Second

// Form is the source of a submission: an HTML form, a terminal prompt, a test double.
type Form interface {
	// Value returns the current value of the input with the given id, "" if absent.
	Value(inputID string) string
	Reset()
}

// Feedback renders the outcome of a submission.
type Feedback interface {
	ShowSuccess(msg string, visibleFor time.Duration)
	ShowError(msg string, visibleFor time.Duration)
	// CloseModal hides the modal with the given id after a delay.
	CloseModal(modalID string, after time.Duration)
	// PromptLogin asks the user to authenticate again.
	PromptLogin()
}

// TransformFunc turns collected logical fields into the request body. An
// error is shown to the user and nothing is sent.
type TransformFunc func(data map[string]string) (map[string]any, error)

// FormConfig declares one form of the site.
type FormConfig struct {
	ID       string
	Endpoint string
	Method   string // POST when empty

	// RequiredFields are logical field names, checked in order.
	RequiredFields []string
	// FieldMapping maps logical field names to input ids.
	FieldMapping map[string]string
	// FieldOrder fixes the order fields are collected in; mapping keys sorted otherwise.
	FieldOrder []string

	Transform   TransformFunc
	RequireAuth bool

	ClearOnSuccess bool
	SuccessModal   string        // modal closed after SuccessTimeout
	SuccessTimeout time.Duration // 1.5s when zero

	OnSuccess func(result *Result, form Form) error
	OnError   func(err error, form Form)
}

func (cfg *FormConfig) method() string {
	if cfg.Method == "" {
		return http.MethodPost
	}
	return cfg.Method
}

func (cfg *FormConfig) successTimeout() time.Duration {
	if cfg.SuccessTimeout <= 0 {
		return 1500 * time.Millisecond
	}
	return cfg.SuccessTimeout
}

func (cfg *FormConfig) inputID(field string) string {
	if id, ok := cfg.FieldMapping[field]; ok {
		return id
	}
	return field
}

func (cfg *FormConfig) fieldNames() []string {
	if len(cfg.FieldOrder) > 0 {
		return cfg.FieldOrder
	}
	names := make([]string, 0, len(cfg.FieldMapping))
	for name := range cfg.FieldMapping {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pipeline runs FormConfigs against a Client.
type Pipeline struct {
	client   *Client
	feedback Feedback
}

func NewPipeline(client *Client, feedback Feedback) *Pipeline {
	p := &Pipeline{client: client, feedback: feedback}
	prev := client.OnAuthFailure
	client.OnAuthFailure = func() {
		if prev != nil {
			prev()
		}
		feedback.PromptLogin()
	}
	return p
}

func (p *Pipeline) Client() *Client { return p.client }

// Submit validates, transforms and sends one form. The returned error has
// already been shown through Feedback.
func (p *Pipeline) Submit(ctx context.Context, cfg *FormConfig, form Form) (*Result, error) {
	if cfg.RequireAuth && !p.client.LoggedIn() {
		return nil, p.fail(cfg, form, errors.New("Please log in to perform this action."))
	}

	data := make(map[string]string, len(cfg.FieldMapping))
	for _, name := range cfg.fieldNames() {
		data[name] = strings.TrimSpace(form.Value(cfg.inputID(name)))
	}

	for _, name := range cfg.RequiredFields {
		if strings.TrimSpace(form.Value(cfg.inputID(name))) == "" {
			return nil, p.fail(cfg, form, fmt.Errorf("Please fill in the required field: %s", name))
		}
	}

	body := make(map[string]any, len(data))
	if cfg.Transform != nil {
		transformed, err := cfg.Transform(data)
		if err != nil {
			return nil, p.fail(cfg, form, err)
		}
		body = transformed
	} else {
		for k, v := range data {
			body[k] = v
		}
	}

	result, err := p.client.FetchAuthenticated(ctx, cfg.method(), cfg.Endpoint, body)
	if err != nil {
		return nil, p.fail(cfg, form, err)
	}

	p.feedback.ShowSuccess(result.Message("Operation successful!"), DefaultMessageDuration)
	if cfg.ClearOnSuccess {
		form.Reset()
	}
	if cfg.OnSuccess != nil {
		if err := cfg.OnSuccess(result, form); err != nil {
			log.Printf("[Client] %s success handler: %v", cfg.ID, err)
		}
	}
	if cfg.SuccessModal != "" {
		p.feedback.CloseModal(cfg.SuccessModal, cfg.successTimeout())
	}
	return result, nil
}

func (p *Pipeline) fail(cfg *FormConfig, form Form, err error) error {
	msg := err.Error()
	if msg == "" {
		msg = "An error occurred. Please try again."
	}
	p.feedback.ShowError(msg, DefaultMessageDuration)
	if cfg.OnError != nil {
		cfg.OnError(err, form)
	}
	return err
}
