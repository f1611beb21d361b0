package formfill

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Default generation settings. Low temperature keeps the extraction
// deterministic enough for form filling.
const (
	DefaultTemperature     = 0.1
	DefaultMaxOutputTokens = 1024
)

// Options represents functional options for one extraction cycle.
type Options struct {
	Model           string
	Temperature     float64
	MaxOutputTokens int
	Timeout         time.Duration
	Hint            string // optional context embedded in the prompt
	Runner          Runner // nil → DefaultRunner (batch only)
}

func WithModel(name string) func(*Options) {
	return func(o *Options) { o.Model = name }
}

func WithTemperature(t float64) func(*Options) {
	return func(o *Options) { o.Temperature = t }
}

func WithMaxOutputTokens(n int) func(*Options) {
	return func(o *Options) { o.MaxOutputTokens = n }
}

func WithTimeout(d time.Duration) func(*Options) {
	return func(o *Options) { o.Timeout = d }
}

func WithHint(hint string) func(*Options) {
	return func(o *Options) { o.Hint = hint }
}

func WithRunner(r Runner) func(*Options) {
	return func(o *Options) { o.Runner = r }
}

// Result is the outcome of one successful extraction cycle: a fresh
// FieldSet with extracted values merged in, and the display names of the
// fields whose value meaningfully changed. An empty Changed with a nil
// error means the model understood the request but recognized nothing —
// hosts should report that distinctly from a failure.
type Result struct {
	Fields  FieldSet
	Changed []string
}

// Extractor orchestrates one extraction cycle end to end: build prompt →
// call gateway → parse → flatten → update fields → diff. It holds no
// per-form state and is safe for concurrent use across sessions.
type Extractor struct {
	gateway Gateway
	prompts PromptProvider
	log     *slog.Logger
}

// New returns an Extractor with the default prompt builder, logging to
// slog.Default().
func New(gw Gateway) *Extractor {
	return NewWithLogger(gw, nil, slog.Default())
}

// NewWithLogger lets the caller supply a prompt provider and logger. A nil
// provider uses the default instruction builder; a nil logger uses
// slog.Default().
func NewWithLogger(gw Gateway, prompts PromptProvider, log *slog.Logger) *Extractor {
	if prompts == nil {
		prompts = defaultPrompts{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{gateway: gw, prompts: prompts, log: log}
}

// Extract runs one atomic extraction cycle. On any failure the caller's
// FieldSet is untouched and exactly one error is returned: a *ServiceError
// when the gateway failed, a *ParseError when its output could not be
// interpreted, or a sentinel for invalid input. The input slice is never
// mutated; the merged FieldSet in the Result is a fresh copy.
func (x *Extractor) Extract(ctx context.Context, utterance string, fields FieldSet, optFns ...func(*Options)) (*Result, error) {
	if strings.TrimSpace(utterance) == "" {
		return nil, fmt.Errorf("extract: %w", ErrEmptyUtterance)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("extract: %w", ErrNoFields)
	}
	if err := fields.Validate(); err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	opts := Options{
		Temperature:     DefaultTemperature,
		MaxOutputTokens: DefaultMaxOutputTokens,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("extract: %w", ErrModelMissing)
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	prompt, err := x.prompts.BuildPrompt(fields, utterance, opts.Hint)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}
	x.log.Debug("prompt built", "field_count", len(fields), "prompt_length", len(prompt), "hint_set", opts.Hint != "")

	raw, err := x.gateway.Generate(ctx, GenerateRequest{
		Model:           opts.Model,
		Instructions:    prompt,
		Temperature:     opts.Temperature,
		MaxOutputTokens: opts.MaxOutputTokens,
	})
	if err != nil {
		x.log.Debug("gateway call failed", "model", opts.Model, "error", err)
		return nil, err
	}

	payload, err := ParseResponse(raw)
	if err != nil {
		x.log.Debug("response unparseable", "response_length", len(raw), "error", err)
		return nil, err
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, &ParseError{RawText: raw, Err: fmt.Errorf("payload is %T, not a JSON object", payload)}
	}

	flat := Flatten(obj)
	updated := applyValues(fields, flat)
	changed := diffFields(fields, updated)

	x.log.Debug("extraction merged", "extracted_keys", len(flat), "changed_fields", len(changed))
	return &Result{Fields: updated, Changed: changed}, nil
}

// ExtractFrom reads the utterance from an UtteranceSource before running
// the cycle. Transcribed and typed input follow the identical path.
func (x *Extractor) ExtractFrom(ctx context.Context, src UtteranceSource, fields FieldSet, optFns ...func(*Options)) (*Result, error) {
	utterance, err := src.Utterance(ctx)
	if err != nil {
		return nil, fmt.Errorf("utterance source: %w", err)
	}
	return x.Extract(ctx, utterance, fields, optFns...)
}
