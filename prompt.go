package formfill

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/tyler-sommer/stick"
)

// PromptProvider turns a field schema, an utterance, and an optional context
// hint into the instruction text sent to the gateway.
type PromptProvider interface {
	BuildPrompt(fields FieldSet, utterance, hint string) (string, error)
}

// DefaultPromptTag is the template tag the StickPromptProvider renders when
// none is configured.
const DefaultPromptTag = "extract"

// BuildPrompt is the default instruction builder. It is a pure function:
// the same FieldSet order, utterance, and hint always produce the same text.
// Every field is enumerated with its exact dot-path, type, and option list,
// and the model is told to echo those paths verbatim as JSON keys. The
// utterance and hint are embedded unmodified.
func BuildPrompt(fields FieldSet, utterance, hint string) string {
	var b strings.Builder
	b.WriteString("You are a data-entry assistant. Extract values for the form fields below from the user's words.\n\n")
	b.WriteString("Fields (use each dot-path verbatim as a JSON key):\n")
	b.WriteString(schemaBlock(fields))
	b.WriteString("\nRules:\n")
	b.WriteString("- Return ONLY a strict JSON object. No prose, no explanations, no markdown.\n")
	b.WriteString("- Keys must be exactly the dot-paths listed above.\n")
	b.WriteString("- Omit every field the text says nothing about. Never invent values.\n")
	b.WriteString("- For select and radio fields answer with one of the listed options.\n")
	if hint != "" {
		b.WriteString("\nContext: ")
		b.WriteString(hint)
		b.WriteByte('\n')
	}
	b.WriteString("\nUtterance:\n")
	b.WriteString(utterance)
	return b.String()
}

// schemaBlock renders one line per field in FieldSet order.
func schemaBlock(fields FieldSet) string {
	var b strings.Builder
	for _, f := range fields {
		b.WriteString("- ")
		b.WriteString(f.Path)
		b.WriteString(" (")
		b.WriteString(string(f.Type))
		b.WriteString(")")
		if f.Label != "" {
			b.WriteString(": ")
			b.WriteString(f.Label)
		}
		if len(f.Options) > 0 {
			b.WriteString(" [options: ")
			b.WriteString(strings.Join(f.Options, ", "))
			b.WriteString("]")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// defaultPrompts adapts BuildPrompt to the PromptProvider interface.
type defaultPrompts struct{}

func (defaultPrompts) BuildPrompt(fields FieldSet, utterance, hint string) (string, error) {
	return BuildPrompt(fields, utterance, hint), nil
}

// StickPromptProvider renders the instruction from a Twig template, letting
// hosts restyle the prompt without giving up the schema discipline. The
// template receives schema (the rendered field block), paths, utterance,
// and hint as variables. It is fs-agnostic.
type StickPromptProvider struct {
	env       *stick.Env
	templates map[string]string
	vars      map[string]stick.Value
	tag       string
}

// PromptOption configures a StickPromptProvider.
type PromptOption func(*StickPromptProvider) error

// WithFS loads every *.twig file found under dir in the supplied FS.
func WithFS[F fs.FS](fsys F, dir string) PromptOption {
	return func(p *StickPromptProvider) error {
		return fs.WalkDir(fsys, dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".twig") {
				return nil
			}
			content, readErr := fs.ReadFile(fsys, path)
			if readErr != nil {
				return fmt.Errorf("read %s: %w", path, readErr)
			}
			tag := strings.TrimSuffix(filepath.Base(path), ".twig")
			p.templates[tag] = string(content)
			return nil
		})
	}
}

// WithTemplates injects an in-memory template map.
func WithTemplates(m map[string]string) PromptOption {
	return func(p *StickPromptProvider) error {
		for k, v := range m {
			p.templates[k] = v
		}
		return nil
	}
}

// WithPromptVar adds a variable available in all templates.
func WithPromptVar(key string, value any) PromptOption {
	return func(p *StickPromptProvider) error {
		p.vars[key] = value
		return nil
	}
}

// WithTag selects which template the provider renders.
func WithTag(tag string) PromptOption {
	return func(p *StickPromptProvider) error {
		p.tag = tag
		return nil
	}
}

// NewStickPromptProvider builds a provider from any combination of options.
func NewStickPromptProvider(opts ...PromptOption) (*StickPromptProvider, error) {
	p := &StickPromptProvider{
		env:       stick.New(nil),
		templates: make(map[string]string),
		vars:      make(map[string]stick.Value),
		tag:       DefaultPromptTag,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// AddTemplate updates or inserts one template.
func (p *StickPromptProvider) AddTemplate(tag, tpl string) { p.templates[tag] = tpl }

// BuildPrompt renders the configured template with the field schema,
// utterance, and hint in scope.
func (p *StickPromptProvider) BuildPrompt(fields FieldSet, utterance, hint string) (string, error) {
	tpl, ok := p.templates[p.tag]
	if !ok {
		return "", fmt.Errorf("template %q not found", p.tag)
	}

	paths := make([]string, len(fields))
	for i, f := range fields {
		paths[i] = f.Path
	}

	ctx := map[string]stick.Value{
		"schema":    schemaBlock(fields),
		"paths":     paths,
		"pathList":  strings.Join(paths, ", "),
		"utterance": utterance,
		"hint":      hint,
	}
	for k, v := range p.vars {
		ctx[k] = v
	}

	var out strings.Builder
	if err := p.env.Execute(tpl, &out, ctx); err != nil {
		return "", fmt.Errorf("execute %q: %w", p.tag, err)
	}
	return out.String(), nil
}
