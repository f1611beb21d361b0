package formfill

import "fmt"

// PromptStats describes what one extraction cycle would cost without
// calling the gateway. Token figures are rough planning estimates, not
// billing-grade counts.
type PromptStats struct {
	FieldCount   int
	PromptChars  int
	InputTokens  int
	OutputTokens int
}

// DryRun builds the instruction text for the given inputs and estimates its
// token footprint. Useful before enabling dictation on very large forms.
func (x *Extractor) DryRun(fields FieldSet, utterance, hint string) (*PromptStats, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("dry run: %w", ErrNoFields)
	}
	prompt, err := x.prompts.BuildPrompt(fields, utterance, hint)
	if err != nil {
		return nil, fmt.Errorf("dry run: %w", err)
	}
	return &PromptStats{
		FieldCount:   len(fields),
		PromptChars:  len(prompt),
		InputTokens:  EstimateTokensFromText(prompt),
		OutputTokens: estimateOutputTokens(fields),
	}, nil
}

// EstimateTokensFromText applies the usual ~4 characters per token
// heuristic for English text.
func EstimateTokensFromText(text string) int {
	return (len(text) + 3) / 4
}

// estimateOutputTokens sizes the expected JSON reply from the field types.
func estimateOutputTokens(fields FieldSet) int {
	tokens := 10 + len(fields)*2 // object braces plus key overhead
	for _, f := range fields {
		switch f.Type {
		case FieldNumber, FieldCheckbox:
			tokens += 5
		case FieldDate, FieldSelect, FieldRadio:
			tokens += 10
		case FieldTextarea:
			tokens += 40
		default:
			tokens += 15
		}
	}
	return tokens
}
