// Package formfill populates multi-field data-entry forms from natural
// language. A user dictates or types free text; the pipeline asks a
// language model to extract values for the declared field schema and
// merges the result back with a type-aware diff that never lets "nothing
// extracted" erase data a human already entered.
//
// # Pipeline
//
// One extraction cycle runs: prompt builder → gateway call → response
// parser → path flattener → field updater → diff engine. The gateway call
// is the only suspension point; everything else is synchronous and
// in-memory. A cycle is atomic at the FieldSet level: on any failure the
// caller's fields are untouched and exactly one error is surfaced.
//
// # Basic Usage
//
// Declare the form schema and extract:
//
//	fields := formfill.FieldSet{
//	    {ID: "va-od", Path: "vision.rightEye.uncorrected", Type: formfill.FieldText, Label: "Uncorrected VA (right)"},
//	    {ID: "va-os", Path: "vision.leftEye.uncorrected", Type: formfill.FieldText, Label: "Uncorrected VA (left)"},
//	}
//
//	client, _ := genai.NewClient(ctx, nil)
//	x := formfill.New(formfill.NewGenaiGateway(client, nil))
//
//	res, err := x.Extract(ctx,
//	    "patient's uncorrected vision in the right eye is 20/40",
//	    fields,
//	    formfill.WithModel("gemini-1.5-pro"),
//	)
//	// res.Fields carries the merged values, res.Changed the labels that changed.
//
// # Sessions
//
// A Session owns the FieldSet for one live form. It rejects overlapping
// extractions and discards results that arrive after the form was torn
// down:
//
//	s := formfill.NewSession(x, fields)
//	changed, err := s.Extract(ctx, utterance, formfill.WithModel("gemini-1.5-pro"))
//	...
//	s.Close() // a still-outstanding result is dropped on arrival
//
// # Error handling
//
// Gateway failures surface as *ServiceError and may be shown to the user;
// unparseable model output surfaces as *ParseError whose raw text is for
// logs only. Extraction keys that match no declared path are silently
// dropped — the model can never add fields the form did not declare. An
// empty change summary with a nil error means "understood but nothing
// recognized" and should be reported distinctly from a failure.
//
// # Custom prompts
//
// The default instruction builder enumerates every field's dot-path, type,
// and options deterministically. Hosts that need different phrasing can
// supply a Twig template via StickPromptProvider; the schema block,
// utterance, and hint are injected as template variables.
package formfill
