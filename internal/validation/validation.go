// Package validation checks request bodies against JSON Schemas generated
// from the model feature columns before they are decoded into typed inputs.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Skufu/climatehealth/internal/features"
)

var printer = message.NewPrinter(language.English)

// Error reports every schema violation found in a request body.
type Error struct {
	Details []string
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// Validator holds the compiled request schemas.
type Validator struct {
	health  *jsonschema.Schema
	carbon  *jsonschema.Schema
	surge   *jsonschema.Schema
	analyze *jsonschema.Schema
}

func New() (*Validator, error) {
	health := recordSchema(features.HealthFields)
	carbon := recordSchema(features.CarbonFields)
	surge := recordSchema(features.SurgeFields)
	analyze := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"health": health,
			"carbon": carbon,
			"surge":  surge,
		},
		"required": []any{"health", "carbon", "surge"},
	}

	v := &Validator{}
	var err error
	if v.health, err = compile("health.schema.json", health); err != nil {
		return nil, err
	}
	if v.carbon, err = compile("carbon.schema.json", carbon); err != nil {
		return nil, err
	}
	if v.surge, err = compile("surge.schema.json", surge); err != nil {
		return nil, err
	}
	if v.analyze, err = compile("analyze.schema.json", analyze); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeHealth validates body and decodes it into a HealthInput.
func (v *Validator) DecodeHealth(body []byte) (features.HealthInput, error) {
	var in features.HealthInput
	err := decode(v.health, body, &in)
	return in, err
}

func (v *Validator) DecodeCarbon(body []byte) (features.CarbonInput, error) {
	var in features.CarbonInput
	err := decode(v.carbon, body, &in)
	return in, err
}

func (v *Validator) DecodeSurge(body []byte) (features.SurgeInput, error) {
	var in features.SurgeInput
	err := decode(v.surge, body, &in)
	return in, err
}

// DecodeAnalyze validates a {health, carbon, surge} body into out.
func (v *Validator) DecodeAnalyze(body []byte, out any) error {
	return decode(v.analyze, body, out)
}

func decode(schema *jsonschema.Schema, body []byte, out any) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return &Error{Details: []string{fmt.Sprintf("invalid JSON: %v", err)}}
	}
	if errs := validateAgainstSchema(schema, doc); len(errs) > 0 {
		return &Error{Details: errs}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Details: []string{err.Error()}}
	}
	return nil
}

func recordSchema(fields []features.Field) map[string]any {
	props := make(map[string]any, len(fields))
	required := make([]any, 0, len(fields))
	for _, f := range fields {
		typ := "number"
		if f.Integer {
			typ = "integer"
		}
		props[f.Name] = map[string]any{"type": typ}
		required = append(required, f.Name)
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

func compile(name string, doc map[string]any) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("add %s resource: %w", name, err)
	}
	sch, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return sch, nil
}

func validateAgainstSchema(schema *jsonschema.Schema, instance any) []string {
	err := schema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, &errs)
	return errs
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(printer)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, errs)
	}
}
