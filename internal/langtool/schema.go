package langtool

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed check_response_schema.json
var checkResponseSchema []byte

// responseSchema is compiled once; the schema file is part of the binary
// so compilation cannot fail at runtime.
var responseSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("check_response_schema.json", bytes.NewReader(checkResponseSchema)); err != nil {
		panic(fmt.Sprintf("langtool: invalid embedded schema: %v", err))
	}
	schema, err := compiler.Compile("check_response_schema.json")
	if err != nil {
		panic(fmt.Sprintf("langtool: embedded schema does not compile: %v", err))
	}
	return schema
}

// validateCheckResponse checks a raw /v2/check body against the response
// schema. A violation means the body is malformed, which callers treat the
// same as a service failure.
func validateCheckResponse(body []byte) error {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	if err := responseSchema.Validate(doc); err != nil {
		return fmt.Errorf("response does not match check schema: %w", err)
	}
	return nil
}
