package jsonfile

import (
	_ "embed"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "tasks.schema.json"

//go:embed tasks.schema.json
var schemaSource string

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func taskListSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateDocument checks a decoded JSON document against the task list schema.
func validateDocument(doc interface{}) error {
	schema, err := taskListSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return describeSchemaError(err)
	}
	return nil
}

// describeSchemaError flattens a schema error to its first leaf cause.
func describeSchemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !stderrors.As(err, &ve) {
		return err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	location := strings.TrimPrefix(ve.InstanceLocation, "/")
	if location == "" {
		return fmt.Errorf("%s", ve.Message)
	}
	return fmt.Errorf("%s: %s", location, ve.Message)
}
