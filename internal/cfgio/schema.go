package cfgio

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const configurationSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["Rotors", "Reflector", "Ring", "Plugboard", "Key"],
  "additionalProperties": false,
  "properties": {
    "Rotors": {
      "type": "string",
      "pattern": "^(I|II|III|IV|V|VI|VII|VIII|Beta|Gamma)( (I|II|III|IV|V|VI|VII|VIII|Beta|Gamma))*$"
    },
    "Reflector": {
      "type": "string",
      "enum": ["B", "C", "B_thin", "C_thin"]
    },
    "Ring": {
      "type": "array",
      "items": {"type": "integer", "minimum": 0, "maximum": 25}
    },
    "Plugboard": {
      "type": "string",
      "pattern": "^([A-Za-z]{2}( [A-Za-z]{2})*)?$"
    },
    "Key": {
      "type": "string",
      "pattern": "^[A-Za-z]*$"
    }
  }
}`

const modelSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["Rotors", "RotorsCount", "Duplicates", "Reflectors", "Plugboard"],
  "additionalProperties": false,
  "properties": {
    "Rotors": {
      "type": "array",
      "items": {"type": "string", "enum": ["I", "II", "III", "IV", "V", "VI", "VII", "VIII", "Beta", "Gamma"]},
      "minItems": 1
    },
    "RotorsCount": {"type": "integer", "minimum": 1},
    "Duplicates": {"type": "boolean"},
    "Reflectors": {
      "type": "array",
      "items": {"type": "string", "enum": ["B", "C", "B_thin", "C_thin"]},
      "minItems": 1
    },
    "Plugboard": {"type": "integer", "minimum": 0, "maximum": 13}
  }
}`

var configurationSchema = compileSchema("configuration.json", configurationSchemaJSON)
var modelSchema = compileSchema("model.json", modelSchemaJSON)

func compileSchema(resourceName, schemaJSON string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(resourceName, strings.NewReader(schemaJSON)); err != nil {
		panic(fmt.Sprintf("cfgio: embedded schema %s is malformed: %v", resourceName, err))
	}
	schema, err := compiler.Compile(resourceName)
	if err != nil {
		panic(fmt.Sprintf("cfgio: embedded schema %s failed to compile: %v", resourceName, err))
	}
	return schema
}
