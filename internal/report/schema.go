package report

// Schema is the JSON Schema (draft 2020-12) of the JSON report.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://gooze.dev/schemas/mutaprompt-report.json",
  "title": "mutaprompt report",
  "type": "object",
  "required": ["version", "summary", "files", "mutants"],
  "additionalProperties": false,
  "properties": {
    "version": { "type": "string" },
    "summary": {
      "type": "object",
      "required": ["files", "mutants", "groups", "byKind"],
      "additionalProperties": false,
      "properties": {
        "files": { "type": "integer", "minimum": 0 },
        "mutants": { "type": "integer", "minimum": 0 },
        "groups": { "type": "integer", "minimum": 0 },
        "byKind": {
          "type": "object",
          "propertyNames": { "$ref": "#/$defs/mutatorKind" },
          "additionalProperties": { "type": "integer", "minimum": 0 }
        }
      }
    },
    "files": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["path", "hash"],
        "additionalProperties": false,
        "properties": {
          "path": { "type": "string" },
          "hash": { "type": "string", "pattern": "^[0-9a-f]{64}$" }
        }
      }
    },
    "mutants": {
      "type": "array",
      "items": { "$ref": "#/$defs/mutant" }
    },
    "groups": {
      "type": "array",
      "items": { "$ref": "#/$defs/group" }
    }
  },
  "$defs": {
    "mutatorKind": {
      "enum": ["BinaryOperator", "BoundaryCondition", "UnaryOperator", "BooleanLiteral", "ConditionalRemoval"]
    },
    "position": {
      "type": "object",
      "required": ["line", "column"],
      "additionalProperties": false,
      "properties": {
        "line": { "type": "integer", "minimum": 1 },
        "column": { "type": "integer", "minimum": 1 }
      }
    },
    "location": {
      "type": "object",
      "required": ["start", "end"],
      "additionalProperties": false,
      "properties": {
        "start": { "$ref": "#/$defs/position" },
        "end": { "$ref": "#/$defs/position" }
      }
    },
    "mutant": {
      "type": "object",
      "required": ["id", "fileName", "mutatorKind", "original", "replacement", "location", "context", "description"],
      "additionalProperties": false,
      "properties": {
        "id": { "type": "string", "minLength": 1 },
        "fileName": { "type": "string" },
        "mutatorKind": { "$ref": "#/$defs/mutatorKind" },
        "original": { "type": "string", "minLength": 1 },
        "replacement": { "type": "string", "minLength": 1 },
        "location": { "$ref": "#/$defs/location" },
        "context": {
          "type": "object",
          "required": ["startLine", "endLine", "text"],
          "additionalProperties": false,
          "properties": {
            "startLine": { "type": "integer", "minimum": 1 },
            "endLine": { "type": "integer", "minimum": 1 },
            "text": { "type": "string" }
          }
        },
        "description": { "type": "string", "minLength": 1 },
        "expressionText": { "type": "string" }
      }
    },
    "group": {
      "type": "object",
      "required": ["id", "mutatorKind", "original", "replacement", "expression", "count", "instances"],
      "additionalProperties": false,
      "properties": {
        "id": { "type": "string", "pattern": "^[0-9a-f]{12}$" },
        "mutatorKind": { "$ref": "#/$defs/mutatorKind" },
        "original": { "type": "string" },
        "replacement": { "type": "string" },
        "expression": { "type": "string" },
        "count": { "type": "integer", "minimum": 1 },
        "instances": {
          "type": "array",
          "minItems": 1,
          "items": {
            "type": "object",
            "required": ["fileName", "id", "location"],
            "additionalProperties": false,
            "properties": {
              "fileName": { "type": "string" },
              "id": { "type": "string" },
              "location": { "$ref": "#/$defs/location" }
            }
          }
        }
      }
    }
  }
}
`
