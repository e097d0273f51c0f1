package catalogue

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abhisek/repertoire/internal/board"
)

// File is the on-disk catalogue document the ETL step emits.
type File struct {
	FormatVersion string   `json:"formatVersion"`
	Openings      []Record `json:"openings"`
}

// supportedMajor is the catalogue format major version this build reads.
const supportedMajor = "v1"

// fileSchema validates the catalogue document shape before decoding.
const fileSchema = `{
	"type": "object",
	"required": ["formatVersion", "openings"],
	"properties": {
		"formatVersion": {"type": "string"},
		"openings": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["eco", "name", "moves"],
				"properties": {
					"eco":        {"type": "string", "pattern": "^[A-E][0-9]{2}"},
					"name":       {"type": "string", "minLength": 1},
					"moves":      {"type": "string"},
					"popularity": {"type": "integer", "minimum": 0},
					"whiteWins":  {"type": "integer", "minimum": 0},
					"blackWins":  {"type": "integer", "minimum": 0},
					"draws":      {"type": "integer", "minimum": 0}
				}
			}
		}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Load reads, validates and builds a catalogue from a JSON file.
func Load(path string, b board.Model) (*Catalogue, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}
	return Parse(raw, b)
}

// Parse validates and builds a catalogue from raw JSON bytes.
func Parse(raw []byte, b board.Model) (*Catalogue, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("catalogue is not valid JSON: %w", err)
	}

	schema, err := fileSchemaCompiled()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("catalogue does not match the expected format: %w", err)
	}

	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	if !semver.IsValid(f.FormatVersion) || semver.Major(f.FormatVersion) != supportedMajor {
		return nil, fmt.Errorf("unsupported catalogue format version %q (want %s)", f.FormatVersion, supportedMajor)
	}

	return New(f.Openings, b)
}

func fileSchemaCompiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(fileSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse catalogue schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://catalogue.json", def); err != nil {
			compileErr = fmt.Errorf("add catalogue schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://catalogue.json")
	})
	return compiledSchema, compileErr
}
