package content

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledCatalogSchema caches the compiled catalog schema.
var (
	schemaOnce            sync.Once
	compiledCatalogSchema *jsonschema.Schema
	schemaCompileErr      error
)

// catalogFile is the on-disk shape of an external content definition.
// Ids are omitted in authored files and assigned at load time.
type catalogFile struct {
	Modules []Module `json:"modules"`
}

// LoadCatalog reads a catalog definition from a JSON file, checks it against
// the catalog schema and the semantic invariants, and returns a ready
// catalog. Authored records receive fresh ids.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	if err := validateAgainstSchema(raw); err != nil {
		return nil, err
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	for i := range file.Modules {
		assignIDs(&file.Modules[i])
	}

	if err := Validate(file.Modules); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return NewCatalog(file.Modules), nil
}

func validateAgainstSchema(raw []byte) error {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		b, err := json.Marshal(catalogSchema)
		if err != nil {
			schemaCompileErr = fmt.Errorf("marshal catalog schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			schemaCompileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://catalog.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			schemaCompileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledCatalogSchema, schemaCompileErr = c.Compile(schemaURL)
	})
	if schemaCompileErr != nil {
		return schemaCompileErr
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledCatalogSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// assignIDs fills in any zero ids left by the content author.
func assignIDs(m *Module) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	for i := range m.Lessons {
		l := &m.Lessons[i]
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		for j := range l.Vocabulary {
			if l.Vocabulary[j].ID == uuid.Nil {
				l.Vocabulary[j].ID = uuid.New()
			}
		}
		for j := range l.Exercises {
			if l.Exercises[j].ID == uuid.Nil {
				l.Exercises[j].ID = uuid.New()
			}
		}
	}
	for i := range m.Quizzes {
		q := &m.Quizzes[i]
		if q.ID == uuid.Nil {
			q.ID = uuid.New()
		}
		for j := range q.Questions {
			if q.Questions[j].ID == uuid.Nil {
				q.Questions[j].ID = uuid.New()
			}
		}
	}
}
