package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed seed.json
var defaultCatalog []byte

// catalogSchema constrains the seed catalog file. A catalog that fails
// validation is a startup error, not a runtime condition.
const catalogSchema = `{
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["name", "description", "schedule", "max_participants"],
    "additionalProperties": false,
    "properties": {
      "name": {"type": "string", "minLength": 1},
      "description": {"type": "string"},
      "schedule": {"type": "string"},
      "max_participants": {"type": "integer", "minimum": 1},
      "participants": {
        "type": "array",
        "items": {"type": "string", "minLength": 1}
      }
    }
  }
}`

type catalogEntry struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// DefaultCatalog returns the activity catalog embedded in the binary.
func DefaultCatalog() ([]Activity, error) {
	return parseCatalog(defaultCatalog)
}

// LoadCatalogFile reads and validates an external catalog file with the same
// shape as the embedded one.
func LoadCatalogFile(path string) ([]Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) ([]Activity, error) {
	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("catalog validation error: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("catalog validation failed: %v", errs)
	}

	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	activities := make([]Activity, 0, len(entries))
	for _, e := range entries {
		activities = append(activities, Activity{
			Name:            e.Name,
			Description:     e.Description,
			Schedule:        e.Schedule,
			MaxParticipants: e.MaxParticipants,
			Participants:    e.Participants,
		})
	}
	return activities, nil
}
