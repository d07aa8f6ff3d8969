// Package utils provides lenient JSON and HJSON parsing helpers shared by
// the narrative layer (repairing LLM output) and the CLI tools (human-written
// deal scenario files).
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common JSON errors in model output: missing
// quotes around keys, single quotes, unclosed brackets, trailing commas,
// stray code fences.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// MustRepairJSON is RepairJSON with an empty-object fallback, for callers
// that need a guaranteed JSON string.
func MustRepairJSON(malformed string) string {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "{}"
	}
	return repaired
}

// RepairInto repairs a JSON string and unmarshals it into out in one step.
func RepairInto(malformed string, out interface{}) error {
	repaired, err := RepairJSON(malformed)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(repaired), out); err != nil {
		return fmt.Errorf("repaired JSON still fails to unmarshal: %w", err)
	}
	return nil
}

// ParseHJSONToStruct parses Human-friendly JSON (comments, unquoted keys,
// optional commas) directly into a struct. Deal scenario files are written
// by hand, so the lenient syntax matters.
func ParseHJSONToStruct(data []byte, out interface{}) error {
	if err := hjson.Unmarshal(data, out); err != nil {
		return fmt.Errorf("hjson parse failed: %w", err)
	}
	return nil
}
