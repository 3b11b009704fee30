package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// errUnexpectedResult is returned when a response does not carry a record
var errUnexpectedResult = errors.New("unexpected result format")

// recordID builds the record identifier for a bare key
func recordID(table, key string) models.RecordID {
	return models.NewRecordID(table, key)
}

// recordKey extracts the bare key of a SurrealDB record ID.
// "hang:abc", RecordID{Table: "hang", ID: "abc"} and {"tb": "hang", "id": "abc"} all yield "abc".
func recordKey(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		if _, key, found := strings.Cut(v, ":"); found {
			return key
		}
		return v
	case models.RecordID:
		return idValue(v.ID)
	case *models.RecordID:
		if v != nil {
			return idValue(v.ID)
		}
		return ""
	case map[string]interface{}:
		if idVal, ok := v["id"]; ok {
			return idValue(idVal)
		}
		if idVal, ok := v["ID"]; ok {
			return idValue(idVal)
		}
	}
	return fmt.Sprintf("%v", id)
}

// idValue extracts the ID part which may be nested
func idValue(val interface{}) string {
	if str, ok := val.(string); ok {
		return str
	}
	if m, ok := val.(map[string]interface{}); ok {
		// {"String": "value"} format
		if s, ok := m["String"].(string); ok {
			return s
		}
	}
	return fmt.Sprintf("%v", val)
}

// parseTime parses time from various formats
func parseTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t != nil {
			return t.Time
		}
	}
	return time.Time{}
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// extractQueryResults extracts query results array from SurrealDB response
func extractQueryResults(result interface{}) ([]interface{}, bool) {
	if results, ok := result.([]interface{}); ok {
		if len(results) > 0 {
			if firstResult, ok := results[0].(map[string]interface{}); ok {
				if _, wrapped := firstResult["status"]; wrapped {
					switch rows := firstResult["result"].(type) {
					case []interface{}:
						return rows, true
					case nil:
						return []interface{}{}, true
					default:
						return nil, false
					}
				}
				if resultArray, ok := firstResult["result"].([]interface{}); ok {
					return resultArray, true
				}
			}
			// Direct array format
			return results, true
		}
	}
	return nil, false
}

// firstRecord unwraps the first record of a statement result.
// A missing record yields nil with no error.
func firstRecord(result interface{}) (map[string]interface{}, error) {
	if result == nil {
		return nil, nil
	}

	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			result = resp["result"]
		}
	}

	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, nil
		}
		return firstRecord(arr[0])
	}

	if result == nil {
		return nil, nil
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errUnexpectedResult
	}
	return data, nil
}

// plainValue converts decoded SurrealDB values into JSON friendly ones
func plainValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = plainValue(val)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[fmt.Sprintf("%v", k)] = plainValue(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = plainValue(val)
		}
		return out
	case models.RecordID, *models.RecordID:
		return recordKey(t)
	case models.CustomDateTime, *models.CustomDateTime:
		return parseTime(t)
	}
	return v
}
