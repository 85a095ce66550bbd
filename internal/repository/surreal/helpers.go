package surreal

import (
	"errors"

	"github.com/forgo/camp/internal/database"
)

// nextIDStatement issues the next integer id of $table into $id. It must run
// inside the same transaction block as the CREATE that uses it.
const nextIDStatement = `LET $id = (UPSERT type::thing('sequence', $table) SET value = IF value THEN value + 1 ELSE 1 END RETURN VALUE value)[0]`

// extractQueryResults returns the records of statement i of a query response
func extractQueryResults(results []interface{}, i int) []map[string]interface{} {
	if i < 0 {
		i += len(results)
	}
	if i < 0 || i >= len(results) {
		return nil
	}
	resp, ok := results[i].(map[string]interface{})
	if !ok {
		return nil
	}
	items, ok := resp["result"].([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// queryOneMap runs QueryOne and maps database.ErrNotFound to nil, nil
func queryOneMap(result interface{}, err error) (map[string]interface{}, error) {
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	m, ok := result.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	return m, nil
}

// toInt64 converts the numeric types produced by the CBOR decoder
func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	case float64:
		return int64(n), true
	case float32:
		return int64(n), true
	}
	return 0, false
}

// getInt64 extracts an integer value from a map
func getInt64(m map[string]interface{}, key string) int64 {
	n, _ := toInt64(m[key])
	return n
}

// getInt extracts an int value from a map
func getInt(m map[string]interface{}, key string) int {
	return int(getInt64(m, key))
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
