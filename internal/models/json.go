package models

import (
	"encoding/json"
	"errors"
)

// scanJSON decodes a JSONB column value into dst. Postgres drivers hand
// JSONB back as []byte or string depending on the scan path.
func scanJSON(src any, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported JSONB source type")
	}
}
