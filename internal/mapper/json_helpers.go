package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// toJSON marshals v into a JSON column value. Marshal of the slice/map
// shapes used here cannot fail; a nil value stores as SQL NULL.
func toJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

func jsonToStrings(j datatypes.JSON) []string {
	if len(j) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(j, &out); err != nil {
		return []string{}
	}
	return out
}

func jsonToStringMap(j datatypes.JSON) map[string]string {
	if len(j) == 0 {
		return nil
	}
	var out map[string]string
	if err := json.Unmarshal(j, &out); err != nil {
		return nil
	}
	return out
}
