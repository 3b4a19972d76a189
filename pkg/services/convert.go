package services

import "encoding/json"

// toMap renders any JSON-marshalable value as a map for Ent JSON columns.
func toMap(v interface{}) map[string]interface{} {
	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]interface{}{"_marshal_error": err.Error()}
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]interface{}{"_marshal_error": err.Error()}
	}
	return m
}
