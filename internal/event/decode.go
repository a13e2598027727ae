package event

import "encoding/json"

// DecodePayload turns an event payload into T. Payloads published in process
// arrive as T or *T; replayed dead-letter entries arrive as decoded JSON maps
// and go through a JSON round trip.
func DecodePayload[T any](input interface{}) (T, error) {
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
