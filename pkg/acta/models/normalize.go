package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field names the backend has used for direct vault reads.
const (
	FieldVcIDs  = "vc_ids"
	FieldVC     = "vc"
	FieldResult = "result"
)

// NormalizeVcIDList extracts the credential IDs from a list_vc_ids_direct
// body. vc_ids wins over result; a field that is absent, null or not an array
// is skipped. It never fails: an unusable body yields an empty slice. The
// second return value names the field the IDs came from, or "" when none did.
func NormalizeVcIDList(body []byte) ([]VcID, string) {
	envelope := decodeEnvelope(body)
	for _, field := range []string{FieldVcIDs, FieldResult} {
		if ids, ok := decodeIDArray(envelope[field]); ok {
			return ids, field
		}
	}
	return []VcID{}, ""
}

// NormalizeVC extracts the credential content from a get_vc_direct body.
// vc wins over result; a null or absent field is skipped. It returns nil when
// neither field carries a value.
func NormalizeVC(body []byte) (json.RawMessage, string) {
	envelope := decodeEnvelope(body)
	for _, field := range []string{FieldVC, FieldResult} {
		raw, ok := envelope[field]
		if !ok || isNull(raw) {
			continue
		}
		return raw, field
	}
	return nil, ""
}

func decodeEnvelope(body []byte) map[string]json.RawMessage {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}
	return envelope
}

func decodeIDArray(raw json.RawMessage) ([]VcID, bool) {
	if raw == nil || isNull(raw) {
		return nil, false
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	ids := make([]VcID, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			ids = append(ids, VcID(v))
		case nil:
			continue
		default:
			ids = append(ids, VcID(fmt.Sprint(v)))
		}
	}
	return ids, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
