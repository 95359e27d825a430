package collection

import (
	"bytes"
	"encoding/json"
)

func compact(item json.RawMessage) (json.RawMessage, error) {
	buf := &bytes.Buffer{}
	err := json.Compact(buf, item)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
