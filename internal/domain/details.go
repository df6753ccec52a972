package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DetailField is a single key/value pair from a serviceDetails payload.
// Values are scalars (string, number, bool or null) as sent by the form.
type DetailField struct {
	Key   string
	Value any
}

// OrderedDetails decodes a JSON object while preserving the order of its
// keys. A Go map would lose the order the frontend laid the fields out in,
// and that order drives the rendered email.
//
// A nil OrderedDetails means the field was absent (or null); a non-nil empty
// slice means an explicit `{}` was sent.
type OrderedDetails []DetailField

func (d *OrderedDetails) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("serviceDetails must be a JSON object")
	}

	fields := make([]DetailField, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("serviceDetails contains a non-string key")
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		fields = append(fields, DetailField{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*d = fields
	return nil
}

// MarshalJSON re-emits the fields in their original order. A nil receiver
// marshals as an empty object so text dumps never print "null".
func (d OrderedDetails) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Display formats the value for embedding in the email body.
func (f DetailField) Display() string {
	switch v := f.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
