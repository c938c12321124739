package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Age is a form value that may arrive as a JSON string or number. The raw
// text is kept; rules coerce it when they bounds-check.
type Age string

func (a *Age) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Age(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("age must be a string or a number: %w", err)
	}
	*a = Age(n.String())
	return nil
}

func (a Age) String() string { return string(a) }

// Flag is a boolean form value. Besides JSON booleans it accepts the
// "yes"/"no" strings produced by select and radio inputs, and it is written
// back out as "yes"/"no".
type Flag bool

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte(`"yes"`), nil
	}
	return []byte(`"no"`), nil
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = false
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "yes", "y", "on":
			*f = true
			return nil
		case "no", "n", "off", "":
			*f = false
			return nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("invalid flag value %q", s)
		}
		*f = Flag(b)
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("flag must be a boolean or yes/no: %w", err)
	}
	*f = Flag(b)
	return nil
}
