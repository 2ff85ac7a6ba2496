package navi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// The upstream mixes strings and numbers for the same field depending on the endpoint and the
// route, so scalar fields are decoded leniently. A field that cannot be decoded becomes its
// zero value instead of failing the whole response.

type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*f = FlexString(value)
		return nil
	}

	*f = FlexString(data)
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var raw FlexString
	if err := raw.UnmarshalJSON(data); err != nil {
		return err
	}

	value := strings.ReplaceAll(strings.TrimSpace(raw.String()), ",", "")

	if number, err := strconv.Atoi(value); err == nil {
		*f = FlexInt(number)
	} else if float, err := strconv.ParseFloat(value, 64); err == nil {
		*f = FlexInt(int(float))
	} else {
		*f = 0
	}

	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}

type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var raw FlexString
	if err := raw.UnmarshalJSON(data); err != nil {
		return err
	}

	value := strings.ReplaceAll(strings.TrimSpace(raw.String()), ",", "")

	if float, err := strconv.ParseFloat(value, 64); err == nil {
		*f = FlexFloat(float)
	} else {
		*f = 0
	}

	return nil
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// FlexBool is true for true, 1 and "1" (or "true")
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	var raw FlexString
	if err := raw.UnmarshalJSON(data); err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(raw.String())) {
	case "true", "1":
		*f = true
	default:
		*f = false
	}

	return nil
}

// FlexStrings accepts either a JSON array or a single string separated by commas or spaces
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '[' {
		var items []FlexString
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}

		values := make([]string, 0, len(items))
		for _, item := range items {
			if value := strings.TrimSpace(item.String()); value != "" {
				values = append(values, value)
			}
		}
		*f = values
		return nil
	}

	var raw FlexString
	if err := raw.UnmarshalJSON(data); err != nil {
		return err
	}

	*f = strings.FieldsFunc(raw.String(), func(r rune) bool {
		return r == ',' || r == ' '
	})

	return nil
}
