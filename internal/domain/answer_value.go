package domain

import (
	"encoding/json"
	"fmt"
)

// ValueKind discriminates the AnswerValue union.
type ValueKind int

const (
	ValueUnset ValueKind = iota
	ValueBool
	ValueChoice
	ValueMulti
	ValueScale
)

// AnswerValue is the tagged union of answer payloads. Which variant is
// valid is governed by the owning question's type: boolean questions use
// the bool variant, single-choice the choice variant, multiple-choice the
// multi variant and scale questions the scale variant.
//
// On the wire it keeps the raw shape the SPA stores: a JSON bool, string,
// string array or number.
type AnswerValue struct {
	Kind    ValueKind
	Bool    bool
	Choice  string
	Choices []string
	Scale   int
}

// BoolValue builds the boolean variant.
func BoolValue(b bool) AnswerValue {
	return AnswerValue{Kind: ValueBool, Bool: b}
}

// ChoiceValue builds the single-choice variant.
func ChoiceValue(s string) AnswerValue {
	return AnswerValue{Kind: ValueChoice, Choice: s}
}

// MultiValue builds the multiple-choice variant.
func MultiValue(values ...string) AnswerValue {
	return AnswerValue{Kind: ValueMulti, Choices: values}
}

// ScaleValue builds the scale variant.
func ScaleValue(n int) AnswerValue {
	return AnswerValue{Kind: ValueScale, Scale: n}
}

// Equal reports whether two values are the same variant with the same
// payload. Multi values compare element-wise in order.
func (v AnswerValue) Equal(other AnswerValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case ValueBool:
		return v.Bool == other.Bool
	case ValueChoice:
		return v.Choice == other.Choice
	case ValueScale:
		return v.Scale == other.Scale
	case ValueMulti:
		if len(v.Choices) != len(other.Choices) {
			return false
		}
		for i := range v.Choices {
			if v.Choices[i] != other.Choices[i] {
				return false
			}
		}
		return true
	}
	return v.Kind == ValueUnset && other.Kind == ValueUnset
}

// String renders the payload for logs and risk descriptions.
func (v AnswerValue) String() string {
	switch v.Kind {
	case ValueBool:
		return fmt.Sprintf("%t", v.Bool)
	case ValueChoice:
		return v.Choice
	case ValueScale:
		return fmt.Sprintf("%d", v.Scale)
	case ValueMulti:
		return fmt.Sprintf("%v", v.Choices)
	}
	return ""
}

// MarshalJSON implements the json.Marshaler interface
func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueBool:
		return json.Marshal(v.Bool)
	case ValueChoice:
		return json.Marshal(v.Choice)
	case ValueMulti:
		return json.Marshal(v.Choices)
	case ValueScale:
		return json.Marshal(v.Scale)
	}
	return []byte("null"), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = BoolValue(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = ChoiceValue(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*v = ScaleValue(n)
		return nil
	}
	var ss []string
	if err := json.Unmarshal(data, &ss); err == nil {
		*v = MultiValue(ss...)
		return nil
	}
	if string(data) == "null" {
		*v = AnswerValue{}
		return nil
	}
	return NewInvalidAnswerError(fmt.Sprintf("unsupported answer value: %s", string(data)))
}
