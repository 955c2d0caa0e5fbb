package schematic

import (
	"encoding/json"
	"fmt"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
)

// Parameter describes a configurable unit on a component or application.
//
// Parameters carry a primitive type, may be marked required, and may
// declare a default value used when no value is supplied at deployment
// time.
type Parameter struct {
	// Name identifies the parameter. Names must be unique within a
	// component.
	Name string `json:"name"`

	// Description is optional usage text for operators.
	Description *string `json:"description"`

	// ParameterType constrains the values this parameter accepts.
	ParameterType ParameterType `json:"type"`

	// Required marks parameters that must receive a value when no
	// default is declared.
	Required bool `json:"required"`

	// Default is the JSON value assumed when no value is supplied.
	Default *apiextensionsv1.JSON `json:"default"`
}

// WorkloadSetting is configuration passed through to the workload runtime
// named by the component's workload type.
type WorkloadSetting struct {
	// Name identifies the setting to the workload runtime.
	Name string `json:"name"`

	// Description is optional usage text.
	Description *string `json:"description"`

	// ParameterType constrains the values this setting accepts.
	ParameterType ParameterType `json:"type"`

	// Required marks settings the workload runtime cannot do without.
	Required bool `json:"required"`

	// Default is the JSON value assumed when no value is supplied.
	Default *apiextensionsv1.JSON `json:"default"`

	// FromParam names a component parameter whose effective value feeds
	// this setting during parameter resolution.
	FromParam *string `json:"fromParam"`
}

// ParameterType is the primitive type of a parameter value. The domain
// roughly matches the JSON Schema primitive types.
type ParameterType string

const (
	// ParameterTypeBoolean accepts true or false.
	ParameterTypeBoolean ParameterType = "boolean"
	// ParameterTypeString accepts any JSON string.
	ParameterTypeString ParameterType = "string"
	// ParameterTypeNumber accepts integral and floating point numbers.
	ParameterTypeNumber ParameterType = "number"
	// ParameterTypeNull accepts only JSON null.
	ParameterTypeNull ParameterType = "null"
)

// ValidParameterTypes returns all valid parameter types.
func ValidParameterTypes() []ParameterType {
	return []ParameterType{ParameterTypeBoolean, ParameterTypeString, ParameterTypeNumber, ParameterTypeNull}
}

// IsValid returns true if the parameter type is one of the declared
// primitives.
func (t ParameterType) IsValid() bool {
	switch t {
	case ParameterTypeBoolean, ParameterTypeString, ParameterTypeNumber, ParameterTypeNull:
		return true
	default:
		return false
	}
}

// UnmarshalJSON rejects tokens outside the parameter type domain.
func (t *ParameterType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v := ParameterType(s)
	if !v.IsValid() {
		return fmt.Errorf("invalid parameter type %q, must be one of: %v", s, ValidParameterTypes())
	}
	*t = v
	return nil
}
