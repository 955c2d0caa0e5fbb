package schematic

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParameterType_IsValid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		typ  ParameterType
		want bool
	}{
		{"valid boolean", ParameterTypeBoolean, true},
		{"valid string", ParameterTypeString, true},
		{"valid number", ParameterTypeNumber, true},
		{"valid null", ParameterTypeNull, true},
		{"invalid empty", ParameterType(""), false},
		{"invalid integer", ParameterType("integer"), false},
		{"invalid uppercase", ParameterType("String"), false},
		{"invalid object", ParameterType("object"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.typ.IsValid(); got != tt.want {
				t.Errorf("ParameterType.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidParameterTypes(t *testing.T) {
	t.Parallel()
	types := ValidParameterTypes()
	if len(types) != 4 {
		t.Fatalf("ValidParameterTypes() length = %d, want 4", len(types))
	}
	for _, typ := range types {
		if !typ.IsValid() {
			t.Errorf("ValidParameterTypes() contains %q which IsValid() rejects", typ)
		}
	}
}

func TestParameterType_UnmarshalRejectsUnknown(t *testing.T) {
	t.Parallel()
	var typ ParameterType
	err := json.Unmarshal([]byte(`"integer"`), &typ)
	if err == nil {
		t.Fatal("Unmarshal expected error for unknown token")
	}
	if !strings.Contains(err.Error(), `invalid parameter type "integer"`) {
		t.Errorf("Unmarshal error = %q, want invalid token message", err)
	}
}

func TestParameter_Defaults(t *testing.T) {
	t.Parallel()
	c, err := ParseString(`
parameters:
  - name: message
    type: string
`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	p := c.Parameters[0]
	if p.Required {
		t.Error("Required = true, want default false")
	}
	if p.Description != nil {
		t.Errorf("Description = %v, want nil", p.Description)
	}
	if p.Default != nil {
		t.Errorf("Default = %v, want nil", p.Default)
	}
}

func TestParameter_DefaultValueKeepsRawJSON(t *testing.T) {
	t.Parallel()
	c, err := ParseString(`
parameters:
  - name: replicas
    type: number
    default: 3
  - name: message
    type: string
    default: hello
`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	if got := string(c.Parameters[0].Default.Raw); got != "3" {
		t.Errorf("number default raw = %q, want %q", got, "3")
	}
	if got := string(c.Parameters[1].Default.Raw); got != `"hello"` {
		t.Errorf("string default raw = %q, want %q", got, `"hello"`)
	}
}

func TestWorkloadSetting_Decode(t *testing.T) {
	t.Parallel()
	c, err := ParseString(`
workloadSettings:
  - name: replicas
    type: number
    required: true
  - name: poet
    type: string
    fromParam: poet
`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	if len(c.WorkloadSettings) != 2 {
		t.Fatalf("WorkloadSettings length = %d, want 2", len(c.WorkloadSettings))
	}
	if !c.WorkloadSettings[0].Required {
		t.Error("Required = false, want true")
	}
	if c.WorkloadSettings[0].FromParam != nil {
		t.Errorf("FromParam = %v, want nil", c.WorkloadSettings[0].FromParam)
	}
	if c.WorkloadSettings[1].FromParam == nil || *c.WorkloadSettings[1].FromParam != "poet" {
		t.Errorf("FromParam = %v, want pointer to %q", c.WorkloadSettings[1].FromParam, "poet")
	}
}
