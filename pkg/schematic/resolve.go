package schematic

import (
	"bytes"
	"encoding/json"
	"sort"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
)

// ParameterValues maps parameter names to the JSON values supplied for a
// deployment.
type ParameterValues map[string]apiextensionsv1.JSON

// ResolveParameters applies supplied and defaulted parameter values to
// every fromParam reference in the component and returns the resolved
// copy. The receiver is never mutated.
//
// The effective value of a declared parameter is the supplied one,
// falling back to the declared default. A required parameter with
// neither fails, as does a supplied name that matches no declared
// parameter. Env references take the effective value rendered as an
// environment string: JSON strings render unquoted, null renders empty,
// and everything else renders as compact JSON. Workload setting
// references take the JSON value itself as their default. Failures are
// *ParameterError.
func (c *Component) ResolveParameters(values ParameterValues) (*Component, error) {
	declared := make(map[string]bool, len(c.Parameters))
	effective := make(map[string]apiextensionsv1.JSON, len(c.Parameters))

	for i := range c.Parameters {
		p := &c.Parameters[i]
		if declared[p.Name] {
			return nil, &ParameterError{Parameter: p.Name, Reason: "declared more than once"}
		}
		declared[p.Name] = true

		if v, ok := values[p.Name]; ok {
			effective[p.Name] = v
			continue
		}
		if p.Default != nil {
			effective[p.Name] = *p.Default
			continue
		}
		if p.Required {
			return nil, &ParameterError{Parameter: p.Name, Reason: "required but no value was supplied"}
		}
	}

	var undeclared []string
	for name := range values {
		if !declared[name] {
			undeclared = append(undeclared, name)
		}
	}
	if len(undeclared) > 0 {
		sort.Strings(undeclared)
		return nil, &ParameterError{Parameter: undeclared[0], Reason: "not declared by the component"}
	}

	out := c.DeepCopy()

	for i := range out.Containers {
		for j := range out.Containers[i].Env {
			env := &out.Containers[i].Env[j]
			if env.FromParam == nil {
				continue
			}
			v, err := effectiveValue(*env.FromParam, declared, effective)
			if err != nil {
				return nil, err
			}
			rendered := renderEnvValue(v)
			env.Value = &rendered
			env.FromParam = nil
		}
	}

	for i := range out.WorkloadSettings {
		ws := &out.WorkloadSettings[i]
		if ws.FromParam == nil {
			continue
		}
		v, err := effectiveValue(*ws.FromParam, declared, effective)
		if err != nil {
			return nil, err
		}
		ws.Default = v.DeepCopy()
		ws.FromParam = nil
	}

	return out, nil
}

// effectiveValue looks up the effective value behind a fromParam
// reference, distinguishing references to undeclared parameters from
// declared parameters that ended up without a value.
func effectiveValue(name string, declared map[string]bool, effective map[string]apiextensionsv1.JSON) (apiextensionsv1.JSON, error) {
	if v, ok := effective[name]; ok {
		return v, nil
	}
	if declared[name] {
		return apiextensionsv1.JSON{}, &ParameterError{Parameter: name, Reason: "no value available"}
	}
	return apiextensionsv1.JSON{}, &ParameterError{Parameter: name, Reason: "references an undeclared parameter"}
}

// renderEnvValue renders a JSON value as an environment variable string.
func renderEnvValue(v apiextensionsv1.JSON) string {
	if len(bytes.TrimSpace(v.Raw)) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(v.Raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, v.Raw); err != nil {
		return string(v.Raw)
	}
	return buf.String()
}
