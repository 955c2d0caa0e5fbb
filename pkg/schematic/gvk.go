package schematic

import (
	"strings"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

// GroupVersionKind is the fully qualified identifier of a workload type,
// written group/version.kind.
//
// Group is a dotted namespace. The version runs from the slash to the
// first dot after it, and everything past that dot is the kind, so kinds
// may themselves contain dots.
type GroupVersionKind struct {
	Group   string
	Version string
	Kind    string
}

// NewGroupVersionKind assembles a GroupVersionKind from its parts without
// checking their formatting.
func NewGroupVersionKind(group, version, kind string) GroupVersionKind {
	return GroupVersionKind{Group: group, Version: version, Kind: kind}
}

// ParseGroupVersionKind parses a group/version.kind identifier.
//
// The group is everything before the first slash. An input without a
// slash, or without a dot after it, fails with a *FormatError.
func ParseGroupVersionKind(s string) (GroupVersionKind, error) {
	group, rest, ok := strings.Cut(s, "/")
	if !ok {
		return GroupVersionKind{}, &FormatError{Input: s, Missing: "missing version and kind"}
	}
	version, kind, ok := strings.Cut(rest, ".")
	if !ok {
		return GroupVersionKind{}, &FormatError{Input: s, Missing: "missing kind"}
	}
	return GroupVersionKind{Group: group, Version: version, Kind: kind}, nil
}

// String renders the canonical group/version.kind form.
func (gvk GroupVersionKind) String() string {
	return gvk.Group + "/" + gvk.Version + "." + gvk.Kind
}

// Schema converts to the apimachinery GroupVersionKind for consumers that
// resolve workload types against a cluster.
func (gvk GroupVersionKind) Schema() schema.GroupVersionKind {
	return schema.GroupVersionKind{Group: gvk.Group, Version: gvk.Version, Kind: gvk.Kind}
}
