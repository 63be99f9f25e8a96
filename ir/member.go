package ir

import (
	"fmt"
	"strings"
)

// MemberKind identifies the category of a member descriptor.
type MemberKind int

const (
	KindConstructor MemberKind = iota + 1
	KindMethod
	KindField
	KindProperty
	KindEvent
	KindNestedType
)

var memberKindNames = map[MemberKind]string{
	KindConstructor: "constructor",
	KindMethod:      "method",
	KindField:       "field",
	KindProperty:    "property",
	KindEvent:       "event",
	KindNestedType:  "nestedType",
}

// String returns the string representation of the member kind.
func (k MemberKind) String() string {
	switch k {
	case KindConstructor:
		return "Constructor"
	case KindMethod:
		return "Method"
	case KindField:
		return "Field"
	case KindProperty:
		return "Property"
	case KindEvent:
		return "Event"
	case KindNestedType:
		return "NestedType"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k MemberKind) MarshalText() ([]byte, error) {
	name, ok := memberKindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown member kind %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching is case-insensitive.
func (k *MemberKind) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	switch s {
	case "ctor", ".ctor":
		*k = KindConstructor
		return nil
	case "nested":
		*k = KindNestedType
		return nil
	}
	for kind, name := range memberKindNames {
		if strings.ToLower(name) == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown member kind %q", string(text))
}

// Access is the declared accessibility of a member.
type Access int

const (
	AccessPrivate Access = iota
	AccessInternal
	AccessProtected
	AccessProtectedInternal
	AccessPrivateProtected
	AccessPublic
)

var accessNames = []string{
	AccessPrivate:           "private",
	AccessInternal:          "internal",
	AccessProtected:         "protected",
	AccessProtectedInternal: "protectedInternal",
	AccessPrivateProtected:  "privateProtected",
	AccessPublic:            "public",
}

// metadata spellings of the same levels
var accessAliases = map[string]Access{
	"assembly":    AccessInternal,
	"family":      AccessProtected,
	"famorassem":  AccessProtectedInternal,
	"famandassem": AccessPrivateProtected,
}

func (a Access) String() string {
	if a < 0 || int(a) >= len(accessNames) {
		return "unknown"
	}
	return accessNames[a]
}

// IsProtectedOrPublic reports whether the access is exactly protected or
// public. Protected-internal and private-protected do not qualify.
func (a Access) IsProtectedOrPublic() bool {
	return a == AccessProtected || a == AccessPublic
}

// MarshalText implements encoding.TextMarshaler.
func (a Access) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(accessNames) {
		return nil, fmt.Errorf("unknown access %d", int(a))
	}
	return []byte(accessNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching is case-insensitive
// and accepts the metadata spellings (family, assembly, famorassem, famandassem).
func (a *Access) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	for i, name := range accessNames {
		if strings.ToLower(name) == s {
			*a = Access(i)
			return nil
		}
	}
	if alias, ok := accessAliases[s]; ok {
		*a = alias
		return nil
	}
	return fmt.Errorf("unknown access %q", string(text))
}

// MemberDescriptor describes one declared member of a type.
//
// Constructors, methods and fields carry their own Access. Properties and
// events carry accessor descriptors instead; their own Access is unused.
type MemberDescriptor struct {
	Kind MemberKind `json:"kind" yaml:"kind" validate:"required,lte=6"`

	// Name is unused for constructors.
	Name string `json:"name,omitempty" yaml:"name,omitempty" validate:"required_unless=Kind 1"`

	// DeclaringType is set by Module.Link.
	DeclaringType *TypeDescriptor `json:"-" yaml:"-" validate:"-"`

	// Parameters are the parameter types of a method or constructor, in
	// declaration order.
	Parameters []*TypeDescriptor `json:"parameters,omitempty" yaml:"parameters,omitempty" validate:"omitempty,dive,required"`

	Access Access `json:"access" yaml:"access" validate:"lte=5"`

	// SpecialName and HideBySig are metadata flags. Together they mark
	// compiler-synthesized methods such as property accessors.
	SpecialName bool `json:"specialName,omitempty" yaml:"specialName,omitempty"`
	HideBySig   bool `json:"hideBySig,omitempty" yaml:"hideBySig,omitempty"`

	// Property accessors.
	Getter *MemberDescriptor `json:"getter,omitempty" yaml:"getter,omitempty"`
	Setter *MemberDescriptor `json:"setter,omitempty" yaml:"setter,omitempty"`

	// Event accessors.
	Adder   *MemberDescriptor `json:"add,omitempty" yaml:"add,omitempty"`
	Remover *MemberDescriptor `json:"remove,omitempty" yaml:"remove,omitempty"`

	// Type is the nested type of a KindNestedType member.
	Type *TypeDescriptor `json:"type,omitempty" yaml:"type,omitempty" validate:"required_if=Kind 6"`
}

// Accessors returns the non-nil accessor descriptors of a property or event.
func (m *MemberDescriptor) Accessors() []*MemberDescriptor {
	var out []*MemberDescriptor
	for _, a := range []*MemberDescriptor{m.Getter, m.Setter, m.Adder, m.Remover} {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}
