// Package ir defines the descriptors a metadata source hands to the identifier
// builder: types, their members, and the module that owns them.
//
// Descriptors are plain data. They are decoded from a metadata file or built by
// a provider, linked once, and treated as read-only for the rest of a run.
package ir

import "strings"

// TypeDescriptor describes a type as seen by the documentation compiler.
type TypeDescriptor struct {
	// Namespace qualifies a top-level type. It is ignored when DeclaringType
	// is set; the declaring chain supplies the qualification instead.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`

	// Name is the metadata name. Generic types carry their arity as a
	// backtick suffix, e.g. "Box`1".
	Name string `json:"name" yaml:"name" validate:"required"`

	// DeclaringType is the containing type of a nested type.
	DeclaringType *TypeDescriptor `json:"declaringType,omitempty" yaml:"declaringType,omitempty" validate:"-"`

	// IsGenericType is set for generic definitions and constructed generics.
	IsGenericType bool `json:"genericType,omitempty" yaml:"genericType,omitempty"`

	// IsGenericTypeDefinition is set only for the open definition.
	IsGenericTypeDefinition bool `json:"genericTypeDefinition,omitempty" yaml:"genericTypeDefinition,omitempty"`

	// GenericArguments are the type arguments of a constructed generic type,
	// or the type parameters of a definition.
	GenericArguments []*TypeDescriptor `json:"genericArguments,omitempty" yaml:"genericArguments,omitempty" validate:"omitempty,dive,required"`

	// IsVisible is computed by the metadata source: public top-level, or
	// nested public/protected inside a visible chain.
	IsVisible bool `json:"visible,omitempty" yaml:"visible,omitempty"`

	// Members are the declared members, regardless of their access.
	Members []*MemberDescriptor `json:"members,omitempty" yaml:"members,omitempty" validate:"omitempty,dive,required"`
}

// IsConstructedGeneric reports whether t is a generic type with concrete
// arguments, as opposed to its open definition.
func (t *TypeDescriptor) IsConstructedGeneric() bool {
	return t.IsGenericType && !t.IsGenericTypeDefinition
}

// IsNested reports whether t is declared inside another type.
func (t *TypeDescriptor) IsNested() bool {
	return t.DeclaringType != nil
}

// String returns a debugging form of the type's qualified metadata name.
// Use docid.RenderType for documentation identifiers.
func (t *TypeDescriptor) String() string {
	if t == nil {
		return "<nil>"
	}
	var parts []string
	for cur := t; cur != nil; cur = cur.DeclaringType {
		parts = append(parts, cur.Name)
		if cur.DeclaringType == nil && cur.Namespace != "" {
			parts = append(parts, cur.Namespace)
		}
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// NestedTypes returns the types declared directly inside t.
func (t *TypeDescriptor) NestedTypes() []*TypeDescriptor {
	var nested []*TypeDescriptor
	for _, m := range t.Members {
		if m.Kind == KindNestedType && m.Type != nil {
			nested = append(nested, m.Type)
		}
	}
	return nested
}
