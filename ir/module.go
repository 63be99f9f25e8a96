package ir

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Module is the type metadata of one compiled module: the pre-extracted form a
// metadata file carries, or what a provider builds from source.
type Module struct {
	// Name identifies the module (assembly name or package path).
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Types are the module's exported top-level types. Nested types are
	// reached through NestedType members.
	Types []*TypeDescriptor `json:"types" yaml:"types" validate:"omitempty,dive,required"`
}

// ExportedTypes returns the top-level types the module exports.
func (m *Module) ExportedTypes() []*TypeDescriptor {
	return m.Types
}

// Members returns every declared member of t, whatever its access.
func (m *Module) Members(t *TypeDescriptor) []*MemberDescriptor {
	if t == nil {
		return nil
	}
	return t.Members
}

// AddType appends a top-level type to the module.
func (m *Module) AddType(t *TypeDescriptor) {
	m.Types = append(m.Types, t)
}

// FindType looks up a type by its qualified metadata name (see
// TypeDescriptor.String), searching nested types too. Returns nil if absent.
func (m *Module) FindType(qualified string) *TypeDescriptor {
	var found *TypeDescriptor
	m.Walk(func(t *TypeDescriptor) bool {
		if t.String() == qualified {
			found = t
			return false
		}
		return true
	})
	return found
}

// Walk calls fn for every type in the module, outer types before the types
// nested in them. It stops early when fn returns false.
func (m *Module) Walk(fn func(*TypeDescriptor) bool) {
	var walk func(t *TypeDescriptor) bool
	walk = func(t *TypeDescriptor) bool {
		if !fn(t) {
			return false
		}
		for _, nested := range t.NestedTypes() {
			if !walk(nested) {
				return false
			}
		}
		return true
	}
	for _, t := range m.Types {
		if !walk(t) {
			return
		}
	}
}

// Link fills in the back references a metadata file leaves implicit: each
// member's DeclaringType, each nested type's DeclaringType, and the kind of
// property and event accessors. Link is idempotent.
func (m *Module) Link() {
	for _, t := range m.Types {
		linkType(t)
	}
}

func linkType(t *TypeDescriptor) {
	for _, member := range t.Members {
		if member == nil {
			continue
		}
		member.DeclaringType = t
		for _, accessor := range member.Accessors() {
			accessor.DeclaringType = t
			if accessor.Kind == 0 {
				accessor.Kind = KindMethod
			}
		}
		if member.Kind == KindNestedType && member.Type != nil {
			member.Type.DeclaringType = t
			if member.Name == "" {
				member.Name = member.Type.Name
			}
			linkType(member.Type)
		}
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the module's descriptors and reports every violation.
// Call it after Link so accessor kinds are populated.
func (m *Module) Validate() error {
	if err := validate.Struct(m); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s validation", fe.Namespace(), fe.Tag()))
		}
		return &ValidationError{Errors: verrs, msg: strings.Join(msgs, "; ")}
	}
	return nil
}

// ValidationError reports invalid descriptors in a module.
type ValidationError struct {
	Errors validator.ValidationErrors
	msg    string
}

func (e *ValidationError) Error() string {
	return "invalid module metadata: " + e.msg
}

// Unwrap returns the underlying validator errors.
func (e *ValidationError) Unwrap() error {
	return e.Errors
}
