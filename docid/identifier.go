package docid

import (
	"strings"

	"github.com/trevorprinn/XmlDocRinse/ir"
)

// ID is a documentation identifier, "<prefix>:<body>".
type ID string

// Identifier prefixes.
const (
	PrefixType     = "T"
	PrefixMethod   = "M"
	PrefixField    = "F"
	PrefixProperty = "P"
	PrefixEvent    = "E"
)

// ConstructorName is the member name constructors render with.
const ConstructorName = "#ctor"

// Prefix returns the part before the first colon, or "" if there is none.
func (id ID) Prefix() string {
	prefix, _, ok := strings.Cut(string(id), ":")
	if !ok {
		return ""
	}
	return prefix
}

// Body returns the part after the first colon.
func (id ID) Body() string {
	_, body, _ := strings.Cut(string(id), ":")
	return body
}

func (id ID) String() string {
	return string(id)
}

func newID(prefix, body string) ID {
	return ID(prefix + ":" + body)
}

// TypeIdentifier returns the T: identifier of t, or false if t is not visible.
func (b *Builder) TypeIdentifier(t *ir.TypeDescriptor) (ID, bool) {
	if !TypeVisible(t) {
		return "", false
	}
	return newID(PrefixType, b.RenderType(t)), true
}

// Identifier returns the identifier of m, or false if m is not part of the
// public surface.
func (b *Builder) Identifier(m *ir.MemberDescriptor) (ID, bool) {
	if !MemberVisible(m) {
		return "", false
	}

	switch m.Kind {
	case ir.KindConstructor:
		return newID(PrefixMethod, b.memberName(m.DeclaringType, ConstructorName)+b.RenderParameters(m.Parameters)), true
	case ir.KindMethod:
		return newID(PrefixMethod, b.memberName(m.DeclaringType, m.Name)+b.RenderParameters(m.Parameters)), true
	case ir.KindField:
		return newID(PrefixField, b.memberName(m.DeclaringType, m.Name)), true
	case ir.KindProperty:
		// Indexer parameters are not rendered.
		return newID(PrefixProperty, b.memberName(m.DeclaringType, m.Name)), true
	case ir.KindEvent:
		return newID(PrefixEvent, b.memberName(m.DeclaringType, m.Name)), true
	case ir.KindNestedType:
		return b.TypeIdentifier(m.Type)
	}
	return "", false
}

func (b *Builder) memberName(declaring *ir.TypeDescriptor, name string) string {
	return b.RenderType(declaring) + "." + name
}

// Identifier returns the identifier of m using an uncached Builder.
func Identifier(m *ir.MemberDescriptor) (ID, bool) {
	return plain.Identifier(m)
}

// TypeIdentifier returns the identifier of t using an uncached Builder.
func TypeIdentifier(t *ir.TypeDescriptor) (ID, bool) {
	return plain.TypeIdentifier(t)
}
