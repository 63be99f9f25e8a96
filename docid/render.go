package docid

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/trevorprinn/XmlDocRinse/ir"
)

// Builder renders qualified type names and member identifiers.
//
// The zero value renders without caching. NewBuilder with a positive size
// memoizes rendered type names by descriptor, which pays off when many
// members share a declaring type or parameter types.
type Builder struct {
	names *lru.Cache[*ir.TypeDescriptor, string]
}

// NewBuilder returns a Builder caching up to cacheSize rendered type names.
// A cacheSize of zero disables caching.
func NewBuilder(cacheSize int) (*Builder, error) {
	if cacheSize <= 0 {
		return &Builder{}, nil
	}
	names, err := lru.New[*ir.TypeDescriptor, string](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Builder{names: names}, nil
}

var plain Builder

// RenderType renders the qualified name of t without caching.
func RenderType(t *ir.TypeDescriptor) string {
	return plain.RenderType(t)
}

// RenderParameters renders a parameter list without caching.
func RenderParameters(params []*ir.TypeDescriptor) string {
	return plain.RenderParameters(params)
}

// RenderType renders the qualified name of t:
//
//   - nested types are qualified by their declaring chain, top-level types
//     by their namespace;
//   - constructed generic types drop the arity suffix and list their
//     arguments in braces, so Box`1 of Int32 renders as Box{System.Int32};
//   - generic definitions keep the arity suffix unchanged.
func (b *Builder) RenderType(t *ir.TypeDescriptor) string {
	if t == nil {
		return ""
	}
	if b.names != nil {
		if name, ok := b.names.Get(t); ok {
			return name
		}
	}

	var sb strings.Builder
	if t.DeclaringType != nil {
		sb.WriteString(b.RenderType(t.DeclaringType))
		sb.WriteByte('.')
	} else if t.Namespace != "" {
		sb.WriteString(t.Namespace)
		sb.WriteByte('.')
	}

	if t.IsConstructedGeneric() {
		sb.WriteString(StripArity(t.Name))
		sb.WriteByte('{')
		for i, arg := range t.GenericArguments {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(b.RenderType(arg))
		}
		sb.WriteByte('}')
	} else {
		sb.WriteString(t.Name)
	}

	name := sb.String()
	if b.names != nil {
		b.names.Add(t, name)
	}
	return name
}

// RenderParameters renders "(T1,T2,...)" for a non-empty parameter list and
// the empty string otherwise.
func (b *Builder) RenderParameters(params []*ir.TypeDescriptor) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(b.RenderType(p))
	}
	sb.WriteByte(')')
	return sb.String()
}

// StripArity removes a trailing arity marker, a backtick followed by one or
// more decimal digits, from a metadata type name. Names without the marker
// are returned unchanged.
func StripArity(name string) string {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == len(name) || i == 0 || name[i-1] != '`' {
		return name
	}
	return name[:i-1]
}
