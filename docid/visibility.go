package docid

import "github.com/trevorprinn/XmlDocRinse/ir"

// TypeVisible reports whether the metadata source counts t as part of the
// externally visible surface.
func TypeVisible(t *ir.TypeDescriptor) bool {
	return t != nil && t.IsVisible
}

// MemberVisible reports whether m is part of the public surface.
//
//   - Constructors and fields: protected or public.
//   - Methods: protected or public, and not both special-named and
//     hide-by-signature. The flag pair excludes accessors and operators.
//   - Properties: a getter or setter exists that is protected or public.
//   - Events: an add accessor exists. Its access is not checked.
//   - Nested types: the nested type itself is visible.
func MemberVisible(m *ir.MemberDescriptor) bool {
	if m == nil {
		return false
	}
	switch m.Kind {
	case ir.KindConstructor, ir.KindField:
		return accessVisible(m)
	case ir.KindMethod:
		return accessVisible(m) && !(m.SpecialName && m.HideBySig)
	case ir.KindProperty:
		return accessVisible(m.Getter) || accessVisible(m.Setter)
	case ir.KindEvent:
		return m.Adder != nil
	case ir.KindNestedType:
		return TypeVisible(m.Type)
	default:
		return false
	}
}

func accessVisible(m *ir.MemberDescriptor) bool {
	return m != nil && m.Access.IsProtectedOrPublic()
}
