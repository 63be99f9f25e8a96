// Package docid derives documentation identifiers from type metadata and
// decides which members belong to a module's public surface.
//
// Identifiers follow the documentation-comment ID grammar used by generated
// XML documentation files:
//
//	T:N.Outer.Inner          type
//	M:N.Foo.#ctor(System.Int32)
//	M:N.Foo.Map(N.Box{System.String})
//	F:N.Foo.Bar              field
//	P:N.Foo.Count            property
//	E:N.Foo.Changed          event
//
// The package has three layers. The visibility predicates (TypeVisible,
// MemberVisible) are pure. The Builder renders qualified type names and
// member identifiers, optionally memoizing type names. The Walker visits every
// exported type of a TypeSource once and collects the identifiers of its
// visible members into a Surface.
package docid
