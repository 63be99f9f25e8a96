// Package testfixtures provides module metadata and documentation files
// shared by the tests of several packages.
package testfixtures

import (
	"strings"

	"github.com/trevorprinn/XmlDocRinse/ir"
)

// FooYAML describes namespace N with
//
//	public class Foo { public int Bar; private int Baz; public Foo() {} }
const FooYAML = `
name: Foo
types:
  - namespace: N
    name: Foo
    visible: true
    members:
      - kind: field
        name: Bar
        access: public
      - kind: field
        name: Baz
        access: private
      - kind: constructor
        access: public
`

// FooDocument is the documentation file generated for FooYAML.
const FooDocument = `<?xml version="1.0"?>
<doc>
    <assembly>
        <name>Foo</name>
    </assembly>
    <members>
        <member name="T:N.Foo">
            <summary>A foo.</summary>
        </member>
        <member name="F:N.Foo.Bar">
            <summary>The bar.</summary>
        </member>
        <member name="F:N.Foo.Baz">
            <summary>The baz.</summary>
        </member>
        <member name="M:N.Foo.#ctor">
            <summary>Creates a foo.</summary>
        </member>
    </members>
</doc>
`

// FooSurface is the expected surface of FooYAML.
var FooSurface = []string{
	"F:N.Foo.Bar",
	"M:N.Foo.#ctor",
	"T:N.Foo",
}

// LibraryYAML exercises generics, nested types, accessor-based visibility and
// the special-name method rule.
const LibraryYAML = `
name: Acme.Collections
types:
  - namespace: Acme.Collections
    name: Box` + "`" + `1
    visible: true
    genericType: true
    genericTypeDefinition: true
    members:
      - kind: constructor
        access: public
        parameters:
          - name: "` + "`" + `0"
      - kind: method
        name: Map
        access: public
        parameters:
          - namespace: Acme.Collections
            name: Box` + "`" + `1
            genericType: true
            genericArguments:
              - namespace: System
                name: String
      - kind: property
        name: Value
        getter:
          name: get_Value
          access: public
          specialName: true
          hideBySig: true
      - kind: method
        name: get_Value
        access: public
        specialName: true
        hideBySig: true
      - kind: method
        name: op_Equality
        access: public
        specialName: true
        hideBySig: true
        parameters:
          - namespace: System
            name: Object
          - namespace: System
            name: Object
      - kind: method
        name: Describe
        access: public
        specialName: true
  - namespace: Acme.Collections
    name: Registry
    visible: true
    members:
      - kind: property
        name: Count
        getter:
          name: get_Count
          access: private
        setter:
          name: set_Count
          access: protected
      - kind: property
        name: Secret
        getter:
          name: get_Secret
          access: private
      - kind: property
        name: Item
        getter:
          name: get_Item
          access: public
          parameters:
            - namespace: System
              name: Int32
      - kind: property
        name: Shared
        getter:
          name: get_Shared
          access: protectedInternal
      - kind: event
        name: Changed
        add:
          name: add_Changed
          access: private
      - kind: event
        name: Detached
      - kind: method
        name: Lookup
        access: public
        hideBySig: true
        parameters:
          - namespace: System
            name: String
          - namespace: System
            name: Int32
      - kind: method
        name: Reset
        access: protectedInternal
      - kind: method
        name: OnChanged
        access: protected
      - kind: field
        name: _items
        access: private
      - kind: field
        name: Default
        access: public
      - kind: field
        name: Version
        access: internal
      - kind: constructor
        access: private
      - kind: constructor
        access: protected
        parameters:
          - namespace: System.Collections.Generic
            name: IDictionary` + "`" + `2
            genericType: true
            genericArguments:
              - namespace: System
                name: String
              - namespace: Acme.Collections
                name: Box` + "`" + `1
                genericType: true
                genericArguments:
                  - namespace: System
                    name: Int32
      - kind: nestedType
        type:
          name: Entry
          visible: true
          members:
            - kind: field
              name: Key
              access: public
            - kind: nestedType
              type:
                name: Node
                members:
                  - kind: field
                    name: Value
                    access: public
      - kind: nestedType
        type:
          name: Cache
          members:
            - kind: method
              name: Flush
              access: public
  - namespace: Acme.Collections
    name: Internals
    members:
      - kind: method
        name: Helper
        access: public
  - name: Program
    visible: true
    members:
      - kind: method
        name: Main
        access: public
        hideBySig: true
        parameters:
          - namespace: System
            name: String[]
`

// LibrarySurface is the expected surface of LibraryYAML.
var LibrarySurface = []string{
	"E:Acme.Collections.Registry.Changed",
	"F:Acme.Collections.Registry.Default",
	"F:Acme.Collections.Registry.Entry.Key",
	"M:Acme.Collections.Box`1.#ctor(`0)",
	"M:Acme.Collections.Box`1.Describe",
	"M:Acme.Collections.Box`1.Map(Acme.Collections.Box{System.String})",
	"M:Acme.Collections.Registry.#ctor(System.Collections.Generic.IDictionary{System.String,Acme.Collections.Box{System.Int32}})",
	"M:Acme.Collections.Registry.Lookup(System.String,System.Int32)",
	"M:Acme.Collections.Registry.OnChanged",
	"M:Program.Main(System.String[])",
	"P:Acme.Collections.Box`1.Value",
	"P:Acme.Collections.Registry.Count",
	"P:Acme.Collections.Registry.Item",
	"T:Acme.Collections.Box`1",
	"T:Acme.Collections.Registry",
	"T:Acme.Collections.Registry.Entry",
	"T:Program",
}

// Foo decodes FooYAML.
func Foo() *ir.Module {
	return mustDecode(FooYAML)
}

// Library decodes LibraryYAML.
func Library() *ir.Module {
	return mustDecode(LibraryYAML)
}

func mustDecode(doc string) *ir.Module {
	m, err := ir.Decode(strings.NewReader(doc), ir.FormatYAML)
	if err != nil {
		panic(err)
	}
	return m
}
