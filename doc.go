// Package xmldocrinse removes documentation entries for non-public API from
// the XML documentation file a compiler generates next to a module.
//
// A documentation file lists one <member name="..."> entry per documented
// item, named by its documentation identifier ("T:N.Foo", "M:N.Foo.#ctor",
// "F:N.Foo.Bar"). A Rinser loads the module's type metadata, collects the
// identifiers of every public or protected type, constructor, method, field,
// property and event, and drops every entry naming anything else:
//
//	res, err := xmldocrinse.New("bin/Foo.yaml").
//		WithDocPath("bin/Foo.xml").
//		WithLogger(logger).
//		Run(ctx)
//
// Before the file is rewritten it is copied to a backup next to it.
// Errors returned by Run are *Error values whose Code classifies the failure.
package xmldocrinse
