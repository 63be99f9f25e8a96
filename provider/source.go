package provider

import (
	"context"
	"fmt"
	"go/types"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/trevorprinn/XmlDocRinse/ir"
)

// SourceProvider builds module metadata by type-checking Go packages.
//
// Every package-level named type becomes a top-level TypeDescriptor in a
// namespace derived from its import path; exported types are visible.
// Struct fields become fields, declared methods become methods, and a
// package function New<Type> returning the type or a pointer to it becomes
// a constructor of that type.
type SourceProvider struct {
	// Dir is the directory patterns are resolved in. Empty means the
	// current directory.
	Dir string
}

// Load type-checks the packages matching patterns and converts their named
// types. The module is named after the first matching package.
func (p *SourceProvider) Load(ctx context.Context, patterns ...string) (*ir.Module, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no packages specified")
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     p.Dir,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedImports |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found")
	}

	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].PkgPath < pkgs[j].PkgPath })

	m := &ir.Module{Name: pkgs[0].PkgPath}
	for _, pkg := range pkgs {
		for _, t := range convertPackage(pkg.Types) {
			m.AddType(t)
		}
	}
	m.Link()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Namespace maps an import path to a dotted namespace.
func Namespace(pkgPath string) string {
	return strings.ReplaceAll(pkgPath, "/", ".")
}

// convertPackage returns a descriptor for every named type declared at
// package level, in name order. Aliases are skipped; they name a type
// declared elsewhere.
func convertPackage(pkg *types.Package) []*ir.TypeDescriptor {
	scope := pkg.Scope()
	ctors := constructors(scope)

	var out []*ir.TypeDescriptor
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		out = append(out, convertNamed(named, ctors[tn]))
	}
	return out
}

// constructors groups the New<Type> functions of scope by the type they
// return.
func constructors(scope *types.Scope) map[*types.TypeName][]*types.Func {
	ctors := make(map[*types.TypeName][]*types.Func)
	for _, name := range scope.Names() {
		fn, ok := scope.Lookup(name).(*types.Func)
		if !ok || !strings.HasPrefix(name, "New") {
			continue
		}
		sig := fn.Type().(*types.Signature)
		if sig.Results().Len() == 0 {
			continue
		}
		result := sig.Results().At(0).Type()
		if ptr, ok := result.(*types.Pointer); ok {
			result = ptr.Elem()
		}
		named, ok := types.Unalias(result).(*types.Named)
		if !ok {
			continue
		}
		obj := named.Origin().Obj()
		if obj.Parent() != scope || name != "New"+obj.Name() {
			continue
		}
		ctors[obj] = append(ctors[obj], fn)
	}
	return ctors
}

func convertNamed(named *types.Named, ctors []*types.Func) *ir.TypeDescriptor {
	obj := named.Obj()
	t := &ir.TypeDescriptor{
		Namespace: Namespace(obj.Pkg().Path()),
		Name:      obj.Name(),
		IsVisible: obj.Exported(),
	}
	if tparams := named.TypeParams(); tparams.Len() > 0 {
		t.Name += "`" + strconv.Itoa(tparams.Len())
		t.IsGenericType = true
		t.IsGenericTypeDefinition = true
		for i := 0; i < tparams.Len(); i++ {
			t.GenericArguments = append(t.GenericArguments, &ir.TypeDescriptor{Name: tparams.At(i).Obj().Name()})
		}
	}

	switch u := named.Underlying().(type) {
	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			f := u.Field(i)
			t.Members = append(t.Members, &ir.MemberDescriptor{
				Kind:   ir.KindField,
				Name:   f.Name(),
				Access: access(f.Exported()),
			})
		}
	case *types.Interface:
		for i := 0; i < u.NumExplicitMethods(); i++ {
			t.Members = append(t.Members, method(u.ExplicitMethod(i)))
		}
	}

	for _, fn := range ctors {
		sig := fn.Type().(*types.Signature)
		t.Members = append(t.Members, &ir.MemberDescriptor{
			Kind:       ir.KindConstructor,
			Parameters: parameters(sig),
			Access:     access(fn.Exported()),
		})
	}
	for i := 0; i < named.NumMethods(); i++ {
		t.Members = append(t.Members, method(named.Method(i)))
	}
	return t
}

func method(fn *types.Func) *ir.MemberDescriptor {
	return &ir.MemberDescriptor{
		Kind:       ir.KindMethod,
		Name:       fn.Name(),
		Parameters: parameters(fn.Type().(*types.Signature)),
		Access:     access(fn.Exported()),
	}
}

func access(exported bool) ir.Access {
	if exported {
		return ir.AccessPublic
	}
	return ir.AccessPrivate
}

func parameters(sig *types.Signature) []*ir.TypeDescriptor {
	params := sig.Params()
	if params.Len() == 0 {
		return nil
	}
	out := make([]*ir.TypeDescriptor, params.Len())
	for i := 0; i < params.Len(); i++ {
		out[i] = typeRef(params.At(i).Type())
	}
	return out
}

// basicNames maps predeclared Go types to the System type names used in
// documentation identifiers.
var basicNames = map[types.BasicKind]string{
	types.Bool:    "Boolean",
	types.Int:     "Int64",
	types.Int8:    "SByte",
	types.Int16:   "Int16",
	types.Int32:   "Int32",
	types.Int64:   "Int64",
	types.Uint:    "UInt64",
	types.Uint8:   "Byte",
	types.Uint16:  "UInt16",
	types.Uint32:  "UInt32",
	types.Uint64:  "UInt64",
	types.Uintptr: "UIntPtr",
	types.Float32: "Single",
	types.Float64: "Double",
	types.String:  "String",
}

// typeRef describes a parameter type.
func typeRef(t types.Type) *ir.TypeDescriptor {
	switch t := t.(type) {
	case *types.Alias:
		return typeRef(types.Unalias(t))

	case *types.Basic:
		if name, ok := basicNames[t.Kind()]; ok {
			return &ir.TypeDescriptor{Namespace: "System", Name: name}
		}
		return &ir.TypeDescriptor{Name: t.Name()}

	case *types.TypeParam:
		return &ir.TypeDescriptor{Name: "`" + strconv.Itoa(t.Index())}

	case *types.Named:
		obj := t.Obj()
		ref := &ir.TypeDescriptor{Name: obj.Name()}
		if obj.Pkg() != nil {
			ref.Namespace = Namespace(obj.Pkg().Path())
		}
		if targs := t.TypeArgs(); targs.Len() > 0 {
			ref.Name += "`" + strconv.Itoa(targs.Len())
			ref.IsGenericType = true
			for i := 0; i < targs.Len(); i++ {
				ref.GenericArguments = append(ref.GenericArguments, typeRef(targs.At(i)))
			}
		}
		return ref

	default:
		return &ir.TypeDescriptor{Name: types.TypeString(t, qualifier)}
	}
}

func qualifier(pkg *types.Package) string {
	return Namespace(pkg.Path())
}
