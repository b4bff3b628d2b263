// Package regcheck defines an analyzer that reports registry entries used
// in ways the type system cannot rule out:
//
//   - a package-level entry variable with no initializer, which panics on
//     first use;
//   - a ReadOnly or ReadWrite accessor whose reader returns a pointer, map
//     or slice, which hands out mutable access (the Ref constructors exist
//     for that);
//   - an entry constructed inside a function body, which gives every call a
//     fresh, unshared entry.
//
// Test files are exempt from the last two rules, since tests declare
// throwaway entries on purpose, including ones that must panic.
package regcheck

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// RegPath is the import path of the registry package.
const RegPath = "github.com/vladislavmarkov/data-registry/pkg/reg"

var Analyzer = &analysis.Analyzer{
	Name:     "regcheck",
	Doc:      "report registry entries that are never stored, expose mutable storage or are declared inside functions",
	URL:      "https://pkg.go.dev/github.com/vladislavmarkov/data-registry/internal/analysis/regcheck",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// constructors maps each entry constructor to the index of its value type
// parameter, or -1 when its reader is not checked for references.
var constructors = map[string]int{
	"Static":           -1,
	"StaticOf":         -1,
	"StaticRef":        -1,
	"StaticRefOf":      -1,
	"ReadOnly":         0,
	"ReadOnlyWith":     1,
	"ReadOnlyRef":      -1,
	"ReadOnlyRefWith":  -1,
	"ReadWrite":        0,
	"ReadWriteWith":    1,
	"ReadWriteRef":     -1,
	"ReadWriteRefWith": -1,
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	for _, f := range pass.Files {
		checkUnstored(pass, f)
	}

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		id, name, ok := constructor(pass, call)
		if !ok || isTestFile(pass, call) {
			return
		}
		if i := constructors[name]; i >= 0 && returnsReference(pass, id, i) {
			pass.Reportf(call.Pos(), "read accessor must return a value or a read-only reference")
		}
	})

	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fd := n.(*ast.FuncDecl)
		if fd.Body == nil || isTestFile(pass, fd) {
			return
		}
		ast.Inspect(fd.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			if _, _, ok := constructor(pass, call); ok {
				pass.Reportf(call.Pos(), "entry must be declared at package scope")
			}
			return true
		})
	})
	return nil, nil
}

// checkUnstored reports package-level entry variables without a value.
func checkUnstored(pass *analysis.Pass, f *ast.File) {
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok || len(vs.Values) > 0 {
				continue
			}
			for _, name := range vs.Names {
				obj := pass.TypesInfo.Defs[name]
				if obj != nil && isEntry(obj.Type()) {
					pass.Reportf(name.Pos(), "entry %s is declared but never stored", name.Name)
				}
			}
		}
	}
}

// constructor reports whether call invokes one of the registry's entry
// constructors, returning the callee identifier and name.
func constructor(pass *analysis.Pass, call *ast.CallExpr) (*ast.Ident, string, bool) {
	fun := ast.Unparen(call.Fun)
	switch x := fun.(type) {
	case *ast.IndexExpr:
		fun = x.X
	case *ast.IndexListExpr:
		fun = x.X
	}

	var id *ast.Ident
	switch x := fun.(type) {
	case *ast.SelectorExpr:
		id = x.Sel
	case *ast.Ident:
		id = x
	default:
		return nil, "", false
	}

	fn, ok := pass.TypesInfo.Uses[id].(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != RegPath {
		return nil, "", false
	}
	if _, ok := constructors[fn.Name()]; !ok {
		return nil, "", false
	}
	return id, fn.Name(), true
}

// returnsReference reports whether type argument i of the instantiated
// constructor id shares storage with its source: a pointer, map or slice.
func returnsReference(pass *analysis.Pass, id *ast.Ident, i int) bool {
	inst, ok := pass.TypesInfo.Instances[id]
	if !ok || inst.TypeArgs == nil || i >= inst.TypeArgs.Len() {
		return false
	}
	switch u := inst.TypeArgs.At(i).Underlying().(type) {
	case *types.Pointer, *types.Map, *types.Slice:
		return true
	case *types.Basic:
		return u.Kind() == types.UnsafePointer
	}
	return false
}

func isEntry(t types.Type) bool {
	ptr, ok := types.Unalias(t).(*types.Pointer)
	if !ok {
		return false
	}
	named, ok := types.Unalias(ptr.Elem()).(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == RegPath && obj.Name() == "Entry"
}

func isTestFile(pass *analysis.Pass, n ast.Node) bool {
	return strings.HasSuffix(pass.Fset.Position(n.Pos()).Filename, "_test.go")
}
