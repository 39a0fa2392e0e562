package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// OsExitCheckAnalyzer reports direct os.Exit calls inside main.main.
var OsExitCheckAnalyzer = &analysis.Analyzer{
	Name: "osexitcheck",
	Doc:  "check for os.Exit calls in the main function of package main",
	Run:  runOsExit,
}

func runOsExit(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}
	for _, file := range pass.Files {
		// go test builds a synthetic main package under the build cache
		if strings.Contains(pass.Fset.Position(file.Package).Filename, ".cache") {
			continue
		}
		for _, decl := range file.Decls {
			f, ok := decl.(*ast.FuncDecl)
			if !ok || f.Recv != nil || f.Name.Name != "main" || f.Body == nil {
				continue
			}
			ast.Inspect(f.Body, func(node ast.Node) bool {
				call, ok := node.(*ast.CallExpr)
				if ok && isPkgFunc(pass, call, "os", "Exit") {
					pass.Reportf(call.Pos(), "os.Exit cannot be called in main function of main package")
				}
				return true
			})
		}
	}
	return nil, nil
}

// contextless are the net/http helpers that cannot carry a context.
var contextless = map[string]string{
	"Get":        "http.NewRequestWithContext and a configured client",
	"Head":       "http.NewRequestWithContext and a configured client",
	"Post":       "http.NewRequestWithContext and a configured client",
	"PostForm":   "http.NewRequestWithContext and a configured client",
	"NewRequest": "http.NewRequestWithContext",
}

// OutboundCtxAnalyzer reports outbound HTTP calls that ignore cancellation
// or bypass the configured client. Test files are skipped.
var OutboundCtxAnalyzer = &analysis.Analyzer{
	Name:     "outboundctx",
	Doc:      "check that outbound HTTP requests carry a context and use a configured client",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runOutboundCtx,
}

func runOutboundCtx(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	filter := []ast.Node{(*ast.CallExpr)(nil), (*ast.SelectorExpr)(nil)}

	insp.Preorder(filter, func(n ast.Node) {
		if strings.HasSuffix(pass.Fset.Position(n.Pos()).Filename, "_test.go") {
			return
		}
		switch node := n.(type) {
		case *ast.CallExpr:
			for name, hint := range contextless {
				if isPkgFunc(pass, node, "net/http", name) {
					pass.Reportf(node.Pos(), "http.%s ignores cancellation, use %s", name, hint)
					return
				}
			}
		case *ast.SelectorExpr:
			v, ok := pass.TypesInfo.Uses[node.Sel].(*types.Var)
			if ok && v.Pkg() != nil && v.Pkg().Path() == "net/http" && v.Name() == "DefaultClient" {
				pass.Reportf(node.Pos(), "http.DefaultClient has no timeout, inject a configured client")
			}
		}
	})
	return nil, nil
}

// isPkgFunc reports whether call invokes the package-level function pkg.name.
func isPkgFunc(pass *analysis.Pass, call *ast.CallExpr, pkg, name string) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Name() != name {
		return false
	}
	if sig, ok := fn.Type().(*types.Signature); ok && sig.Recv() != nil {
		return false
	}
	return fn.Pkg().Path() == pkg
}
