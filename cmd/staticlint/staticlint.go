// Package staticlint is the multichecker run over the IGF App sources.
// It combines:
//
//	standard analyzers of the golang.org/x/tools/go/analysis/passes package;
//	all analyzers of the SA class of staticcheck.io;
//	the stylecheck, simple and quickfix analyzers listed in config.json;
//	bodyclose, errcheck and go-critic;
//	the osexitcheck and outboundctx analyzers of this package.
//
// config.json is read from the directory of the executable. A missing file
// leaves only the SA class enabled from staticcheck.io.
//
//	go build -o cmd/staticlint/staticlint ./cmd/staticlint
//	cmd/staticlint/staticlint ./...
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	critic "github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/kisielk/errcheck/errcheck"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/appends"
	"golang.org/x/tools/go/analysis/passes/asmdecl"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/cgocall"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/deepequalerrors"
	"golang.org/x/tools/go/analysis/passes/defers"
	"golang.org/x/tools/go/analysis/passes/directive"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/framepointer"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/ifaceassert"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/reflectvaluecompare"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/sigchanyzer"
	"golang.org/x/tools/go/analysis/passes/slog"
	"golang.org/x/tools/go/analysis/passes/sortslice"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/stringintconv"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/testinggoroutine"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/timeformat"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unsafeptr"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"golang.org/x/tools/go/analysis/passes/waitgroup"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/quickfix"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

// Config is the name of the file that enables extra staticcheck.io analyzers.
const Config = `config.json`

// ConfigData is the content of Config.
type ConfigData struct {
	Staticcheck []string `json:"staticcheck"`
}

// passes are the standard analyzers that run unconditionally.
var passes = []*analysis.Analyzer{
	appends.Analyzer,
	asmdecl.Analyzer,
	assign.Analyzer,
	atomic.Analyzer,
	bools.Analyzer,
	buildtag.Analyzer,
	cgocall.Analyzer,
	composite.Analyzer,
	copylock.Analyzer,
	deepequalerrors.Analyzer,
	defers.Analyzer,
	directive.Analyzer,
	errorsas.Analyzer,
	framepointer.Analyzer,
	httpresponse.Analyzer,
	ifaceassert.Analyzer,
	loopclosure.Analyzer,
	lostcancel.Analyzer,
	nilfunc.Analyzer,
	printf.Analyzer,
	reflectvaluecompare.Analyzer,
	shadow.Analyzer,
	shift.Analyzer,
	sigchanyzer.Analyzer,
	slog.Analyzer,
	sortslice.Analyzer,
	stdmethods.Analyzer,
	stringintconv.Analyzer,
	structtag.Analyzer,
	testinggoroutine.Analyzer,
	tests.Analyzer,
	timeformat.Analyzer,
	unmarshal.Analyzer,
	unreachable.Analyzer,
	unsafeptr.Analyzer,
	unusedresult.Analyzer,
	waitgroup.Analyzer,
}

// selectLint returns every SA analyzer plus the ones named in enabled.
func selectLint(analyzers []*lint.Analyzer, enabled map[string]bool) []*analysis.Analyzer {
	var out []*analysis.Analyzer
	for _, v := range analyzers {
		if strings.HasPrefix(v.Analyzer.Name, "SA") || enabled[v.Analyzer.Name] {
			out = append(out, v.Analyzer)
		}
	}
	return out
}

// loadConfig reads path. A missing file yields an empty config.
func loadConfig(path string) (ConfigData, error) {
	var cfg ConfigData
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// buildChecks assembles the analyzers for cfg.
func buildChecks(cfg ConfigData) []*analysis.Analyzer {
	enabled := make(map[string]bool, len(cfg.Staticcheck))
	for _, v := range cfg.Staticcheck {
		enabled[v] = true
	}

	checks := append([]*analysis.Analyzer{}, passes...)
	checks = append(checks, selectLint(staticcheck.Analyzers, enabled)...)
	checks = append(checks, selectLint(stylecheck.Analyzers, enabled)...)
	checks = append(checks, selectLint(simple.Analyzers, enabled)...)
	checks = append(checks, selectLint(quickfix.Analyzers, enabled)...)
	checks = append(checks,
		bodyclose.Analyzer,
		errcheck.Analyzer,
		critic.Analyzer,
		OsExitCheckAnalyzer,
		OutboundCtxAnalyzer,
	)
	return checks
}

func main() {
	appfile, err := os.Executable()
	if err != nil {
		log.Fatalf("staticlint: %v", err)
	}
	cfg, err := loadConfig(filepath.Join(filepath.Dir(appfile), Config))
	if err != nil {
		log.Fatalf("staticlint: %v", err)
	}

	multichecker.Main(buildChecks(cfg)...)
}
