// Package compiletest type-checks source snippets against a package in
// this module. It backs the tests asserting that finalizing an incomplete
// builder is rejected by the compiler.
package compiletest

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// overlayName is the file the snippet is loaded as. It never exists on disk.
const overlayName = "zz_compiletest_overlay.go"

// TypeErrors loads the package in dir with src added as an extra source
// file and returns the messages of every error reported for it.
//
// src must declare the same package name as the files in dir.
func TypeErrors(t testing.TB, dir, src string) []string {
	t.Helper()
	if testing.Short() {
		t.Skip("compile checks run the go command; skipped in -short mode")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		t.Fatalf("resolve %s: %v", dir, err)
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
		Dir:     abs,
		Overlay: map[string][]byte{filepath.Join(abs, overlayName): []byte(src)},
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		t.Fatalf("load %s: %v", abs, err)
	}

	var msgs []string
	for _, p := range pkgs {
		for _, e := range p.Errors {
			msgs = append(msgs, e.Msg)
		}
	}
	return msgs
}

// Case is one snippet and whether it is expected to type check.
type Case struct {
	Name    string
	Src     string
	Compile bool
	// Want is a substring expected in at least one error when Compile is false.
	Want string
}

// Run checks every case against the package in dir.
func Run(t *testing.T, dir string, cases []Case) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			errs := TypeErrors(t, dir, tc.Src)
			if tc.Compile {
				if len(errs) != 0 {
					t.Errorf("expected snippet to compile, got errors: %v", errs)
				}
				return
			}
			if len(errs) == 0 {
				t.Fatal("expected snippet to fail type checking, it compiled")
			}
			if tc.Want == "" {
				return
			}
			for _, msg := range errs {
				if strings.Contains(msg, tc.Want) {
					return
				}
			}
			t.Errorf("errors %v do not mention %q", errs, tc.Want)
		})
	}
}
