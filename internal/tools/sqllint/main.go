// Command sqllint checks that every inline SQL constant starts with a
// "--sql <uuid>" audit marker. The marker line is what SQLRunner reports
// when logging query execution, so an unmarked constant is invisible in
// the logs.
//
// Usage: sqllint [path ...]  (defaults to the current directory)
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	sqlKeyword  = regexp.MustCompile(`(?i)\b(select|insert|update|delete|create|truncate|with)\b`)
	markerLine  = regexp.MustCompile(`^--sql [0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	skippedDirs = map[string]bool{"vendor": true, "testdata": true}
)

type finding struct {
	file string
	line int
	name string
}

func main() {
	flag.Parse()
	targets := flag.Args()
	if len(targets) == 0 {
		targets = []string{"."}
	}

	var findings []finding
	for _, target := range targets {
		fs, err := collectFindings(target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sqllint: %v\n", err)
			os.Exit(1)
		}
		findings = append(findings, fs...)
	}

	if len(findings) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, "sqllint: SQL constants without a --sql <uuid> marker:")
	for _, f := range findings {
		fmt.Fprintf(os.Stderr, "  %s:%d: %s\n", f.file, f.line, f.name)
	}
	os.Exit(1)
}

func collectFindings(target string) ([]finding, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return lintFile(target)
	}
	var findings []finding
	err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && d.Name() != "." || skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		fs, err := lintFile(path)
		if err != nil {
			return err
		}
		findings = append(findings, fs...)
		return nil
	})
	return findings, err
}

func lintFile(path string) ([]finding, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, 0)
	if err != nil {
		return nil, err
	}
	var findings []finding
	ast.Inspect(file, func(n ast.Node) bool {
		spec, ok := n.(*ast.ValueSpec)
		if !ok {
			return true
		}
		for i, value := range spec.Values {
			lit, ok := value.(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				continue
			}
			text, err := litText(lit)
			if err != nil || !sqlKeyword.MatchString(text) {
				continue
			}
			if markerLine.MatchString(firstLine(text)) {
				continue
			}
			name := "_"
			if i < len(spec.Names) && spec.Names[i] != nil {
				name = spec.Names[i].Name
			}
			findings = append(findings, finding{
				file: path,
				line: fset.Position(lit.Pos()).Line,
				name: name,
			})
		}
		return true
	})
	return findings, nil
}

func litText(lit *ast.BasicLit) (string, error) {
	if strings.HasPrefix(lit.Value, "`") {
		return strings.Trim(lit.Value, "`"), nil
	}
	return strconv.Unquote(lit.Value)
}

func firstLine(s string) string {
	s = strings.TrimLeft(s, " \t\r\n")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
