package scss

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bulmaswatch/swatchport/constant"
	"github.com/bulmaswatch/swatchport/filesystem"
	"github.com/bulmaswatch/swatchport/log"
	"github.com/bulmaswatch/swatchport/util"
)

// ErrMissingFragment is returned when a legacy fragment file does not exist.
var ErrMissingFragment = errors.New("fragment not found")

var declarationPattern = regexp.MustCompile(`^\s*\$(?P<name>[\w-]+)\s*:\s*(?P<value>.+?)(?:\s+!default)?;\s*(?://.*|/\*.*)?$`)

// ParseLine recognizes a single-line `$name: value;` declaration, optionally marked `!default`.
// Comments before or after the terminator and one trailing map separator are stripped from the value.
func ParseLine(line string) (name, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") {
		return "", "", false
	}

	groups := util.ReGroups(declarationPattern, strings.TrimRight(line, "\r\n"))
	if len(groups) == 0 {
		return "", "", false
	}

	value = strings.TrimSpace(groups["value"])
	value, _, _ = strings.Cut(value, "//")
	value = strings.TrimSpace(value)
	value, _, _ = strings.Cut(value, "/*")
	value = strings.TrimSpace(value)
	if strings.HasSuffix(value, ",") {
		value = strings.TrimSpace(strings.TrimSuffix(value, ","))
	}

	if value == "" {
		return "", "", false
	}

	return Sigil + groups["name"], value, true
}

// Extract reads a fragment line by line. On a read error the declarations gathered so far are returned with it.
func Extract(r io.Reader) (*Declarations, error) {
	decls := NewDeclarations()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		name, value, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		if !decls.SetIfAbsent(name, value) {
			log.Debugf("Skipped duplicate %s", name)
		}
	}

	return decls, scanner.Err()
}

// ExtractFile extracts a fragment through the active filesystem.
// A missing file yields an empty set and an error wrapping ErrMissingFragment.
func ExtractFile(path string) (*Declarations, error) {
	fs := filesystem.API()

	exists, err := fs.Exists(path)
	if err != nil {
		return NewDeclarations(), fmt.Errorf("stat %s: %w", path, err)
	}
	if !exists {
		return NewDeclarations(), fmt.Errorf("%w: %s", ErrMissingFragment, path)
	}

	f, err := fs.Open(path)
	if err != nil {
		return NewDeclarations(), fmt.Errorf("open %s: %w", path, err)
	}
	defer util.Ignore(f.Close)

	decls, err := Extract(f)
	if err != nil {
		return decls, fmt.Errorf("read %s: %w", path, err)
	}

	log.Debugf("Extracted %d declarations from %s", decls.Len(), path)
	return decls, nil
}

// ExtractTheme extracts both fragments of a legacy theme directory. _variables.scss takes
// precedence over _bootswatch.scss. Problems with either fragment are returned as warnings.
func ExtractTheme(dir string) (*Declarations, []error) {
	var (
		decls    = NewDeclarations()
		warnings []error
	)

	for _, fragment := range []string{constant.VariablesFragment, constant.BootswatchFragment} {
		found, err := ExtractFile(filepath.Join(dir, fragment))
		if err != nil {
			log.Warn(err)
			warnings = append(warnings, err)
		}
		Merge(decls, found)
	}

	return decls, warnings
}
