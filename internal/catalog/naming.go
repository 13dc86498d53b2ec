package catalog

import (
	"regexp"
	"strings"
	"unicode"
)

var identifierPattern = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)

// NormalizeName returns the enumeration form of a resource name.
func NormalizeName(name string) string {
	return strings.ToUpper(name)
}

// CheckName verifies that an already normalized resource name can be emitted
// as an enumeration member and is not registered yet.
func (c *Catalog) CheckName(name string) error {
	if !identifierPattern.MatchString(name) {
		return newResourceError(ErrNamingViolation, name, "", errInvalidIdentifier)
	}
	if _, ok := c.byName[name]; ok {
		return newResourceError(ErrDuplicateResource, name, "", nil)
	}
	return nil
}

// CheckNoUpcase fails with ErrNamingViolation when checking is enabled and
// the relative path contains an upper-case character. Generated lookups are
// case-sensitive, so a tree copied through a case-insensitive filesystem would
// silently stop matching.
func CheckNoUpcase(relPath string, enabled bool) error {
	if !enabled {
		return nil
	}
	for _, r := range relPath {
		if unicode.IsUpper(r) {
			return newResourceError(ErrNamingViolation, "", relPath, errUpcasePath)
		}
	}
	return nil
}

// CheckPath fails with ErrDuplicatePath when relPath is already registered in d.
// The comparison is case-sensitive.
func (d *Directory) CheckPath(relPath string) error {
	if _, ok := d.byPath[relPath]; ok {
		return newResourceError(ErrDuplicatePath, d.Name, relPath, nil)
	}
	return nil
}
