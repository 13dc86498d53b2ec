package generator

import "fmt"

// DefaultExceptionHeader is included by the definitions artifact when the
// application exception is used.
const DefaultExceptionHeader = "OrthancException.h"

// ErrorPolicy selects what the generated accessors throw. The strings are
// copied verbatim into the definitions artifact.
type ErrorPolicy struct {
	// Include is the preprocessor line that makes the thrown type visible.
	Include string
	// OutOfRange is thrown for an identifier outside its enumeration.
	OutOfRange string
	// InexistentPath is thrown for an unregistered path in a known directory.
	InexistentPath string
}

// DefaultPolicy throws the application exception declared in header.
func DefaultPolicy(header string) ErrorPolicy {
	if header == "" {
		header = DefaultExceptionHeader
	}
	return ErrorPolicy{
		Include:        fmt.Sprintf(`#include "%s"`, header),
		OutOfRange:     "OrthancException(ErrorCode_ParameterOutOfRange)",
		InexistentPath: "OrthancException(ErrorCode_InexistentItem)",
	}
}

// SystemPolicy throws ::std::runtime_error and only depends on the standard library.
func SystemPolicy() ErrorPolicy {
	const class = "::std::runtime_error"
	return ErrorPolicy{
		Include:        "#include <stdexcept>",
		OutOfRange:     class + `("Parameter out of range")`,
		InexistentPath: class + `("Unknown path in a directory resource")`,
	}
}

// Validate rejects a policy with an empty raise site.
func (p ErrorPolicy) Validate() error {
	if p.OutOfRange == "" {
		return fmt.Errorf("error policy: out-of-range exception is empty")
	}
	if p.InexistentPath == "" {
		return fmt.Errorf("error policy: inexistent-path exception is empty")
	}
	return nil
}
