package textconv

import (
	"errors"
	"fmt"
)

var (
	//ErrUnsupportedType target type shape the engine does not handle
	ErrUnsupportedType = errors.New("unsupported type")
	//ErrTypeMismatch non textual input incompatible with the target
	ErrTypeMismatch = errors.New("type mismatch")
	//ErrNoStrategy no enum constant, text constructor, factory or editor matched
	ErrNoStrategy = errors.New("no conversion strategy found")
	//ErrConstruction a matching strategy was found but failed during invocation
	ErrConstruction = errors.New("construction failed")
)

func constructionError(text string, target fmt.Stringer, cause error) error {
	return fmt.Errorf("%w: cannot convert string '%s' to %s: %w", ErrConstruction, text, target, cause)
}
