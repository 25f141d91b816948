package deck

import "errors"

var (
	ErrUnparseable  = errors.New("deck: source could not be parsed")
	ErrNoImportable = errors.New("deck: no importable questions found (uses_image: false)")
)
