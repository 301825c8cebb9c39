package schematic

import "errors"

var (
	// ErrBadID indicates a component identifier that is not letters
	// followed by digits, or whose letter does not match its type.
	ErrBadID = errors.New("schematic: invalid component id")
	// ErrDuplicateID indicates two components sharing an identifier.
	ErrDuplicateID = errors.New("schematic: duplicate component id")
	// ErrUnknownType indicates an unrecognized component or analysis type name.
	ErrUnknownType = errors.New("schematic: unknown type")
	// ErrUnknownComponent indicates a wire or label referencing a component that does not exist.
	ErrUnknownComponent = errors.New("schematic: reference to unknown component")
	// ErrBadTerminal indicates a pin index at or beyond the component's terminal count.
	ErrBadTerminal = errors.New("schematic: terminal index out of range")
	// ErrBadLabel indicates a net label that is not purely alphanumeric.
	ErrBadLabel = errors.New("schematic: invalid net label")
)
