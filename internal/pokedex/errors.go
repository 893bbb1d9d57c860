package pokedex

import "fmt"

// NotFoundError reports a resource read against an id that is not in the set.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown pokemon: %s", e.ID)
}

// UnknownToolError reports a tool call with an unrecognized operation name.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}
