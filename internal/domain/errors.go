package domain

import "errors"

// Precondition errors abort an invocation before any edit is attempted.
var (
	ErrNoDocuments                = errors.New("no lua documents to localize")
	ErrNotLuaDocument             = errors.New("you must open a lua file")
	ErrSelectionOutOfRange        = errors.New("selection is outside the document")
	ErrSelectionWithManyDocuments = errors.New("a line selection needs exactly one document")
)
