package gridfile

import "errors"

var (
	// ErrNoCells is returned when a document has neither rows nor cells.
	ErrNoCells = errors.New("gridfile: document has no grid")

	// ErrBothForms is returned when a document sets both rows and cells.
	ErrBothForms = errors.New("gridfile: rows and cells are mutually exclusive")

	// ErrBadCell is returned for a rows character outside "10.#".
	ErrBadCell = errors.New("gridfile: invalid cell character")
)
