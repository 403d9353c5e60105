package domain

// Perfume is a catalog record. Names are not unique; lookups take the first
// case-insensitive match in storage order. Notes is free text that grows by
// comma-appending on update.
type Perfume struct {
	Name  string
	Brand string
	Notes string
}

// NoteMatch is the projection returned by substring lookups over names.
type NoteMatch struct {
	Name  string
	Notes string
}
