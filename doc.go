// Package inikit reads and edits sectioned key=value configuration files
// without disturbing their layout.
//
// A file is a list of [section] headers, each followed by key=value items.
// Everything else (comments, blank lines, unknown content) is kept as is.
// Edits happen on an in-memory document; on save only the lines whose data
// changed are rewritten, new items go to the end of their section and new
// sections to the end of the file.
//
// Features:
//
//   - **Format preserving**: saving an unchanged file reproduces it byte for byte.
//   - **Registry**: one shared handle per path, with explicit open and close.
//   - **Typed access**: Int and Bool accessors with structured errors, and
//     struct mapping through the typed package.
//   - **Sub-items**: several {K=V} pairs packed into one value.
//   - **Watching**: change events for files edited by other processes.
//
// Usage:
//
//	reg := inikit.NewRegistry(inikit.WithLogger(logger))
//	f, err := reg.Open("Quiz.ini", false)
//
//	max, err := f.Int("CONFIG", "MaxDificult")
//	err = f.Write("Q1", "Dificult", "2", true) // write and save
package inikit
