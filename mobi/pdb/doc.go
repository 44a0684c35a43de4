// Package pdb resolves and replaces sections of a PalmDB container, the outer
// format of every Kindle/Mobipocket ebook.
//
// # Layout
//
// A container starts with a 78 byte header whose last field is the section
// count, followed by one 8 byte directory entry per section. The first four
// bytes of an entry are the section's start offset; a section ends where the
// next one starts, the last one at the end of the file.
//
// # Length Preservation
//
// Replacements must be exactly as long as the section they replace. The
// directory is therefore never rewritten, and a replacement that would grow
// or shrink a section fails with format.ErrLengthMismatch.
//
// # Usage
//
//	sec, err := pdb.Read(data, 0)
//	// ... edit a copy of sec without changing its length ...
//	out, err := pdb.Replace(data, 0, edited)
//
// The functions never modify their input. Container offers the same
// operations over an owned copy when several sections are edited in turn.
package pdb
