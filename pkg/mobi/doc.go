/*
Package mobi stamps an ASIN and the EBOK content type into Kindle ebooks.

Kindle readers treat side-loaded books as personal documents unless their
MOBI headers carry an identifier (EXTH 113 and 504) and the EBOK content
type (EXTH 501). This package adds those records to legacy MOBI, standalone
KF8 (AZW3) and combo files, patching both headers of a combo file.

# Quick Start

Patch a file in place:

	res, err := mobi.FixFile("book.mobi", "", &mobi.FixOptions{Identifier: "B00TEST123"})

Patch into a new file, generating an identifier:

	res, err := mobi.FixFile("book.mobi", "book-fixed.mobi", nil)
	fmt.Println(res.Identifier, res.Combo)

Patch bytes already in memory:

	res, err := mobi.PatchBytes(data, "B00TEST123", nil)
	os.WriteFile("out.mobi", res.Data, 0o644)

# Guarantees

  - The output is exactly as long as the input; no section moves.
  - The input file is only replaced after the complete output has been
    written and synced.
  - Running FixFile twice with the same identifier gives the same file.

# Error Handling

Structural problems are reported with the sentinels in errors.go and can
be matched with errors.Is:

	if errors.Is(err, mobi.ErrFormat) {
	    // not a BOOKMOBI container, or no EXTH block
	}

# Related Packages

  - github.com/joshuapare/mobikit/mobi/pdb: section access
  - github.com/joshuapare/mobikit/mobi/exth: EXTH record editing
  - github.com/joshuapare/mobikit/mobi/dualmeta: the patcher itself
*/
package mobi
