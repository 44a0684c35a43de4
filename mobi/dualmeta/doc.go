// Package dualmeta stamps an identifier and the EBOK content type into the
// MOBI headers of a Kindle container.
//
// Section 0 always holds a header. Legacy and combo files (version other
// than 8) may carry a second, KF8 header whose section index is stored in
// EXTH 121; when that record is present and not 0xFFFFFFFF the second
// header is patched too. In each header the patcher deletes the first EXTH
// 501, 113 and 504 record, then adds 113 and 504 with the identifier and 501
// with the marker. Re-running it with the same identifier yields the same
// managed records.
//
// A Session reads headers with pdb.Read and writes them back with
// pdb.Replace, which returns a fresh buffer each time. It either returns a
// fully patched buffer or an error; the caller's bytes are never modified.
//
//	res, err := dualmeta.Patch(data, "B00TEST123", nil)
//	if err != nil {
//	    return err
//	}
//	if res.Combo {
//	    // res.KF8Section is where a splitter should cut.
//	}
package dualmeta
