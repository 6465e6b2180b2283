// Package dataset loads training and development records from the
// tab-separated file format: one record per line, fields source, target,
// and a semicolon-delimited tag bundle. Records with the wrong field
// count, an empty field, or a literal '*' in either word are skipped and
// traced at trace.Info. Load opens the named file itself; an unreadable
// path is the caller's concern and surfaces as ErrMalformedPath.
package dataset
