// Package xyio reads and writes patterns as text columns and as structured
// record files.
//
// Column formats are chosen by file extension:
//
//	.chi          four header lines (path, x unit, blank, point count), then x y
//	.fxye         GSAS FXYE: header, then x*100, y and sqrt(|y|) (write only)
//	anything else whitespace separated x y columns, lines starting with # ignored
//
// Record files (.json, .yaml, .yml) hold a [pattern.Record].
package xyio
