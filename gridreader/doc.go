// Package gridreader lays flat messages out as rectangular trigram grids and
// reads them back in different traversal orders.
//
// What:
//
//   - Every message is a grid of rows RowWidth trigrams wide; the final row
//     may be shorter (ragged), every other row is full.
//   - RowMajor, RowMajorReversed and ColumnMajor turn the grids back into a
//     trigram.Corpus, one line per message.
//   - ParseRecord / ReadCSV turn the external record format (two ignored
//     leading fields, then digits three at a time) into messages.
//
// Column reading:
//
//	ColumnMajor(leftToRight, oddColumnDown, evenColumnDown) walks columns in
//	the given horizontal direction. Column index 0, 2, 4, ... (the 1st, 3rd,
//	... column) is read top-to-bottom when oddColumnDown is set; the other
//	columns follow evenColumnDown. A column includes the final row only if
//	that row reaches it.
//
// Options:
//
//   - Options.MessageCount: expected number of messages (0 = any).
//   - Options.RowWidth:     trigrams per full row.
//
// Errors:
//
//   - ErrMessageCount: the corpus does not hold MessageCount messages.
//   - ErrLineShape:    an explicit row is empty, too wide, or short but not last.
//   - ErrRowWidth:     RowWidth < 1.
//
// Complexity: every traversal is O(total trigrams) time and memory.
package gridreader
