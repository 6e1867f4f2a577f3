// Package render turns analysis results into text: printable characters,
// frequency tables, UTF-16 decoded bytes and CSV-ready number rows.
package render
