/*
Package gsheets2dataframe is a bidirectional bridge between Google Sheets and an
in-memory table.

The gsheets package exposes the bridge itself - a facade over a single Google
Sheets document that reads a named worksheet into a table, writes a table into
a worksheet (creating the worksheet if it is missing, initialising it if it is
empty and appending to it if it is populated) and fetches single cells or
columns by spreadsheet-style address.

The table package is the in-memory table - a header row of column names plus
data rows, all values as strings - with TSV import/export for file
interchange.

cmd/gsheets2dataframe is a thin CLI over the bridge:

  - get, to download a worksheet as a TSV file
  - put, to upload a TSV file to a worksheet
  - column, to display the values of a worksheet column
  - cell, to display the value of a single worksheet cell
*/
package gsheets2dataframe
