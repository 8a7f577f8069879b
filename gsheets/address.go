package gsheets

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	column = regexp.MustCompile(`^[A-Z]+$`)
	cell   = regexp.MustCompile(`^[A-Z]+[1-9][0-9]*$`)
)

// ColumnIndex converts a spreadsheet column letter to its 1-based column
// number - "A" is 1, "Z" is 26, "AA" is 27. Column letters are bijective
// base-26: there is no zero digit, so the running total is just
// total*26 + letter value.
//
// Returns ErrInvalidAddress for anything other than a non-empty string of
// uppercase letters A-Z.
func ColumnIndex(letters string) (int, error) {
	if !column.MatchString(letters) {
		return 0, fmt.Errorf("%w: invalid column letters '%s'", ErrInvalidAddress, letters)
	}

	index := 0
	for _, ch := range letters {
		index = index*26 + int(ch-'A') + 1
	}

	return index, nil
}

// ColumnLetter is the inverse of ColumnIndex - 1 is "A", 26 is "Z", 27 is
// "AA".
func ColumnLetter(index int) (string, error) {
	if index < 1 {
		return "", fmt.Errorf("%w: invalid column index %d", ErrInvalidAddress, index)
	}

	letters := []byte{}
	for index > 0 {
		index--
		letters = append([]byte{byte('A' + index%26)}, letters...)
		index /= 26
	}

	return string(letters), nil
}

// rangeRef builds an A1-notation range reference for a worksheet, quoting the
// worksheet title. An empty ref addresses the whole worksheet.
func rangeRef(worksheet, ref string) string {
	quoted := fmt.Sprintf("'%s'", strings.ReplaceAll(worksheet, "'", "''"))
	if ref == "" {
		return quoted
	}

	return fmt.Sprintf("%s!%s", quoted, ref)
}
