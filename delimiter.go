package csv2web

import "github.com/alnah/go-csv2web/internal/fileutil"

// Delimiters.
const (
	Comma = ','
	Tab   = '\t'
)

// ResolveDelimiter picks the column delimiter for an input file.
//
// csv selects a comma and tsv a tab. auto compares the last three
// characters of inputPath with "tsv" (case-sensitive): a match selects a tab,
// anything else, including paths shorter than three characters, a comma.
// Unknown data types resolve like auto.
func ResolveDelimiter(dataType DataType, inputPath string) rune {
	switch dataType {
	case DataTypeCSV:
		return Comma
	case DataTypeTSV:
		return Tab
	}
	if fileutil.Suffix(inputPath, 3) == "tsv" {
		return Tab
	}
	return Comma
}
