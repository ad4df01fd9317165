package builder

import (
	"fmt"
	"strconv"
)

// NameFn names the idx-th node created by an indexed constructor.
type NameFn func(idx int) string

// DefaultNameFn renders idx in decimal ("0","1",...).
func DefaultNameFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnNameFn renders idx as a spreadsheet column ("A".."Z","AA",...).
// Panics on negative idx.
func ExcelColumnNameFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnNameFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// LabelNameFn returns a NameFn producing label+idx ("soil 0", "soil 1", ...).
func LabelNameFn(label string) NameFn {
	return func(idx int) string {
		return label + strconv.Itoa(idx)
	}
}

// WithLabeledNames is WithNameScheme(LabelNameFn(label)).
func WithLabeledNames(label string) BuilderOption {
	return WithNameScheme(LabelNameFn(label))
}

// WithExcelColumnNames is WithNameScheme(ExcelColumnNameFn).
func WithExcelColumnNames() BuilderOption {
	return WithNameScheme(ExcelColumnNameFn)
}
