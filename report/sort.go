package report

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SurnameKey returns the last whitespace separated token of name.
func SurnameKey(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// SortEmployees orders employees by surname key using the collation rules of
// tag. Equal keys keep their input order.
func SortEmployees(employees []Employee, tag language.Tag) {
	collator := collate.New(tag)
	sort.SliceStable(employees, func(i, j int) bool {
		return collator.CompareString(SurnameKey(employees[i].Name), SurnameKey(employees[j].Name)) < 0
	})
}
