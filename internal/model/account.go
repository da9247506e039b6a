package model

import "strings"

// Account is a hierarchical account name, root segment first.
// "Expenses:Food:Groceries" -> {"Expenses", "Food", "Groceries"}
type Account []string

// String joins the segments with ':'.
func (a Account) String() string {
	return strings.Join(a, ":")
}
