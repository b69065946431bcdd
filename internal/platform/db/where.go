package db

import (
	"fmt"
	"strconv"
	"strings"
)

// Where collects AND-ed conditions and numbers their postgres placeholders.
type Where struct {
	conds []string
	args  []any
}

// Add appends a condition. Every %s in format becomes the placeholder of
// the matching arg.
func (w *Where) Add(format string, args ...any) {
	placeholders := make([]any, 0, len(args))
	for _, a := range args {
		w.args = append(w.args, a)
		placeholders = append(placeholders, "$"+strconv.Itoa(len(w.args)))
	}
	w.conds = append(w.conds, fmt.Sprintf(format, placeholders...))
}

// Next returns the placeholder for an argument appended after the conditions,
// such as LIMIT and OFFSET.
func (w *Where) Next(arg any) string {
	w.args = append(w.args, arg)
	return "$" + strconv.Itoa(len(w.args))
}

func (w *Where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func (w *Where) Args() []any {
	return w.args
}
