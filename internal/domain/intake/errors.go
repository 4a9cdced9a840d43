package intake

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors reports every invalid field of a submission at once,
// mapped to what is wrong with it. It satisfies error so services can
// return it alongside storage failures, which callers must treat
// differently (fix input vs. try again later).
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("invalid submission: ")
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", f, e[f])
	}
	return b.String()
}
