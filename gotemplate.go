package cellfmt

import (
	"fmt"
	"io"
	"text/template"
)

// writeGoTemplate executes tmplStr once per row. The row is a map from
// header to cell text, so {{.Name}} and {{index . "Due date"}} both work.
func writeGoTemplate(w io.Writer, tmplStr string, s *Sheet) error {
	tmpl, err := template.New("").Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, rec := range s.records() {
		if err := tmpl.Execute(w, rec.asMap()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
