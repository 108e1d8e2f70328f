package cellfmt

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

// Verbs a naive value cannot supply. Date-only values carry no clock, time
// values carry no calendar, and none of them carry a zone.
var (
	zoneVerbs  = []byte{'Z', 'z'}
	clockVerbs = []byte{'H', 'I', 'k', 'l', 'M', 'p', 'R', 'r', 'S', 'T', 'X', 'c'}
	dateVerbs  = []byte{
		'A', 'a', 'B', 'b', 'C', 'c', 'D', 'd', 'e', 'F', 'G', 'g', 'h',
		'j', 'm', 'U', 'u', 'V', 'v', 'W', 'w', 'x', 'Y', 'y',
	}
)

// Specification sets are built once and only read afterwards.
var (
	dateSpecs     = newSpecs(zoneVerbs, clockVerbs)
	dateTimeSpecs = newSpecs(zoneVerbs)
	timeSpecs     = newSpecs(zoneVerbs, dateVerbs)
)

func newSpecs(remove ...[]byte) strftime.SpecificationSet {
	ss := strftime.NewSpecificationSet()
	for _, verbs := range remove {
		for _, b := range verbs {
			if _, err := ss.Lookup(b); err != nil {
				continue
			}
			if err := ss.Delete(b); err != nil {
				panic(fmt.Sprintf("cellfmt: delete verb %%%c: %v", b, err))
			}
		}
	}
	return ss
}

// formatPattern renders t with a strftime pattern restricted to specs.
func formatPattern(t time.Time, pattern string, specs strftime.SpecificationSet) (string, error) {
	s, err := strftime.Format(pattern, t, strftime.WithSpecificationSet(specs))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %s", ErrInvalidPattern, pattern, err)
	}
	return s, nil
}
