package parse

import (
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("pars.parse")

// Traced logs each attempt of p under the given rule name at debug level:
// the location tried, then the matched text or the failure. Results pass
// through unchanged, so wrapping a rule never alters what it parses.
func Traced[A any](name string, p Parser[A]) Parser[A] {
	return func(loc Location) (A, Location, *Error) {
		log.Debugf("%s: attempt at %s", name, loc)
		a, next, err := p(loc)
		if err != nil {
			log.Debugf("%s: %s", name, err)
			return a, loc, err
		}
		log.Debugf("%s: matched %q", name, loc.Between(next))
		return a, next, nil
	}
}
