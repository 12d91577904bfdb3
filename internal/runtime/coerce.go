package runtime

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/inquire/pkg/domain"
)

var (
	truthyReply = regexp.MustCompile(`^(true|y(es)?)$`)
	falsyReply  = regexp.MustCompile(`^(false|n(o)?)$`)
)

// Coerce maps a raw reply onto a typed value.
// It returns nil for a blank reply, a bool for yes/no tokens, a float64 when
// the reply is exactly the canonical form of a number, and the untrimmed
// reply otherwise. It never looks at the question being answered.
func Coerce(reply string) any {
	switch {
	case strings.TrimSpace(reply) == "":
		return nil
	case truthyReply.MatchString(reply):
		return true
	case falsyReply.MatchString(reply):
		return false
	}

	if n, ok := parseNumber(reply); ok {
		return n
	}
	return reply
}

// parseNumber accepts only replies that round-trip through FormatNumber,
// so "7" is a number while "007", "7.0" and " 7" stay strings.
func parseNumber(reply string) (float64, bool) {
	var (
		n   float64
		err error
	)
	switch reply {
	case "Infinity":
		n, err = strconv.ParseFloat("+Inf", 64)
	case "-Infinity":
		n, err = strconv.ParseFloat("-Inf", 64)
	default:
		n, err = strconv.ParseFloat(reply, 64)
	}
	if err != nil {
		return 0, false
	}
	return n, domain.FormatNumber(n) == reply
}
