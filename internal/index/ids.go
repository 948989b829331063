package index

import (
	"regexp"

	"github.com/heartmarshall/verbnet-reader/internal/domain"
)

// longIDRe matches (and decomposes) long ids such as "confess-37.10" or
// "put-9.1-1": a lemma without dots or dashes, then the numeric part.
var longIDRe = regexp.MustCompile(`^([^\-.]+)-([\d+.\-]+)$`)

// IsShortID reports whether id is a short id such as "37.10" or "9.1-1".
func IsShortID(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case c >= '0' && c <= '9', c == '.', c == '-', c == '+':
		default:
			return false
		}
	}
	return true
}

// IsLongID reports whether id is a long id such as "confess-37.10".
func IsLongID(id string) bool {
	return longIDRe.MatchString(id)
}

// ShortID maps a long id to its short form ("confess-37.10" -> "37.10").
// Short ids are returned as-is.
func ShortID(id string) (string, error) {
	if IsShortID(id) {
		return id, nil
	}
	if m := longIDRe.FindStringSubmatch(id); m != nil {
		return m[2], nil
	}
	return "", domain.NewIdentifierError(id)
}

// LongID maps a short id to the long id recorded in the index
// ("37.10" -> "confess-37.10"). Long ids are returned as-is, whether or not
// the index knows them.
func (x *Index) LongID(id string) (string, error) {
	if IsLongID(id) {
		return id, nil
	}
	if !IsShortID(id) {
		return "", domain.NewIdentifierError(id)
	}
	long, ok := x.shortToLong[id]
	if !ok {
		return "", domain.NewIdentifierError(id)
	}
	return long, nil
}
