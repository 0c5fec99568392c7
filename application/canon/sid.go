package canon

import (
	"strconv"
	"strings"
	"unicode"
)

// sidAllocator hands out document-unique statement IDs. The first use of
// a tag gets the tag itself; later uses append an ordinal starting at 2,
// so Sids stay human-readable while never colliding.
type sidAllocator struct {
	used map[string]bool
}

func newSidAllocator() *sidAllocator {
	return &sidAllocator{used: make(map[string]bool)}
}

func (a *sidAllocator) allocate(tag string) string {
	if !a.used[tag] {
		a.used[tag] = true
		return tag
	}
	for n := 2; ; n++ {
		candidate := tag + strconv.Itoa(n)
		if !a.used[candidate] {
			a.used[candidate] = true
			return candidate
		}
	}
}

// pascalize turns a service or access-level token into a Sid fragment:
// "read-only" becomes "ReadOnly", "s3" becomes "S3". Characters outside
// [A-Za-z0-9] split words and are discarded, since Sids must be
// alphanumeric.
func pascalize(token string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range token {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
