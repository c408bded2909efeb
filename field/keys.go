package field

import (
	"reflect"
	"strings"
)

// KeyOf derives the stable key of a struct field: the `form` tag when
// present, otherwise the lowercased field name. A tag of "-" excludes the
// field; the empty string is returned for it.
func KeyOf(sf reflect.StructField) string {
	tag := sf.Tag.Get("form")
	if tag == "-" {
		return ""
	}

	// trim options
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}

	if tag != "" {
		return tag
	}

	return strings.ToLower(sf.Name)
}

// subkind keywords in priority order; first substring match wins.
var subkindKeywords = []struct {
	keyword string
	subkind TextSubkindEnum
}{
	{"email", TextEmail},
	{"url", TextURL},
	{"phone", TextPhone},
	{"twitter", TextHandle},
}

// SubkindForKey scans the lowercased key for the subkind keywords and
// returns the first match, or TextPlain when none applies.
func SubkindForKey(key string) TextSubkindEnum {
	key = strings.ToLower(key)

	for _, kw := range subkindKeywords {
		if strings.Contains(key, kw.keyword) {
			return kw.subkind
		}
	}

	return TextPlain
}
