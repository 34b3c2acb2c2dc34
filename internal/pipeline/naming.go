package pipeline

import (
	"regexp"
	"strings"
)

var (
	unsafeChars  = regexp.MustCompile("[<>:\"/\\\\|?*\\s]")
	repeatedSeps = regexp.MustCompile("_+")
)

// safeFileName makes a paper title usable as a file name: characters that
// are unsafe on common filesystems, and whitespace, become underscores;
// runs of underscores collapse; edge underscores are dropped.
func safeFileName(title string) string {
	name := unsafeChars.ReplaceAllString(title, "_")
	name = repeatedSeps.ReplaceAllString(name, "_")
	return strings.Trim(name, "_")
}
