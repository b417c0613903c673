package filesystem

import (
	"os"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Entry types, in listing order.
const (
	TypeDirectory = "directory"
	TypeFile      = "file"
	TypeLink      = "link"
	TypeOther     = "other"
)

// Entry is one row of an ls listing.
type Entry struct {
	Name string
	Type string
}

// Classify returns the listing type for info. Symlinks are not followed.
func Classify(info os.FileInfo) string {
	mode := info.Mode()
	switch {
	case mode&os.ModeSymlink != 0:
		return TypeLink
	case mode.IsDir():
		return TypeDirectory
	case mode.IsRegular():
		return TypeFile
	default:
		return TypeOther
	}
}

// NewCollator returns a collator for the BCP-47 locale tag.
// An empty tag returns nil, which means ordinal comparison.
func NewCollator(locale string) *collate.Collator {
	if locale == "" {
		return nil
	}
	return collate.New(language.Make(locale))
}

// SortEntries sorts entries ascending by type, then by name.
// Names are compared with c, or ordinally when c is nil.
func SortEntries(entries []Entry, c *collate.Collator) {
	compareNames := strings.Compare
	if c != nil {
		compareNames = c.CompareString
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Type != entries[j].Type {
			return entries[i].Type < entries[j].Type
		}
		return compareNames(entries[i].Name, entries[j].Name) < 0
	})
}

// BuildListing classifies and sorts infos.
func BuildListing(infos []os.FileInfo, c *collate.Collator) []Entry {
	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, Entry{Name: info.Name(), Type: Classify(info)})
	}
	SortEntries(entries, c)
	return entries
}
