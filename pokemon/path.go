package pokemon

import (
	"fmt"
	"strings"
)

var (
	hyphenReplacer = strings.NewReplacer(" ", "-", "_", "-")
	stripReplacer  = strings.NewReplacer(".", "", "'", "", ":", "")
)

// Sanitize turns a name into a sprite filename, e.g. "Mr. Mime" -> "mr-mime".
func Sanitize(name string) string {
	name = strings.TrimSpace(name)
	name = hyphenReplacer.Replace(name)
	name = stripReplacer.Replace(name)

	return strings.TrimSpace(strings.ToLower(name))
}

// Path builds the sprite path for name, relative to a sprite generation.
// Random pokemon don't get the form or the female sprite.
func (a Attributes) Path(name string, random bool) string {
	filename := name
	if a.Form != "" && !random {
		filename = fmt.Sprintf("%s-%s", filename, a.Form)
	}

	kind := "regular"
	if a.Shiny {
		kind = "shiny"
	}

	female := ""
	if a.Female && !random {
		female = "female/"
	}

	return fmt.Sprintf("%s/%s%s.png", kind, female, Sanitize(filename))
}
