// Package assets embeds the ASCII art shipped inside the binary.
package assets

import (
	"embed"
	"strings"
)

//go:embed art
var artFS embed.FS

// placeholder stands in for any art file that cannot be loaded, so a
// missing thumbnail degrades to an empty frame instead of a panic.
const placeholder = `.--------.
|        |
|   ??   |
'--------'`

// Banner returns the hero banner art.
func Banner() string {
	return load("art/banner.txt")
}

// Portrait returns the about-section portrait art.
func Portrait() string {
	return load("art/portrait.txt")
}

// Thumbnail returns the art for a named service thumbnail. Unknown
// names get a generic placeholder.
func Thumbnail(name string) string {
	return load("art/thumbs/" + name + ".txt")
}

func load(path string) string {
	b, err := artFS.ReadFile(path)
	if err != nil {
		return placeholder
	}
	return strings.TrimRight(string(b), "\n")
}
