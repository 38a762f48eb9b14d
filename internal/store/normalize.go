package store

import "strings"

// replacer maps characters that tend to come in from word processors but
// do not post well: curly quotes, primes, and the replacement character.
var replacer = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"‛", "'", // reversed single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"′", "'", // prime
	"″", `"`, // double prime
	"�", "", // replacement character
)

func normalize(body string) string {
	return replacer.Replace(strings.TrimSpace(body))
}
