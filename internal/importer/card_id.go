package importer

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n")))
}

// CardID derives a stable id from the deck and the content of a note, so
// importing the same file again finds the cards it created before.
func CardID(deck string, n Note) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{
		normalize(deck), normalize(n.Question), normalize(n.Answer), normalize(n.Context),
	}, "\x00")))
	return hex.EncodeToString(sum[:])
}
