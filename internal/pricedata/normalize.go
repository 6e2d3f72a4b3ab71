// Package pricedata loads the static price-per-square-meter reference
// dataset and answers price and price-tier lookups by normalized
// neighborhood name.
package pricedata

import "strings"

// neighborhoodWord is the generic Arabic word for "neighborhood" that
// dataset and catalog names inconsistently carry as a prefix.
const neighborhoodWord = "حي"

var letterFolder = strings.NewReplacer(
	"أ", "ا",
	"إ", "ا",
	"آ", "ا",
	"ى", "ي",
	"ة", "ه",
)

// Normalize folds Arabic letter variants to a canonical form, drops
// the generic "neighborhood" word, collapses whitespace, and
// lowercases. Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(input string) string {
	s := letterFolder.Replace(strings.TrimSpace(input))

	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if f == neighborhoodWord {
			continue
		}
		kept = append(kept, f)
	}

	return strings.ToLower(strings.Join(kept, " "))
}
