package billing

import (
	"fmt"
	"math/rand"
)

// NewReferenceNumber generates a display reference in the SPA's "NNNN-NNNN"
// shape: two random 4-digit groups. Not a uniqueness guarantee, just the
// human-facing number printed on the document.
func NewReferenceNumber() string {
	return fmt.Sprintf("%04d-%04d", 1000+rand.Intn(9000), 1000+rand.Intn(9000))
}
