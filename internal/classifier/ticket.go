package classifier

import (
	"fmt"
	"math/rand"
	"time"
)

// TicketPrefix is the fixed prefix for citizen-facing ticket numbers.
const TicketPrefix = "GR"

// NewTicketNumber produces a ticket number of the form GRYYMMNNNN: prefix,
// two-digit year and month of issuance, and a four-digit random suffix.
// The suffix alone does not guarantee uniqueness; the service checks the
// store and retries on collision.
func NewTicketNumber() string {
	now := time.Now()
	return fmt.Sprintf("%s%02d%02d%04d", TicketPrefix, now.Year()%100, int(now.Month()), rand.Intn(10000))
}
