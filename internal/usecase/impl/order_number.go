package impl

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const orderNumberPrefix = "ORD"

// newOrderNumber returns ORD-YYYYMMDD-XXXXXXXX with eight random upper-case hex digits.
func newOrderNumber(at time.Time) string {
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])

	return orderNumberPrefix + "-" + at.UTC().Format("20060102") + "-" + random
}
