package domain

import "math"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// MaxID is the largest todo or task id; both are int4 serials in storage.
const MaxID = math.MaxInt32

// ListParams is the keyset page shared by every list query. Offset is the
// last primary key already seen by the caller, not a row count.
type ListParams struct {
	Limit  int   `json:"limit" validate:"page_limit"`
	Offset int64 `json:"offset" validate:"gte=0"`
}
