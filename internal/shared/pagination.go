package shared

// Listing bounds for skip/take queries.
const (
	DefaultTake = 20
	MaxTake     = 100
)

// ClampSkipTake normalises skip/take values for paginated listings.
func ClampSkipTake(skip, take int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if take <= 0 {
		take = DefaultTake
	}
	if take > MaxTake {
		take = MaxTake
	}
	return skip, take
}
