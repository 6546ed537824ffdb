package domain

// Event categories (closed set).
const (
	CategoryWork  = "work"
	CategoryFun   = "fun"
	CategoryOther = "other"
)

// Event kinds. Echo events are generated follow-ups linked back to a
// parent event; regular events are everything else.
const (
	KindRegular = "regular"
	KindEcho    = "echo"
)

// ValidCategory reports whether c is one of the known event categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryWork, CategoryFun, CategoryOther:
		return true
	}
	return false
}
