package shared

// Deletable is implemented by soft-deletable entities. Records are never
// hard-deleted so historical payments keep valid references; the flag keeps
// the property naming consistent across entity kinds for later cleanup.
type Deletable interface {
	Deleted() bool
}

// EnsureMutable rejects mutations against a soft-deleted record.
func EnsureMutable(d Deletable) error {
	if d.Deleted() {
		return ErrRecordDeleted
	}
	return nil
}
