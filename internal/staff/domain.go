package staff

import "github.com/google/uuid"

// Staff is an employee who can approve payment requests.
type Staff struct {
	ID         uuid.UUID
	Surname    string
	GivenNames string
	Email      string
	IsDeleted  bool
}

// Deleted reports the soft-delete flag.
func (s *Staff) Deleted() bool { return s.IsDeleted }
