package entity

// AccessState is the administrator-controlled visibility switch on a doctor.
// Every doctor starts out pending and stays invisible to directory listings
// until an administrator approves them.
type AccessState string

const (
	AccessPending  AccessState = "pending"
	AccessApproved AccessState = "approved"
	AccessDenied   AccessState = "denied"
)

// IsApproved checks if the doctor is visible in directory listings
func (s AccessState) IsApproved() bool {
	return s == AccessApproved
}

// IsPending checks if the doctor is still waiting for administrator review
func (s AccessState) IsPending() bool {
	return s == AccessPending
}

// IsDenied checks if the doctor has been denied by an administrator
func (s AccessState) IsDenied() bool {
	return s == AccessDenied
}
