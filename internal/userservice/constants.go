package userservice

const (
	// Error messages for user service operations
	ErrListingUsers    = "error listing users"
	ErrRetrievingUser  = "error retrieving user"
	ErrUserNotFound    = "user not found"
	ErrUserDisabled    = "user is disabled"
	ErrInvalidPassword = "invalid password"
)
