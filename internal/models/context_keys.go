package models

// Keys set on the gin context by the auth middleware.
const (
	ContextKeyUserID = "user_id"
)
