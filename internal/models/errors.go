package models

import "errors"

// Application-wide standard errors
var (
	// Resource lookups. Репозитории возвращают их вместо pgx.ErrNoRows.
	ErrProfileNotFound  = errors.New("player profile not found")
	ErrItemNotFound     = errors.New("game item not found")
	ErrQuestNotFound    = errors.New("quest not found")
	ErrProgressNotFound = errors.New("quest progress not found")
	ErrLocationNotFound = errors.New("magical location not found")
	ErrReportNotFound   = errors.New("map report not found")
	ErrWandNotFound     = errors.New("wand not found")

	// Conflicts (unique constraints and terminal states).
	ErrQuestAlreadyTaken      = errors.New("quest already accepted or finished by this player")
	ErrQuestAlreadyCompleted  = errors.New("quest progress is already completed")
	ErrDuplicateVerification  = errors.New("verifier has already verified this report")
	ErrReportAlreadyResolved  = errors.New("map report is already resolved")

	// Preconditions and input validation.
	ErrQuestLevelTooLow   = errors.New("player level is below the quest minimum level")
	ErrInvalidStatus      = errors.New("requested status transition is not allowed")
	ErrInvalidCoordinates = errors.New("coordinates are out of range")
	ErrInvalidHouse       = errors.New("unknown house")
	ErrInvalidReportType  = errors.New("unknown map report type")
	ErrInvalidQuantity    = errors.New("quantity must be positive")

	// Token Errors
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")

	// General Request/Server Errors
	ErrForbidden      = errors.New("forbidden")
	ErrInternalServer = errors.New("internal server error")
	ErrBadRequest     = errors.New("bad request")
)
