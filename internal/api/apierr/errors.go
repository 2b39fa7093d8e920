package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/services/auth"
	"github.com/arcanum-game/arcanum/internal/services/cipher"
	"github.com/arcanum-game/arcanum/internal/services/spell"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the failure outcome envelope. Raw internal errors
// never reach the message field; every internal failure carries the
// same fixed text.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNameTaken          = "NAME_TAKEN"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeItemNotFound       = "ITEM_NOT_FOUND"
	CodeVaultNotFound      = "VAULT_NOT_FOUND"
	CodeVaultDrained       = "VAULT_DRAINED"
	CodeRankTooLow         = "RANK_TOO_LOW"
	CodeJailed             = "JAILED"
	CodeAlreadyMaxRank     = "ALREADY_MAX_RANK"
	CodeWrongAnswer        = "WRONG_ANSWER"
	CodeTheftFailed        = "THEFT_FAILED"
	CodeItemNotHeld        = "ITEM_NOT_HELD"
	CodeUnknownSpell       = "UNKNOWN_SPELL"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error outcome to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Success: false, Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Not found
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrItemNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeItemNotFound, "Item not found"}}
	case errors.Is(err, model.ErrVaultNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeVaultNotFound, "Vault not found"}}

	// Conflict
	case errors.Is(err, model.ErrNameTaken):
		return &httpError{http.StatusConflict, APIError{CodeNameTaken, "That name is already taken"}}
	case errors.Is(err, model.ErrAlreadyMaxRank):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyMaxRank, "Player is already at the highest rank"}}
	case errors.Is(err, model.ErrVaultDrained):
		return &httpError{http.StatusConflict, APIError{CodeVaultDrained, "Vault has already been reclaimed"}}

	// Unauthorized
	case errors.Is(err, model.ErrRankTooLow):
		return &httpError{http.StatusUnauthorized, APIError{CodeRankTooLow, "Rank too low for this item's risk tier; you have been jailed"}}
	case errors.Is(err, model.ErrJailed):
		return &httpError{http.StatusUnauthorized, APIError{CodeJailed, "Player is jailed"}}
	case errors.Is(err, model.ErrWrongAnswer):
		return &httpError{http.StatusUnauthorized, APIError{CodeWrongAnswer, "Wrong answer, verify and try again"}}

	// Forbidden
	case errors.Is(err, model.ErrTheftFailed):
		return &httpError{http.StatusForbidden, APIError{CodeTheftFailed, "The theft failed; you have been banished"}}
	case errors.Is(err, model.ErrItemNotHeld):
		return &httpError{http.StatusConflict, APIError{CodeItemNotHeld, "Target does not hold that item"}}

	// Validation
	case errors.Is(err, model.ErrInvalidCategory):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Category must be 0 (Tome), 1 (Armament) or 2 (Relic)"}}
	case errors.Is(err, model.ErrInvalidRisk):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Risk must be between 0 (Deity) and 9 (Angel)"}}
	case errors.Is(err, spell.ErrUnknownSpell):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownSpell, "Spell name must be 'Ego coniecto' or 'Aperire'"}}
	case errors.Is(err, cipher.ErrInvalidToken):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Ciphertext must be dot-separated letter positions"}}

	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid name or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInsufficientLevelError creates the error for callers below the
// rank required by an operation
func NewInsufficientLevelError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Caller rank is not high enough for this lookup"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
