package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrNameTaken      = errors.New("player name already taken")
	ErrAlreadyMaxRank = errors.New("player is already at the highest rank")
	ErrJailed         = errors.New("player is jailed")

	// Item errors
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidCategory = errors.New("invalid item category")
	ErrInvalidRisk     = errors.New("invalid item risk tier")
	ErrRankTooLow      = errors.New("player rank is below the item risk tier")
	ErrItemNotHeld     = errors.New("target player does not hold the item")

	// Vault errors
	ErrVaultNotFound = errors.New("vault not found")
	ErrVaultDrained  = errors.New("vault has already been reclaimed")

	// Guardian errors
	ErrWrongAnswer = errors.New("riddle answer does not match the secret")

	// Theft errors
	ErrTheftFailed = errors.New("theft attempt failed")
)
