package request

// RegisterRequest is the request body for creating an account
type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the request body for signing in
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// AcquireItemRequest is the request body for item acquisition
type AcquireItemRequest struct {
	Name        string `json:"name"`
	Category    int    `json:"category"`
	Risk        int    `json:"risk"`
	AccessLevel int    `json:"access_level"`
	Power       int64  `json:"power"`
	Lore        string `json:"lore,omitempty"`
	Description string `json:"description,omitempty"`
}

// ResolveGuardianRequest is the request body for answering the riddle
type ResolveGuardianRequest struct {
	VaultID int64  `json:"vault_id"`
	Answer  string `json:"answer"`
}

// TheftRequest is the request body for a theft attempt
type TheftRequest struct {
	ItemID   int64 `json:"item_id"`
	TargetID int64 `json:"target_id"`
}

// CastSpellRequest is the request body for casting a tome spell.
// Target is either the literal "guardian" or a decimal player id; the
// variant is decided here at the request boundary. Ciphertext is only
// read by Aperire.
type CastSpellRequest struct {
	Spell      string `json:"spell"`
	Target     string `json:"target,omitempty"`
	Ciphertext string `json:"ciphertext,omitempty"`
}
