package response

import (
	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/services/auth"
	"github.com/arcanum-game/arcanum/internal/services/spell"
)

// Outcome is the success envelope every operation returns. A fresh
// value is built per request; outcomes are never shared or mutated
// across calls.
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Payload any    `json:"payload,omitempty"`
}

// OK builds a success outcome
func OK(message string, payload any) Outcome {
	return Outcome{Success: true, Message: message, Payload: payload}
}

// AuthPayload is the payload for register/login
type AuthPayload struct {
	PlayerID     int64  `json:"player_id"`
	Name         string `json:"name"`
	SessionToken string `json:"session_token"`
}

// AuthPayloadFromSession builds an AuthPayload from a session
func AuthPayloadFromSession(s *auth.Session) AuthPayload {
	return AuthPayload{
		PlayerID:     int64(s.PlayerID),
		Name:         s.Name,
		SessionToken: s.Token,
	}
}

// Player is a player view with rank and jail rendered as display labels
type Player struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Power      int64   `json:"power"`
	Rank       string  `json:"rank"`
	Jail       string  `json:"jail"`
	Items      []int64 `json:"items"`
	LastItemID *int64  `json:"last_item_id"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	items := make([]int64, len(p.Items))
	for i, id := range p.Items {
		items[i] = int64(id)
	}
	var last *int64
	if p.LastItemID != nil {
		v := int64(*p.LastItemID)
		last = &v
	}
	return Player{
		ID:         int64(p.ID),
		Name:       p.Name,
		Power:      p.Power,
		Rank:       p.Rank.String(),
		Jail:       model.JailLabel(p.Jailed),
		Items:      items,
		LastItemID: last,
	}
}

// Item is an item view with category and risk rendered as display labels
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Risk        string `json:"risk"`
	AccessLevel int    `json:"access_level"`
	Power       int64  `json:"power"`
	Lore        string `json:"lore,omitempty"`
	Description string `json:"description,omitempty"`
}

// ItemFromModel converts a model.Item to a response Item
func ItemFromModel(i *model.Item) Item {
	return Item{
		ID:          int64(i.ID),
		Name:        i.Name,
		Category:    i.Category.String(),
		Risk:        i.Risk.String(),
		AccessLevel: i.AccessLevel,
		Power:       i.Power,
		Lore:        i.Lore,
		Description: i.Description,
	}
}

// AcquirePayload is the payload after a successful acquisition
type AcquirePayload struct {
	ItemID int64 `json:"item_id"`
}

// BanishPayload is the payload after a banishment
type BanishPayload struct {
	VaultID *int64 `json:"vault_id"`
}

// SecretPayload carries the guardian ciphertext
type SecretPayload struct {
	Secret string `json:"secret"`
}

// ReclaimPayload is the payload after a solved riddle
type ReclaimPayload struct {
	Rank       string  `json:"rank"`
	ItemsAdded []int64 `json:"items_added"`
}

// VaultsPayload carries a list of vault ids
type VaultsPayload struct {
	VaultIDs []int64 `json:"vault_ids"`
}

// TheftPayload is the payload after a successful theft
type TheftPayload struct {
	ItemID int64 `json:"item_id"`
}

// SpellPayload is the payload of a spell cast
type SpellPayload struct {
	Secret     string `json:"secret,omitempty"`
	LastItemID *int64 `json:"last_item_id,omitempty"`
	Word       string `json:"word,omitempty"`
}

// SpellPayloadFromResult converts a spell.Result
func SpellPayloadFromResult(r *spell.Result) SpellPayload {
	p := SpellPayload{
		Secret: r.Secret,
		Word:   r.Word,
	}
	if r.LastItemID != nil {
		v := int64(*r.LastItemID)
		p.LastItemID = &v
	}
	return p
}

// VaultIDs converts model vault ids for a payload
func VaultIDs(ids []model.VaultID) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}

// ItemIDs converts model item ids for a payload
func ItemIDs(ids []model.ItemID) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
