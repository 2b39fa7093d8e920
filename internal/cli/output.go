package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthResult:
		o.printAuthResult(v)
	case Mage:
		o.printMage(v)
	case Artifact:
		o.printArtifact(v)
	case AcquireResult:
		o.printAcquireResult(v)
	case BanishResult:
		o.printBanishResult(v)
	case SecretResult:
		o.printSecretResult(v)
	case ReclaimResult:
		o.printReclaimResult(v)
	case VaultsResult:
		o.printVaultsResult(v)
	case TheftResult:
		o.printTheftResult(v)
	case SpellResult:
		o.printSpellResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// AuthResult response type (matches API auth payload)
type AuthResult struct {
	PlayerID     int64  `json:"player_id"`
	Name         string `json:"name"`
	SessionToken string `json:"session_token"`
}

// Mage response type
type Mage struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Power      int64   `json:"power"`
	Rank       string  `json:"rank"`
	Jail       string  `json:"jail"`
	Items      []int64 `json:"items"`
	LastItemID *int64  `json:"last_item_id"`
}

// Artifact response type
type Artifact struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Risk        string `json:"risk"`
	AccessLevel int    `json:"access_level"`
	Power       int64  `json:"power"`
	Lore        string `json:"lore,omitempty"`
	Description string `json:"description,omitempty"`
}

// AcquireResult response type
type AcquireResult struct {
	ItemID int64 `json:"item_id"`
}

// BanishResult response type
type BanishResult struct {
	VaultID *int64 `json:"vault_id"`
}

// SecretResult response type
type SecretResult struct {
	Secret string `json:"secret"`
}

// ReclaimResult response type
type ReclaimResult struct {
	Rank       string  `json:"rank"`
	ItemsAdded []int64 `json:"items_added"`
}

// VaultsResult response type
type VaultsResult struct {
	VaultIDs []int64 `json:"vault_ids"`
}

// TheftResult response type
type TheftResult struct {
	ItemID int64 `json:"item_id"`
}

// SpellResult response type
type SpellResult struct {
	Secret     string `json:"secret,omitempty"`
	LastItemID *int64 `json:"last_item_id,omitempty"`
	Word       string `json:"word,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("Mage: %s (%d)\n", a.Name, a.PlayerID)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printMage(m Mage) {
	fmt.Printf("Mage: %s (%d)\n", m.Name, m.ID)
	fmt.Printf("Rank: %s\n", m.Rank)
	fmt.Printf("Power: %d\n", m.Power)
	fmt.Printf("Status: %s\n", m.Jail)
	if len(m.Items) > 0 {
		strs := make([]string, len(m.Items))
		for i, id := range m.Items {
			strs[i] = fmt.Sprintf("%d", id)
		}
		fmt.Printf("Items: %s\n", strings.Join(strs, ", "))
	}
	if m.LastItemID != nil {
		fmt.Printf("Last Item: %d\n", *m.LastItemID)
	}
}

func (o *Output) printArtifact(a Artifact) {
	fmt.Printf("Item: %s (%d)\n", a.Name, a.ID)
	fmt.Printf("Category: %s\n", a.Category)
	fmt.Printf("Risk: %s\n", a.Risk)
	fmt.Printf("Power: %d\n", a.Power)
	if a.Lore != "" {
		fmt.Printf("Lore: %s\n", a.Lore)
	}
	if a.Description != "" {
		fmt.Printf("Description: %s\n", a.Description)
	}
}

func (o *Output) printAcquireResult(a AcquireResult) {
	fmt.Printf("Acquired item %d\n", a.ItemID)
}

func (o *Output) printBanishResult(b BanishResult) {
	fmt.Println("Mage banished")
	if b.VaultID != nil {
		fmt.Printf("Items sealed in vault %d\n", *b.VaultID)
	}
}

func (o *Output) printSecretResult(s SecretResult) {
	fmt.Printf("Secret: %s\n", s.Secret)
}

func (o *Output) printReclaimResult(r ReclaimResult) {
	fmt.Printf("Rank: %s\n", r.Rank)
	if len(r.ItemsAdded) > 0 {
		strs := make([]string, len(r.ItemsAdded))
		for i, id := range r.ItemsAdded {
			strs[i] = fmt.Sprintf("%d", id)
		}
		fmt.Printf("Items reclaimed: %s\n", strings.Join(strs, ", "))
	} else {
		fmt.Println("No items reclaimed")
	}
}

func (o *Output) printVaultsResult(v VaultsResult) {
	fmt.Printf("Vaults (%d):\n", len(v.VaultIDs))
	for _, id := range v.VaultIDs {
		fmt.Printf("  - %d\n", id)
	}
}

func (o *Output) printTheftResult(t TheftResult) {
	fmt.Printf("Stole item %d\n", t.ItemID)
}

func (o *Output) printSpellResult(s SpellResult) {
	if s.Secret != "" {
		fmt.Printf("Secret: %s\n", s.Secret)
	}
	if s.LastItemID != nil {
		fmt.Printf("Last Item: %d\n", *s.LastItemID)
	}
	if s.Word != "" {
		fmt.Printf("Word: %s\n", s.Word)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
