package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanum-game/arcanum/internal/api"
	"github.com/arcanum-game/arcanum/internal/api/response"
	"github.com/arcanum-game/arcanum/internal/factory"
	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
	storage *memory.Storage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// Mocked clock/random keep the riddle seed and theft odds deterministic
	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		AuthService:     app.AuthService,
		RegistryService: app.RegistryService,
		CatalogService:  app.CatalogService,
		VaultService:    app.VaultService,
		CustodyService:  app.CustodyService,
		GuardianService: app.GuardianService,
		TheftService:    app.TheftService,
		SpellService:    app.SpellService,
	})

	return &testServer{
		handler: router,
		app:     app,
		storage: app.Storage.(*memory.Storage),
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// envelope mirrors the outcome wrapper for decoding in tests
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Payload json.RawMessage `json:"payload"`
}

func decodePayload(t *testing.T, rr *httptest.ResponseRecorder, out any) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Payload, out))
	}
	return env
}

// register creates an account and returns its session token and player id
func (ts *testServer) register(t *testing.T, name string) (string, int64) {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/players/register",
		map[string]string{"name": name, "password": "hunter2"}, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var payload response.AuthPayload
	decodePayload(t, rr, &payload)
	return payload.SessionToken, payload.PlayerID
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestRegister(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players/register",
		map[string]string{"name": "merlin", "password": "hunter2"}, "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	var payload response.AuthPayload
	env := decodePayload(t, rr, &payload)
	assert.True(t, env.Success)
	assert.Equal(t, "merlin", payload.Name)
	assert.NotEmpty(t, payload.SessionToken)
}

func TestRegisterValidation(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players/register",
		map[string]string{"password": "hunter2"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegisterDuplicateName(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "merlin")

	rr := ts.request(http.MethodPost, "/api/v1/players/register",
		map[string]string{"name": "merlin", "password": "other"}, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "merlin")

	rr := ts.request(http.MethodPost, "/api/v1/players/login",
		map[string]string{"name": "merlin", "password": "hunter2"}, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/players/login",
		map[string]string{"name": "merlin", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/guardian/secret", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/items", map[string]string{"name": "Grimoire"}, "bogus")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAcquireItem(t *testing.T) {
	ts := newTestServer(t)
	token, playerID := ts.register(t, "merlin")

	rr := ts.request(http.MethodPost, "/api/v1/items", map[string]any{
		"name":     "Grimoire",
		"category": 0,
		"risk":     3,
		"power":    7,
	}, token)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var payload response.AcquirePayload
	decodePayload(t, rr, &payload)
	assert.Equal(t, int64(1), payload.ItemID)

	player, err := ts.storage.GetPlayer(context.Background(), model.PlayerID(playerID))
	require.NoError(t, err)
	assert.Equal(t, []model.ItemID{1}, player.Items)
	assert.Equal(t, int64(7), player.Power)
}

func TestAcquireItemRankTooLowJails(t *testing.T) {
	ts := newTestServer(t)
	token, playerID := ts.register(t, "merlin")

	// A novice reaching for the safest tier is punished
	rr := ts.request(http.MethodPost, "/api/v1/items", map[string]any{
		"name":     "Angel Feather",
		"category": 2,
		"risk":     9,
	}, token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	player, err := ts.storage.GetPlayer(context.Background(), model.PlayerID(playerID))
	require.NoError(t, err)
	assert.True(t, player.Jailed)
	assert.Empty(t, player.Items)

	// Jailed players cannot acquire at all
	rr = ts.request(http.MethodPost, "/api/v1/items", map[string]any{
		"name": "Grimoire", "category": 0, "risk": 3,
	}, token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestItemLookup(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "merlin")

	rr := ts.request(http.MethodPost, "/api/v1/items", map[string]any{
		"name": "Grimoire", "category": 0, "risk": 3,
	}, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/items/1", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var payload response.Item
	decodePayload(t, rr, &payload)
	assert.Equal(t, "Grimoire", payload.Name)
	assert.Equal(t, "Tome", payload.Category)
	assert.Equal(t, "Thrones", payload.Risk)

	rr = ts.request(http.MethodGet, "/api/v1/items/99", nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPlayerLookupGatedByRank(t *testing.T) {
	ts := newTestServer(t)
	token, playerID := ts.register(t, "merlin")
	ts.register(t, "morgana")

	// A novice may not search
	rr := ts.request(http.MethodGet, "/api/v1/players/morgana", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Raise the caller to Supreme and retry
	player, err := ts.storage.GetPlayer(context.Background(), model.PlayerID(playerID))
	require.NoError(t, err)
	player.Rank = model.RankSupreme
	require.NoError(t, ts.storage.SavePlayer(context.Background(), player))

	rr = ts.request(http.MethodGet, "/api/v1/players/morgana", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var payload response.Player
	decodePayload(t, rr, &payload)
	assert.Equal(t, "morgana", payload.Name)
	assert.Equal(t, "Novice", payload.Rank)
	assert.Equal(t, "Free", payload.Jail)
}

func TestBanishAndVaultList(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "merlin")
	_, targetID := ts.register(t, "morgana")

	// Give the target an inventory
	target, err := ts.storage.GetPlayer(context.Background(), model.PlayerID(targetID))
	require.NoError(t, err)
	target.Items = []model.ItemID{4, 5}
	require.NoError(t, ts.storage.SavePlayer(context.Background(), target))

	rr := ts.request(http.MethodPost, "/api/v1/players/2/banish", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var payload response.BanishPayload
	decodePayload(t, rr, &payload)
	require.NotNil(t, payload.VaultID)

	rr = ts.request(http.MethodGet, "/api/v1/vaults", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var vaults response.VaultsPayload
	decodePayload(t, rr, &vaults)
	assert.Equal(t, []int64{*payload.VaultID}, vaults.VaultIDs)
}

func TestGuardianSecretAndResolve(t *testing.T) {
	ts := newTestServer(t)
	token, playerID := ts.register(t, "merlin")

	// Mocked random gives riddle seed 1: "sapientia"
	rr := ts.request(http.MethodGet, "/api/v1/guardian/secret", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var secret response.SecretPayload
	decodePayload(t, rr, &secret)
	assert.Equal(t, "19.1.16.9.5.14.20.9.1", secret.Secret)

	// Seed a vault to reclaim
	v := &model.Vault{ItemIDs: []model.ItemID{7}}
	require.NoError(t, ts.storage.CreateVault(context.Background(), v))

	// A wrong answer changes nothing
	rr = ts.request(http.MethodPost, "/api/v1/guardian/resolve",
		map[string]any{"vault_id": 1, "answer": "veritas"}, token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	player, err := ts.storage.GetPlayer(context.Background(), model.PlayerID(playerID))
	require.NoError(t, err)
	assert.Equal(t, model.RankNovice, player.Rank)

	// The right answer grants Priest and the vault contents
	rr = ts.request(http.MethodPost, "/api/v1/guardian/resolve",
		map[string]any{"vault_id": 1, "answer": "sapientia"}, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var reclaim response.ReclaimPayload
	decodePayload(t, rr, &reclaim)
	assert.Equal(t, "Priest", reclaim.Rank)
	assert.Equal(t, []int64{7}, reclaim.ItemsAdded)

	player, err = ts.storage.GetPlayer(context.Background(), model.PlayerID(playerID))
	require.NoError(t, err)
	assert.Equal(t, model.RankPriest, player.Rank)
	assert.Equal(t, []model.ItemID{7}, player.Items)

	// A second reclaim of the same vault is refused
	rr = ts.request(http.MethodPost, "/api/v1/guardian/resolve",
		map[string]any{"vault_id": 1, "answer": "sapientia"}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestTheftSuccess(t *testing.T) {
	ts := newTestServer(t)
	token, callerID := ts.register(t, "merlin")
	_, targetID := ts.register(t, "morgana")

	target, err := ts.storage.GetPlayer(context.Background(), model.PlayerID(targetID))
	require.NoError(t, err)
	target.Items = []model.ItemID{5}
	require.NoError(t, ts.storage.SavePlayer(context.Background(), target))

	ts.app.MockRandom.QueueChance(true)

	rr := ts.request(http.MethodPost, "/api/v1/theft",
		map[string]any{"item_id": 5, "target_id": targetID}, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	caller, err := ts.storage.GetPlayer(context.Background(), model.PlayerID(callerID))
	require.NoError(t, err)
	assert.Equal(t, []model.ItemID{5}, caller.Items)
}

func TestTheftFailureBanishesThief(t *testing.T) {
	ts := newTestServer(t)
	token, callerID := ts.register(t, "merlin")
	_, targetID := ts.register(t, "morgana")

	// Mocked random defaults to failure
	rr := ts.request(http.MethodPost, "/api/v1/theft",
		map[string]any{"item_id": 5, "target_id": targetID}, token)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	_, err := ts.storage.GetPlayer(context.Background(), model.PlayerID(callerID))
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)
}

func TestCastSpellDivineGuardian(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "merlin")

	rr := ts.request(http.MethodPost, "/api/v1/spells",
		map[string]any{"spell": "Ego coniecto", "target": "guardian"}, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var payload response.SpellPayload
	decodePayload(t, rr, &payload)
	assert.Equal(t, "19.1.16.9.5.14.20.9.1", payload.Secret)
}

func TestCastSpellDivinePlayer(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "merlin")
	targetToken, _ := ts.register(t, "morgana")

	rr := ts.request(http.MethodPost, "/api/v1/items", map[string]any{
		"name": "Grimoire", "category": 0, "risk": 3,
	}, targetToken)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/spells",
		map[string]any{"spell": "Ego coniecto", "target": "2"}, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var payload response.SpellPayload
	decodePayload(t, rr, &payload)
	require.NotNil(t, payload.LastItemID)
	assert.Equal(t, int64(1), *payload.LastItemID)
}

func TestCastSpellOpen(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "merlin")

	rr := ts.request(http.MethodPost, "/api/v1/spells",
		map[string]any{"spell": "Aperire", "ciphertext": "22.5.18.9.20.1.19"}, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var payload response.SpellPayload
	decodePayload(t, rr, &payload)
	assert.Equal(t, "veritas", payload.Word)
}

func TestCastSpellUnknownName(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "merlin")

	rr := ts.request(http.MethodPost, "/api/v1/spells",
		map[string]any{"spell": "Abracadabra"}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
