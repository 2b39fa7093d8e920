package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanum-game/arcanum/internal/api"
	"github.com/arcanum-game/arcanum/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "arcanum-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/arcanum")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithToken(token string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token", token,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

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

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing

type authResponse struct {
	PlayerID     int64  `json:"player_id"`
	Name         string `json:"name"`
	SessionToken string `json:"session_token"`
}

type acquireResponse struct {
	ItemID int64 `json:"item_id"`
}

type itemResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Risk     string `json:"risk"`
}

type banishResponse struct {
	VaultID *int64 `json:"vault_id"`
}

type vaultsResponse struct {
	VaultIDs []int64 `json:"vault_ids"`
}

type secretResponse struct {
	Secret string `json:"secret"`
}

type spellResponse struct {
	Secret string `json:"secret"`
	Word   string `json:"word"`
}

type reclaimResponse struct {
	Rank       string  `json:"rank"`
	ItemsAdded []int64 `json:"items_added"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_RegisterAndLogin(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("player", "register", "--name", "merlin", "--pass", "hunter2")
	require.NoError(t, err, "output: %s", output)

	var registered authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &registered))
	assert.Equal(t, "merlin", registered.Name)
	assert.NotEmpty(t, registered.SessionToken)

	output, err = cli.run("player", "login", "--name", "merlin", "--pass", "hunter2")
	require.NoError(t, err, "output: %s", output)

	var loggedIn authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &loggedIn))
	assert.Equal(t, registered.PlayerID, loggedIn.PlayerID)
}

func TestCLI_ItemCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("player", "register", "--name", "merlin", "--pass", "hunter2")
	require.NoError(t, err, "output: %s", output)

	// A novice can take a Thrones-tier item
	output, err = cli.run("item", "acquire", "--name", "Grimoire", "--category", "0", "--risk", "3", "--power", "7")
	require.NoError(t, err, "output: %s", output)

	var acquired acquireResponse
	require.NoError(t, json.Unmarshal([]byte(output), &acquired))
	assert.Equal(t, int64(1), acquired.ItemID)

	output, err = cli.run("item", "lookup", "1")
	require.NoError(t, err, "output: %s", output)

	var item itemResponse
	require.NoError(t, json.Unmarshal([]byte(output), &item))
	assert.Equal(t, "Grimoire", item.Name)
	assert.Equal(t, "Tome", item.Category)
	assert.Equal(t, "Thrones", item.Risk)
}

func TestCLI_GuardianFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// A mage with an item, then banished, seeds a vault
	output, err := cli.run("player", "register", "--name", "morgana", "--pass", "hunter2")
	require.NoError(t, err, "output: %s", output)

	var banishedMage authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &banishedMage))

	output, err = cli.run("item", "acquire", "--name", "Grimoire", "--category", "0", "--risk", "3")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("player", "register", "--name", "merlin", "--pass", "hunter2")
	require.NoError(t, err, "output: %s", output)

	var claimant authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &claimant))
	token := claimant.SessionToken

	output, err = cli.runWithToken(token, "player", "banish", banishedID(t, banishedMage))
	require.NoError(t, err, "output: %s", output)

	var banished banishResponse
	require.NoError(t, json.Unmarshal([]byte(output), &banished))
	require.NotNil(t, banished.VaultID)

	output, err = cli.runWithToken(token, "vault", "list")
	require.NoError(t, err, "output: %s", output)

	var vaults vaultsResponse
	require.NoError(t, json.Unmarshal([]byte(output), &vaults))
	assert.Equal(t, []int64{*banished.VaultID}, vaults.VaultIDs)

	// Fetch the secret, decode it with Aperire, answer the riddle
	output, err = cli.runWithToken(token, "guardian", "secret")
	require.NoError(t, err, "output: %s", output)

	var secret secretResponse
	require.NoError(t, json.Unmarshal([]byte(output), &secret))
	require.NotEmpty(t, secret.Secret)

	output, err = cli.runWithToken(token, "spell", "open", secret.Secret)
	require.NoError(t, err, "output: %s", output)

	var opened spellResponse
	require.NoError(t, json.Unmarshal([]byte(output), &opened))
	require.NotEmpty(t, opened.Word)

	output, err = cli.runWithToken(token, "guardian", "resolve",
		"--vault", formatID(*banished.VaultID), "--answer", opened.Word)
	require.NoError(t, err, "output: %s", output)

	var reclaimed reclaimResponse
	require.NoError(t, json.Unmarshal([]byte(output), &reclaimed))
	assert.Equal(t, "Priest", reclaimed.Rank)
	assert.Len(t, reclaimed.ItemsAdded, 1)
}

func TestCLI_SpellDivineGuardian(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("player", "register", "--name", "merlin", "--pass", "hunter2")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("spell", "divine", "--target", "guardian")
	require.NoError(t, err, "output: %s", output)

	var resp spellResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.NotEmpty(t, resp.Secret)
}

func banishedID(t *testing.T, a authResponse) string {
	t.Helper()
	return formatID(a.PlayerID)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
