package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"example.com/admin-console/internal/config"
	domadmin "example.com/admin-console/internal/domain/admin"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func fakeStoreAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[
			{"_id":"a1","name":"Masala Tea","price":25,"stock":0},
			{"_id":"a2","name":"Green Tea","price":"30","stock":4},
			{"_id":"a3","name":"Coffee","price":40,"stock":12}
		]`)
	})
	mux.HandleFunc("GET /api/orders/all", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[
			{"_id":"o1","status":"Delivered","total":10},
			{"_id":"o2","status":"Pending","total":20}
		]`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func setStoreEnv(t *testing.T, apiURL string) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("API_BASE_URL", apiURL+"/")
	t.Setenv("ADMIN_STORE", "memory")
}

func TestHashPassword_ArgumentProducesVerifiableHash(t *testing.T) {
	out, err := runCmd(t, "", "hash-password", "--cost", "4", "correct-horse")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("correct-horse")))
}

func TestHashPassword_ReadsStdin(t *testing.T) {
	out, err := runCmd(t, "from-stdin-pass\n", "hash-password", "--cost", "4")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("from-stdin-pass")))
}

func TestHashPassword_ShortPasswordFails(t *testing.T) {
	_, err := runCmd(t, "", "hash-password", "short")
	require.Error(t, err)
}

func TestProductsCmd_PrintsFilteredItemsWithCounts(t *testing.T) {
	srv := fakeStoreAPI(t)
	setStoreEnv(t, srv.URL)

	out, err := runCmd(t, "", "products", "--search", "tea")
	require.NoError(t, err)

	var body struct {
		Data   []map[string]any `json:"data"`
		Counts map[string]int   `json:"counts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	require.Len(t, body.Data, 2)
	require.Equal(t, "Masala Tea", body.Data[0]["Name"])
	require.Equal(t, 3, body.Counts["all"])
	require.Equal(t, 1, body.Counts["out_of_stock"])
	require.Equal(t, 1, body.Counts["limited"])
	require.Equal(t, 1, body.Counts["other"])
}

func TestOrdersCmd_PendingOnly(t *testing.T) {
	srv := fakeStoreAPI(t)
	setStoreEnv(t, srv.URL)

	out, err := runCmd(t, "", "orders", "--pending")
	require.NoError(t, err)

	var body struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, "Pending", body.Data[0]["Status"])
}

func TestProductsCmd_RunsWithoutJWTSecret(t *testing.T) {
	srv := fakeStoreAPI(t)
	setStoreEnv(t, srv.URL)
	t.Setenv("JWT_SECRET", "")

	out, err := runCmd(t, "", "products")
	require.NoError(t, err)
	require.Contains(t, out, "Masala Tea")
}

func TestServeCmd_MissingSecretFails(t *testing.T) {
	srv := fakeStoreAPI(t)
	setStoreEnv(t, srv.URL)
	t.Setenv("JWT_SECRET", "")

	_, err := runCmd(t, "", "serve", "--port", "0")
	require.ErrorIs(t, err, config.ErrMissingSecret)
}

func TestOpenAdminStore_MemorySeedsConfiguredAdmin(t *testing.T) {
	cfg := config.Default()
	cfg.AdminUsername = "ops"
	cfg.AdminPasswordHash = "$2a$04$hash"

	store, closeStore, err := openAdminStore(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer closeStore()

	a, err := store.GetByUsername(context.Background(), "ops")
	require.NoError(t, err)
	require.Equal(t, domadmin.RoleCodeSuperAdmin, a.RoleCode)
	require.Equal(t, "$2a$04$hash", a.PasswordHash)
}

func TestOpenAdminStore_MemoryWithoutAccountRejectsLogin(t *testing.T) {
	store, closeStore, err := openAdminStore(context.Background(), config.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer closeStore()

	_, err = store.GetByUsername(context.Background(), "ops")
	require.ErrorIs(t, err, domadmin.ErrAdminNotFound)
}
