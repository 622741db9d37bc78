package e2e_tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lane_wars/domain"
	auth "lane_wars/internal/auth/controller"
	authRepository "lane_wars/internal/auth/repository"
	authUsecase "lane_wars/internal/auth/usecase"
	"lane_wars/internal/service/dsn"
	"lane_wars/internal/service/logger"
	"lane_wars/internal/service/middleware"
)

func setupTestDB(t *testing.T) *gorm.DB {
	_ = godotenv.Load("../../../.env")
	if os.Getenv("DB_HOST_TEST") == "" {
		t.Skip("DB_HOST_TEST not set, skipping e2e test")
	}

	db, err := gorm.Open(postgres.Open(dsn.FromEnvE2E()), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	t.Cleanup(func() {
		assert.NoError(t, db.Migrator().DropTable(&domain.User{}))
	})
	return db
}

func setupLoggers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, logger.InitLoggers(filepath.Join(dir, "access.log"), filepath.Join(dir, "db.log")))
	t.Cleanup(func() { _ = logger.SyncLoggers() })
}

func newServer(t *testing.T, db *gorm.DB, jwtToken middleware.JwtTokenService) *httptest.Server {
	authRepo := authRepository.NewAuthRepository(db)
	authUC := authUsecase.NewAuthUsecase(authRepo)
	authHandler := auth.NewAuthHandler(authUC, jwtToken, 7*24*time.Hour)

	router := mux.NewRouter()
	router.HandleFunc("/auth/registrar", authHandler.RegisterUser).Methods("POST")
	router.HandleFunc("/auth/login", authHandler.LoginUser).Methods("POST")

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body interface{}) (*http.Response, map[string]interface{}) {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	return resp, response
}

func TestRegisterAndLoginE2E(t *testing.T) {
	db := setupTestDB(t)
	setupLoggers(t)
	jwtToken, err := middleware.NewJwtToken("secret-key")
	require.NoError(t, err)
	server := newServer(t, db, jwtToken)

	resp, body := postJSON(t, server.URL+"/auth/registrar", domain.RegisterRequest{
		Nome: "Ana", Email: "ana@example.com", Senha: "segredo",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "ana@example.com", body["email"])
	assert.NotContains(t, body, "senha_hash")

	resp, body = postJSON(t, server.URL+"/auth/login", domain.LoginRequest{Email: "ana@example.com", Senha: "segredo"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	token, exists := body["token"]
	require.True(t, exists)
	claims, err := jwtToken.Validate(token.(string))
	require.NoError(t, err)
	assert.Equal(t, int64(body["usuario"].(map[string]interface{})["id"].(float64)), claims.UserID)
}

func TestLoginFailuresE2E(t *testing.T) {
	db := setupTestDB(t)
	setupLoggers(t)
	jwtToken, err := middleware.NewJwtToken("secret-key")
	require.NoError(t, err)
	server := newServer(t, db, jwtToken)

	resp, _ := postJSON(t, server.URL+"/auth/registrar", domain.RegisterRequest{Nome: "Bia", Email: "bia@example.com", Senha: "certa"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, server.URL+"/auth/login", domain.LoginRequest{Email: "bia@example.com", Senha: "errada"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Senha incorreta", body["erro"])

	resp, body = postJSON(t, server.URL+"/auth/login", domain.LoginRequest{Email: "ninguem@example.com", Senha: "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Usuário não encontrado", body["erro"])

	resp, body = postJSON(t, server.URL+"/auth/registrar", domain.RegisterRequest{Nome: "Bia", Email: "bia@example.com", Senha: "outra"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Email já cadastrado", body["erro"])
}
