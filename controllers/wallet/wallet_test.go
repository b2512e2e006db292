package walletController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"elswallet/database"
	"elswallet/models"
	walletRoutes "elswallet/routers/walletRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "wallet.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Wallet{},
		&models.Transaction{},
		&models.PaymentRequest{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	walletRoutes.SetupWalletRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestCreateWalletEndpoint(t *testing.T) {
	app := setupApp(t)

	code, env := doRequest(t, app, http.MethodPost, "/wallet/create/1", fiber.Map{
		"name":           "Kimsreng",
		"email":          "kimsreng@example.com",
		"initialBalance": 1234.56,
	})
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Status)

	// Second creation for the same user fails
	code, env = doRequest(t, app, http.MethodPost, "/wallet/create/1", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Status)
	assert.Equal(t, "Wallet already exists for user!", env.Message)
}

func TestGetWalletEndpoint(t *testing.T) {
	app := setupApp(t)

	code, env := doRequest(t, app, http.MethodGet, "/wallet/9", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Status)

	code, _ = doRequest(t, app, http.MethodPost, "/wallet/create/9", nil)
	require.Equal(t, http.StatusOK, code)

	code, env = doRequest(t, app, http.MethodGet, "/wallet/9", nil)
	assert.Equal(t, http.StatusOK, code)

	var wallet struct {
		UserID          uint              `json:"userId"`
		Balance         string            `json:"balance"`
		Transactions    []json.RawMessage `json:"transactions"`
		PaymentRequests []json.RawMessage `json:"paymentRequests"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &wallet))
	assert.Equal(t, uint(9), wallet.UserID)
	assert.Empty(t, wallet.Transactions)
	assert.Empty(t, wallet.PaymentRequests)
}

func TestAddMoneyEndpoint(t *testing.T) {
	app := setupApp(t)

	code, _ := doRequest(t, app, http.MethodPost, "/wallet/create/1", fiber.Map{"initialBalance": 1234.56})
	require.Equal(t, http.StatusOK, code)

	// Validation failures are 422
	code, env := doRequest(t, app, http.MethodPost, "/wallet/add-money", fiber.Map{
		"userId": 1,
		"amount": -5,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.False(t, env.Status)

	// Unknown wallet is 404
	code, _ = doRequest(t, app, http.MethodPost, "/wallet/add-money", fiber.Map{
		"userId":        99,
		"amount":        10.00,
		"paymentMethod": "card",
	})
	assert.Equal(t, http.StatusNotFound, code)

	code, env = doRequest(t, app, http.MethodPost, "/wallet/add-money", fiber.Map{
		"userId":        1,
		"amount":        500.00,
		"paymentMethod": "card",
	})
	assert.Equal(t, http.StatusOK, code)

	var result struct {
		NewBalance string `json:"newBalance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "1734.56", result.NewBalance)
}

func TestSendMoneyEndpoint(t *testing.T) {
	app := setupApp(t)

	code, env := doRequest(t, app, http.MethodPost, "/wallet/create/1", fiber.Map{
		"name": "A", "email": "a@x.com", "initialBalance": 1234.56,
	})
	require.Equal(t, http.StatusOK, code)

	var sender struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sender))

	code, _ = doRequest(t, app, http.MethodPost, "/wallet/create/2", fiber.Map{
		"name": "B", "email": "b@x.com", "initialBalance": 500.00,
	})
	require.Equal(t, http.StatusOK, code)

	code, env = doRequest(t, app, http.MethodPost, "/wallet/send-money", fiber.Map{
		"senderWalletId": sender.ID,
		"recipientor":    "b@x.com",
		"amount":         300.00,
		"description":    "rent",
	})
	assert.Equal(t, http.StatusOK, code)

	var request struct {
		Recipientor string `json:"recipientor"`
		Status      string `json:"status"`
		Reference   string `json:"reference"`
		Amount      string `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &request))
	assert.Equal(t, "b@x.com", request.Recipientor)
	assert.Equal(t, "Completed", request.Status)
	assert.NotEmpty(t, request.Reference)

	// Balances after settlement
	code, env = doRequest(t, app, http.MethodGet, "/wallet/1/balance", nil)
	require.Equal(t, http.StatusOK, code)
	var balance struct {
		Balance string `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &balance))
	assert.Equal(t, "934.56", balance.Balance)

	code, env = doRequest(t, app, http.MethodGet, "/wallet/2/balance", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &balance))
	assert.Equal(t, "800", balance.Balance)
}

func TestSendMoneyEndpoint_InsufficientBalance(t *testing.T) {
	app := setupApp(t)

	code, env := doRequest(t, app, http.MethodPost, "/wallet/create/1", fiber.Map{
		"name": "A", "email": "a@x.com", "initialBalance": 50.00,
	})
	require.Equal(t, http.StatusOK, code)
	var sender struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sender))

	code, _ = doRequest(t, app, http.MethodPost, "/wallet/create/2", fiber.Map{
		"name": "B", "email": "b@x.com",
	})
	require.Equal(t, http.StatusOK, code)

	code, env = doRequest(t, app, http.MethodPost, "/wallet/send-money", fiber.Map{
		"senderWalletId": sender.ID,
		"recipientor":    "b@x.com",
		"amount":         300.00,
		"description":    "rent",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Insufficient balance in sender's wallet!", env.Message)

	code, env = doRequest(t, app, http.MethodGet, "/wallet/1/balance", nil)
	require.Equal(t, http.StatusOK, code)
	var balance struct {
		Balance string `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &balance))
	assert.Equal(t, "50", balance.Balance)
}

func TestWalletHistoryEndpoint(t *testing.T) {
	app := setupApp(t)

	code, _ := doRequest(t, app, http.MethodPost, "/wallet/create/1", nil)
	require.Equal(t, http.StatusOK, code)

	for i := 0; i < 3; i++ {
		code, _ = doRequest(t, app, http.MethodPost, "/wallet/add-money", fiber.Map{
			"userId":        1,
			"amount":        10.00,
			"paymentMethod": "card",
		})
		require.Equal(t, http.StatusOK, code)
	}

	code, env := doRequest(t, app, http.MethodGet, "/wallet/1/history?page=1&limit=2", nil)
	assert.Equal(t, http.StatusOK, code)

	var history struct {
		Transactions []json.RawMessage `json:"transactions"`
		Pagination   struct {
			Total int `json:"total"`
			Page  int `json:"page"`
			Limit int `json:"limit"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &history))
	assert.Len(t, history.Transactions, 2)
	assert.Equal(t, 3, history.Pagination.Total)
}

func TestAuditEndpoint(t *testing.T) {
	app := setupApp(t)

	code, _ := doRequest(t, app, http.MethodPost, "/wallet/create/1", fiber.Map{"initialBalance": 100.00})
	require.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, app, http.MethodPost, "/wallet/add-money", fiber.Map{
		"userId": 1, "amount": 25.00, "paymentMethod": "card",
	})
	require.Equal(t, http.StatusOK, code)

	code, env := doRequest(t, app, http.MethodPost, "/wallet/audit", nil)
	assert.Equal(t, http.StatusOK, code)

	var audit struct {
		Healthy bool              `json:"healthy"`
		Drifted []json.RawMessage `json:"drifted"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &audit))
	assert.True(t, audit.Healthy)
	assert.Empty(t, audit.Drifted)
}
