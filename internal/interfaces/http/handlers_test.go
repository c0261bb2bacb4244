package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resonira/invoice-api/internal/application/auth"
	"github.com/resonira/invoice-api/internal/application/billing"
	"github.com/resonira/invoice-api/internal/application/dto"
	appsettings "github.com/resonira/invoice-api/internal/application/settings"
	"github.com/resonira/invoice-api/internal/domain/entity"
	"github.com/resonira/invoice-api/internal/infrastructure/jsondb"
	"github.com/resonira/invoice-api/internal/infrastructure/mail"
	infrapdf "github.com/resonira/invoice-api/internal/infrastructure/pdf"
	apphttp "github.com/resonira/invoice-api/internal/interfaces/http"
	"github.com/resonira/invoice-api/pkg/config"
)

// newTestApp wires the full route surface over a throwaway JSON store, with the
// real PDF generator and an unconfigured mail relay. Seeds the default admin
// and company settings the way main does on first boot.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store, err := jsondb.Open(t.TempDir())
	require.NoError(t, err)

	invoiceRepo := jsondb.NewInvoiceRepository(store)
	settingsRepo := jsondb.NewSettingsRepository(store)
	userRepo := jsondb.NewUserRepository(store)

	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo)
	settingsUC := appsettings.NewUseCase(settingsRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	mailer := mail.NewGomailSender(config.MailConfig{}) // unconfigured
	sendUC := billing.NewSendInvoiceUseCase(
		invoiceRepo, settingsRepo, infrapdf.NewMarotoInvoiceGenerator(), mailer,
	)

	_, err = authUC.EnsureDefaultAdmin()
	require.NoError(t, err)
	_, err = settingsUC.EnsureDefaults()
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		InvoiceUC:   invoiceUC,
		SendUC:      sendUC,
		SettingsUC:  settingsUC,
		AuthUC:      authUC,
		JWTSecret:   testJWTSecret,
		BackendName: "json-file-storage",
		MailReady:   mailer.Configured(),
		Port:        3002,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, headers ...map[string]string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func loginDefaultAdmin(t *testing.T, app *fiber.App) dto.LoginResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "admin@resonira.com",
		Password: "admin123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decodeBody(t, resp, &out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Health
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_Basic(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.HealthResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "ok", out.Status)
	assert.NotEmpty(t, out.Timestamp)
}

func TestHealth_FullReportsBackendAndMail(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/health/full", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.FullHealthResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, "json-file-storage", out.Services["database"].Type)
	assert.Equal(t, "not_configured", out.Services["email"].Status)
	require.NotNil(t, out.Services["database"].Counts)
	assert.True(t, out.Services["database"].Counts.HasSettings,
		"defaults are seeded, so the settings record must exist")
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_DefaultAdmin(t *testing.T) {
	app := newTestApp(t)
	out := loginDefaultAdmin(t, app)

	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "admin@resonira.com", out.User.Email)
}

func TestLogin_EmailIsCaseInsensitive(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "ADMIN@Resonira.COM",
		Password: "admin123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestLogin_WrongPasswordReturns401(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "admin@resonira.com",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestLogin_UnknownEmailReturns401NotDistinguishable(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "nobody@resonira.com",
		Password: "admin123",
	})
	// Same status and body as a wrong password: no account enumeration.
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "Invalid email or password", out.Error)
}

func TestLogin_MissingFieldsReturns400(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "admin@resonira.com"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestProfile_RequiresBearerToken(t *testing.T) {
	app := newTestApp(t)
	login := loginDefaultAdmin(t, app)

	// No token: rejected.
	resp := doJSON(t, app, http.MethodGet, "/api/auth/profile/"+login.User.ID, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// With the login token: served.
	resp = doJSON(t, app, http.MethodGet, "/api/auth/profile/"+login.User.ID, nil,
		map[string]string{"Authorization": "Bearer " + login.Token})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.UserResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, login.User.ID, out.ID)
}

func TestProfile_PasswordChangeVerifiesCurrent(t *testing.T) {
	app := newTestApp(t)
	login := loginDefaultAdmin(t, app)
	authHeader := map[string]string{"Authorization": "Bearer " + login.Token}
	path := "/api/auth/profile/" + login.User.ID

	// Wrong current password: rejected, password unchanged.
	resp := doJSON(t, app, http.MethodPut, path, dto.UpdateProfileRequest{
		CurrentPassword: "wrong", NewPassword: "newpass456",
	}, authHeader)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Missing current password: 400.
	resp = doJSON(t, app, http.MethodPut, path, dto.UpdateProfileRequest{
		NewPassword: "newpass456",
	}, authHeader)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Correct current password: accepted, new password works for login.
	resp = doJSON(t, app, http.MethodPut, path, dto.UpdateProfileRequest{
		CurrentPassword: "admin123", NewPassword: "newpass456",
	}, authHeader)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email: "admin@resonira.com", Password: "newpass456",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Invoices
// ──────────────────────────────────────────────────────────────────────────────

func sampleInvoicePayload() map[string]any {
	return map[string]any{
		"type":    "invoice",
		"date":    "2025-03-15",
		"subject": "Website development",
		"client": map[string]any{
			"companyName": "Acme Traders",
			"attentionTo": "Ravi Kumar",
			"email":       "ravi@acme.example",
		},
		"lineItems": []map[string]any{
			{"id": "li-1", "description": "Frontend build", "duration": "3 months",
				"quantity": 1, "unitPrice": 50000, "total": 50000},
		},
		"subtotal":   50000,
		"gstRate":    18,
		"gstAmount":  9000,
		"grandTotal": 59000,
		"balanceDue": 59000,
	}
}

func createInvoice(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/invoices", sampleInvoicePayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.SuccessResponse
	decodeBody(t, resp, &out)
	require.True(t, out.Success)
	require.NotEmpty(t, out.ID)
	return out.ID
}

func TestInvoices_CreateFillsServerSideFields(t *testing.T) {
	app := newTestApp(t)
	id := createInvoice(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var inv entity.Invoice
	decodeBody(t, resp, &inv)
	assert.Equal(t, id, inv.ID)
	assert.Regexp(t, `^\d{4}-\d{4}$`, inv.ReferenceNumber)
	assert.Equal(t, entity.StatusDraft, inv.Status)
	assert.Equal(t, "Fifty Nine Thousand Rupees Only", inv.AmountInWords)
	assert.False(t, inv.CreatedAt.IsZero())
}

func TestInvoices_ListNewestFirst(t *testing.T) {
	app := newTestApp(t)
	first := createInvoice(t, app)
	second := createInvoice(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/invoices", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []entity.Invoice
	decodeBody(t, resp, &list)
	require.Len(t, list, 2)
	// Creation stamps carry nanosecond precision, so sequential creates
	// never tie.
	assert.Equal(t, second, list[0].ID, "latest invoice sorts first")
	assert.Equal(t, first, list[1].ID)
}

func TestInvoices_GetUnknownReturns404(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/invoices/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "Invoice not found", out.Error)
}

func TestInvoices_UpdatePreservesIdentity(t *testing.T) {
	app := newTestApp(t)
	id := createInvoice(t, app)

	payload := sampleInvoicePayload()
	payload["subject"] = "Revised scope"
	payload["id"] = "attempted-id-override"
	resp := doJSON(t, app, http.MethodPut, "/api/invoices/"+id, payload)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/invoices/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var inv entity.Invoice
	decodeBody(t, resp, &inv)
	assert.Equal(t, id, inv.ID, "the path id wins over any id in the body")
	assert.Equal(t, "Revised scope", inv.Subject)
}

func TestInvoices_UpdateUnknownReturns404(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodPut, "/api/invoices/missing", sampleInvoicePayload())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestInvoices_Delete(t *testing.T) {
	app := newTestApp(t)
	id := createInvoice(t, app)

	resp := doJSON(t, app, http.MethodDelete, "/api/invoices/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/invoices/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestInvoices_AmountsSerializeAsNumbers(t *testing.T) {
	// The SPA reads amounts as JSON numbers, not strings.
	prev := decimal.MarshalJSONWithoutQuotes
	decimal.MarshalJSONWithoutQuotes = true
	defer func() { decimal.MarshalJSONWithoutQuotes = prev }()

	app := newTestApp(t)
	id := createInvoice(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"grandTotal":59000`)
	assert.NotContains(t, string(raw), `"grandTotal":"59000"`)
}

// ──────────────────────────────────────────────────────────────────────────────
// Send & render
// ──────────────────────────────────────────────────────────────────────────────

func TestSend_MissingRecipientReturns400(t *testing.T) {
	app := newTestApp(t)
	id := createInvoice(t, app)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/invoices/%s/send", id), map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "Recipient email is required", out.Error)
}

func TestSend_UnconfiguredRelayFails(t *testing.T) {
	app := newTestApp(t)
	id := createInvoice(t, app)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/invoices/%s/send", id), map[string]any{
		"recipientEmail": "ravi@acme.example",
	})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	resp.Body.Close()
}

func TestSendDirect_MissingInvoiceReturns400(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/invoices/send-direct", map[string]any{
		"recipientEmail": "ravi@acme.example",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "Invoice data is required", out.Error)
}

func TestSendDirect_DownloadReturnsPDFBytes(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/invoices/send-direct", map[string]any{
		"invoice":  sampleInvoicePayload(),
		"download": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")),
		"the response body must be a PDF document")
}

func TestEmailStatus_Unconfigured(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/invoices/email/status", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.EmailStatusResponse
	decodeBody(t, resp, &out)
	assert.False(t, out.Configured)
	assert.NotEmpty(t, out.Error)
}

// ──────────────────────────────────────────────────────────────────────────────
// Settings
// ──────────────────────────────────────────────────────────────────────────────

func TestSettings_SeededDefaults(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info entity.CompanyInfo
	decodeBody(t, resp, &info)
	assert.Equal(t, "RESONIRA TECHNOLOGIES", info.Name)
	assert.Equal(t, "36ABMFR2520B1ZJ", info.GSTIN)
}

func TestSettings_UpdateRoundTrip(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodPut, "/api/settings", entity.CompanyInfo{
		Name:  "New Name Pvt Ltd",
		GSTIN: "29AAAAA0000A1Z5",
		State: "Karnataka",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var info entity.CompanyInfo
	decodeBody(t, resp, &info)
	assert.Equal(t, "New Name Pvt Ltd", info.Name)
	assert.Equal(t, "Karnataka", info.State)
	assert.False(t, info.UpdatedAt.IsZero())
}
