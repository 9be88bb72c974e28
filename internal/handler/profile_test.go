package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"digital-cards/internal/model"
	"digital-cards/internal/repository"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newProfileHandler(t *testing.T, profiles ...model.Profile) *ProfileHandler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Profile{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for i := range profiles {
		if err := db.Create(&profiles[i]).Error; err != nil {
			t.Fatalf("seed profile: %v", err)
		}
	}
	return NewProfileHandler(repository.NewProfileRepository(db))
}

func amaProfile() model.Profile {
	return model.Profile{
		UserID:   "AB12CD",
		FullName: "Ama Mensah",
		JobTitle: "Product Designer",
		Company:  "Mensah Ltd",
		Bio:      "Designing cards",
		Email:    "a@b.com",
		Phone:    "+233200000000",
		Website:  "https://ama.example",
	}
}

func TestSearchFound(t *testing.T) {
	t.Parallel()

	h := newProfileHandler(t, amaProfile())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/search?userId=ab12cd", nil)
	rec := httptest.NewRecorder()
	if err := h.Search(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["found"] != true {
		t.Fatalf("found = %v\n%s", body["found"], rec.Body.String())
	}
	profile, _ := body["profile"].(map[string]any)
	if profile["user_id"] != "AB12CD" {
		t.Errorf("user_id = %v", profile["user_id"])
	}
	if msg, _ := body["message"].(string); !strings.Contains(msg, "Ama Mensah") {
		t.Errorf("message = %q", msg)
	}
}

func TestSearchNotFound(t *testing.T) {
	t.Parallel()

	h := newProfileHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/search?userId=zz99zz", nil)
	rec := httptest.NewRecorder()
	if err := h.Search(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["found"] != false {
		t.Fatalf("found = %v", body["found"])
	}
	if msg, _ := body["message"].(string); !strings.Contains(msg, "ZZ99ZZ") {
		t.Errorf("message = %q, want uppercased ID echoed", msg)
	}
}

func TestVCardExport(t *testing.T) {
	t.Parallel()

	h := newProfileHandler(t, amaProfile())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/cards/:userId/vcard")
	c.SetParamNames("userId")
	c.SetParamValues("AB12CD")

	if err := h.VCard(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/vcard") {
		t.Errorf("content type = %q", ct)
	}

	card := rec.Body.String()
	for _, want := range []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Ama Mensah",
		"ORG:Mensah Ltd",
		"EMAIL:a@b.com",
		"TEL:+233200000000",
		"END:VCARD",
	} {
		if !strings.Contains(card, want) {
			t.Errorf("vcard missing %q:\n%s", want, card)
		}
	}
}

func TestVCardNotFound(t *testing.T) {
	t.Parallel()

	h := newProfileHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/cards/:userId/vcard")
	c.SetParamNames("userId")
	c.SetParamValues("ZZ99ZZ")

	err := h.VCard(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("error = %v, want 404 HTTPError", err)
	}
}
