package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"eventmanager/internal/booking"
	"eventmanager/internal/middleware"
	"eventmanager/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestValidateEventRequiresNameAndContact(t *testing.T) {
	base := models.Event{
		Name:        "Ayesha Khan",
		Email:       "ayesha@example.com",
		WeddingDate: "2026-10-15",
		EventTime:   booking.SlotEvening,
	}

	if err := validateEvent(base); err != nil {
		t.Fatalf("valid event rejected: %v", err)
	}

	noName := base
	noName.Name = "  "
	if err := validateEvent(noName); err == nil {
		t.Error("expected error for missing name")
	}

	noContact := base
	noContact.Email = ""
	noContact.Phone = ""
	if err := validateEvent(noContact); err == nil {
		t.Error("expected error for missing contact")
	}

	phoneOnly := base
	phoneOnly.Email = ""
	phoneOnly.Phone = "+923001234567"
	if err := validateEvent(phoneOnly); err != nil {
		t.Errorf("phone alone should satisfy contact rule: %v", err)
	}
}

func TestValidateEventSlotAndStatus(t *testing.T) {
	e := models.Event{
		Name:        "Test",
		Email:       "t@example.com",
		WeddingDate: "2026-10-15",
	}

	e.EventTime = "midnight"
	if err := validateEvent(e); err == nil {
		t.Error("expected error for unknown time slot")
	}

	e.EventTime = ""
	if err := validateEvent(e); err != nil {
		t.Errorf("empty slot means unslotted, should pass: %v", err)
	}

	e.Status = "Lost"
	if err := validateEvent(e); err == nil {
		t.Error("expected error for unknown status")
	}

	e.Status = models.StatusTourScheduled
	if err := validateEvent(e); err != nil {
		t.Errorf("known status rejected: %v", err)
	}
}

func TestEventLabelPrefersEventName(t *testing.T) {
	e := models.Event{EventName: "Summer Gala", EventType: models.EventCorporate}
	if got := eventLabel(e); got != "Summer Gala" {
		t.Errorf("eventLabel = %q, want Summer Gala", got)
	}
	e.EventName = ""
	if got := eventLabel(e); got != models.EventCorporate {
		t.Errorf("eventLabel = %q, want %q", got, models.EventCorporate)
	}
}

func TestSuggestionExcerpt(t *testing.T) {
	short := "More filters please"
	if got := suggestionExcerpt(short); got != short {
		t.Errorf("short content should pass through, got %q", got)
	}

	long := "The vendor search should remember my city between visits"
	got := suggestionExcerpt(long)
	if got != long[:30]+"..." {
		t.Errorf("excerpt = %q", got)
	}
}

func TestSuggestionExcerptKeepsMultiByteRunesIntact(t *testing.T) {
	content := "x" + strings.Repeat("é", 40)
	got := suggestionExcerpt(content)

	if !utf8.ValidString(got) {
		t.Fatalf("excerpt is not valid UTF-8: %q", got)
	}
	if want := string([]rune(content)[:30]) + "..."; got != want {
		t.Errorf("excerpt = %q, want %q", got, want)
	}
}

func TestParsePaginationParams(t *testing.T) {
	page, limit, err := parsePaginationParams("", "")
	if err != nil || page != 1 || limit != 20 {
		t.Fatalf("defaults = %d/%d err=%v", page, limit, err)
	}

	page, limit, err = parsePaginationParams("3", "50")
	if err != nil || page != 3 || limit != 50 {
		t.Fatalf("got %d/%d err=%v", page, limit, err)
	}

	_, limit, err = parsePaginationParams("1", "500")
	if err != nil || limit != maxPageSize {
		t.Errorf("limit should be capped at %d, got %d err=%v", maxPageSize, limit, err)
	}

	if _, _, err := parsePaginationParams("0", "10"); err == nil {
		t.Error("expected error for page 0")
	}
	if _, _, err := parsePaginationParams("x", "10"); err == nil {
		t.Error("expected error for non-numeric page")
	}
}

func TestIssueTokenRoundTrip(t *testing.T) {
	user := models.UserProfile{
		Email: "vendor@example.com",
		Name:  "Grand Palace",
		Role:  models.RoleBusiness,
	}

	signed, err := issueToken(user, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse failed: %v", err)
	}

	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != user.Email {
		t.Errorf("sub = %v", claims["sub"])
	}
	if claims["role"] != string(models.RoleBusiness) {
		t.Errorf("role = %v", claims["role"])
	}
	if claims["name"] != user.Name {
		t.Errorf("name = %v", claims["name"])
	}
}

func TestContactFilterPicksField(t *testing.T) {
	f := contactFilter("Vendor@Example.com")
	if _, ok := f["email"]; !ok {
		t.Error("identifier with @ should filter on email")
	}

	f = contactFilter("+923001234567")
	if v, ok := f["phone"]; !ok || v != "+923001234567" {
		t.Errorf("phone filter = %v", f)
	}
}

func TestOwnInquiryFilterScopesToVendor(t *testing.T) {
	f := ownInquiryFilter("inq-1", "biz-A")

	if f["id"] != "inq-1" {
		t.Errorf("id = %v", f["id"])
	}
	if f["businessId"] != "biz-A" {
		t.Error("update filter must carry the owning business id so another vendor's inquiry never matches")
	}
}

func TestNewVendorInquiryUsesInjectedClock(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	actor := models.UserProfile{Name: "Emily", Email: "emily@example.com", Role: models.RoleIndividual}
	business := models.Business{ID: "biz-1", Name: "Royal Hall Services", Category: "Venue / Hall Services"}

	inq := newVendorInquiry(actor, business, inquiryRequest{Message: "Hi", EventDate: "2024-06-15"}, now)

	if !inq.DateSent.Equal(now) {
		t.Errorf("dateSent = %v, want %v", inq.DateSent, now)
	}
	if inq.Status != models.InquirySent {
		t.Errorf("status = %s", inq.Status)
	}
	if inq.BusinessName != "Royal Hall Services" || inq.BusinessCategory != "Venue / Hall Services" {
		t.Errorf("vendor fields not denormalized: %+v", inq)
	}
	if inq.IndividualID != "emily@example.com" || inq.IndividualName != "Emily" {
		t.Errorf("sender fields: %+v", inq)
	}
}

func TestNewSuggestionUsesInjectedClock(t *testing.T) {
	now := time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC)
	actor := models.UserProfile{Name: "Elena", Email: "elena@royalhall.com", Role: models.RoleBusiness}

	s := newSuggestion(actor, "More filters please", now)

	if !s.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, want %v", s.Timestamp, now)
	}
	if s.Status != models.SuggestionNew {
		t.Errorf("status = %s", s.Status)
	}
	if s.UserID != "elena@royalhall.com" || s.UserRole != models.RoleBusiness {
		t.Errorf("actor fields: %+v", s)
	}
}

func TestPayRejectsOwnerAccounts(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/billing/pay", nil)
	middleware.WithActor(c, "admin@eventmanager.com", models.RoleOwner, "Super Admin")

	// Zero deps: the owner must be rejected before any lookup or charge.
	Pay(BillingDeps{}, nil)(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestNormalizeGallery(t *testing.T) {
	got := normalizeGallery([]string{" https://example.com/a.jpg ", "", "  ", "data:image/png;base64,abc"})
	if len(got) != 2 || got[0] != "https://example.com/a.jpg" || got[1] != "data:image/png;base64,abc" {
		t.Fatalf("normalizeGallery = %v", got)
	}

	many := make([]string, maxGalleryImages+10)
	for i := range many {
		many[i] = "img"
	}
	if got := normalizeGallery(many); len(got) != maxGalleryImages {
		t.Errorf("expected cap at %d, got %d", maxGalleryImages, len(got))
	}
}

func TestLowerCamel(t *testing.T) {
	if got := lowerCamel("BusinessType"); got != "businessType" {
		t.Errorf("lowerCamel = %q", got)
	}
	if got := lowerCamel(""); got != "" {
		t.Errorf("empty input should stay empty, got %q", got)
	}
}
