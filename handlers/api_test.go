package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func signup(t *testing.T, r *gin.Engine, email, name string, role models.UserRole, country models.Country) string {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/auth/signup", "", gin.H{
		"email":    email,
		"password": "secret123",
		"name":     name,
		"role":     role,
		"country":  country,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup %s: status %d, body %s", email, w.Code, w.Body.String())
	}
	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil || payload.AccessToken == "" {
		t.Fatalf("signup %s: no access_token in %s", email, w.Body.String())
	}
	return payload.AccessToken
}

func seedSpicePalace(t *testing.T, db *gorm.DB) (models.Restaurant, models.MenuItem) {
	t.Helper()
	spice := models.Restaurant{Name: "Spice Palace", Country: models.CountryIndia, Rating: 4.5}
	if err := db.Create(&spice).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	biryani := models.MenuItem{RestaurantID: spice.ID, Name: "Biryani", Price: 14.99, Available: true}
	if err := db.Create(&biryani).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return spice, biryani
}

func TestAuthFlow(t *testing.T) {
	r, _ := setupRouter(t)

	token := signup(t, r, "peter@example.com", "Peter", models.RoleMember, models.CountryAmerica)

	// Duplicate email, different case: conflict with failure envelope.
	w, env := doJSON(t, r, http.MethodPost, "/auth/signup", "", gin.H{
		"email":    "PETER@example.com",
		"password": "secret123",
		"name":     "Imposter",
		"country":  "america",
	})
	if w.Code != http.StatusConflict || env.Success {
		t.Errorf("duplicate signup: status %d, success %v", w.Code, env.Success)
	}

	w, env = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "peter@example.com",
		"password": "secret123",
	})
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("login: status %d, body %s", w.Code, w.Body.String())
	}

	w, env = doJSON(t, r, http.MethodPost, "/auth/verify-token", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("verify-token: status %d", w.Code)
	}
	var claims struct {
		Email   string `json:"email"`
		Role    string `json:"role"`
		Country string `json:"country"`
	}
	if err := json.Unmarshal(env.Data, &claims); err != nil {
		t.Fatalf("decode claims: %v", err)
	}
	if claims.Email != "peter@example.com" || claims.Role != "member" || claims.Country != "america" {
		t.Errorf("claims = %+v", claims)
	}

	// Missing and garbage tokens are 401.
	if w, _ := doJSON(t, r, http.MethodGet, "/restaurants", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status %d, want 401", w.Code)
	}
	if w, _ := doJSON(t, r, http.MethodGet, "/restaurants", "garbage", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status %d, want 401", w.Code)
	}
}

func TestOrderLifecycleScenario(t *testing.T) {
	r, db := setupRouter(t)
	spice, biryani := seedSpicePalace(t, db)

	memberIN := signup(t, r, "thanos@shield.com", "Thanos", models.RoleMember, models.CountryIndia)
	managerIN := signup(t, r, "marvel@shield.com", "Captain Marvel", models.RoleManager, models.CountryIndia)
	memberUS := signup(t, r, "travis@shield.com", "Travis", models.RoleMember, models.CountryAmerica)

	// Member in india orders 2x Biryani.
	w, env := doJSON(t, r, http.MethodPost, "/orders", memberIN, gin.H{
		"restaurantId":    spice.ID,
		"items":           []gin.H{{"menuItemId": biryani.ID, "quantity": 2}},
		"deliveryAddress": "Titan, Sector 7",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create order: status %d, body %s", w.Code, w.Body.String())
	}
	var order struct {
		ID          uint    `json:"id"`
		TotalAmount float64 `json:"totalAmount"`
		Status      string  `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if math.Abs(order.TotalAmount-29.98) > 1e-9 || order.Status != "pending" {
		t.Errorf("order = %+v, want total 29.98 status pending", order)
	}

	// Member in america cannot order from an indian restaurant.
	w, _ = doJSON(t, r, http.MethodPost, "/orders", memberUS, gin.H{
		"restaurantId":    spice.ID,
		"items":           []gin.H{{"menuItemId": biryani.ID, "quantity": 2}},
		"deliveryAddress": "Brooklyn",
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("cross-country order: status %d, want 403", w.Code)
	}

	// Members cannot checkout; the role gate fires at the boundary.
	checkoutPath := fmt.Sprintf("/orders/%d/checkout", order.ID)
	if w, _ := doJSON(t, r, http.MethodPost, checkoutPath, memberIN, nil); w.Code != http.StatusForbidden {
		t.Errorf("member checkout: status %d, want 403", w.Code)
	}

	// Manager in india confirms.
	w, env = doJSON(t, r, http.MethodPost, checkoutPath, managerIN, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("manager checkout: status %d, body %s", w.Code, w.Body.String())
	}
	var confirmed struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &confirmed); err != nil {
		t.Fatalf("decode confirmed order: %v", err)
	}
	if confirmed.Status != "confirmed" {
		t.Errorf("status after checkout = %s, want confirmed", confirmed.Status)
	}

	// Member cannot cancel either.
	cancelPath := fmt.Sprintf("/orders/%d", order.ID)
	if w, _ := doJSON(t, r, http.MethodDelete, cancelPath, memberIN, nil); w.Code != http.StatusForbidden {
		t.Errorf("member cancel: status %d, want 403", w.Code)
	}
}

func TestRestaurantListingAndMenu(t *testing.T) {
	r, db := setupRouter(t)
	spice, _ := seedSpicePalace(t, db)
	diner := models.Restaurant{Name: "American Diner", Country: models.CountryAmerica, Rating: 4.0}
	if err := db.Create(&diner).Error; err != nil {
		t.Fatalf("seed diner: %v", err)
	}

	memberIN := signup(t, r, "thor@shield.com", "Thor", models.RoleMember, models.CountryIndia)
	admin := signup(t, r, "fury@shield.com", "Nick Fury", models.RoleAdmin, models.CountryAmerica)

	// Non-admin listing is pinned to the caller's country.
	w, env := doJSON(t, r, http.MethodGet, "/restaurants", memberIN, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("member listing: status %d", w.Code)
	}
	var restaurants []models.Restaurant
	if err := json.Unmarshal(env.Data, &restaurants); err != nil {
		t.Fatalf("decode restaurants: %v", err)
	}
	if len(restaurants) != 1 || restaurants[0].Country != models.CountryIndia {
		t.Errorf("member sees %+v, want only india restaurants", restaurants)
	}

	// Requesting another country's listing as non-admin is denied at
	// the policy boundary.
	if w, _ := doJSON(t, r, http.MethodGet, "/restaurants?country=america", memberIN, nil); w.Code != http.StatusForbidden {
		t.Errorf("member cross-country listing: status %d, want 403", w.Code)
	}

	// Admin sees everything when no filter is given.
	w, env = doJSON(t, r, http.MethodGet, "/restaurants", admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin listing: status %d", w.Code)
	}
	if err := json.Unmarshal(env.Data, &restaurants); err != nil {
		t.Fatalf("decode restaurants: %v", err)
	}
	if len(restaurants) != 2 {
		t.Errorf("admin sees %d restaurants, want 2", len(restaurants))
	}

	// Menu of a cross-country restaurant is forbidden for non-admins.
	menuPath := fmt.Sprintf("/restaurants/%d/menu", diner.ID)
	if w, _ := doJSON(t, r, http.MethodGet, menuPath, memberIN, nil); w.Code != http.StatusForbidden {
		t.Errorf("cross-country menu: status %d, want 403", w.Code)
	}
	spiceMenu := fmt.Sprintf("/restaurants/%d/menu", spice.ID)
	if w, _ := doJSON(t, r, http.MethodGet, spiceMenu, memberIN, nil); w.Code != http.StatusOK {
		t.Errorf("own-country menu: status %d, want 200", w.Code)
	}
}

func TestPaymentMethodIsAdminOnly(t *testing.T) {
	r, _ := setupRouter(t)

	member := signup(t, r, "thor@shield.com", "Thor", models.RoleMember, models.CountryIndia)
	admin := signup(t, r, "fury@shield.com", "Nick Fury", models.RoleAdmin, models.CountryAmerica)

	body := gin.H{"paymentMethod": "Credit Card **** 1234"}

	if w, _ := doJSON(t, r, http.MethodPut, "/payments/paymentMethod", member, body); w.Code != http.StatusForbidden {
		t.Errorf("member payment update: status %d, want 403", w.Code)
	}

	w, env := doJSON(t, r, http.MethodPut, "/payments/paymentMethod", admin, body)
	if w.Code != http.StatusOK {
		t.Fatalf("admin payment update: status %d, body %s", w.Code, w.Body.String())
	}
	var user struct {
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if user.PaymentMethod != "Credit Card **** 1234" {
		t.Errorf("payment method = %q", user.PaymentMethod)
	}
}
