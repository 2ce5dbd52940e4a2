//go:build e2e
// +build e2e

package e2e_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"library-app-go/internal/app"
	"library-app-go/internal/auth"
	"library-app-go/internal/config"
	"library-app-go/internal/db"
	catalogdomain "library-app-go/internal/domain/catalog"
	circulationdomain "library-app-go/internal/domain/circulation"
	memberdomain "library-app-go/internal/domain/member"
	userdomain "library-app-go/internal/domain/user"
	"library-app-go/internal/repository/gormrepo"
	"library-app-go/internal/seed"
	"library-app-go/internal/transport/httpserver"
	"library-app-go/internal/transport/httpserver/handler"
	"library-app-go/pkg/logger"
)

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
	seeder *seed.Seeder
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := e2eDSN(t)

	cfg := config.Config{
		DB: config.DBConfig{Driver: config.DriverPostgres, DSN: dsn},
	}
	log := logger.Nop()

	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	hasher := auth.NewBcrypt(4)
	seeder := app.NewSeeder(dbConn, hasher, log)

	userService := userdomain.NewService(gormrepo.NewUsers(dbConn), hasher)
	handlers := handler.New(
		memberdomain.NewService(gormrepo.NewMembers(dbConn)),
		catalogdomain.NewService(gormrepo.NewCatalog(dbConn)),
		circulationdomain.NewService(gormrepo.NewCirculation(dbConn)),
		userService,
		log,
	)

	router := httpserver.NewRouter(cfg, handlers, userService, log)
	server := httptest.NewServer(router)

	return &testEnv{server: server, db: dbConn, seeder: seeder}
}

// e2eDSN prefers E2E_DB_DSN and falls back to a throwaway postgres
// container when E2E_TESTCONTAINERS is set.
func e2eDSN(t *testing.T) string {
	t.Helper()

	if dsn := os.Getenv("E2E_DB_DSN"); dsn != "" {
		return dsn
	}
	if os.Getenv("E2E_TESTCONTAINERS") == "" {
		t.Skip("E2E_DB_DSN and E2E_TESTCONTAINERS not set; skipping e2e tests")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("library"),
		tcpostgres.WithUsername("library"),
		tcpostgres.WithPassword("library"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("container connection string: %v", err)
	}
	return dsn
}

func (e *testEnv) Close() {
	e.server.Close()
	_ = db.Close(e.db)
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.WithContext(context.Background()).Exec(
		"TRUNCATE TABLE borrow_records, book_authors, books, authors, membership_cards, library_members, users RESTART IDENTITY CASCADE",
	).Error
}

func request(t *testing.T, client *http.Client, url, username, password string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if username != "" {
		req.SetBasicAuth(username, password)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp, respBody
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type memberResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	MembershipCard *struct {
		CardNumber string    `json:"card_number"`
		IssueDate  time.Time `json:"issue_date"`
		ExpiryDate time.Time `json:"expiry_date"`
	} `json:"membership_card"`
}

type bookResponse struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	ISBN    string `json:"isbn"`
	Authors []struct {
		Name string `json:"name"`
	} `json:"authors"`
}

type borrowRecordResponse struct {
	MemberID   uint   `json:"member_id"`
	MemberName string `json:"member_name"`
	Book       *struct {
		Title string `json:"title"`
	} `json:"book"`
}

func TestE2ESeedIsIdempotent(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	ctx := context.Background()

	seeded, err := env.seeder.Run(ctx)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if !seeded {
		t.Fatalf("expected first run to seed")
	}

	seeded, err = env.seeder.Run(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if seeded {
		t.Fatalf("expected second run to skip")
	}

	counts := map[string]int64{
		"library_members":  2,
		"membership_cards": 2,
		"authors":          2,
		"books":            2,
		"book_authors":     2,
		"borrow_records":   1,
		"users":            2,
	}
	for table, want := range counts {
		var got int64
		if err := env.db.Table(table).Count(&got).Error; err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if got != want {
			t.Fatalf("expected %d rows in %s, got %d", want, table, got)
		}
	}
}

func TestE2EAuth(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	if _, err := env.seeder.Run(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	client := &http.Client{Timeout: 5 * time.Second}

	resp, body := request(t, client, env.server.URL+"/api/health", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = request(t, client, env.server.URL+"/api/books", "lib", "nope")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", resp.StatusCode, string(body))
	}
	var errResp errorEnvelope
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if errResp.Error.Code != "unauthorized" {
		t.Fatalf("expected unauthorized, got %q", errResp.Error.Code)
	}

	resp, body = request(t, client, env.server.URL+"/api/users", "lib", "lib123")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = request(t, client, env.server.URL+"/api/users", "admin", "admin123")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
}

func TestE2ESeededData(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	if _, err := env.seeder.Run(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	client := &http.Client{Timeout: 5 * time.Second}

	resp, body := request(t, client, env.server.URL+"/api/members", "lib", "lib123")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var members []memberResponse
	if err := json.Unmarshal(body, &members); err != nil {
		t.Fatalf("decode members: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	for _, m := range members {
		if m.MembershipCard == nil {
			t.Fatalf("expected card for member %s", m.Name)
		}
		if !m.MembershipCard.ExpiryDate.After(m.MembershipCard.IssueDate) {
			t.Fatalf("expected expiry after issue for %s", m.MembershipCard.CardNumber)
		}
	}

	resp, body = request(t, client, env.server.URL+"/api/books", "lib", "lib123")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var books []bookResponse
	if err := json.Unmarshal(body, &books); err != nil {
		t.Fatalf("decode books: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	if books[1].ISBN != "978-0553103540" || len(books[1].Authors) != 1 || books[1].Authors[0].Name != "George R.R. Martin" {
		t.Fatalf("unexpected second book: %+v", books[1])
	}

	resp, body = request(t, client, env.server.URL+"/api/borrow-records", "lib", "lib123")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var records []borrowRecordResponse
	if err := json.Unmarshal(body, &records); err != nil {
		t.Fatalf("decode records: %v", err)
	}
	if len(records) != 1 || records[0].MemberName != "John Doe" || records[0].Book == nil {
		t.Fatalf("unexpected borrow records: %+v", records)
	}

	resp, body = request(t, client, env.server.URL+"/api/members/999", "lib", "lib123")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.StatusCode, string(body))
	}
}
