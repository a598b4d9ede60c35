package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// Session keys for the signed-in admin.
const (
	// KeyBackendToken holds the Veracity backend session token.
	KeyBackendToken = "backend_token"
	// KeyAdminEmail holds the signed-in admin's email for display.
	KeyAdminEmail = "admin_email"
	// KeyFlash holds a one-shot flash message.
	KeyFlash = "flash"
	// KeyFlashKind holds the flash severity (success or error).
	KeyFlashKind = "flash_kind"
)

// New creates a new session manager configured with SQLite store.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()

	// Use SQLite store
	sm.Store = sqlite3store.New(db)

	// Configure session
	sm.Lifetime = 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev // Secure cookies in production only

	// __Host- prefix requires Secure and Path=/.
	if !isDev {
		sm.Cookie.Name = "__Host-session"
		sm.Cookie.Path = "/"
	}

	return sm
}
