// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"mcafe/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth    *app.AuthService
	catalog *app.CatalogService
	orders  *app.OrderService
	webDir  string
	sso     *SSOConfig
}

// New creates a Server wired to the given application services. sso may be
// nil when single sign-on is not configured.
func New(auth *app.AuthService, catalog *app.CatalogService, orders *app.OrderService, webDir string, sso *SSOConfig) *Server {
	return &Server{auth: auth, catalog: catalog, orders: orders, webDir: webDir, sso: sso}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	api.HandleFunc("/config", s.handleConfig)

	// Public routes: catalog reads and order submission are intentionally
	// ungated.
	api.HandleFunc("/products", s.handleListProducts)
	api.HandleFunc("/orders", s.handleSubmitOrder)

	api.HandleFunc("/admin/signin", s.handleSignIn)
	api.HandleFunc("/admin/sso/login", s.handleSSOLogin)
	api.HandleFunc("/admin/sso/callback", s.handleSSOCallback)

	// Everything else under /admin requires a live session.
	admin := http.NewServeMux()
	admin.HandleFunc("/signout", s.handleSignOut)
	admin.HandleFunc("/products", s.handleCreateProduct)
	admin.HandleFunc("/products/", s.handleProductByID)
	admin.HandleFunc("/orders", s.handleListOrders)
	api.Handle("/admin/", http.StripPrefix("/admin", s.authMiddleware(admin)))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", staticFromDisk(s.webDir))

	return s.loggingMiddleware(root)
}
