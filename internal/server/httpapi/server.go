package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/authshell/internal/logging"
	"github.com/dmitrijs2005/authshell/internal/server/users"
	"github.com/gorilla/mux"
)

// Server exposes the identity endpoints over HTTP under the /api prefix.
type Server struct {
	userService *users.Service
	jwtSecret   []byte
	logger      logging.Logger
}

func NewServer(userService *users.Service, jwtSecret []byte, logger logging.Logger) *Server {
	return &Server{userService: userService, jwtSecret: jwtSecret, logger: logger}
}

// Router builds the route table:
//
//	POST /api/auth/login
//	POST /api/auth/register
//	POST /api/auth/logout    (bearer)
//	POST /api/auth/refresh
//	GET  /api/user/profile   (bearer)
//	PUT  /api/user/profile   (bearer)
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", s.withAuth(s.handleLogout)).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", s.handleRefresh).Methods(http.MethodPost)
	api.HandleFunc("/user/profile", s.withAuth(s.handleGetProfile)).Methods(http.MethodGet)
	api.HandleFunc("/user/profile", s.withAuth(s.handleUpdateProfile)).Methods(http.MethodPut)

	return r
}
