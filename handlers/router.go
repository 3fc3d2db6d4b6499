package handlers

import (
	"github.com/gorilla/mux"
)

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", s.HealthCheck).Methods("GET")
	r.HandleFunc("/api/matches", s.ListMatches).Methods("GET")
	r.HandleFunc("/ws", s.WsHandler)

	return r
}
