package handlers

import (
	"net/http"

	"github.com/quizduel/quizduel-backend/models"
	"github.com/quizduel/quizduel-backend/utils"
)

func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.HandleSuccess(w, models.SuccessResponse("Server is running."))
}
