package handlers

import (
	"net/http"
	"strconv"

	"github.com/quizduel/quizduel-backend/models"
	"github.com/quizduel/quizduel-backend/responses"
	"github.com/quizduel/quizduel-backend/utils"
)

const defaultMatchLimit = 20

// ListMatches returns the most recently finished games.
func (s *Server) ListMatches(w http.ResponseWriter, r *http.Request) {
	if s.matches == nil {
		utils.HandleError(w, responses.ServiceUnavailableError{Msg: "Match history is not available."})
		return
	}

	limit := defaultMatchLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n <= 0 {
			utils.HandleError(w, responses.BadRequestError{Msg: "Invalid limit parameter."})
			return
		}
		limit = n
	}

	matches, err := s.matches.RecentMatches(limit)
	if err != nil {
		s.logger.Error("error fetching matches", "error", err)
		utils.HandleError(w, responses.InternalServerError{Msg: "Failed to fetch matches."})
		return
	}

	if matches == nil {
		matches = []models.Match{} // Return an empty array for consistency
	}

	utils.HandleSuccess(w, models.SuccessResponse(matches))
}
