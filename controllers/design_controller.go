package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Rambadrinathan/vatika-studio/catalog"
	"github.com/Rambadrinathan/vatika-studio/logger"
	"github.com/Rambadrinathan/vatika-studio/middleware"
	"github.com/Rambadrinathan/vatika-studio/models"
	"github.com/Rambadrinathan/vatika-studio/services"

	"gorm.io/gorm"
)

// GetDesigns lists the caller's saved designs, newest first.
func GetDesigns(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	designs, err := services.NewDesignService().List(userID)
	if err != nil {
		logger.Error("Failed to fetch designs", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch designs"})
		return
	}
	if designs == nil {
		designs = []models.Design{}
	}
	writeJSON(w, http.StatusOK, designs)
}

// DeleteDesign removes one saved design addressed by its natural key:
// DELETE /designs?budget=50000&space=balcony.
func DeleteDesign(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	budget, err := strconv.Atoi(r.URL.Query().Get("budget"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid budget"})
		return
	}
	space := catalog.SpaceType(r.URL.Query().Get("space"))
	if !catalog.ValidSpaceType(space) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid space type"})
		return
	}

	if err := services.NewDesignService().Delete(userID, budget, string(space)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Design not found"})
			return
		}
		logger.Error("Failed to delete design", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete design"})
		return
	}

	logger.Info("Design deleted", "user_id", userID, "budget", budget, "space_type", space)
	w.WriteHeader(http.StatusNoContent)
}
