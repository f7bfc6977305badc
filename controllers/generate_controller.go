package controllers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rambadrinathan/vatika-studio/catalog"
	"github.com/Rambadrinathan/vatika-studio/config"
	"github.com/Rambadrinathan/vatika-studio/genimage"
	"github.com/Rambadrinathan/vatika-studio/jobs"
	"github.com/Rambadrinathan/vatika-studio/logger"
	"github.com/Rambadrinathan/vatika-studio/middleware"
	"github.com/Rambadrinathan/vatika-studio/prompts"
	"github.com/Rambadrinathan/vatika-studio/recommend"
	"github.com/Rambadrinathan/vatika-studio/services"
)

type GenerateRequest struct {
	Photo     string `json:"photo"`
	Budget    int    `json:"budget"`
	SpaceType string `json:"space_type"`
	Feedback  string `json:"feedback,omitempty"`
}

type GenerateResponse struct {
	Image          string                 `json:"image"`
	Prompt         string                 `json:"prompt"`
	Model          string                 `json:"model"`
	Recommendation RecommendationResponse `json:"recommendation"`
}

// Generate runs the full pipeline: recommendation, prompt, reference images,
// image model call. The generated design is persisted asynchronously so the
// response is not delayed by storage.
func Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Photo == "" || req.Budget <= 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Photo and budget are required"})
		return
	}
	space := catalog.SpaceType(req.SpaceType)
	if space == "" {
		space = catalog.SpaceBalcony
	}
	if !catalog.ValidSpaceType(space) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid space type"})
		return
	}

	scene, err := genimage.ParseDataURI(req.Photo)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Photo must be a base64 data URI"})
		return
	}

	if err := services.NewDesignService().ConsumeRendition(userID); err != nil {
		if errors.Is(err, services.ErrRenditionsExhausted) {
			writeJSON(w, http.StatusPaymentRequired, ErrorResponse{Error: "Free renditions exhausted"})
			return
		}
		logger.Error("Failed to check rendition quota", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to check quota"})
		return
	}

	rec := recommend.Recommend(req.Budget, space)

	prompt := prompts.BuildScenePrompt(rec.Items, space)
	if req.Feedback != "" {
		prompt = prompts.BuildIterationPrompt(rec.Items, req.Feedback, space)
	}

	refs := loadProductImages(rec.Items)

	logger.Info("Generating design", "user_id", userID, "budget", req.Budget,
		"space_type", space, "items", len(rec.Items), "refs", len(refs))

	image, model, err := genimage.NewClient().Generate(prompt, scene, refs)
	if err != nil {
		logger.Error("Generation failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	// Persist off the request path; the SSE stream reports completion.
	if strings.HasPrefix(image, "data:") {
		jobs.GetWorker().Enqueue(jobs.SaveJob{
			UserID:        userID,
			Budget:        req.Budget,
			SpaceType:     string(space),
			RenderDataURI: image,
			Prompt:        prompt,
		})
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		Image:          image,
		Prompt:         prompt,
		Model:          model,
		Recommendation: toRecommendationResponse(req.Budget, space, rec),
	})
}

// loadProductImages reads each selected planter's reference photo from the
// planters directory. Missing files are skipped: the prompt still describes
// the item even when no reference image ships with the deployment.
func loadProductImages(items []recommend.SelectedItem) []genimage.InlineImage {
	dir := config.GetEnv("PLANTERS_DIR", "static/planters")

	var refs []genimage.InlineImage
	for _, it := range items {
		rel := strings.TrimPrefix(it.Planter.Image, "/planters/")
		raw, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			logger.Warn("Missing product reference image", "planter_id", it.Planter.ID, "error", err)
			continue
		}
		refs = append(refs, genimage.InlineImage{
			MimeType: mimeForExt(filepath.Ext(rel)),
			Data:     base64.StdEncoding.EncodeToString(raw),
		})
	}
	return refs
}

func mimeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
