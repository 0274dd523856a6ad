package handlers

import (
	"net/http"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/response"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/extlink"
)

// ExtLinkHandler handles external portfolio-management link requests
type ExtLinkHandler struct {
	linkService *extlink.Service
}

// NewExtLinkHandler creates a new ExtLinkHandler
func NewExtLinkHandler(linkService *extlink.Service) *ExtLinkHandler {
	return &ExtLinkHandler{
		linkService: linkService,
	}
}

// ExtLinkResponse carries the redirect target for "Accept and change" triage.
type ExtLinkResponse struct {
	URL string `json:"url"`
}

// Link handles GET requests for the external portfolio-management redirect
// target.
//
// Endpoint: GET /api/external-portfolio/link
// Response: 200 OK with ExtLinkResponse
// Error: 404 when no external system is configured
func (h *ExtLinkHandler) Link(w http.ResponseWriter, r *http.Request) {
	link, err := h.linkService.Link()
	if err != nil {
		respondServiceError(w, err, "failed to resolve external portfolio link")
		return
	}

	response.RespondJSON(w, http.StatusOK, ExtLinkResponse{URL: link})
}
