package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uplift-labs/cheer-gateway/internal/app"
	"github.com/uplift-labs/cheer-gateway/internal/domain"
)

// Query parameter defaults. These are part of the public contract: a bare
// GET on each endpoint must behave exactly like the documented default.
const (
	// DefaultVerseRef is the verse served when no ref parameter is given.
	DefaultVerseRef = "Psalm 34:18"

	// DefaultSongQuery seeds the song search when no q parameter is given.
	DefaultSongQuery = "gospel worship"
)

// CheerHandler handles the public content endpoints. Every handler returns
// 200 with a content body; provider failures are absorbed by the service
// layer's fallback chain and never surface here.
type CheerHandler struct {
	service *app.CheerService
}

// NewCheerHandler creates a new content handler.
func NewCheerHandler(service *app.CheerService) *CheerHandler {
	return &CheerHandler{service: service}
}

// GetQuote handles GET /quote.
// Returns one fresh quote: {"text": "...", "author": "..."} with author
// omitted when unattributed.
func (h *CheerHandler) GetQuote(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetQuote(c.Request.Context()))
}

// GetQuoteList handles GET /quote/list.
// Returns the bulk quote array, fetched upstream at most once per process.
func (h *CheerHandler) GetQuoteList(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetQuoteList(c.Request.Context()))
}

// GetVerse handles GET /verse?ref=<reference>.
// Returns {"reference": "...", "text": "..."}.
func (h *CheerHandler) GetVerse(c *gin.Context) {
	ref := c.Query("ref")
	if ref == "" {
		ref = DefaultVerseRef
	}

	c.JSON(http.StatusOK, h.service.GetVerse(c.Request.Context(), ref))
}

// GetSong handles GET /song?q=<query>.
// Returns {"artist": "...", "title": "..."}.
func (h *CheerHandler) GetSong(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		query = DefaultSongQuery
	}

	c.JSON(http.StatusOK, h.service.GetSong(c.Request.Context(), query))
}

// GetJoke handles GET /joke?type=<kind>.
// The riddle kind returns {"question": "...", "answer": "..."}; every other
// kind returns {"text": "..."}. Unrecognized kinds behave like dad.
func (h *CheerHandler) GetJoke(c *gin.Context) {
	kind := domain.NormalizeJokeKind(c.Query("type"))

	if kind == domain.KindRiddle {
		c.JSON(http.StatusOK, h.service.GetRiddle(c.Request.Context()))
		return
	}

	c.JSON(http.StatusOK, h.service.GetJoke(c.Request.Context(), kind))
}

// RegisterCheerRoutes registers the public content routes at the root.
func (h *CheerHandler) RegisterCheerRoutes(rg *gin.RouterGroup) {
	rg.GET("/quote", h.GetQuote)
	rg.GET("/quote/list", h.GetQuoteList)
	rg.GET("/verse", h.GetVerse)
	rg.GET("/song", h.GetSong)
	rg.GET("/joke", h.GetJoke)
}
