// Package handler exposes the content collections over HTTP: the
// authenticated editing API under /api/admin and the read-only published
// views under /api/content.
package handler

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/tigerwc/clubsite/internal/content"
	"github.com/tigerwc/clubsite/internal/content/service"
	"github.com/tigerwc/clubsite/pkg/logger"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// writeError maps the store error taxonomy onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var ve *content.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
	case errors.Is(err, content.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, content.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "content store unavailable, try again"})
	default:
		logger.Errorf("content handler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// RegisterAdmin mounts the editing API on rg. The caller wraps rg with the
// auth middleware; nothing here re-checks credentials.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.dashboard)

	rg.GET("/schedule", h.listSlots)
	rg.PUT("/schedule/slots", h.upsertSlot)
	rg.DELETE("/schedule/slots/:id", h.deleteSlot)

	rg.GET("/news", h.listNews)
	rg.POST("/news", h.createNews)
	rg.GET("/news/:id", h.getNews)
	rg.PUT("/news/:id", h.updateNews)
	rg.DELETE("/news/:id", h.deleteNews)

	rg.GET("/flyers", h.listFlyers)
	rg.POST("/flyers", h.createFlyer)
	rg.GET("/flyers/:id", h.getFlyer)
	rg.PUT("/flyers/:id", h.updateFlyer)
	rg.DELETE("/flyers/:id", h.deleteFlyer)

	rg.GET("/competitions", h.listCompetitions)
	rg.POST("/competitions", h.createCompetition)
	rg.GET("/competitions/:id", h.getCompetition)
	rg.PUT("/competitions/:id", h.updateCompetition)
	rg.DELETE("/competitions/:id", h.deleteCompetition)

	rg.GET("/sponsors", h.listSponsors)
	rg.POST("/sponsors", h.createSponsor)
	rg.GET("/sponsors/:id", h.getSponsor)
	rg.PUT("/sponsors/:id", h.updateSponsor)
	rg.DELETE("/sponsors/:id", h.deleteSponsor)
}

// RegisterPublic mounts the read-only published views.
func (h *Handler) RegisterPublic(r *gin.Engine) {
	pub := r.Group("/api/content")
	pub.GET("/schedule", func(c *gin.Context) {
		slots, err := h.svc.ScheduleSlots(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"slots": slots})
	})
	pub.GET("/news", func(c *gin.Context) {
		posts, err := h.svc.PublishedNews(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"news": posts})
	})
	pub.GET("/flyers", func(c *gin.Context) {
		flyers, err := h.svc.PublishedFlyers(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"flyers": flyers})
	})
	pub.GET("/competitions", func(c *gin.Context) {
		upcoming, past, err := h.svc.PublishedCompetitions(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"upcoming": upcoming, "past": past})
	})
	pub.GET("/sponsors", func(c *gin.Context) {
		sponsors, err := h.svc.Sponsors(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sponsors": sponsors})
	})
}

// dashboard loads every section concurrently and returns one snapshot for
// the panel's initial paint. The call is idempotent; reloading the panel
// just fetches a fresh snapshot.
func (h *Handler) dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		wg           sync.WaitGroup
		slots        []content.ScheduleSlot
		news         []content.NewsPost
		flyers       []content.Flyer
		competitions []content.CompetitionEvent
		sponsors     []content.Sponsor
		errs         [5]error
	)
	wg.Add(5)
	go func() { defer wg.Done(); slots, errs[0] = h.svc.ScheduleSlots(ctx) }()
	go func() { defer wg.Done(); news, errs[1] = h.svc.AdminNews(ctx) }()
	go func() { defer wg.Done(); flyers, errs[2] = h.svc.AdminFlyers(ctx) }()
	go func() { defer wg.Done(); competitions, errs[3] = h.svc.AdminCompetitions(ctx) }()
	go func() { defer wg.Done(); sponsors, errs[4] = h.svc.Sponsors(ctx) }()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			writeError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"schedule":     gin.H{"slots": slots},
		"news":         news,
		"flyers":       flyers,
		"competitions": competitions,
		"sponsors":     sponsors,
	})
}

// ---- schedule ----

func (h *Handler) listSlots(c *gin.Context) {
	slots, err := h.svc.ScheduleSlots(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) upsertSlot(c *gin.Context) {
	var slot content.ScheduleSlot
	if err := c.ShouldBindJSON(&slot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.svc.UpsertSlot(c.Request.Context(), slot)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *Handler) deleteSlot(c *gin.Context) {
	if err := h.svc.DeleteSlot(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- news ----

func (h *Handler) listNews(c *gin.Context) {
	posts, err := h.svc.AdminNews(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) createNews(c *gin.Context) {
	var p content.NewsPost
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.svc.CreateNews(c.Request.Context(), &p)
	if err != nil {
		writeError(c, err)
		return
	}
	p.ID = id
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) getNews(c *gin.Context) {
	p, err := h.svc.GetNews(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) updateNews(c *gin.Context) {
	var p content.NewsPost
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.UpdateNews(c.Request.Context(), c.Param("id"), &p); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
}

func (h *Handler) deleteNews(c *gin.Context) {
	if err := h.svc.DeleteNews(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- flyers ----

func (h *Handler) listFlyers(c *gin.Context) {
	flyers, err := h.svc.AdminFlyers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flyers)
}

func (h *Handler) createFlyer(c *gin.Context) {
	var f content.Flyer
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.svc.CreateFlyer(c.Request.Context(), &f)
	if err != nil {
		writeError(c, err)
		return
	}
	f.ID = id
	c.JSON(http.StatusCreated, f)
}

func (h *Handler) getFlyer(c *gin.Context) {
	f, err := h.svc.GetFlyer(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *Handler) updateFlyer(c *gin.Context) {
	var f content.Flyer
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.UpdateFlyer(c.Request.Context(), c.Param("id"), &f); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
}

func (h *Handler) deleteFlyer(c *gin.Context) {
	if err := h.svc.DeleteFlyer(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- competitions ----

func (h *Handler) listCompetitions(c *gin.Context) {
	events, err := h.svc.AdminCompetitions(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	// annotate past/upcoming for the panel list
	out := make([]gin.H, 0, len(events))
	for _, e := range events {
		out = append(out, gin.H{"event": e, "past": h.svc.IsPast(e)})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) createCompetition(c *gin.Context) {
	var e content.CompetitionEvent
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.svc.CreateCompetition(c.Request.Context(), &e)
	if err != nil {
		writeError(c, err)
		return
	}
	e.ID = id
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) getCompetition(c *gin.Context) {
	e, err := h.svc.GetCompetition(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) updateCompetition(c *gin.Context) {
	var e content.CompetitionEvent
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.UpdateCompetition(c.Request.Context(), c.Param("id"), &e); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
}

func (h *Handler) deleteCompetition(c *gin.Context) {
	if err := h.svc.DeleteCompetition(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- sponsors ----

func (h *Handler) listSponsors(c *gin.Context) {
	sponsors, err := h.svc.Sponsors(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sponsors)
}

func (h *Handler) createSponsor(c *gin.Context) {
	var sp content.Sponsor
	if err := c.ShouldBindJSON(&sp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.svc.CreateSponsor(c.Request.Context(), &sp)
	if err != nil {
		writeError(c, err)
		return
	}
	sp.ID = id
	c.JSON(http.StatusCreated, sp)
}

func (h *Handler) getSponsor(c *gin.Context) {
	sp, err := h.svc.GetSponsor(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (h *Handler) updateSponsor(c *gin.Context) {
	var sp content.Sponsor
	if err := c.ShouldBindJSON(&sp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.UpdateSponsor(c.Request.Context(), c.Param("id"), &sp); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
}

func (h *Handler) deleteSponsor(c *gin.Context) {
	if err := h.svc.DeleteSponsor(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
