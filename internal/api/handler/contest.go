package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"contestboard/internal/api/handler/request"
	"contestboard/internal/api/middleware"
	"contestboard/internal/domain"
	"contestboard/internal/pkg/flash"
	"contestboard/internal/service"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type ContestService interface {
	ListContests(ctx context.Context, term string, page, limit int) (domain.ContestPage, error)
	GetContest(ctx context.Context, id uint) (domain.Contest, error)
	ViewContest(ctx context.Context, id uint) (domain.Contest, []domain.Answer, error)
	CreateContest(ctx context.Context, contest domain.Contest, authorID uint) (domain.Contest, error)
	UpdateContest(ctx context.Context, id uint, fields domain.Contest) (domain.Contest, error)
	DeleteContest(ctx context.Context, id uint) error
	CreateAnswer(ctx context.Context, contestID, authorID uint, content string) (domain.Answer, error)
}

type ContestHandler struct {
	svc ContestService
}

func NewContestHandler(svc ContestService) *ContestHandler {
	return &ContestHandler{
		svc: svc,
	}
}

// HandleIndex lists contests, optionally filtered by a free-text term
// matched case-insensitively across the searchable columns.
func (h *ContestHandler) HandleIndex(c *gin.Context) {
	page := positiveQueryInt(c, "page", defaultPage)
	limit := positiveQueryInt(c, "limit", defaultLimit)
	term := c.Query("term")

	contests, err := h.svc.ListContests(c.Request.Context(), term, page, limit)
	if err != nil {
		abortWithError(c, fmt.Errorf("HandleIndex -> h.svc.ListContests -> %w", err))
		return
	}

	render(c, http.StatusOK, "contests/index", gin.H{
		"contests": contests,
		"term":     term,
		"query":    c.Request.URL.Query(),
	})
}

func (h *ContestHandler) HandleNew(c *gin.Context) {
	render(c, http.StatusOK, "contests/new", gin.H{
		"contest": domain.Contest{},
	})
}

func (h *ContestHandler) HandleEdit(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		flash.Add(c, flash.Danger, "Contest does not exist.")
		c.Redirect(http.StatusFound, "/contests")
		return
	}

	contest, err := h.svc.GetContest(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContestNotFound) {
			flash.Add(c, flash.Danger, "Contest does not exist.")
			c.Redirect(http.StatusFound, "/contests")
			return
		}

		abortWithError(c, fmt.Errorf("HandleEdit -> h.svc.GetContest -> %w", err))
		return
	}

	render(c, http.StatusOK, "contests/edit", gin.H{
		"contest": contest,
	})
}

// HandleShow renders the detail page. Every view counts: the read counter
// is incremented regardless of who is looking.
func (h *ContestHandler) HandleShow(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		render(c, http.StatusNotFound, "errors/404", gin.H{})
		return
	}

	contest, answers, err := h.svc.ViewContest(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContestNotFound) {
			render(c, http.StatusNotFound, "errors/404", gin.H{})
			return
		}

		abortWithError(c, fmt.Errorf("HandleShow -> h.svc.ViewContest -> %w", err))
		return
	}

	render(c, http.StatusOK, "contests/show", gin.H{
		"contest": contest,
		"answers": answers,
	})
}

func (h *ContestHandler) HandleCreate(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var form request.ContestForm
	if err := c.ShouldBind(&form); err != nil {
		abortWithError(c, fmt.Errorf("HandleCreate -> c.ShouldBind -> %w", err))
		return
	}

	if _, err := h.svc.CreateContest(c.Request.Context(), form.Contest(), userID); err != nil {
		abortWithError(c, fmt.Errorf("HandleCreate -> h.svc.CreateContest -> %w", err))
		return
	}

	flash.Add(c, flash.Success, "Successfully posted.")
	c.Redirect(http.StatusFound, "/contests")
}

// HandleUpdate replaces every editable field with the submitted values.
// Fields omitted from the form become empty; nothing is preserved.
func (h *ContestHandler) HandleUpdate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		flash.Add(c, flash.Danger, "Contest does not exist.")
		redirectBack(c, "/contests")
		return
	}

	var form request.ContestForm
	if err := c.ShouldBind(&form); err != nil {
		abortWithError(c, fmt.Errorf("HandleUpdate -> c.ShouldBind -> %w", err))
		return
	}

	if _, err := h.svc.UpdateContest(c.Request.Context(), id, form.Contest()); err != nil {
		if errors.Is(err, service.ErrContestNotFound) {
			flash.Add(c, flash.Danger, "Contest does not exist.")
			redirectBack(c, "/contests")
			return
		}

		abortWithError(c, fmt.Errorf("HandleUpdate -> h.svc.UpdateContest -> %w", err))
		return
	}

	flash.Add(c, flash.Success, "Successfully updated.")
	c.Redirect(http.StatusFound, "/contests")
}

// HandleDelete removes the contest. A miss is a silent no-op.
func (h *ContestHandler) HandleDelete(c *gin.Context) {
	if id, ok := paramID(c); ok {
		if err := h.svc.DeleteContest(c.Request.Context(), id); err != nil {
			abortWithError(c, fmt.Errorf("HandleDelete -> h.svc.DeleteContest -> %w", err))
			return
		}
	}

	flash.Add(c, flash.Success, "Successfully deleted.")
	c.Redirect(http.StatusFound, "/contests")
}

func (h *ContestHandler) HandleCreateAnswer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		flash.Add(c, flash.Danger, "Contest does not exist.")
		redirectBack(c, "/contests")
		return
	}

	userID, _ := middleware.UserID(c)

	var form request.AnswerForm
	if err := c.ShouldBind(&form); err != nil {
		abortWithError(c, fmt.Errorf("HandleCreateAnswer -> c.ShouldBind -> %w", err))
		return
	}

	if _, err := h.svc.CreateAnswer(c.Request.Context(), id, userID, form.Content); err != nil {
		if errors.Is(err, service.ErrContestNotFound) {
			flash.Add(c, flash.Danger, "Contest does not exist.")
			redirectBack(c, "/contests")
			return
		}

		abortWithError(c, fmt.Errorf("HandleCreateAnswer -> h.svc.CreateAnswer -> %w", err))
		return
	}

	flash.Add(c, flash.Success, "Successfully answered.")
	c.Redirect(http.StatusFound, fmt.Sprintf("/contests/%v", id))
}
