package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"raccoon/internal/errors"
	"raccoon/internal/middleware"
	"raccoon/internal/service"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateCommentRequest represents a create-comment request. ItemID may
// identify either a post or a message.
type CreateCommentRequest struct {
	ItemID          string `json:"item_id" validate:"required,uuid"`
	Content         string `json:"content" validate:"required"`
	ParentCommentID string `json:"parent_comment_id,omitempty" validate:"omitempty,uuid"`
}

// CreateComment godoc
// @Summary Attach a comment to a post or message
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCommentRequest true "Comment data"
// @Success 201 {object} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments [post]
func (h *CommentHandler) CreateComment(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	var parentID *uuid.UUID
	if req.ParentCommentID != "" {
		parsed, err := uuid.Parse(req.ParentCommentID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid parent comment id")
		}
		parentID = &parsed
	}

	comment, err := h.commentService.CreateComment(c.Request().Context(), itemID, req.Content, identity.Username, parentID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetComment godoc
// @Summary Get a comment by id
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} model.Comment
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/{id} [get]
func (h *CommentHandler) GetComment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid comment id")
	}

	comment, err := h.commentService.GetComment(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, comment)
}

// ListForItem godoc
// @Summary List comments attached to a post or message
// @Tags comments
// @Produce json
// @Param itemId path string true "Item ID"
// @Success 200 {array} model.Comment
// @Router /comments/item/{itemId} [get]
func (h *CommentHandler) ListForItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	comments, err := h.commentService.ListCommentsForItem(c.Request().Context(), itemID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, comments)
}

// ListForUser godoc
// @Summary List comments authored by a user
// @Tags comments
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} model.Comment
// @Router /comments/user/{username} [get]
func (h *CommentHandler) ListForUser(c echo.Context) error {
	comments, err := h.commentService.ListCommentsByUser(c.Request().Context(), c.Param("username"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, comments)
}
