package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"celula-igreja/internal/domain"
	"celula-igreja/internal/middleware"
	"celula-igreja/internal/service/comment"
)

type CommentHandler struct {
	commentSvc comment.Service
}

func NewCommentHandler(commentSvc comment.Service) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return middleware.BadRequest("Invalid group ID")
	}
	if groupID != user.GroupID {
		return middleware.Forbidden("Comments can only be posted to your own group")
	}

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Content == "" {
		return middleware.BadRequest("Comment content is required")
	}

	created, err := h.commentSvc.Create(c.Context(), user, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return middleware.BadRequest("Invalid group ID")
	}
	if groupID != user.GroupID {
		return middleware.Forbidden("Comments are visible to group members only")
	}

	params := getPaginationParams(c)
	result, err := h.commentSvc.ListByGroup(c.Context(), groupID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
