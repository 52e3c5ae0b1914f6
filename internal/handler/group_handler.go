package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"celula-igreja/internal/middleware"
	"celula-igreja/internal/service/group"
	"celula-igreja/internal/service/roster"
)

type GroupHandler struct {
	groupSvc  group.Service
	rosterSvc roster.Service
}

func NewGroupHandler(groupSvc group.Service, rosterSvc roster.Service) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc, rosterSvc: rosterSvc}
}

// List is public: registration needs the group picker before any credential
// exists.
func (h *GroupHandler) List(c *fiber.Ctx) error {
	groups, err := h.groupSvc.List(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"groups": groups,
	})
}

func (h *GroupHandler) Roster(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return middleware.BadRequest("Invalid group ID")
	}
	if groupID != user.GroupID {
		return middleware.Forbidden("Roster is visible to group members only")
	}

	users, err := h.rosterSvc.Snapshot(c.Context(), groupID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"members": users,
	})
}
