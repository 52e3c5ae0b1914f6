package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"celula-igreja/internal/config"
	"celula-igreja/internal/middleware"
	"celula-igreja/internal/service/membership"
	"celula-igreja/internal/service/notification"
	"celula-igreja/internal/service/workflow"
)

type NotificationHandler struct {
	workflowSvc *workflow.Service
	notifSvc    notification.Service
	cfg         *config.Config
}

func NewNotificationHandler(workflowSvc *workflow.Service, notifSvc notification.Service, cfg *config.Config) *NotificationHandler {
	return &NotificationHandler{
		workflowSvc: workflowSvc,
		notifSvc:    notifSvc,
		cfg:         cfg,
	}
}

// List opens (or reuses) the caller's view session and returns the rendered
// notification cards for their group.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	ctx, cancel := lookupContext(c, h.cfg.LookupTimeout)
	defer cancel()

	sess := h.workflowSvc.OpenView(user.ID, user.GroupID)
	cards, err := h.workflowSvc.Cards(ctx, sess)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"notifications": cards,
	})
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	count, err := h.notifSvc.CountUnread(c.Context(), user.GroupID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count": count,
	})
}

func (h *NotificationHandler) Approve(c *fiber.Ctx) error {
	return h.resolve(c, workflow.ActionApproved)
}

func (h *NotificationHandler) Reject(c *fiber.Ctx) error {
	return h.resolve(c, workflow.ActionRejected)
}

func (h *NotificationHandler) resolve(c *fiber.Ctx, state workflow.ActionState) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	ctx, cancel := lookupContext(c, h.cfg.LookupTimeout)
	defer cancel()

	sess := h.workflowSvc.OpenView(user.ID, user.GroupID)
	if state == workflow.ActionApproved {
		err = h.workflowSvc.Approve(ctx, sess, user.ID, notifID)
	} else {
		err = h.workflowSvc.Reject(ctx, sess, user.ID, notifID)
	}
	if err != nil {
		return mapWorkflowError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"terminal_label": state.Label(),
	})
}

// Open marks a navigable notification read and hands its payload back so the
// client can navigate. Membership requests are action-only and refuse this.
func (h *NotificationHandler) Open(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	ctx, cancel := lookupContext(c, h.cfg.LookupTimeout)
	defer cancel()

	sess := h.workflowSvc.OpenView(user.ID, user.GroupID)
	notif, err := h.workflowSvc.Open(ctx, sess, notifID)
	if err != nil {
		return mapWorkflowError(err)
	}

	return c.Status(fiber.StatusOK).JSON(notif)
}

func (h *NotificationHandler) CloseSession(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	h.workflowSvc.CloseView(user.ID)
	return c.Status(fiber.StatusNoContent).SendString("")
}

func mapWorkflowError(err error) error {
	switch {
	case errors.Is(err, workflow.ErrNotificationNotFound):
		return middleware.NotFound("Notification not found")
	case errors.Is(err, workflow.ErrAlreadyResolved):
		return middleware.Conflict("Membership request already resolved")
	case errors.Is(err, workflow.ErrNotApprovalRequest):
		return middleware.BadRequest("Notification is not a membership request")
	case errors.Is(err, workflow.ErrNotNavigable):
		return middleware.BadRequest("Membership requests cannot be opened")
	case errors.Is(err, workflow.ErrUnknownRequester):
		return middleware.BadRequest("Membership request carries no requester")
	case errors.Is(err, membership.ErrMemberNotFound):
		return middleware.MutationFailed("Member no longer exists")
	default:
		return err
	}
}
