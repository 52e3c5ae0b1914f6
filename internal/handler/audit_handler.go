package handler

import (
	"github.com/gofiber/fiber/v2"

	"celula-igreja/internal/service/audit"
)

type AuditHandler struct {
	auditSvc audit.Service
}

func NewAuditHandler(auditSvc audit.Service) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc}
}

func (h *AuditHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)

	entries, err := h.auditSvc.RecentActivities(c.Context(), limit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"activities": entries,
	})
}
