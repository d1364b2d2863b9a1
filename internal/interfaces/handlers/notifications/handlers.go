package notifications

import (
	"errors"

	notifsvc "confera-backend/internal/application/notifications"
	"confera-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *notifsvc.Service
}

// ListPublished GET /api/notifications (public).
func (h *Handlers) ListPublished(c *fiber.Ctx) error {
	out, err := h.Service.ListPublished(c.Context())
	if err != nil {
		return response.Error(c, err.Error(), fiber.StatusInternalServerError)
	}
	return response.JSON(c, out)
}

// ListAll GET /api/admin/notifications (admin).
func (h *Handlers) ListAll(c *fiber.Ctx) error {
	out, err := h.Service.ListAll(c.Context())
	if err != nil {
		return response.Error(c, err.Error(), fiber.StatusInternalServerError)
	}
	return response.JSON(c, out)
}

// Create POST /api/admin/notifications (admin).
func (h *Handlers) Create(c *fiber.Ctx) error {
	var body notifsvc.Input
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}
	n, err := h.Service.Create(c.Context(), body)
	if err != nil {
		return response.Error(c, err.Error(), fiber.StatusBadRequest)
	}
	return response.Created(c, n)
}

// Update PUT /api/admin/notifications/:id (admin).
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.Error(c, "Invalid notification id", fiber.StatusBadRequest)
	}
	var body notifsvc.Input
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}
	n, err := h.Service.Update(c.Context(), uint(id), body)
	if err != nil {
		if errors.Is(err, notifsvc.ErrNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.Error(c, err.Error(), fiber.StatusBadRequest)
	}
	return response.JSON(c, n)
}

// Delete DELETE /api/admin/notifications/:id (admin).
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.Error(c, "Invalid notification id", fiber.StatusBadRequest)
	}
	if err := h.Service.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, notifsvc.ErrNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.Error(c, err.Error(), fiber.StatusInternalServerError)
	}
	return response.JSON(c, fiber.Map{"deleted": true})
}
