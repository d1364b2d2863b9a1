package awards

import (
	"errors"

	awardsvc "confera-backend/internal/application/awards"
	"confera-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *awardsvc.Service
}

// List GET /api/awards (public).
func (h *Handlers) List(c *fiber.Ctx) error {
	awards, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, err.Error(), fiber.StatusInternalServerError)
	}
	return response.JSON(c, awards)
}

// Create POST /api/admin/awards (admin).
func (h *Handlers) Create(c *fiber.Ctx) error {
	var body awardsvc.Input
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}
	a, err := h.Service.Create(c.Context(), body)
	if err != nil {
		return response.Error(c, err.Error(), fiber.StatusBadRequest)
	}
	return response.Created(c, a)
}

// Update PUT /api/admin/awards/:id (admin).
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.Error(c, "Invalid award id", fiber.StatusBadRequest)
	}
	var body awardsvc.Input
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}
	a, err := h.Service.Update(c.Context(), uint(id), body)
	if err != nil {
		if errors.Is(err, awardsvc.ErrNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.Error(c, err.Error(), fiber.StatusBadRequest)
	}
	return response.JSON(c, a)
}

// Delete DELETE /api/admin/awards/:id (admin).
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.Error(c, "Invalid award id", fiber.StatusBadRequest)
	}
	if err := h.Service.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, awardsvc.ErrNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.Error(c, err.Error(), fiber.StatusInternalServerError)
	}
	return response.JSON(c, fiber.Map{"deleted": true})
}
