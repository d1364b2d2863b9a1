package committee

import (
	"errors"

	comsvc "confera-backend/internal/application/committee"
	"confera-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *comsvc.Service
}

// List GET /api/committee (public).
func (h *Handlers) List(c *fiber.Ctx) error {
	members, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, err.Error(), fiber.StatusInternalServerError)
	}
	return response.JSON(c, members)
}

// Create POST /api/admin/committee (admin).
func (h *Handlers) Create(c *fiber.Ctx) error {
	var body comsvc.Input
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}
	m, err := h.Service.Create(c.Context(), body)
	if err != nil {
		return response.Error(c, err.Error(), fiber.StatusBadRequest)
	}
	return response.Created(c, m)
}

// Update PUT /api/admin/committee/:id (admin).
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.Error(c, "Invalid committee member id", fiber.StatusBadRequest)
	}
	var body comsvc.Input
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}
	m, err := h.Service.Update(c.Context(), uint(id), body)
	if err != nil {
		if errors.Is(err, comsvc.ErrNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.Error(c, err.Error(), fiber.StatusBadRequest)
	}
	return response.JSON(c, m)
}

// Delete DELETE /api/admin/committee/:id (admin).
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.Error(c, "Invalid committee member id", fiber.StatusBadRequest)
	}
	if err := h.Service.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, comsvc.ErrNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.Error(c, err.Error(), fiber.StatusInternalServerError)
	}
	return response.JSON(c, fiber.Map{"deleted": true})
}
