package abstracts

import (
	"errors"

	abssvc "confera-backend/internal/application/abstracts"
	"confera-backend/internal/middleware"
	"confera-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *abssvc.Service
}

// Submit POST /api/abstracts (auth).
func (h *Handlers) Submit(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body abssvc.SubmitInput
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}
	a, err := h.Service.Submit(c.Context(), userID, body)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Created(c, a)
}

// ListMine GET /api/abstracts (auth).
func (h *Handlers) ListMine(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	abstracts, err := h.Service.ListMine(c.Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.JSON(c, abstracts)
}

// Update PUT /api/abstracts/:id (auth, owner, pending only).
func (h *Handlers) Update(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.Error(c, "Invalid abstract id", fiber.StatusBadRequest)
	}
	var body abssvc.SubmitInput
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}
	a, err := h.Service.Update(c.Context(), uint(id), userID, body)
	if err != nil {
		return serviceError(c, err)
	}
	return response.JSON(c, a)
}

// Withdraw DELETE /api/abstracts/:id (auth, owner, pending only).
func (h *Handlers) Withdraw(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.Error(c, "Invalid abstract id", fiber.StatusBadRequest)
	}
	if err := h.Service.Withdraw(c.Context(), uint(id), userID); err != nil {
		return serviceError(c, err)
	}
	return response.JSON(c, fiber.Map{"withdrawn": true})
}

// ListAll GET /api/admin/abstracts (admin). Optional status filter.
func (h *Handlers) ListAll(c *fiber.Ctx) error {
	abstracts, err := h.Service.ListAll(c.Context(), c.Query("status"))
	if err != nil {
		return serviceError(c, err)
	}
	return response.JSON(c, abstracts)
}

// Review PATCH /api/admin/abstracts/:id/status (admin).
func (h *Handlers) Review(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.Error(c, "Invalid abstract id", fiber.StatusBadRequest)
	}
	var body abssvc.ReviewInput
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}
	a, err := h.Service.Review(c.Context(), uint(id), body)
	if err != nil {
		return serviceError(c, err)
	}
	return response.JSON(c, a)
}

func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, abssvc.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, abssvc.ErrNotOwner):
		return response.Error(c, err.Error(), fiber.StatusForbidden)
	case errors.Is(err, abssvc.ErrNotPending):
		return response.Error(c, err.Error(), fiber.StatusBadRequest)
	}
	return response.Error(c, err.Error(), fiber.StatusBadRequest)
}

func actorID(c *fiber.Ctx) (uuid.UUID, bool) {
	u := middleware.GetUser(c)
	m, ok := u.(map[string]interface{})
	if !ok {
		return uuid.Nil, false
	}
	s, _ := m["user_id"].(string)
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
