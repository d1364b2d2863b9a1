package user

import (
	usersvc "confera-backend/internal/application/user"
	"confera-backend/internal/middleware"
	"confera-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *usersvc.Service
}

// Register POST /api/users/register (public).
func (h *Handlers) Register(c *fiber.Ctx) error {
	var body usersvc.RegisterInput
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}
	u, err := h.Service.Register(c.Context(), body)
	if err != nil {
		return response.Error(c, err.Error(), fiber.StatusBadRequest)
	}
	return response.Created(c, fiber.Map{"user": u})
}

// Me GET /api/users/me (auth) returns the caller's own account.
func (h *Handlers) Me(c *fiber.Ctx) error {
	actor := getActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	u, err := h.Service.View(c.Context(), actor.UserID)
	if err != nil {
		return response.Error(c, err.Error(), fiber.StatusNotFound)
	}
	return response.JSON(c, fiber.Map{"user": u})
}

// UpdateMe PUT /api/users/me (auth).
func (h *Handlers) UpdateMe(c *fiber.Ctx) error {
	actor := getActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	var body usersvc.UpdateProfileInput
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}
	u, err := h.Service.UpdateProfile(c.Context(), actor.UserID, body)
	if err != nil {
		return response.Error(c, err.Error(), fiber.StatusBadRequest)
	}
	return response.JSON(c, fiber.Map{"user": u})
}

// List GET /api/admin/users (admin).
func (h *Handlers) List(c *fiber.Ctx) error {
	users, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, err.Error(), fiber.StatusInternalServerError)
	}
	return response.JSON(c, users)
}

// Delete DELETE /api/admin/users/:id (admin).
func (h *Handlers) Delete(c *fiber.Ctx) error {
	actor := getActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	targetID := c.Params("id")
	if targetID == "" {
		return response.Error(c, "Missing user id", fiber.StatusBadRequest)
	}
	if err := h.Service.Delete(c.Context(), actor.UserID, targetID); err != nil {
		if err.Error() == "User not found" {
			return response.NotFound(c, err.Error())
		}
		return response.Error(c, err.Error(), fiber.StatusBadRequest)
	}
	return response.JSON(c, fiber.Map{"deleted": true})
}

type actorInfo struct {
	UserID string
	Email  string
	Role   string
}

func getActor(c *fiber.Ctx) *actorInfo {
	u := middleware.GetUser(c)
	if u == nil {
		return nil
	}
	m, ok := u.(map[string]interface{})
	if !ok {
		return nil
	}
	userID, _ := m["user_id"].(string)
	if userID == "" {
		return nil
	}
	email, _ := m["email"].(string)
	role, _ := m["role"].(string)
	return &actorInfo{UserID: userID, Email: email, Role: role}
}
