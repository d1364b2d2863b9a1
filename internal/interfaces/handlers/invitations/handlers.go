package invitations

import (
	"errors"
	"time"

	invsvc "confera-backend/internal/application/invitations"
	"confera-backend/internal/middleware"
	"confera-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *invsvc.Service
	Config  middleware.SessionConfig
}

// CreateRequest is the POST /api/invitations body.
type CreateRequest struct {
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Type        string     `json:"type"`
	Message     string     `json:"message"`
	Institution string     `json:"institution"`
	Position    string     `json:"position"`
	ExpiresAt   *time.Time `json:"expiresAt"`
}

// Create POST /api/invitations (auth + invite permission). Returns the created
// invitation including its token, which the client uses to build the link.
func (h *Handlers) Create(c *fiber.Ctx) error {
	var body CreateRequest
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	actor := getActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	senderID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	inv, err := h.Service.Create(c.Context(), invsvc.CreateInput{
		Name:        body.Name,
		Email:       body.Email,
		Role:        body.Role,
		Type:        body.Type,
		Message:     body.Message,
		Institution: body.Institution,
		Position:    body.Position,
		ExpiresAt:   body.ExpiresAt,
		SenderID:    senderID,
		SenderEmail: actor.Email,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return response.Created(c, inv)
}

// Verify GET /api/invitations/verify?token=… (public). Returns the invitation
// whatever its status so the client can render an "already responded" view.
func (h *Handlers) Verify(c *fiber.Ctx) error {
	token := c.Query("token")
	inv, err := h.Service.VerifyToken(c.Context(), token)
	if err != nil {
		return serviceError(c, err)
	}
	return response.JSON(c, inv)
}

// AttendanceResponseRequest is the POST /api/invitations/attendance-response
// body. Accept is a pointer so a missing field is distinguishable from false.
type AttendanceResponseRequest struct {
	Token  string `json:"token"`
	Accept *bool  `json:"accept"`
}

// AttendanceResponse POST /api/invitations/attendance-response (public).
func (h *Handlers) AttendanceResponse(c *fiber.Ctx) error {
	var body AttendanceResponseRequest
	if err := c.BodyParser(&body); err != nil || body.Token == "" || body.Accept == nil {
		return response.Error(c, "token and accept are required", fiber.StatusBadRequest)
	}

	if _, err := h.Service.RespondAttendance(c.Context(), body.Token, *body.Accept); err != nil {
		return serviceError(c, err)
	}

	message := "Attendance declined"
	if *body.Accept {
		message = "Attendance confirmed"
	}
	return response.JSON(c, fiber.Map{
		"message": message,
		"accept":  *body.Accept,
	})
}

// AcceptAccountRequest is the POST /api/invitations/accept body.
type AcceptAccountRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}

// AcceptAccount POST /api/invitations/accept (public). Creates the invited
// account and logs the new user in.
func (h *Handlers) AcceptAccount(c *fiber.Ctx) error {
	var body AcceptAccountRequest
	if err := c.BodyParser(&body); err != nil || body.Token == "" {
		return response.Error(c, "token is required", fiber.StatusBadRequest)
	}

	user, err := h.Service.AcceptAccount(c.Context(), invsvc.AcceptAccountInput{
		Token:    body.Token,
		Password: body.Password,
		Fullname: body.Fullname,
	})
	if err != nil {
		return serviceError(c, err)
	}

	sid := middleware.RegenerateSessionID(c)
	middleware.SetSessionUser(c, middleware.SessionUser{
		UserID:   user.UserID.String(),
		Fullname: user.Fullname,
		Email:    user.Email,
		Role:     user.Role,
	})
	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = "s:" + sid
	c.Cookie(&cookie)

	return response.Created(c, fiber.Map{"user": user})
}

// List GET /api/admin/invitations (admin). Optional status/type filters.
func (h *Handlers) List(c *fiber.Ctx) error {
	invitations, err := h.Service.List(c.Context(), invsvc.ListInput{
		Status: c.Query("status"),
		Type:   c.Query("type"),
	})
	if err != nil {
		return serviceError(c, err)
	}
	return response.JSON(c, invitations)
}

// Delete DELETE /api/admin/invitations/:id (admin). No business checks beyond
// the permission middleware; any status may be deleted.
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.Error(c, "Invalid invitation id", fiber.StatusBadRequest)
	}
	if err := h.Service.Delete(c.Context(), uint(id)); err != nil {
		return serviceError(c, err)
	}
	return response.JSON(c, fiber.Map{"deleted": true})
}

// serviceError maps service errors onto HTTP status codes.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, invsvc.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, invsvc.ErrInvalidType),
		errors.Is(err, invsvc.ErrAlreadyResponded),
		errors.Is(err, invsvc.ErrExpired):
		return response.Error(c, err.Error(), fiber.StatusBadRequest)
	}
	var verr *invsvc.ValidationError
	if errors.As(err, &verr) {
		return response.Error(c, err.Error(), fiber.StatusBadRequest)
	}
	return response.Error(c, err.Error(), fiber.StatusInternalServerError)
}

type actorInfo struct {
	UserID   string
	Fullname string
	Email    string
	Role     string
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
	fullname, _ := m["fullname"].(string)
	role, _ := m["role"].(string)
	return &actorInfo{UserID: userID, Fullname: fullname, Email: email, Role: role}
}
