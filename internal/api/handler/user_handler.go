package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user CRUD and search operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /api/users.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User registration details"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, user, "User created successfully")
}

// List handles GET /api/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, users, fmt.Sprintf("Found %d users", len(users)))
}

// Get handles GET /api/user/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return domain.ErrUserIDRequired
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, user, "")
}

// Update handles PUT /api/user/:id.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Router       /api/user/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return domain.ErrUserIDRequired
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if req.empty() {
		return domain.NewValidationError("At least one field is required")
	}

	user, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, user, "User updated successfully")
}

// Delete handles DELETE /api/user/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return domain.ErrUserIDRequired
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return respond(c, http.StatusOK, nil, "User deleted successfully")
}

// Search handles GET /api/search?name=.
//
// @Summary      Search users by name
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        name  query     string  true  "Substring to match against names"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Router       /api/search [get]
func (h *UserHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	users, err := h.service.Search(c.Request().Context(), req.Term)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, users, fmt.Sprintf("Found %d users matching %q", len(users), req.Term))
}
