package userValidator

import (
	"strconv"
	"strings"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

func targetUserID(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("id"))
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "User ID is required!")
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid User ID!")
	}
	c.Locals("targetUserID", id)
	return nil
}

func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := targetUserID(c); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		return c.Next()
	}
}

func ChangeRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := targetUserID(c); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}

		reqData := new(struct {
			Role string `json:"role"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !models.ValidRole(reqData.Role) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"role": "Role must be student, instructor or admin!",
			})
		}

		c.Locals("validatedChangeRole", reqData)
		return c.Next()
	}
}
