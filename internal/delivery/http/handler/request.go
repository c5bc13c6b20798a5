package handler

import (
	"strconv"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/pkg/errors"
	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/pkg/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// parseBody decodes and validates the JSON body into req
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "invalid JSON",
		})
	}
	if err := validator.Validate(req); err != nil {
		return errors.ErrInvalidRequest.WithDetails(validator.FieldErrors(err))
	}
	return nil
}

func parseLineID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidLineID.WithDetails(map[string]interface{}{
			"id": c.Params("id"),
		})
	}
	return id, nil
}

// resolveCap returns the requested cap or def. Negative caps are rejected.
func resolveCap(requested *int, def int) (int, error) {
	if requested == nil {
		return def, nil
	}
	if *requested < 0 {
		return 0, errors.ErrInvalidCap.WithDetails(map[string]interface{}{
			"cap": *requested,
		})
	}
	return *requested, nil
}

func capQuery(c *fiber.Ctx) (*int, error) {
	raw := c.Query("cap")
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.ErrInvalidCap.WithDetails(map[string]interface{}{
			"cap": raw,
		})
	}
	return &v, nil
}
