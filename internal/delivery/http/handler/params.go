package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/transit-directory/internal/domain"
	"github.com/transit-directory/internal/pkg/errors"
)

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidID
	}
	return id, nil
}

// parseListParams reads the shared search/limit/offset query parameters.
func parseListParams(c *fiber.Ctx) domain.ListParams {
	return domain.ListParams{
		Search: c.Query("search"),
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	}
}

// queryInt64 reads an optional positive integer query parameter.
func queryInt64(c *fiber.Ctx, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, errors.ErrInvalidRequest
	}
	return &v, nil
}

// queryFloat reads an optional float query parameter.
func queryFloat(c *fiber.Ctx, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.ErrInvalidRequest
	}
	return &v, nil
}
