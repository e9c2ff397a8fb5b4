package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/teleassist/ticketing-service/pkg/util"
)

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, util.NewValidationError("invalid "+name+" parameter", nil)
	}
	return id, nil
}
