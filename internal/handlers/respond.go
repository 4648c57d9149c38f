package handlers

import (
	"log"

	"gudang/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// writeError translates a service error into its HTTP response. Only the
// taxonomy's canned message reaches the client; causes stay in the logs.
func writeError(c *fiber.Ctx, err error) error {
	if appErr, ok := apperrors.As(err); ok {
		if appErr.Err != nil {
			log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
		}
		return c.Status(appErr.Status()).JSON(fiber.Map{
			"message": appErr.Message,
		})
	}

	log.Printf("%s %s failed with unclassified error: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}
