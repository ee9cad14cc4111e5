package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func (handler *Handler) InsightsSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Not authenticated.")
	}

	summary, err := handler.insightsSvc.Summary(user.ID)
	if err != nil {
		handler.logger.WithFields(logrus.Fields{"user_id": user.ID}).WithError(err).Error("insights summary failed")
		return apiError(c, fiber.StatusInternalServerError, "Failed to generate insights.")
	}

	handler.logger.WithFields(logrus.Fields{
		"user_id":      user.ID,
		"total_cycles": summary.CycleAnalysis.TotalCycles,
		"risk_score":   summary.PCOSIndicators.RiskScore,
	}).Debug("insights summary built")
	return c.JSON(summary)
}
