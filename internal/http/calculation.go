package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/domain"
)

func (h *handlers) calculate(c *fiber.Ctx) error {
	var req domain.CalculationRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	res, err := h.svcs.Calculator.Calculate(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *handlers) exportReport(c *fiber.Ctx) error {
	var req domain.CalculationRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	report, url, err := h.svcs.Calculator.Export(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"consumo_total":     report.TotalConsumption,
		"custo_total":       report.TotalCost,
		"consumo_total_mwh": report.TotalConsumptionMWh,
		"relatorio_url":     url,
	})
}

func (h *handlers) history(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	items, err := h.svcs.Calculator.History(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"calculos": items})
}
