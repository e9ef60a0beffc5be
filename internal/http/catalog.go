package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/domain"
)

func (h *handlers) createConsumerUnit(c *fiber.Ctx) error {
	var u domain.ConsumerUnit
	if err := parseBody(c, &u); err != nil {
		return err
	}
	if err := h.svcs.Repos.CreateConsumerUnit(c.UserContext(), &u); err != nil {
		return err
	}
	return c.JSON(u)
}

func (h *handlers) listConsumerUnits(c *fiber.Ctx) error {
	items, err := h.svcs.Repos.ListConsumerUnits(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"unidades_consumidoras": items})
}

func (h *handlers) getConsumerUnit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	u, err := h.svcs.Repos.GetConsumerUnit(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(u)
}

func (h *handlers) createConsumerType(c *fiber.Ctx) error {
	var t domain.ConsumerType
	if err := parseBody(c, &t); err != nil {
		return err
	}
	if err := h.svcs.Repos.CreateConsumerType(c.UserContext(), &t); err != nil {
		return err
	}
	return c.JSON(t)
}

func (h *handlers) listConsumerTypes(c *fiber.Ctx) error {
	items, err := h.svcs.Repos.ListConsumerTypes(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tipos_consumidor": items})
}

func (h *handlers) createTariff(c *fiber.Ctx) error {
	var t domain.Tariff
	if err := parseBody(c, &t); err != nil {
		return err
	}
	if err := h.svcs.Repos.CreateTariff(c.UserContext(), &t); err != nil {
		return err
	}
	return c.JSON(t)
}

func (h *handlers) listTariffs(c *fiber.Ctx) error {
	items, err := h.svcs.Repos.ListTariffs(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"bandeiras": items})
}

func (h *handlers) getTariff(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	t, err := h.svcs.Tariffs.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(t)
}

func (h *handlers) updateTariff(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var t domain.Tariff
	if err := parseBody(c, &t); err != nil {
		return err
	}
	t.ID = id
	updated, err := h.svcs.Tariffs.Update(c.UserContext(), t)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}
