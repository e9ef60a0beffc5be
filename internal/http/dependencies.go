package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/domain"
)

type dependencyUpdate struct {
	Name string `json:"nome"`
}

func (h *handlers) createDependency(c *fiber.Ctx) error {
	var d domain.Dependency
	if err := parseBody(c, &d); err != nil {
		return err
	}
	if err := h.svcs.Repos.CreateDependency(c.UserContext(), &d); err != nil {
		return err
	}
	return c.JSON(d)
}

func (h *handlers) listDependenciesByUnit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	items, err := h.svcs.Repos.ListDependenciesByUnit(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"dependencias": items})
}

func (h *handlers) getDependency(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	d, err := h.svcs.Repos.GetDependency(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(d)
}

func (h *handlers) updateDependency(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var u dependencyUpdate
	if err := parseBody(c, &u); err != nil {
		return err
	}
	d, err := h.svcs.Repos.UpdateDependencyName(c.UserContext(), id, u.Name)
	if err != nil {
		return err
	}
	return c.JSON(d)
}

func (h *handlers) deleteDependency(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	d, err := h.svcs.Repos.DeleteDependency(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(d)
}
