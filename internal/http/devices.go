package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/domain"
)

func (h *handlers) createDevice(c *fiber.Ctx) error {
	var d domain.Device
	if err := parseBody(c, &d); err != nil {
		return err
	}
	if err := h.svcs.Repos.CreateDevice(c.UserContext(), &d); err != nil {
		return err
	}
	return c.JSON(d)
}

func (h *handlers) listDevicesByUnit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	items, err := h.svcs.Repos.ListDevicesByUnit(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"dispositivos": items})
}

func (h *handlers) listDevicesByDependency(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	items, err := h.svcs.Repos.ListDevicesByDependency(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"dispositivos": items})
}

func (h *handlers) getDevice(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	d, err := h.svcs.Repos.GetDevice(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(d)
}

func (h *handlers) updateDevice(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var u domain.DeviceUpdate
	if err := parseBody(c, &u); err != nil {
		return err
	}
	d, err := h.svcs.Repos.UpdateDevice(c.UserContext(), id, u)
	if err != nil {
		return err
	}
	return c.JSON(d)
}

func (h *handlers) deleteDevice(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	d, err := h.svcs.Repos.DeleteDevice(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(d)
}
