package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/service"
)

type handlers struct {
	svcs *service.Services
}

func Register(app *fiber.App, svcs *service.Services) {
	h := &handlers{svcs: svcs}

	calc := app.Group("/calcular")
	calc.Post("/calcular", h.calculate)
	calc.Post("/relatorio", h.exportReport)
	calc.Get("/historico/unidade-consumidora/:id", h.history)

	deps := app.Group("/dependencias")
	deps.Post("", h.createDependency)
	deps.Get("/unidade-consumidora/:id", h.listDependenciesByUnit)
	deps.Get("/:id", h.getDependency)
	deps.Patch("/:id", h.updateDependency)
	deps.Delete("/:id", h.deleteDependency)

	devices := app.Group("/dispositivos")
	devices.Post("", h.createDevice)
	devices.Get("/unidades-consumidoras/:id", h.listDevicesByUnit)
	devices.Get("/dependencias/:id", h.listDevicesByDependency)
	devices.Get("/:id", h.getDevice)
	devices.Patch("/:id", h.updateDevice)
	devices.Delete("/:id", h.deleteDevice)

	units := app.Group("/unidades-consumidoras")
	units.Post("", h.createConsumerUnit)
	units.Get("", h.listConsumerUnits)
	units.Get("/:id", h.getConsumerUnit)

	types := app.Group("/tipos-consumidor")
	types.Post("", h.createConsumerType)
	types.Get("", h.listConsumerTypes)

	tariffs := app.Group("/bandeiras")
	tariffs.Post("", h.createTariff)
	tariffs.Get("", h.listTariffs)
	tariffs.Get("/:id", h.getTariff)
	tariffs.Patch("/:id", h.updateTariff)
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, fiber.NewError(fiber.StatusUnprocessableEntity, "id inválido: "+c.Params("id"))
	}
	return int64(id), nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
