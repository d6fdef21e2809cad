package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/maximebaudoin/expired-products/domain"
	"github.com/maximebaudoin/expired-products/internal/api/presenters"
	"github.com/maximebaudoin/expired-products/pkg/device"
)

type (
	DeviceHandler interface {
		RegisterDevice(c *fiber.Ctx) error
	}

	deviceHandler struct {
		deviceService device.DeviceService
		validator     *validator.Validate
	}
)

func NewDeviceHandler(deviceService device.DeviceService, validator *validator.Validate) DeviceHandler {
	return &deviceHandler{
		deviceService: deviceService,
		validator:     validator,
	}
}

func (h *deviceHandler) RegisterDevice(c *fiber.Ctx) error {
	req := new(domain.RegisterDeviceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterDevice, err)
	}

	res, err := h.deviceService.RegisterDevice(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterDevice, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegisterDevice)
}
