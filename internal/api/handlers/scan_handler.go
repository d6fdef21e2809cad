package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/maximebaudoin/expired-products/domain"
	"github.com/maximebaudoin/expired-products/internal/api/presenters"
	"github.com/maximebaudoin/expired-products/pkg/scan"
)

type (
	ScanHandler interface {
		ScanBarcode(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
		validator   *validator.Validate
	}
)

func NewScanHandler(scanService scan.ScanService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		scanService: scanService,
		validator:   validator,
	}
}

func (h *scanHandler) ScanBarcode(c *fiber.Ctx) error {
	deviceID := c.Locals("device_id").(string)
	req := new(domain.ScanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanProduct, err)
	}

	res, err := h.scanService.ScanBarcode(c.Context(), deviceID, req.Barcode)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedScanProduct, err)
		}
		if errors.Is(err, domain.ErrScanSuperseded) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedScanSuperseded, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScanProduct)
}
