package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/discover-zimbabwe/internal/domain"
	"github.com/njprem/discover-zimbabwe/internal/service"
	"github.com/njprem/discover-zimbabwe/internal/util"
)

type ContactHandler struct {
	contact *service.ContactService
	metrics *Metrics
}

func RegisterInquiries(e *echo.Echo, contact *service.ContactService, metrics *Metrics) {
	handler := &ContactHandler{contact: contact, metrics: metrics}
	e.POST("/api/v1/inquiries", handler.submitInquiry)
}

func (h *ContactHandler) submitInquiry(c echo.Context) error {
	var req domain.Inquiry
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	ack, err := h.contact.Submit(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInquiryIncomplete) {
			h.metrics.ledger("inquiries", outcomeRejected)
			return c.JSON(http.StatusBadRequest, util.Error(service.NoticeFillAllFields))
		}
		h.metrics.ledger("inquiries", outcomeError)
		return c.JSON(http.StatusInternalServerError, util.Error("could not process inquiry"))
	}
	h.metrics.ledger("inquiries", outcomeOK)
	return c.JSON(http.StatusOK, ack)
}
