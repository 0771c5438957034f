package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"finodex/internal/export"
	"finodex/internal/port"
)

const exportFetchLimit = 1000

// OfferHandler serves stored offer extractions.
type OfferHandler struct {
	offers port.OfferRepository
}

func NewOfferHandler(offers port.OfferRepository) *OfferHandler {
	return &OfferHandler{offers: offers}
}

// List returns persisted offers, newest first, optionally filtered by type.
func (h *OfferHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	records, total, err := h.offers.List(c.Request.Context(), c.Query("document_type"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, gin.H{
		"offers": records,
		"total":  total,
		"offset": offset,
		"limit":  limit,
	})
}

// Export streams the stored offers as an XLSX workbook.
func (h *OfferHandler) Export(c *gin.Context) {
	records, _, err := h.offers.List(c.Request.Context(), c.Query("document_type"), 0, exportFetchLimit)
	if err != nil {
		HandleError(c, err)
		return
	}

	data, err := export.OffersXLSX(records)
	if err != nil {
		HandleError(c, err)
		return
	}

	name := fmt.Sprintf("offers-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return offset, limit
}
