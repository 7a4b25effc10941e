package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/max9849/webflow-offres-api/internal/models"
	"github.com/max9849/webflow-offres-api/internal/service"
)

// OfferService is the slice of the proxy service the handlers consume.
type OfferService interface {
	List(ctx context.Context, limit, offset int) (*models.OfferList, error)
	Create(ctx context.Context, in models.OfferInput, publish bool) (*service.WriteResult, error)
	Get(ctx context.Context, id string) (*models.JobOffer, error)
	GetBySlug(ctx context.Context, slug string) (*models.JobOffer, error)
	Update(ctx context.Context, id string, in models.OfferInput, publish *bool) (*service.WriteResult, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	offers OfferService
}

func NewHandler(offers OfferService) *Handler {
	return &Handler{offers: offers}
}

// offerRequest is the inbound body for create and update. "type" is the
// historical external name for the contract type.
type offerRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Company          string `json:"company"`
	Location         string `json:"location"`
	Type             string `json:"type"`
	Salary           string `json:"salary"`
	Email            string `json:"email"`
	Telephone        string `json:"telephone"`
	Address          string `json:"address"`
	Responsibilities string `json:"responsibilities"`
	Profile          string `json:"profile"`
	Publish          *bool  `json:"publish"`
}

func (r offerRequest) input() models.OfferInput {
	return models.OfferInput{
		Title:            r.Title,
		Description:      r.Description,
		Company:          r.Company,
		Location:         r.Location,
		ContractType:     r.Type,
		Salary:           r.Salary,
		Email:            r.Email,
		Telephone:        r.Telephone,
		Address:          r.Address,
		Responsibilities: r.Responsibilities,
		Profile:          r.Profile,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) ListOffers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	page, err := h.offers.List(c.Request.Context(), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"count": len(page.Items),
		"items": page.Items,
		"pagination": gin.H{
			"limit":  page.Limit,
			"offset": page.Offset,
			"total":  page.Total,
		},
	})
}

func (h *Handler) CreateOffer(c *gin.Context) {
	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid JSON body"})
		return
	}

	publish := req.Publish != nil && *req.Publish
	res, err := h.offers.Create(c.Request.Context(), req.input(), publish)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, writeBody(res))
}

func (h *Handler) GetOffer(c *gin.Context) {
	offer, err := h.offers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "item": offer})
}

func (h *Handler) GetOfferBySlug(c *gin.Context) {
	offer, err := h.offers.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "item": offer})
}

func (h *Handler) UpdateOffer(c *gin.Context) {
	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid JSON body"})
		return
	}

	res, err := h.offers.Update(c.Request.Context(), c.Param("id"), req.input(), req.Publish)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, writeBody(res))
}

func (h *Handler) DeleteOffer(c *gin.Context) {
	if err := h.offers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// writeBody shapes a write result; a partial publish surfaces as a warning
// next to the item, never as a silent full success.
func writeBody(res *service.WriteResult) gin.H {
	body := gin.H{"ok": true, "item": res.Offer}
	if res.Warning != "" {
		body["warning"] = res.Warning
	}
	return body
}

// writeError maps the service error taxonomy onto HTTP statuses. Remote
// verdicts pass their body through in detail; transport failures are 503 and
// retryable at the client's discretion.
func writeError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	var nfErr *service.NotFoundError
	var rErr *service.RemoteError
	var tErr *service.TransportError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": vErr.Msg})
	case errors.As(err, &nfErr):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": nfErr.Error()})
	case errors.As(err, &rErr):
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "remote API rejected the request", "detail": rErr.Body})
	case errors.As(err, &tErr):
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "remote API unreachable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
	}
	_ = c.Error(err)
}
