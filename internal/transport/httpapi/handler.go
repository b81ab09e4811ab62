package httpapi

import (
	"net/http"
	"strings"

	"inventory-manager/internal/access"
	"inventory-manager/internal/models"
	"inventory-manager/internal/seed"
	"inventory-manager/internal/service"
	"inventory-manager/internal/sortutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	svc  service.InventoryService
	gate *access.Gate
	log  *zap.Logger
}

func NewHandler(svc service.InventoryService, gate *access.Gate, log *zap.Logger) *Handler {
	return &Handler{svc: svc, gate: gate, log: log}
}

// ListItems returns the current snapshot, optionally filtered by the `q`
// substring on name/sku and ordered by `sort`/`order`. Filtering and
// comparator selection live here, outside the state manager.
func (h *Handler) ListItems(c *gin.Context) {
	items := h.svc.Items(c.Request.Context())

	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		filtered := items[:0]
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Name), q) ||
				strings.Contains(strings.ToLower(it.SKU), q) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	if key := c.DefaultQuery("sort", ""); key != "" {
		cmp, ok := comparatorFor(key)
		if !ok {
			RespondError(c, &service.ValidationError{Field: "sort", Reason: "unknown sort key: " + key})
			return
		}
		if c.DefaultQuery("order", "asc") == "desc" {
			inner := cmp
			cmp = func(a, b models.Item) int { return -inner(a, b) }
		}
		items = sortutil.Sorted(items, cmp)
	}

	RespondRecords(c, "ok", items)
}

func comparatorFor(key string) (func(a, b models.Item) int, bool) {
	switch key {
	case "name":
		return func(a, b models.Item) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}, true
	case "sku":
		return func(a, b models.Item) int { return strings.Compare(a.SKU, b.SKU) }, true
	case "quantity":
		return func(a, b models.Item) int {
			switch {
			case a.Quantity < b.Quantity:
				return -1
			case a.Quantity > b.Quantity:
				return 1
			default:
				return 0
			}
		}, true
	case "price":
		return func(a, b models.Item) int {
			switch {
			case a.Price < b.Price:
				return -1
			case a.Price > b.Price:
				return 1
			default:
				return 0
			}
		}, true
	default:
		return nil, false
	}
}

func (h *Handler) GetBySKU(c *gin.Context) {
	item, err := h.svc.LookupBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, "ok", item)
}

func (h *Handler) CreateItem(c *gin.Context) {
	var draft models.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		RespondError(c, &service.ValidationError{Field: "body", Reason: "invalid request body"})
		return
	}

	item, err := h.svc.AddItem(c.Request.Context(), draft)
	if err != nil {
		RespondError(c, err)
		return
	}

	h.log.Info("item created", zap.String("id", item.ID.String()), zap.String("sku", item.SKU))
	c.JSON(http.StatusCreated, Envelope{OK: true, Message: "item created", Record: item})
}

func (h *Handler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, service.ErrItemNotFound)
		return
	}

	var draft models.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		RespondError(c, &service.ValidationError{Field: "body", Reason: "invalid request body"})
		return
	}

	item, err := h.svc.UpdateItem(c.Request.Context(), id, draft)
	if err != nil {
		RespondError(c, err)
		return
	}

	h.log.Info("item updated", zap.String("id", item.ID.String()), zap.String("sku", item.SKU))
	RespondOK(c, "item updated", item)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, service.ErrItemNotFound)
		return
	}

	if err := h.svc.DeleteItem(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}

	h.log.Info("item deleted", zap.String("id", id.String()))
	RespondOK(c, "item deleted", nil)
}

func (h *Handler) ResetItems(c *gin.Context) {
	if err := h.svc.ResetToSeed(c.Request.Context(), seed.Items()); err != nil {
		RespondError(c, err)
		return
	}

	h.log.Info("inventory reset to demo data")
	RespondRecords(c, "inventory reset", h.svc.Items(c.Request.Context()))
}

type unlockRequest struct {
	Secret string `json:"secret"`
}

func (h *Handler) Unlock(c *gin.Context) {
	var req unlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, &service.ValidationError{Field: "body", Reason: "invalid request body"})
		return
	}

	if !h.gate.Unlock(req.Secret) {
		h.log.Warn("unlock rejected")
		c.JSON(http.StatusForbidden, Envelope{OK: false, Message: "invalid secret"})
		return
	}

	RespondOK(c, "write access unlocked", nil)
}

func (h *Handler) Lock(c *gin.Context) {
	h.gate.Lock()
	RespondOK(c, "write access locked", nil)
}

func (h *Handler) AccessStatus(c *gin.Context) {
	RespondOK(c, "ok", gin.H{"can_write": h.gate.CanWrite()})
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
