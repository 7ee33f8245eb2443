package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ppiankov/pantrymap/internal/category"
	"github.com/ppiankov/pantrymap/internal/classify"
	"github.com/ppiankov/pantrymap/internal/model"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	lookup     Lookup
	classifier *classify.Classifier
	version    string
}

// NewHandler creates a new HTTP handler
func NewHandler(lookup Lookup, classifier *classify.Classifier, version string) *Handler {
	return &Handler{lookup: lookup, classifier: classifier, version: version}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	entries, err := h.lookup.Count(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusServiceUnavailable, "lookup unavailable")
		return
	}
	body := gin.H{
		"status":  "healthy",
		"service": "pantrymap",
		"version": h.version,
		"entries": entries,
	}
	if runs, ok := h.lookup.(RunHistory); ok {
		if run, err := runs.LatestRun(c.Request.Context()); err == nil && run != nil {
			body["run_id"] = run.ID
			body["built_at"] = run.FinishedAt.UTC()
		}
	}
	c.JSON(http.StatusOK, body)
}

type categoryEntry struct {
	Ordinal  int    `json:"ordinal"`
	Name     string `json:"name"`
	Reserved bool   `json:"reserved,omitempty"`
	Entries  int    `json:"entries"`
}

// ListCategories returns the registry in ordinal order with the number of
// served entries per category
func (h *Handler) ListCategories(c *gin.Context) {
	dist, err := h.lookup.Distribution(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusServiceUnavailable, "lookup unavailable")
		return
	}
	entries := make(map[int]int, len(dist))
	for _, cc := range dist {
		entries[cc.Ordinal] = cc.Count
	}

	out := make([]categoryEntry, 0, category.Count)
	for _, id := range category.All() {
		out = append(out, categoryEntry{
			Ordinal:  int(id),
			Name:     id.String(),
			Reserved: !id.Valid(),
			Entries:  entries[int(id)],
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

// GetIngredient looks a name up in the built artifact
func (h *Handler) GetIngredient(c *gin.Context) {
	name := classify.NormalizeName(c.Param("name"))
	if name == "" {
		sendError(c, http.StatusBadRequest, "name is required")
		return
	}

	ing, err := h.lookup.Get(c.Request.Context(), name)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "lookup failed")
		return
	}
	if ing == nil {
		sendError(c, http.StatusNotFound, "ingredient not found")
		return
	}
	c.JSON(http.StatusOK, ing)
}

// ClassifyRequest is an ad-hoc record to run through the engine
type ClassifyRequest struct {
	Name      string            `json:"name" binding:"required"`
	Primary   string            `json:"main_category"`
	Tags      string            `json:"categories_tags"`
	Labels    string            `json:"labels"`
	Allergens string            `json:"allergens"`
	Nutrition map[string]string `json:"nutrition"`
}

// ClassifyResponse is the engine's decision for a ClassifyRequest
type ClassifyResponse struct {
	Name     string          `json:"name"`
	Kind     string          `json:"kind"`
	Category string          `json:"category,omitempty"`
	Ordinal  *int            `json:"ordinal,omitempty"`
	Source   string          `json:"source,omitempty"`
	Reason   string          `json:"reason,omitempty"`
	Meta     *model.Metadata `json:"meta,omitempty"`
}

// Classify runs the engine on a posted record
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	rec := model.Record{
		Name:      req.Name,
		Primary:   req.Primary,
		Tags:      req.Tags,
		Labels:    req.Labels,
		Allergens: req.Allergens,
		Nutrition: model.NutritionFields{
			EnergyKcal: req.Nutrition["energy_kcal"],
			Protein:    req.Nutrition["protein"],
			Carbs:      req.Nutrition["carbs"],
			Fat:        req.Nutrition["fat"],
			Fiber:      req.Nutrition["fiber"],
			Sodium:     req.Nutrition["sodium"],
		},
	}

	out := h.classifier.Evaluate(rec, true)
	res := out.Result
	resp := ClassifyResponse{Name: res.Name, Kind: res.Kind.String(), Reason: res.Reason}
	if res.Kind == classify.Classified {
		ord := int(res.Category)
		resp.Category = res.Category.String()
		resp.Ordinal = &ord
		resp.Source = res.Source.String()
		resp.Meta = out.Meta
	}
	c.JSON(http.StatusOK, resp)
}

func sendError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error":      message,
		"request_id": requestID(c),
	})
}
