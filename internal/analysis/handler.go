package analysis

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"placement-backend/internal/extract"
	"placement-backend/internal/shared/server/respond"
)

// maxUploadBytes bounds job description uploads (PDF or DOCX).
const maxUploadBytes = 10 << 20

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.createAnalysis)
	rg.POST("/analyses/upload", h.createAnalysisFromUpload)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
	rg.GET("/analyses/:id/export", h.exportAnalysis)
	rg.PATCH("/analyses/:id/confidence", h.updateConfidence)
	rg.DELETE("/analyses/:id", h.deleteAnalysis)
	rg.DELETE("/analyses", h.clearAnalyses)
}

type createAnalysisRequest struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	JDText  string `json:"jdText"`
}

func (h *Handler) createAnalysis(c *gin.Context) {
	var req createAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.runAnalysis(c, AnalyzeInput{Company: req.Company, Role: req.Role, JDText: req.JDText})
}

func (h *Handler) createAnalysisFromUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read upload", nil)
		return
	}

	jdText, err := extract.JDText(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_type", "only PDF and DOCX uploads are supported", nil)
			return
		}
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", "could not extract text from upload", nil)
		return
	}

	h.runAnalysis(c, AnalyzeInput{
		Company: c.PostForm("company"),
		Role:    c.PostForm("role"),
		JDText:  jdText,
	})
}

func (h *Handler) runAnalysis(c *gin.Context, in AnalyzeInput) {
	out, err := h.Svc.Analyze(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyJobDescription):
			respond.Error(c, http.StatusBadRequest, "validation_error", "job description is required", []map[string]string{
				{"field": "jdText", "issue": "required"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze job description", nil)
		}
		return
	}

	resp := gin.H{
		"analysis":       out.Record,
		"scoreBreakdown": out.ScoreBreakdown,
	}
	if out.TooShort {
		resp["warning"] = "Job description looks too short for a reliable analysis."
	}
	respond.JSON(c, http.StatusCreated, resp)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	records, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}
	respond.OK(c, gin.H{"analyses": records, "total": len(records)})
}

func (h *Handler) getAnalysis(c *gin.Context) {
	record, ok := h.fetch(c)
	if !ok {
		return
	}
	respond.OK(c, record)
}

type updateConfidenceRequest struct {
	Skill      string `json:"skill"`
	Confidence string `json:"confidence"`
}

func (h *Handler) updateConfidence(c *gin.Context) {
	id := c.Param("id")
	var req updateConfidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Skill) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "skill is required", nil)
		return
	}

	var (
		record Record
		err    error
	)
	if req.Confidence == "" {
		record, err = h.Svc.ToggleConfidence(c.Request.Context(), id, req.Skill)
	} else {
		record, err = h.Svc.SetConfidence(c.Request.Context(), id, req.Skill, req.Confidence)
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		case errors.Is(err, ErrUnknownSkill):
			respond.Error(c, http.StatusBadRequest, "validation_error", "skill was not detected in this analysis", []map[string]string{
				{"field": "skill", "issue": "unknown"},
			})
		case errors.Is(err, ErrInvalidConfidence):
			respond.Error(c, http.StatusBadRequest, "validation_error", "confidence must be \"know\" or \"practice\"", []map[string]string{
				{"field": "confidence", "issue": "invalid"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update confidence", nil)
		}
		return
	}
	respond.OK(c, record)
}

func (h *Handler) exportAnalysis(c *gin.Context) {
	record, ok := h.fetch(c)
	if !ok {
		return
	}
	// "section" is accepted as an alias for "format".
	format := c.Query("format")
	if format == "" {
		format = c.DefaultQuery("section", ExportSectionReport)
	}
	c.Header("Content-Disposition", `attachment; filename="placement-readiness-`+record.ID+".txt\"")
	c.String(http.StatusOK, RenderExport(record, format))
}

func (h *Handler) deleteAnalysis(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete analysis", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) clearAnalyses(c *gin.Context) {
	if err := h.Svc.Clear(c.Request.Context()); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to clear analyses", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) fetch(c *gin.Context) (Record, bool) {
	id := c.Param("id")
	record, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return Record{}, false
	}
	return record, true
}
