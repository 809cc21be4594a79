package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-folio/config"
	"resume-folio/dto"
	"resume-folio/extractor"
	"resume-folio/generator"
	"resume-folio/internal/logger"
	"resume-folio/internal/trace"
	"resume-folio/services"
)

// maxResumeBytes bounds the uploaded file size; resumes are small documents.
const maxResumeBytes = 10 << 20 // 10 MiB

// HealthHandler godoc
// @Summary      Gateway health
// @Description  Reports gateway status and whether the generation API key is configured
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func HealthHandler(keyConfigured func() bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		if !keyConfigured() {
			status = "degraded"
		}
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:            status,
			GroqKeyConfigured: keyConfigured(),
		})
	}
}

// HealthKeyCheck reads the generation credential flag from the app config.
func HealthKeyCheck() func() bool {
	return func() bool {
		return config.GetConfig().GenerationKeyConfigured()
	}
}

// UploadResumeHandler godoc
// @Summary      Generate a portfolio site from a resume
// @Description  Accepts a PDF or DOCX resume, extracts its text, and returns generated HTML/CSS/JS
// @Tags         sites
// @Accept       multipart/form-data
// @Param        file  formData  file  true  "Resume file (.pdf or .docx)"
// @Produce      json
// @Success      200  {object}  dto.SiteCode
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /upload-resume/ [post]
func UploadResumeHandler(svc *services.SiteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "file is required"})
			return
		}
		if fileHeader.Size > maxResumeBytes {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "file too large"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "could not read uploaded file"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxResumeBytes+1))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "could not read uploaded file"})
			return
		}

		contentType := fileHeader.Header.Get("Content-Type")
		site, err := svc.GenerateFromResume(c.Request.Context(), fileHeader.Filename, contentType, data)
		if err != nil {
			status, detail := mapGenerateError(err)
			logger.WarnWithFields("resume generation failed", logger.Fields{
				"filename":   fileHeader.Filename,
				"status":     status,
				"detail":     detail,
				"request_id": trace.RequestIDFromContext(c.Request.Context()),
			})
			c.JSON(status, dto.ErrorResponse{Detail: detail})
			return
		}
		c.JSON(http.StatusOK, site)
	}
}

func mapGenerateError(err error) (int, string) {
	switch {
	case errors.Is(err, extractor.ErrUnsupportedType):
		return http.StatusBadRequest, "Only PDF and DOCX are allowed"
	case errors.Is(err, extractor.ErrNoText):
		return http.StatusBadRequest, "No text extracted from resume"
	case errors.Is(err, generator.ErrBadModelOutput):
		return http.StatusBadGateway, err.Error()
	default:
		return http.StatusBadGateway, err.Error()
	}
}

// DeploySiteHandler godoc
// @Summary      Deploy a generated site
// @Description  Forwards the site source to the configured hosting provider and returns its public URL
// @Tags         sites
// @Accept       json
// @Param        site  body  dto.DeployRequest  true  "Site source"
// @Produce      json
// @Success      200  {object}  dto.DeployResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /deploy-site/ [post]
func DeploySiteHandler(svc *services.SiteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.DeployRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "invalid request body"})
			return
		}

		url, err := svc.Deploy(c.Request.Context(), req)
		if err != nil {
			status := http.StatusBadGateway
			if errors.Is(err, services.ErrEmptySite) {
				status = http.StatusBadRequest
			}
			logger.WarnWithFields("site deployment failed", logger.Fields{
				"status":     status,
				"detail":     err.Error(),
				"request_id": trace.RequestIDFromContext(c.Request.Context()),
			})
			c.JSON(status, dto.ErrorResponse{Detail: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.DeployResponse{URL: url})
	}
}
