package v1

import (
	"net/http"

	"go-jobportal-forms/internal/delivery/http/response"
	"go-jobportal-forms/internal/domain"
	"go-jobportal-forms/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes. r must already require
// a logged-in user.
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase, guard func(form string) gin.HandlerFunc) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	jobs := r.Group("/jobs/:jobId")
	{
		jobs.POST("/applications", guard("application"), handler.ApplyToJob)
		jobs.POST("/applications/validate", handler.ValidateApplication)
	}
}

// bind reads the form body and takes the job id from the route
func (h *ApplicationHandler) bind(c *gin.Context) (*domain.JobApplication, bool) {
	var req domain.JobApplication
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return nil, false
	}
	req.JobID = c.Param("jobId")
	return &req, true
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Validate every application field and forward the application to the portal API
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        jobId  path      string                 true  "Job ID"
// @Param        body   body      domain.JobApplication  true  "Application form"
// @Success      201    {object}  response.Response{data=domain.SubmissionResult}
// @Failure      400    {object}  response.Response{error=usecase.ApplicationFields}
// @Failure      401    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Failure      502    {object}  response.Response
// @Router       /jobs/{jobId}/applications [post]
func (h *ApplicationHandler) ApplyToJob(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	result, err := h.applicationUC.Apply(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, result.Message, result)
}

// ValidateApplication godoc
// @Summary      Validate application form
// @Description  Return the per-field verdict for an application without submitting it
// @Tags         validation
// @Accept       json
// @Produce      json
// @Param        jobId    path      string                 true   "Job ID"
// @Param        body     body      domain.JobApplication  true   "Application form"
// @Param        touched  query     string                 false  "Comma-separated fields to report on"
// @Success      200      {object}  response.Response{data=VerdictResponse}
// @Router       /jobs/{jobId}/applications/validate [post]
func (h *ApplicationHandler) ValidateApplication(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	verdict := h.applicationUC.Validate(c.Request.Context(), req)
	response.Success(c, http.StatusOK, "Validation complete", newVerdictResponse(verdict, touched(c)))
}
