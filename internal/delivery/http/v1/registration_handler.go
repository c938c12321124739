package v1

import (
	"net/http"

	"go-jobportal-forms/internal/delivery/http/response"
	"go-jobportal-forms/internal/domain"
	"go-jobportal-forms/pkg/apperror"
	"go-jobportal-forms/pkg/validation"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	registrationUC domain.RegistrationUsecase
}

// NewRegistrationHandler registers the recruiter and user sign-up routes.
// guard wraps the submitting routes only.
func NewRegistrationHandler(public *gin.RouterGroup, registrationUC domain.RegistrationUsecase, guard func(form string) gin.HandlerFunc) {
	handler := &RegistrationHandler{registrationUC: registrationUC}

	public.POST("/recruiters", guard("recruiter"), handler.RegisterRecruiter)
	public.POST("/users", guard("user"), handler.RegisterUser)

	validate := public.Group("/validate")
	{
		validate.POST("/recruiter", handler.ValidateRecruiter)
		validate.POST("/user", handler.ValidateUser)
	}
}

// RegisterRecruiter godoc
// @Summary      Register recruiter
// @Description  Validate a recruiter sign-up form and forward it to the portal API. Validation stops at the first failing rule.
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        recruiter  body      domain.RecruiterCandidate  true  "Recruiter form"
// @Success      201        {object}  response.Response{data=domain.SubmissionResult}
// @Failure      400        {object}  response.Response{error=usecase.RegistrationMessages}
// @Failure      409        {object}  response.Response
// @Failure      502        {object}  response.Response
// @Router       /recruiters [post]
func (h *RegistrationHandler) RegisterRecruiter(c *gin.Context) {
	var req domain.RecruiterCandidate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result, err := h.registrationUC.RegisterRecruiter(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, result.Message, result)
}

// RegisterUser godoc
// @Summary      Register user
// @Description  Validate a job-seeker sign-up form and forward it to the portal API. Validation stops at the first failing rule.
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        user  body      domain.UserCandidate  true  "User form"
// @Success      201   {object}  response.Response{data=domain.SubmissionResult}
// @Failure      400   {object}  response.Response{error=usecase.RegistrationMessages}
// @Failure      409   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /users [post]
func (h *RegistrationHandler) RegisterUser(c *gin.Context) {
	var req domain.UserCandidate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result, err := h.registrationUC.RegisterUser(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, result.Message, result)
}

// ValidateRecruiter godoc
// @Summary      Validate recruiter form
// @Description  Return the verdict for a recruiter form without submitting it. Without touched, only the first failure is reported; with touched, every rule runs and the failures of the touched fields are reported. valid always covers the whole form.
// @Tags         validation
// @Accept       json
// @Produce      json
// @Param        recruiter  body      domain.RecruiterCandidate  true  "Recruiter form"
// @Param        touched    query     string                     false "Comma-separated fields to report on"
// @Success      200        {object}  response.Response{data=VerdictResponse}
// @Router       /validate/recruiter [post]
func (h *RegistrationHandler) ValidateRecruiter(c *gin.Context) {
	var req domain.RecruiterCandidate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	fields := touched(c)
	var verdict validation.Verdict
	if len(fields) > 0 {
		verdict = h.registrationUC.InspectRecruiter(c.Request.Context(), &req)
	} else {
		verdict = h.registrationUC.ValidateRecruiter(c.Request.Context(), &req)
	}
	response.Success(c, http.StatusOK, "Validation complete", newVerdictResponse(verdict, fields))
}

// ValidateUser godoc
// @Summary      Validate user form
// @Description  Return the verdict for a user form without submitting it. Without touched, only the first failure is reported; with touched, every rule runs and the failures of the touched fields are reported. valid always covers the whole form.
// @Tags         validation
// @Accept       json
// @Produce      json
// @Param        user     body      domain.UserCandidate  true  "User form"
// @Param        touched  query     string                false "Comma-separated fields to report on"
// @Success      200      {object}  response.Response{data=VerdictResponse}
// @Router       /validate/user [post]
func (h *RegistrationHandler) ValidateUser(c *gin.Context) {
	var req domain.UserCandidate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	fields := touched(c)
	var verdict validation.Verdict
	if len(fields) > 0 {
		verdict = h.registrationUC.InspectUser(c.Request.Context(), &req)
	} else {
		verdict = h.registrationUC.ValidateUser(c.Request.Context(), &req)
	}
	response.Success(c, http.StatusOK, "Validation complete", newVerdictResponse(verdict, fields))
}
