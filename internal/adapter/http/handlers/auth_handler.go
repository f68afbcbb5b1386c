package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "oficina_jobs/internal/adapter/http/dto/request"
	response "oficina_jobs/internal/adapter/http/dto/response"
	"oficina_jobs/internal/usecase"
	"oficina_jobs/pkg/logger"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
	log     *zap.Logger
}

func NewAuthHandler(uc usecase.IAuthUseCase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{usecase: uc, log: logger.OrNop(log)}
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges employee credentials for a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "Credentials"
// @Success      200   {object}  response.LoginResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, "[auth][handler] invalid payload", bindError(err))
		return
	}

	res, err := h.usecase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.log, "[auth][handler] login failed", mapUseCaseError(err))
		return
	}
	h.log.Info("[auth][handler] login success", zap.String("employee_id", res.Employee.ID))

	c.JSON(http.StatusOK, response.FromLogin(res))
}
