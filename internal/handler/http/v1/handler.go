package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/checkin_system/internal/auth"
	"github.com/shenikar/checkin_system/internal/config"
	"github.com/shenikar/checkin_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	authService    service.AuthService
	checkinService service.CheckinService
	tokens         *auth.TokenManager
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(authService service.AuthService, checkinService service.CheckinService, tokens *auth.TokenManager, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		authService:    authService,
		checkinService: checkinService,
		tokens:         tokens,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// @Summary Register a new employee
// @Description Register an employee with name, email, mobile, grade and password.
// @Tags Auth
// @Accept json
// @Produce json
// @Param employee body RegisterRequest true "Registration request"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Registration failed"
// @Router /register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee := DTOToEmployeeModel(input)
	if err := h.authService.Register(c.Request.Context(), employee, input.Password); err != nil {
		log.WithError(err).Error("Failed to register employee in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "employee registered successfully"})
}

// @Summary Log in
// @Description Verify credentials and issue a bearer token with a 1-hour expiry.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, grade, err := h.authService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		log.WithError(err).Error("Failed to log in employee in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, Grade: grade})
}

// @Summary Pre-flight check-in permission check
// @Description Advisory check that the employee's grade is allowed at the location. Not enforced by the check-in itself.
// @Tags Checkin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CheckinPermissionRequest true "Permission check request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 "Missing credential"
// @Failure 403 {object} map[string]string "Grade not allowed at this location"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /checkin-request [post]
func (h *Handler) checkinRequest(c *gin.Context) {
	var input CheckinPermissionRequest
	log := h.logger.WithField("method", "checkinRequest")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grade, ok := gradeFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if err := h.checkinService.RequestCheckin(c.Request.Context(), input.LocationID, grade); err != nil {
		if errors.Is(err, service.ErrNotAuthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "employee not authorized at this location"})
			return
		}
		log.WithError(err).Error("Failed to check location permission in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "check-in request approved"})
}

// @Summary Check in at a location
// @Description Record a check-in if the employee is inside the geofence and under the rate limit.
// @Tags Checkin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CheckinRequest true "Check-in request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 "Missing credential"
// @Failure 403 {object} map[string]string "Out of range or check-in limit exceeded"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /checkin [post]
func (h *Handler) checkin(c *gin.Context) {
	var input CheckinRequest
	log := h.logger.WithField("method", "checkin")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employeeID, ok := employeeIDFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	err := h.checkinService.Checkin(c.Request.Context(), employeeID, input.LocationID, input.Latitude, input.Longitude)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLocationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		case errors.Is(err, service.ErrOutOfRange):
			c.JSON(http.StatusForbidden, gin.H{"error": "out of range"})
		case errors.Is(err, service.ErrCheckinLimitExceeded):
			c.JSON(http.StatusForbidden, gin.H{"error": "check-in limit exceeded"})
		default:
			log.WithError(err).Error("Failed to check in employee in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "check-in successful"})
}

// @Summary Check-in history
// @Description Most recent check-ins of the authenticated employee, newest first.
// @Tags Checkin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CheckinRecordResponse
// @Failure 401 "Missing credential"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /checkin-history [get]
func (h *Handler) checkinHistory(c *gin.Context) {
	log := h.logger.WithField("method", "checkinHistory")

	employeeID, ok := employeeIDFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	records, err := h.checkinService.History(c.Request.Context(), employeeID)
	if err != nil {
		log.WithError(err).Error("Failed to get check-in history from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToCheckinRecordResponses(records))
}

// @Summary List locations
// @Description All registered check-in locations.
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} LocationResponse
// @Failure 401 "Missing credential"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [get]
func (h *Handler) listLocations(c *gin.Context) {
	log := h.logger.WithField("method", "listLocations")

	locations, err := h.checkinService.ListLocations(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list locations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToLocationResponses(locations))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
