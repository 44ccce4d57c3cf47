package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/logging"
	"github.com/gitCabezas/PontoJovem/internal/validate"
	"github.com/gitCabezas/PontoJovem/metrics"
)

// Routes is the return value of GenerateRoutes.
type Routes struct {
	http.Handler
}

// GenerateRoutes constructs the http.Handler for the primary http server.
//
// The order of routes in this function is important! Gin saves a route along
// with all the middleware that will apply to the route when the
// Router.{GET,POST,etc} method is called.
func (s *Server) GenerateRoutes(promRegistry prometheus.Registerer) Routes {
	a := &API{server: s}
	router := gin.New()
	router.NoRoute(notFoundHandler)

	router.Use(gin.Recovery())
	router.GET("/healthz", healthHandler)

	router.Use(
		logging.Middleware(s.options.EnableLogSampling),
		TimeoutMiddleware(s.options.API.RequestTimeout),
	)

	api := router.Group("/",
		metrics.Middleware(promRegistry),
		DatabaseMiddleware(s.db), // must be after TimeoutMiddleware to time out db queries.
	)

	// the mobile app expects every route under this prefix
	mobile := api.Group("/bk-mobile")

	post(a, mobile, "/usuario", http.StatusCreated, a.CreateUser)
	post(a, mobile, "/login", http.StatusOK, a.Login)
	get(a, mobile, "/usuario/:id", a.GetUser)
	// the update route uses the english noun, older app builds depend on it
	put(a, mobile, "/user/:id", a.UpdateUser)

	post(a, mobile, "/recuperar-senha", http.StatusOK, a.RequestPasswordReset)
	post(a, mobile, "/redefinir-senha", http.StatusOK, a.ResetPassword)
	get(a, mobile, "/validar-token/:token", a.ValidateResetToken)
	// the link in the recovery email opens this form in the browser
	mobile.GET("/redefinir-senha", a.resetFormHandler)

	post(a, mobile, "/ponto/entrada", http.StatusCreated, a.RegisterEntry)
	post(a, mobile, "/ponto/saida", http.StatusOK, a.RegisterExit)
	get(a, mobile, "/ponto/:user_id", a.ListPunches)
	// multipart upload, handled outside the typed helpers
	mobile.POST("/ponto/upload-justificativa", a.uploadJustificationHandler)
	post(a, mobile, "/ponto/relatorio", http.StatusOK, a.GenerateReport)

	return Routes{Handler: router}
}

type ReqResHandlerFunc[Req, Res any] func(c *gin.Context, req *Req) (Res, error)

func get[Req, Res any](a *API, r *gin.RouterGroup, route string, handler ReqResHandlerFunc[Req, Res]) {
	r.GET(route, func(c *gin.Context) {
		req := new(Req)
		if err := bind(c, req); err != nil {
			sendAPIError(c, err)
			return
		}

		resp, err := handler(c, req)
		if err != nil {
			sendAPIError(c, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	})
}

func post[Req, Res any](a *API, r *gin.RouterGroup, route string, status int, handler ReqResHandlerFunc[Req, Res]) {
	r.POST(route, func(c *gin.Context) {
		req := new(Req)
		if err := bind(c, req); err != nil {
			sendAPIError(c, err)
			return
		}

		resp, err := handler(c, req)
		if err != nil {
			sendAPIError(c, err)
			return
		}

		c.JSON(status, resp)
	})
}

func put[Req, Res any](a *API, r *gin.RouterGroup, route string, handler ReqResHandlerFunc[Req, Res]) {
	r.PUT(route, func(c *gin.Context) {
		req := new(Req)
		if err := bind(c, req); err != nil {
			sendAPIError(c, err)
			return
		}

		resp, err := handler(c, req)
		if err != nil {
			sendAPIError(c, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	})
}

func bind(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindUri(req); err != nil {
		return fmt.Errorf("%w: %s", internal.ErrBadRequest, err)
	}

	if err := c.ShouldBindQuery(req); err != nil {
		return fmt.Errorf("%w: %s", internal.ErrBadRequest, err)
	}

	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(req); err != nil {
			return fmt.Errorf("%w: %s", internal.ErrBadRequest, err)
		}
	}

	if r, ok := req.(validate.Request); ok {
		if err := validate.Validate(r); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	gin.DisableBindValidation()
}

func healthHandler(c *gin.Context) {
	c.Status(http.StatusOK)
}

func notFoundHandler(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/bk-mobile") {
		sendAPIError(c, internal.ErrNotFound)
		return
	}

	c.Status(http.StatusNotFound)
}
