package api

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"contestboard/internal/api/handler"
	"contestboard/internal/api/middleware"
	"contestboard/internal/config"
	"contestboard/internal/repository"
	"contestboard/internal/repository/dao"
	"contestboard/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()
	engine.SetFuncMap(template.FuncMap{
		"join": strings.Join,
	})
	engine.LoadHTMLGlob(conf.API.TemplatesGlob)

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares(s.initAuthenticator(db))

	contestHandler := s.initContestHandler(db)
	authHandler := s.initAuthHandler(db)
	s.MountHandlers(contestHandler, authHandler)

	return s
}

// Handler wraps the router so form PUT/DELETE overrides are applied before
// route matching.
func (s *Server) Handler() http.Handler {
	return middleware.MethodOverride(s.Router)
}

func (s *Server) initAuthenticator(db *gorm.DB) *middleware.Authenticator {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)

	return middleware.NewAuthenticator(s.Config.API.RememberSigningKey, svc)
}

func (s *Server) initContestHandler(db *gorm.DB) *handler.ContestHandler {
	contestDAO := dao.NewContestDAO(db)
	repo := repository.NewContestRepository(contestDAO)
	svc := service.NewContestService(repo)

	return handler.NewContestHandler(svc)
}

func (s *Server) initAuthHandler(db *gorm.DB) *handler.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)

	return handler.NewAuthHandler(s.Config.API, svc)
}

func (s *Server) MountMiddlewares(authenticator *middleware.Authenticator) {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))

	store := cookie.NewStore([]byte(s.Config.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.Config.Session.MaxAge,
		HttpOnly: true,
	})
	s.Router.Use(sessions.Sessions(s.Config.Session.Name, store))

	s.Router.Use(authenticator.LoadUser())
	s.Router.Use(middleware.ErrorHandler())
}

func (s *Server) MountHandlers(contestHandler *handler.ContestHandler, authHandler *handler.AuthHandler) {
	requireAuth := middleware.RequireAuth()

	contests := s.Router.Group("/contests")
	{
		contests.GET("", contestHandler.HandleIndex)
		contests.GET("/new", requireAuth, contestHandler.HandleNew)
		contests.GET("/:id", contestHandler.HandleShow)
		contests.GET("/:id/edit", requireAuth, contestHandler.HandleEdit)
		contests.POST("", requireAuth, contestHandler.HandleCreate)
		// The legacy route left PUT ungated; that gap is closed here (DESIGN.md).
		contests.PUT("/:id", requireAuth, contestHandler.HandleUpdate)
		contests.DELETE("/:id", requireAuth, contestHandler.HandleDelete)
		contests.POST("/:id/answers", requireAuth, contestHandler.HandleCreateAnswer)
	}

	s.Router.GET("/signup", authHandler.HandleSignupForm)
	s.Router.POST("/signup", authHandler.HandleSignup)
	s.Router.GET("/signin", authHandler.HandleSigninForm)
	s.Router.POST("/signin", authHandler.HandleSignin)
	s.Router.POST("/signout", authHandler.HandleSignout)

	s.Router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/contests")
	})
	s.Router.GET("/healthz", handler.HandleHealthcheck)

	s.Router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "errors/404", gin.H{})
	})
}
