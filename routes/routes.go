package routes

import (
	"time"

	"github.com/Omoefe-bazunu/hhaven/handlers"
	"github.com/Omoefe-bazunu/hhaven/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterContentRoutes registers the content catalog endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/content")
	{
		api.GET("/recent", hb.RecentContentHandler)
		api.GET("/search", hb.SearchContentHandler)
		api.GET("/:type", hb.ListContentHandler)
		api.GET("/:type/:id", hb.GetContentItemHandler)
	}
}

// RegisterNoticeRoutes registers notice and read-state endpoints. Identity is
// optional on all of them: guests read notices too, they just carry no read
// state.
func RegisterNoticeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notices")
	{
		api.Use(middleware.UserIdentityMiddleware())
		api.GET("", hb.ListNoticesHandler)
		api.GET("/read", hb.ReadNoticesHandler)
		api.GET("/unread", hb.UnreadCountHandler)
		api.GET("/unread/stream", hb.StreamUnreadHandler)
		api.POST("/:id/read", hb.MarkNoticeReadHandler)
	}
}

// RegisterQuizRoutes registers quiz resource filters and help questions.
func RegisterQuizRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quiz")
	{
		api.GET("/resources", hb.FilterQuizResourcesHandler)
		api.POST("/help", hb.SubmitHelpQuestionHandler)
	}
}

// RegisterAppRoutes registers the remaining public endpoints.
func RegisterAppRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/contact", hb.SubmitContactMessageHandler)
		api.GET("/hymnal/:type", hb.HymnalHandler)
		api.GET("/i18n/locales", hb.ListLocalesHandler)
		api.GET("/i18n/:locale", hb.LocaleTableHandler)
		api.GET("/info", hb.AppInfoHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminLoginHandler)

		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.POST("/content/:type", hb.UploadContentHandler)
		adminGroup.POST("/notices", hb.PublishNoticeHandler)
		adminGroup.GET("/contact", hb.ListContactMessagesHandler)
		adminGroup.GET("/quiz/help", hb.ListHelpQuestionsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterContentRoutes(r, hb)
	RegisterNoticeRoutes(r, hb)
	RegisterQuizRoutes(r, hb)
	RegisterAppRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
