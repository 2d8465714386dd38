package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/config"
	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/controllers"
	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/middlewares"
	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/services"
	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/utils"
)

func SetupRouter(db *gorm.DB, cfg config.Config, store utils.ObjectStore) *gin.Engine {
	users := services.NewUserService(db)

	sc := controllers.NewSessionController(users, cfg.JWTSecret)
	mc := controllers.NewMedicationController(services.NewMedicationService(db))
	ac := controllers.NewAppointmentController(services.NewAppointmentService(db))
	dc := controllers.NewDocumentController(services.NewDocumentService(db, store))
	vc := controllers.NewVitalController(services.NewVitalService(db))

	r := gin.Default()

	// Public: the dev stand-in for the external authenticator
	auth := r.Group("/auth")
	{
		auth.POST("/session", sc.Create)
	}

	// Everything else is owner-scoped behind the resolved identity
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(cfg.JWTSecret, users))
	{
		api.GET("/me", sc.Me)

		meds := api.Group("/medications")
		{
			meds.GET("", mc.List)
			meds.POST("", mc.Create)
			meds.PUT("/:id", mc.Update)
			meds.DELETE("/:id", mc.Delete)
		}

		appts := api.Group("/appointments")
		{
			appts.GET("", ac.List)
			appts.GET("/upcoming", ac.Upcoming)
			appts.POST("", ac.Create)
			appts.PUT("/:id", ac.Update)
			appts.DELETE("/:id", ac.Delete)
		}

		docs := api.Group("/documents")
		{
			docs.GET("", dc.List)
			docs.POST("", dc.Upload)
			docs.GET("/:id/download", dc.Download)
			docs.DELETE("/:id", dc.Delete)
		}

		vitals := api.Group("/vitals")
		{
			vitals.GET("", vc.List)
			vitals.POST("", vc.Create)
			vitals.DELETE("/:id", vc.Delete)
		}
	}

	return r
}
