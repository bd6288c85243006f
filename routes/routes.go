package routes

import (
	"time"

	"github.com/rishabhc286/Vital-x/controllers"
	"github.com/rishabhc286/Vital-x/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps bundles the stateful controllers the router needs.
type Deps struct {
	Meals     *controllers.MealController
	Diagnosis *controllers.DiagnosisController
	Chat      *controllers.ChatController
	Dashboard *controllers.DashboardController
	Weather   *controllers.WeatherController
	Devices   *controllers.DeviceController
	Realtime  *controllers.RealtimeController
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/onboarding", controllers.CompleteOnboarding)
		user.GET("/avatars", controllers.ListAvatars)
		user.PUT("/avatar", controllers.SetAvatar)
		user.DELETE("/account", controllers.DeleteAccount)

		user.GET("/alerts", controllers.ListAlerts)
		user.PUT("/alerts/:id/read", controllers.MarkAlertRead)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
		user.POST("/devices", d.Devices.Register)
	}

	realtime := r.Group("/realtime")
	realtime.Use(middlewares.AuthMiddleware())
	{
		realtime.GET("/alerts", d.Realtime.AlertsWS)
	}

	calc := r.Group("/calculator")
	calc.Use(middlewares.AuthMiddleware())
	{
		calc.POST("/run", controllers.RunCalculator)
		calc.GET("/splits", controllers.ListMacroSplits)
		calc.POST("/goal", controllers.ApplyGoal)
		calc.GET("/goal", controllers.GetGoal)
	}

	cycles := r.Group("/cycles")
	cycles.Use(middlewares.AuthMiddleware())
	{
		cycles.POST("", controllers.LogCycle)
		cycles.GET("", controllers.ListCycles)
		cycles.GET("/overview", controllers.GetCycleOverview)
		cycles.GET("/calendar", controllers.GetCycleCalendar)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", d.Meals.LogMeal)
		meals.GET("", d.Meals.ListMeals)
		meals.DELETE("/:id", d.Meals.DeleteMeal)
		meals.GET("/summary", d.Meals.DailySummary)
	}

	activity := r.Group("/activity")
	activity.Use(middlewares.AuthMiddleware())
	{
		activity.PUT("", controllers.UpsertActivity)
		activity.GET("", controllers.GetActivity)
	}

	mental := r.Group("/mental-health")
	mental.Use(middlewares.AuthMiddleware())
	{
		mental.POST("/check-ins", controllers.CreateCheckIn)
		mental.GET("/check-ins", controllers.ListCheckIns)
		mental.GET("/wellness", controllers.GetWellness)
	}

	diagnosis := r.Group("/diagnosis")
	diagnosis.Use(middlewares.AuthMiddleware())
	{
		diagnosis.POST("/assessments", d.Diagnosis.SubmitAssessment)
		diagnosis.GET("/assessments", d.Diagnosis.ListAssessments)
	}

	chat := r.Group("/chat")
	chat.Use(middlewares.AuthMiddleware())
	{
		chat.POST("/messages", d.Chat.SendMessage)
		chat.GET("/messages", d.Chat.History)
		chat.DELETE("/messages", d.Chat.Clear)
	}

	roadmap := r.Group("/roadmap")
	roadmap.Use(middlewares.AuthMiddleware())
	{
		roadmap.GET("", controllers.GetRoadmap)
		roadmap.POST("/toggle", controllers.ToggleRoadmapAction)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("", d.Dashboard.GetDashboard)
		dashboard.POST("/timeline/snapshot", d.Dashboard.SnapshotTimeline)
		dashboard.GET("/timeline", d.Dashboard.GetTimeline)
	}

	environment := r.Group("/environment")
	environment.Use(middlewares.AuthMiddleware())
	{
		environment.GET("", d.Weather.GetEnvironment)
	}

	return r
}
