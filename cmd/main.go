package main

import (
	"log"

	"github.com/rishabhc286/Vital-x/config"
	"github.com/rishabhc286/Vital-x/controllers"
	"github.com/rishabhc286/Vital-x/routes"
	"github.com/rishabhc286/Vital-x/services"
	"github.com/rishabhc286/Vital-x/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitRekognition()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("push service init failed: %v", err)
	}
	services.InitAlertDeps(config.DB, hub, push)

	rek, err := services.NewRekognitionService()
	if err != nil {
		log.Fatalf("rekognition init failed: %v", err)
	}
	mealSvc := services.NewMealService(rek)
	aiSvc := services.NewAIService()

	r := routes.SetupRouter(routes.Deps{
		Meals:     controllers.NewMealController(mealSvc),
		Diagnosis: controllers.NewDiagnosisController(services.NewDiagnosisService(aiSvc)),
		Chat:      controllers.NewChatController(aiSvc),
		Dashboard: controllers.NewDashboardController(services.NewDashboardService(mealSvc)),
		Weather:   controllers.NewWeatherController(services.NewWeatherService()),
		Devices:   controllers.NewDeviceController(push),
		Realtime:  controllers.NewRealtimeController(hub),
	})

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
