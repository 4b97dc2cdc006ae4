package main

import (
	"mentorhub/config"
	"mentorhub/database"
	assessmentRoutes "mentorhub/routers/assessmentRoutes"
	authRoutes "mentorhub/routers/authRoutes"
	classRoutes "mentorhub/routers/classRoutes"
	mentorshipRoutes "mentorhub/routers/mentorshipRoutes"
	participantRoutes "mentorhub/routers/participantRoutes"
	"mentorhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	mentorshipRoutes.SetupMentorshipRoutes(app)
	classRoutes.SetupClassRoutes(app)
	participantRoutes.SetupParticipantRoutes(app)
	assessmentRoutes.SetupAssessmentRoutes(app)

	// Moves class cohorts across their scheduled windows once an hour
	utils.StartClassScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
