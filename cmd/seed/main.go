package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"digital-sales-be/internal/model"
	"digital-sales-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

// Seeds a demo business profile and a pair of prospects so the dashboard has
// data to show before the first automated research run.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo business profile...")

	now := time.Now()
	profile := model.BusinessProfile{
		BusinessGoal:          "Sell AI-powered sales automation to B2B software companies",
		ProductDescription:    "an AI sales agent that researches prospects and runs outreach end to end",
		TargetMarket:          "B2B SaaS companies",
		ValueProposition:      "close more deals with a fraction of the headcount",
		PricingModel:          "subscription",
		WorkflowInitiated:     false,
		OnboardingCompletedAt: &now,
	}

	var existingProfiles int64
	db.Model(&model.BusinessProfile{}).Count(&existingProfiles)
	if existingProfiles > 0 {
		color.Yellow("Business profile already present, skipping...")
	} else if err := db.Create(&profile).Error; err != nil {
		color.Red("Error creating business profile: %v", err)
	} else {
		color.Green("Created business profile %s", profile.Id)
	}

	color.Cyan("Seeding demo prospects...")

	prospects := []model.Prospect{
		{
			CompanyName: "Technology Solutions Inc",
			Domain:      "technology-company.com",
			Industry:    "Technology",
			CompanySize: "50-200",
			Contacts:    mustContacts(`[{"name":"John Smith","email":"john.smith@technology-company.com","title":"CEO","department":"Executive","decision_maker":true}]`),
			LeadScore:   8.2,
			Category:    "hot",
			DealStage:   "prospect",
		},
		{
			CompanyName: "Technology Flow Ltd",
			Domain:      "techflow.io",
			Industry:    "Technology",
			CompanySize: "10-50",
			Contacts:    mustContacts(`[{"name":"Sarah Johnson","email":"sarah@techflow.io","title":"CTO","department":"Technology","decision_maker":true}]`),
			LeadScore:   6.8,
			Category:    "warm",
			DealStage:   "prospect",
		},
	}

	for _, p := range prospects {
		var existing model.Prospect
		if err := db.Where("company_name = ?", p.CompanyName).First(&existing).Error; err == nil {
			color.Yellow("Prospect '%s' already exists, skipping...", p.CompanyName)
			continue
		}

		if err := db.Create(&p).Error; err != nil {
			color.Red("Error creating prospect '%s': %v", p.CompanyName, err)
		} else {
			color.Green("Created prospect: %s (%s)", p.CompanyName, p.Category)
		}
	}

	color.Green("Seeding completed!")
}

func mustContacts(raw string) datatypes.JSON {
	var check []map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &check); err != nil {
		log.Fatalf("Error: invalid seed contact JSON: %v", err)
	}
	return datatypes.JSON([]byte(raw))
}
