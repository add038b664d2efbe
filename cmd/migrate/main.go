package main

import (
	"log"
	"os"

	"digital-sales-be/internal/model"
	"digital-sales-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.BusinessProfile{},
		&model.Prospect{},
		&model.Conversation{},
		&model.ConversationMessage{},
		&model.ColdEmail{},
		&model.Deal{},
	}

	// Migrate strictly
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Views & Functions
	log.Println("Step 3: Creating Views and Functions...")

	postMigrationSQL := []string{
		// Function: set_current_timestamp_updated_at
		`CREATE OR REPLACE FUNCTION set_current_timestamp_updated_at() RETURNS trigger LANGUAGE plpgsql AS $$
		DECLARE _new_value TIMESTAMP WITH TIME ZONE;
		BEGIN
		  _new_value := now();
		  IF NEW.updated_at IS DISTINCT FROM _new_value THEN NEW.updated_at = _new_value; END IF;
		  RETURN NEW;
		END; $$;`,

		// View: sales_funnel, one row per prospect with its latest touchpoints
		`CREATE OR REPLACE VIEW sales_funnel AS
		 SELECT p.id AS prospect_id, p.company_name, p.lead_score, p.category, p.deal_stage,
		        (SELECT count(*) FROM cold_emails ce WHERE ce.prospect_id = p.id AND ce.deleted_at IS NULL) AS emails_sent,
		        (SELECT count(*) FROM conversations c WHERE c.prospect_id = p.id AND c.deleted_at IS NULL) AS conversations,
		        (SELECT count(*) FROM deals d WHERE d.prospect_id = p.id AND d.deleted_at IS NULL) AS deals
		 FROM prospects p
		 WHERE p.deleted_at IS NULL;`,

		// View: deal_commissions, rewarded deals with their commission payouts
		`CREATE OR REPLACE VIEW deal_commissions AS
		 SELECT d.id AS deal_id, d.prospect_id, p.company_name, d.amount, d.commission_amount, d.sales_agent_id, d.status, d.created_at AS closed_at
		 FROM deals d
		 JOIN prospects p ON d.prospect_id = p.id
		 ORDER BY d.created_at DESC;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
