package main

import (
	"log"
	"os"
	"time"

	"crm-hub-be/internal/model"
	"crm-hub-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
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

	color.Cyan("Seeding CRM demo data\n")

	agent := seedAgent(db)
	companies := seedCompanies(db, agent.Id)
	contacts := seedContacts(db, agent.Id, companies)
	seedDeals(db, agent.Id, contacts, companies)
	seedTickets(db, agent.Id, contacts)
	seedCampaigns(db, agent.Id)
	seedArticles(db, agent.Id)

	color.Green("\nDone. Login with demo@crmhub.dev / password123")
}

func seedAgent(db *gorm.DB) model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	agent := model.User{
		Email:        "demo@crmhub.dev",
		PasswordHash: string(hash),
		FirstName:    "Demo",
		LastName:     "Agent",
		Role:         "admin",
	}

	var existing model.User
	if err := db.Where("email = ?", agent.Email).First(&existing).Error; err == nil {
		color.Yellow("Agent already seeded, reusing %s", existing.Email)
		return existing
	}

	if err := db.Create(&agent).Error; err != nil {
		log.Fatalf("Error: Failed to seed agent: %v", err)
	}
	color.Green("Seeded agent %s", agent.Email)
	return agent
}

func seedCompanies(db *gorm.DB, createdBy uuid.UUID) []model.Company {
	companies := []model.Company{
		{Name: "Northwind Traders", Domain: "northwind.example", Industry: "Retail", Size: "51-200", City: "Seattle", Country: "USA", CreatedBy: &createdBy},
		{Name: "Globex Corporation", Domain: "globex.example", Industry: "Manufacturing", Size: "201-500", City: "Springfield", Country: "USA", CreatedBy: &createdBy},
		{Name: "Initech", Domain: "initech.example", Industry: "Software", Size: "11-50", City: "Austin", Country: "USA", CreatedBy: &createdBy},
	}
	for i := range companies {
		if err := db.Create(&companies[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed company: %v", err)
		}
	}
	color.Green("Seeded %d companies", len(companies))
	return companies
}

func seedContacts(db *gorm.DB, createdBy uuid.UUID, companies []model.Company) []model.Contact {
	contacts := []model.Contact{
		{FirstName: "Alice", LastName: "Nguyen", Email: "alice@northwind.example", JobTitle: "Head of Ops", CompanyId: &companies[0].Id, LeadStatus: "qualified", LeadSource: "referral", CreatedBy: &createdBy},
		{FirstName: "Bruno", LastName: "Silva", Email: "bruno@globex.example", JobTitle: "Procurement Lead", CompanyId: &companies[1].Id, LeadStatus: "contacted", LeadSource: "webinar", CreatedBy: &createdBy},
		{FirstName: "Chloe", LastName: "Martin", Email: "chloe@initech.example", JobTitle: "CTO", CompanyId: &companies[2].Id, LeadStatus: "new", LeadSource: "website", CreatedBy: &createdBy},
		{FirstName: "Dmitri", LastName: "Petrov", Email: "dmitri@initech.example", JobTitle: "Engineer", CompanyId: &companies[2].Id, LeadStatus: "customer", LeadSource: "website", CreatedBy: &createdBy},
	}
	for i := range contacts {
		if err := db.Create(&contacts[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed contact: %v", err)
		}
	}
	color.Green("Seeded %d contacts", len(contacts))
	return contacts
}

func seedDeals(db *gorm.DB, createdBy uuid.UUID, contacts []model.Contact, companies []model.Company) {
	amount1, amount2, amount3 := 24000.0, 87500.0, 12000.0
	closeDate := time.Now().AddDate(0, 1, 0)
	deals := []model.Deal{
		{Title: "Northwind annual license", Amount: &amount1, Stage: "proposal", Probability: 60, CloseDate: &closeDate, ContactId: &contacts[0].Id, CompanyId: &companies[0].Id, AssignedTo: &createdBy, CreatedBy: &createdBy},
		{Title: "Globex rollout phase 2", Amount: &amount2, Stage: "negotiation", Probability: 75, ContactId: &contacts[1].Id, CompanyId: &companies[1].Id, AssignedTo: &createdBy, CreatedBy: &createdBy},
		{Title: "Initech pilot", Amount: &amount3, Stage: "closed_won", Probability: 100, ContactId: &contacts[2].Id, CompanyId: &companies[2].Id, AssignedTo: &createdBy, CreatedBy: &createdBy},
	}
	for i := range deals {
		if err := db.Create(&deals[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed deal: %v", err)
		}
	}
	color.Green("Seeded %d deals", len(deals))
}

func seedTickets(db *gorm.DB, createdBy uuid.UUID, contacts []model.Contact) {
	tickets := []model.Ticket{
		{Title: "Cannot export report", Description: "Export button returns 500", Status: "open", Priority: "high", Category: "bug", ContactId: &contacts[0].Id, AssignedTo: &createdBy, CreatedBy: &createdBy},
		{Title: "Invoice address wrong", Description: "Billing address outdated on last invoice", Status: "in_progress", Priority: "medium", Category: "billing", ContactId: &contacts[1].Id, AssignedTo: &createdBy, CreatedBy: &createdBy},
	}
	for i := range tickets {
		if err := db.Create(&tickets[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed ticket: %v", err)
		}
	}
	color.Green("Seeded %d tickets", len(tickets))
}

func seedCampaigns(db *gorm.DB, createdBy uuid.UUID) {
	campaigns := []model.EmailCampaign{
		{Name: "Spring newsletter", Subject: "What's new this spring", Content: "<p>Product updates inside.</p>", Status: "draft", CreatedBy: &createdBy},
	}
	for i := range campaigns {
		if err := db.Create(&campaigns[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed campaign: %v", err)
		}
	}
	color.Green("Seeded %d campaigns", len(campaigns))
}

func seedArticles(db *gorm.DB, createdBy uuid.UUID) {
	articles := []model.KBArticle{
		{Title: "Getting started", Content: "Create your first contact from the Contacts page.", Category: "onboarding", Tags: datatypes.NewJSONSlice([]string{"basics", "setup"}), Status: "published", IsPublic: true, CreatedBy: &createdBy},
		{Title: "Importing data", Content: "CSV import is available under Settings.", Category: "data", Tags: datatypes.NewJSONSlice([]string{"import", "csv"}), Status: "draft", IsPublic: false, CreatedBy: &createdBy},
	}
	for i := range articles {
		if err := db.Create(&articles[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed article: %v", err)
		}
	}
	color.Green("Seeded %d articles", len(articles))
}
