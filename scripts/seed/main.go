// Seed loads sample branches, services, staff and blocked times into
// MongoDB for local development and testing of the booking flow.
//
// Usage: go run ./scripts/seed
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"bookeasy/config"
	"bookeasy/database"
	"bookeasy/models"
)

func defaultWorkingHours() map[string]models.WorkingDay {
	return map[string]models.WorkingDay{
		"Monday":    {Start: "09:00", End: "17:00", IsWorking: true},
		"Tuesday":   {Start: "09:00", End: "17:00", IsWorking: true},
		"Wednesday": {Start: "09:00", End: "17:00", IsWorking: true},
		"Thursday":  {Start: "09:00", End: "17:00", IsWorking: true},
		"Friday":    {Start: "09:00", End: "17:00", IsWorking: true},
		"Saturday":  {Start: "10:00", End: "16:00", IsWorking: true},
		"Sunday":    {Start: "00:00", End: "00:00", IsWorking: false},
	}
}

func main() {
	config.LoadConfig()
	database.InitDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	branches := []models.Branch{
		{ID: uuid.New().String(), Name: "Downtown Branch", Address: "123 Main Street", City: "Downtown", State: "NY", ZipCode: "10001", Phone: "+1 (555) 123-4567", Email: "downtown@bookeasy.com", Online: true, Visible: true},
		{ID: uuid.New().String(), Name: "Uptown Branch", Address: "456 Park Avenue", City: "Uptown", State: "NY", ZipCode: "10002", Phone: "+1 (555) 234-5678", Email: "uptown@bookeasy.com", Online: true, Visible: true},
		{ID: uuid.New().String(), Name: "Westside Branch", Address: "789 West Street", City: "Westside", State: "NY", ZipCode: "10003", Phone: "+1 (555) 345-6789", Email: "westside@bookeasy.com", Online: true, Visible: true},
	}
	branchIDs := make([]string, 0, len(branches))
	for _, b := range branches {
		branchIDs = append(branchIDs, b.ID)
	}

	staff := []models.Staff{
		{ID: uuid.New().String(), Name: "Sarah Johnson", Email: "sarah.johnson@bookeasy.com", Phone: "+1 (555) 111-2222", Specialization: "Hair Styling & Coloring", Branches: branchIDs, WorkingHours: defaultWorkingHours()},
		{ID: uuid.New().String(), Name: "Michael Chen", Email: "michael.chen@bookeasy.com", Phone: "+1 (555) 222-3333", Specialization: "Massage Therapy", Branches: branchIDs, WorkingHours: defaultWorkingHours()},
		{ID: uuid.New().String(), Name: "Emily Rodriguez", Email: "emily.rodriguez@bookeasy.com", Phone: "+1 (555) 333-4444", Specialization: "Nail Care & Manicure", Branches: branchIDs, WorkingHours: defaultWorkingHours()},
		{ID: uuid.New().String(), Name: "David Kim", Email: "david.kim@bookeasy.com", Phone: "+1 (555) 444-5555", Specialization: "Hair Cutting", Branches: branchIDs, WorkingHours: defaultWorkingHours()},
	}

	services := []models.Service{
		{ID: uuid.New().String(), Name: "Haircut & Styling", Description: "Professional haircut with styling consultation", Duration: 45, Price: 50, Branches: branchIDs},
		{ID: uuid.New().String(), Name: "Hair Coloring", Description: "Full hair coloring service with premium products", Duration: 120, Price: 150, Branches: branchIDs},
		{ID: uuid.New().String(), Name: "Manicure", Description: "Classic manicure with nail polish", Duration: 30, Price: 35, Branches: branchIDs},
		{ID: uuid.New().String(), Name: "Massage Therapy", Description: "Full body relaxation massage", Duration: 90, Price: 120, Branches: branchIDs},
	}

	// Cross-assign: every staff member provides every service (matching
	// the sample data set; real deployments narrow this in the admin UI).
	staffIDs := make([]string, 0, len(staff))
	for _, st := range staff {
		staffIDs = append(staffIDs, st.ID)
	}
	serviceIDs := make([]string, 0, len(services))
	for _, svc := range services {
		serviceIDs = append(serviceIDs, svc.ID)
	}
	for i := range staff {
		staff[i].Services = serviceIDs
	}
	for i := range services {
		services[i].StaffIDs = staffIDs
	}

	blocked := []models.BlockedTime{
		{ID: uuid.New().String(), Date: "2025-12-25", Reason: "Christmas Day", StartTime: "00:00", EndTime: "23:59", AllDay: true, CreatedAt: time.Now()},
		{ID: uuid.New().String(), Date: "2026-01-01", Reason: "New Year's Day", StartTime: "00:00", EndTime: "23:59", AllDay: true, CreatedAt: time.Now()},
	}

	for _, b := range branches {
		if _, err := database.Collection("branches").InsertOne(ctx, b); err != nil {
			log.Fatalf("failed to insert branch %s: %v", b.Name, err)
		}
		log.Printf("added branch: %s (%s)", b.Name, b.ID)
	}
	for _, svc := range services {
		if _, err := database.Collection("services").InsertOne(ctx, svc); err != nil {
			log.Fatalf("failed to insert service %s: %v", svc.Name, err)
		}
		log.Printf("added service: %s (%s)", svc.Name, svc.ID)
	}
	for _, st := range staff {
		if _, err := database.Collection("staff").InsertOne(ctx, st); err != nil {
			log.Fatalf("failed to insert staff %s: %v", st.Name, err)
		}
		log.Printf("added staff: %s (%s)", st.Name, st.ID)
	}
	for _, bt := range blocked {
		if _, err := database.Collection("blocked_times").InsertOne(ctx, bt); err != nil {
			log.Fatalf("failed to insert blocked time %s: %v", bt.Reason, err)
		}
		log.Printf("added blocked time: %s (%s)", bt.Reason, bt.Date)
	}

	total, err := database.Collection("staff").CountDocuments(ctx, bson.M{})
	if err == nil {
		log.Printf("seed complete: %d staff members in database", total)
	}
}
