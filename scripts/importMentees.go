package main

import (
	"encoding/csv"
	"log"
	"mentorhub/config"
	"mentorhub/database"
	"mentorhub/services"
	"os"
	"strconv"
	"strings"
)

// Imports mentees from a CSV roster and enrolls them into a class cohort.
// Usage: go run scripts/importMentees.go <class_id> <roster.csv>
func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: importMentees <class_id> <roster.csv>")
	}

	classID, err := strconv.Atoi(os.Args[1])
	if err != nil || classID <= 0 {
		log.Fatalf("Invalid class ID: %s", os.Args[1])
	}

	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open(os.Args[2])
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	rows := make([]services.MenteeRow, 0, len(records)-1)
	malformed := 0

	for _, record := range records[1:] {
		row := services.MenteeRow{
			Name:       getField(record, headerIndex, "name"),
			Phone:      getField(record, headerIndex, "phone"),
			FacilityID: getField(record, headerIndex, "facility_id"),
		}

		if row.Name == "" || row.Phone == "" {
			malformed++
			continue
		}

		rows = append(rows, row)
	}

	result, err := services.EnrollMentees(database.Database.Db, uint(classID), rows, 0)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Enrolled: %d", result.Added)
	log.Printf("Skipped (already enrolled): %d", result.Skipped)
	log.Printf("Failed: %d", result.Failed)
	log.Printf("Malformed rows: %d", malformed)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
