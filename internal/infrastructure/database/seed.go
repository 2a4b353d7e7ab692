package database

import (
	"context"
	"fmt"

	"medicare-api/internal/domain/entity"
	"medicare-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type rosterEntry struct {
	name        string
	email       string
	phone       string
	specialty   string
	experience  int
	institution string
	year        int
	days        [2]string
	start       string
	end         string
}

var doctorRoster = []rosterEntry{
	{"Dr. Sarah Smith", "sarah.smith@medicare.com", "+1 (555) 123-4567", "Cardiologist", 10, "Harvard Medical School", 2010, [2]string{"Monday", "Wednesday"}, "09:00", "17:00"},
	{"Dr. John Doe", "john.doe@medicare.com", "+1 (555) 234-5678", "General Physician", 8, "Stanford Medical School", 2012, [2]string{"Tuesday", "Thursday"}, "09:00", "17:00"},
	{"Dr. Emily Brown", "emily.brown@medicare.com", "+1 (555) 345-6789", "Pediatrician", 12, "Yale School of Medicine", 2008, [2]string{"Monday", "Friday"}, "08:00", "16:00"},
	{"Dr. Michael Chen", "michael.chen@medicare.com", "+1 (555) 456-7890", "Neurologist", 15, "Johns Hopkins School of Medicine", 2005, [2]string{"Wednesday", "Friday"}, "10:00", "18:00"},
	{"Dr. Lisa Wilson", "lisa.wilson@medicare.com", "+1 (555) 567-8901", "Dermatologist", 9, "UCLA School of Medicine", 2011, [2]string{"Tuesday", "Thursday"}, "09:00", "17:00"},
	{"Dr. Robert Taylor", "robert.taylor@medicare.com", "+1 (555) 678-9012", "Cardiologist", 20, "Columbia University", 2000, [2]string{"Monday", "Wednesday"}, "08:00", "16:00"},
	{"Dr. Maria Garcia", "maria.garcia@medicare.com", "+1 (555) 789-0123", "Pediatrician", 11, "University of Pennsylvania", 2009, [2]string{"Tuesday", "Thursday"}, "09:00", "17:00"},
	{"Dr. James Anderson", "james.anderson@medicare.com", "+1 (555) 890-1234", "General Physician", 7, "Duke University", 2013, [2]string{"Monday", "Friday"}, "10:00", "18:00"},
	{"Dr. Patricia Martinez", "patricia.martinez@medicare.com", "+1 (555) 901-2345", "Dermatologist", 13, "University of Michigan", 2007, [2]string{"Wednesday", "Friday"}, "09:00", "17:00"},
	{"Dr. David Kim", "david.kim@medicare.com", "+1 (555) 012-3456", "Neurologist", 16, "Northwestern University", 2004, [2]string{"Tuesday", "Thursday"}, "08:00", "16:00"},
	{"Dr. Jennifer Lee", "jennifer.lee@medicare.com", "+1 (555) 123-4567", "Pediatrician", 9, "University of Washington", 2011, [2]string{"Monday", "Wednesday"}, "09:00", "17:00"},
	{"Dr. William Thompson", "william.thompson@medicare.com", "+1 (555) 234-5678", "Cardiologist", 18, "Mayo Medical School", 2002, [2]string{"Tuesday", "Thursday"}, "10:00", "18:00"},
	{"Dr. Elizabeth White", "elizabeth.white@medicare.com", "+1 (555) 345-6789", "Dermatologist", 10, "Vanderbilt University", 2010, [2]string{"Monday", "Friday"}, "08:00", "16:00"},
	{"Dr. Thomas Rodriguez", "thomas.rodriguez@medicare.com", "+1 (555) 456-7890", "General Physician", 12, "University of Virginia", 2008, [2]string{"Wednesday", "Friday"}, "09:00", "17:00"},
	{"Dr. Susan Clark", "susan.clark@medicare.com", "+1 (555) 567-8901", "Neurologist", 14, "University of Pittsburgh", 2006, [2]string{"Tuesday", "Thursday"}, "09:00", "17:00"},
	{"Dr. Richard Martin", "richard.martin@medicare.com", "+1 (555) 678-9012", "Cardiologist", 17, "Emory University", 2003, [2]string{"Monday", "Wednesday"}, "10:00", "18:00"},
	{"Dr. Margaret Lewis", "margaret.lewis@medicare.com", "+1 (555) 789-0123", "Pediatrician", 13, "Boston University", 2007, [2]string{"Tuesday", "Thursday"}, "08:00", "16:00"},
	{"Dr. Joseph Hall", "joseph.hall@medicare.com", "+1 (555) 890-1234", "Dermatologist", 11, "University of Wisconsin", 2009, [2]string{"Monday", "Friday"}, "09:00", "17:00"},
	{"Dr. Barbara Young", "barbara.young@medicare.com", "+1 (555) 901-2345", "General Physician", 15, "University of Minnesota", 2005, [2]string{"Wednesday", "Friday"}, "10:00", "18:00"},
	{"Dr. Charles Scott", "charles.scott@medicare.com", "+1 (555) 012-3456", "Neurologist", 19, "University of Colorado", 2001, [2]string{"Tuesday", "Thursday"}, "09:00", "17:00"},
	{"Dr. Sandra Green", "sandra.green@medicare.com", "+1 (555) 123-4567", "Cardiologist", 16, "University of Iowa", 2004, [2]string{"Monday", "Wednesday"}, "08:00", "16:00"},
	{"Dr. Christopher Adams", "christopher.adams@medicare.com", "+1 (555) 234-5678", "Pediatrician", 12, "University of Maryland", 2008, [2]string{"Tuesday", "Thursday"}, "10:00", "18:00"},
	{"Dr. Michelle Baker", "michelle.baker@medicare.com", "+1 (555) 345-6789", "Dermatologist", 10, "University of Arizona", 2010, [2]string{"Monday", "Friday"}, "09:00", "17:00"},
	{"Dr. Daniel Nelson", "daniel.nelson@medicare.com", "+1 (555) 456-7890", "General Physician", 14, "University of Oregon", 2006, [2]string{"Wednesday", "Friday"}, "08:00", "16:00"},
	{"Dr. Laura Carter", "laura.carter@medicare.com", "+1 (555) 567-8901", "Neurologist", 13, "University of Utah", 2007, [2]string{"Tuesday", "Thursday"}, "09:00", "17:00"},
	{"Dr. Kevin Mitchell", "kevin.mitchell@medicare.com", "+1 (555) 678-9012", "Cardiologist", 18, "University of Kansas", 2002, [2]string{"Monday", "Wednesday"}, "10:00", "18:00"},
	{"Dr. Rachel Turner", "rachel.turner@medicare.com", "+1 (555) 789-0123", "Pediatrician", 11, "University of Nebraska", 2009, [2]string{"Tuesday", "Thursday"}, "08:00", "16:00"},
	{"Dr. Steven Phillips", "steven.phillips@medicare.com", "+1 (555) 890-1234", "Dermatologist", 15, "University of Oklahoma", 2005, [2]string{"Monday", "Friday"}, "09:00", "17:00"},
	{"Dr. Rebecca Cooper", "rebecca.cooper@medicare.com", "+1 (555) 901-2345", "General Physician", 9, "University of Arkansas", 2011, [2]string{"Wednesday", "Friday"}, "10:00", "18:00"},
	{"Dr. Timothy Ross", "timothy.ross@medicare.com", "+1 (555) 012-3456", "Neurologist", 17, "University of Alabama", 2003, [2]string{"Tuesday", "Thursday"}, "09:00", "17:00"},
	{"Dr. Amanda Morgan", "amanda.morgan@medicare.com", "+1 (555) 123-4567", "Cardiologist", 12, "University of Kentucky", 2008, [2]string{"Monday", "Wednesday"}, "08:00", "16:00"},
}

// DoctorRoster returns the fixed set of doctors seeded into an empty store.
// Rating aggregates start at zero; they are derived from reviews only.
func DoctorRoster() []entity.Doctor {
	doctors := make([]entity.Doctor, 0, len(doctorRoster))
	for _, e := range doctorRoster {
		doctors = append(doctors, entity.Doctor{
			Name:       e.name,
			Email:      e.email,
			Phone:      e.phone,
			Specialty:  e.specialty,
			Experience: e.experience,
			Qualifications: datatypes.JSONSlice[entity.Qualification]{
				{Degree: "MD", Institution: e.institution, Year: e.year},
			},
			AvailableSlots: datatypes.JSONSlice[entity.AvailabilitySlot]{
				{Day: e.days[0], StartTime: e.start, EndTime: e.end},
				{Day: e.days[1], StartTime: e.start, EndTime: e.end},
			},
		})
	}
	return doctors
}

// SeedDoctors inserts the roster when the doctors table is empty and returns
// the number of doctors inserted.
func SeedDoctors(ctx context.Context, db *gorm.DB, doctorRepo repository.DoctorRepository) (int, error) {
	count, err := doctorRepo.Count(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("count doctors: %w", err)
	}
	logrus.Infof("Current doctor count: %d", count)
	if count > 0 {
		return 0, nil
	}

	logrus.Info("No doctors found, seeding initial data...")
	doctors := DoctorRoster()
	if err := doctorRepo.CreateBatch(ctx, db, doctors); err != nil {
		return 0, fmt.Errorf("seed doctors: %w", err)
	}

	logrus.Infof("Seeded %d doctors", len(doctors))
	return len(doctors), nil
}
