// Package seed provides demo data for development and testing. The store is
// wiped on restart, so a seeded catalog is what makes a dev instance usable.
package seed

import (
	"fmt"
	"log"
	"strings"
	"time"

	"skillswap/internal/models"
	"skillswap/internal/store"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the password shared by every seeded account.
const DemoPassword = "Password123!"

// Options configuration for the seeder
type Options struct {
	// NumExtraUsers is how many generated users to add on top of the named demo cast.
	NumExtraUsers int
}

type demoSkill struct {
	name        string
	skillType   models.SkillType
	description string
}

type demoUser struct {
	email        string
	name         string
	location     string
	bio          string
	availability []string
	role         models.UserRole
	skills       []demoSkill
}

var demoCast = []demoUser{
	{
		email: "admin@skillswap.com",
		name:  "Platform Admin",
		bio:   "Keeping the marketplace tidy.",
		role:  models.RoleAdmin,
	},
	{
		email:        "john@example.com",
		name:         "John Doe",
		location:     "San Francisco, CA",
		bio:          "Frontend engineer, weekend shutterbug in training.",
		availability: []string{models.AvailabilityWeekends, models.AvailabilityEvenings},
		role:         models.RoleUser,
		skills: []demoSkill{
			{"React Development", models.SkillOffered, "Hooks, state management, component design"},
			{"Photography", models.SkillWanted, "Want to learn composition and lighting"},
		},
	},
	{
		email:        "sarah@example.com",
		name:         "Sarah Chen",
		location:     "Oakland, CA",
		bio:          "Portrait photographer curious about web apps.",
		availability: []string{models.AvailabilityWeekends},
		role:         models.RoleUser,
		skills: []demoSkill{
			{"Photography", models.SkillOffered, "Portraits, events, editing workflow"},
			{"React Development", models.SkillWanted, "Building a portfolio site"},
		},
	},
	{
		email:        "mike@example.com",
		name:         "Mike Johnson",
		location:     "Austin, TX",
		bio:          "Native Spanish speaker, aspiring guitarist.",
		availability: []string{models.AvailabilityEvenings},
		role:         models.RoleUser,
		skills: []demoSkill{
			{"Spanish Language", models.SkillOffered, "Conversational practice, grammar"},
			{"Guitar Lessons", models.SkillWanted, "Complete beginner"},
		},
	},
	{
		email:        "elena@example.com",
		name:         "Elena Rodriguez",
		location:     "Chicago, IL",
		bio:          "Home cook who wants to keep her Spanish sharp.",
		availability: []string{models.AvailabilityWeekdays, models.AvailabilityMornings},
		role:         models.RoleUser,
		skills: []demoSkill{
			{"Cooking", models.SkillOffered, "Weeknight meals and meal prep"},
			{"Spanish Language", models.SkillWanted, "Intermediate, needs conversation"},
		},
	},
	{
		email:        "david@example.com",
		name:         "David Kim",
		location:     "Seattle, WA",
		bio:          "Gigging guitarist, hopeless in the kitchen.",
		availability: []string{models.AvailabilityWeekends, models.AvailabilityEvenings},
		role:         models.RoleUser,
		skills: []demoSkill{
			{"Guitar Lessons", models.SkillOffered, "Acoustic and electric, any level"},
			{"Cooking", models.SkillWanted, "Anything beyond instant noodles"},
		},
	},
	{
		email:        "amy@example.com",
		name:         "Amy Patel",
		location:     "Denver, CO",
		bio:          "Certified yoga instructor planning a studio website.",
		availability: []string{models.AvailabilityMornings},
		role:         models.RoleUser,
		skills: []demoSkill{
			{"Yoga Instruction", models.SkillOffered, "Vinyasa and restorative"},
			{"Web Design", models.SkillWanted, "Landing page for my studio"},
		},
	},
}

var fillerSkillPool = []string{
	"Piano Lessons", "French Language", "Baking", "Woodworking", "Public Speaking",
	"Graphic Design", "Video Editing", "Gardening", "Chess", "Creative Writing",
	"Data Analysis", "Knitting", "Rock Climbing", "Salsa Dancing", "Car Maintenance",
}

// Seed populates the store with demo marketplace data.
func Seed(st *store.Store, opts Options) error {
	log.Printf("Seeding demo data (%d named users, %d extra)...", len(demoCast), opts.NumExtraUsers)
	gofakeit.Seed(time.Now().UnixNano())

	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	users := make(map[string]models.User, len(demoCast))
	skills := make(map[string]models.Skill)

	for _, d := range demoCast {
		if existing := st.Users.GetByEmail(d.email); existing != nil {
			users[d.email] = *existing
			continue
		}
		user := st.Users.Create(models.User{
			Email:        d.email,
			Name:         d.name,
			Password:     string(hashed),
			Location:     d.location,
			Bio:          d.bio,
			IsPublic:     true,
			Availability: d.availability,
			Role:         d.role,
		})
		users[d.email] = user

		for _, sk := range d.skills {
			created := st.Skills.Create(models.Skill{
				UserID:      user.ID,
				Name:        sk.name,
				Type:        sk.skillType,
				Description: sk.description,
				IsApproved:  true,
			})
			skills[skillKey(user.ID, sk.name, sk.skillType)] = created
		}
	}
	log.Printf("✓ %d named users created", len(users))

	for i := 0; i < opts.NumExtraUsers; i++ {
		name := gofakeit.Name()
		email := fmt.Sprintf("%s%d@example.com",
			strings.ToLower(strings.ReplaceAll(name, " ", ".")), gofakeit.Number(10, 99))
		user := st.Users.Create(models.User{
			Email:        email,
			Name:         name,
			Password:     string(hashed),
			Location:     fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
			Bio:          gofakeit.Sentence(10),
			IsPublic:     gofakeit.Bool(),
			Availability: []string{models.AvailabilityEvenings},
			Role:         models.RoleUser,
		})

		offered := fillerSkillPool[gofakeit.Number(0, len(fillerSkillPool)-1)]
		wanted := fillerSkillPool[gofakeit.Number(0, len(fillerSkillPool)-1)]
		st.Skills.Create(models.Skill{
			UserID: user.ID, Name: offered, Type: models.SkillOffered,
			Description: gofakeit.Sentence(6), IsApproved: true,
		})
		if wanted != offered {
			st.Skills.Create(models.Skill{
				UserID: user.ID, Name: wanted, Type: models.SkillWanted,
				Description: gofakeit.Sentence(6), IsApproved: true,
			})
		}
	}
	if opts.NumExtraUsers > 0 {
		log.Printf("✓ %d extra users created", opts.NumExtraUsers)
	}

	seedSwapsAndRatings(st, users, skills)
	seedBroadcasts(st, users["admin@skillswap.com"])

	log.Println("Demo data seeding completed")
	return nil
}

// seedSwapsAndRatings creates a pending negotiation and a completed, mutually
// rated swap so every surface has data on first load.
func seedSwapsAndRatings(st *store.Store, users map[string]models.User, skills map[string]models.Skill) {
	john, sarah := users["john@example.com"], users["sarah@example.com"]
	mike, david := users["mike@example.com"], users["david@example.com"]

	johnReact, okA := skills[skillKey(john.ID, "React Development", models.SkillOffered)]
	sarahPhoto, okB := skills[skillKey(sarah.ID, "Photography", models.SkillOffered)]
	if okA && okB {
		st.Swaps.Create(models.SwapRequest{
			RequesterID:    john.ID,
			ReceiverID:     sarah.ID,
			OfferedSkillID: johnReact.ID,
			WantedSkillID:  sarahPhoto.ID,
			Status:         models.SwapStatusPending,
			Message:        "Happy to pair on React in exchange for photography basics.",
		})
	}

	mikeSpanish, okC := skills[skillKey(mike.ID, "Spanish Language", models.SkillOffered)]
	davidGuitar, okD := skills[skillKey(david.ID, "Guitar Lessons", models.SkillOffered)]
	if okC && okD {
		completed := st.Swaps.Create(models.SwapRequest{
			RequesterID:    mike.ID,
			ReceiverID:     david.ID,
			OfferedSkillID: mikeSpanish.ID,
			WantedSkillID:  davidGuitar.ID,
			Status:         models.SwapStatusCompleted,
			Message:        "Four sessions each, alternating weeks?",
		})
		st.Ratings.Create(models.Rating{
			SwapRequestID: completed.ID,
			RaterID:       mike.ID,
			RatedUserID:   david.ID,
			Rating:        5,
			Feedback:      "Patient teacher, I can actually play a few chords now.",
		})
		st.Ratings.Create(models.Rating{
			SwapRequestID: completed.ID,
			RaterID:       david.ID,
			RatedUserID:   mike.ID,
			Rating:        4,
			Feedback:      "Great conversation practice, wants more structure.",
		})
	}
}

func seedBroadcasts(st *store.Store, admin models.User) {
	if admin.ID == 0 || len(st.Broadcasts.ListAll()) > 0 {
		return
	}
	st.Broadcasts.Create(models.BroadcastMessage{
		AdminID:  admin.ID,
		Title:    "Welcome to SkillSwap",
		Content:  "Browse the catalog, list what you can teach, and propose your first swap.",
		Type:     models.BroadcastAnnouncement,
		IsActive: true,
	})
	st.Broadcasts.Create(models.BroadcastMessage{
		AdminID:  admin.ID,
		Title:    "Scheduled maintenance",
		Content:  "The platform restarts nightly; in-progress drafts are not preserved.",
		Type:     models.BroadcastMaintenance,
		IsActive: false,
	})
}

func skillKey(userID uint, name string, t models.SkillType) string {
	return fmt.Sprintf("%d:%s:%s", userID, strings.ToLower(name), t)
}
