package seed

import (
	"time"

	"hackteam-be/internal/entity"

	"github.com/google/uuid"
)

// Fixed ids so seeded data is stable across runs and addressable from tests.
var (
	ConversationTechInnovatorsId = uuid.MustParse("7f0c2a9e-52b1-4c3a-9d68-1a2b3c4d5e6f")
	ConversationCodeWarriorsId   = uuid.MustParse("b3d1f8a0-6e24-4d7b-8c95-2f3a4b5c6d7e")

	memberAlexId    = uuid.MustParse("0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9")
	memberSarahId   = uuid.MustParse("1b2c3d4e-5f60-7182-93a4-b5c6d7e8f90a")
	memberMichaelId = uuid.MustParse("2c3d4e5f-6071-8293-a4b5-c6d7e8f90a1b")
)

// Conversations returns the fixed initial conversation set.
func Conversations() []*entity.Conversation {
	now := time.Now()
	return []*entity.Conversation{
		{
			Id:           ConversationTechInnovatorsId,
			Name:         "Tech Innovators",
			Participants: []string{"Alex Johnson", "Sarah Chen"},
			LastMessage:  "Let us finalize our project idea",
			LastActivity: now,
			AvatarURL:    "/generic-team-icon.png",
		},
		{
			Id:           ConversationCodeWarriorsId,
			Name:         "Code Warriors",
			Participants: []string{"Michael Brown"},
			LastMessage:  "When should we meet?",
			LastActivity: now.Add(-1 * time.Hour),
			AvatarURL:    "/team-icon-2.jpg",
		},
	}
}

// Messages returns the initial message logs keyed by conversation id,
// oldest first.
func Messages() map[uuid.UUID][]*entity.Message {
	now := time.Now()
	return map[uuid.UUID][]*entity.Message{
		ConversationTechInnovatorsId: {
			{
				Id:             uuid.New(),
				ConversationId: ConversationTechInnovatorsId,
				SenderId:       memberSarahId,
				SenderName:     "Sarah Chen",
				Text:           "Hey team! Excited to work on this hackathon together!",
				SentAt:         now.Add(-2 * time.Hour),
			},
			{
				Id:             uuid.New(),
				ConversationId: ConversationTechInnovatorsId,
				SenderId:       memberAlexId,
				SenderName:     "Alex Johnson",
				Text:           "Me too! I think we should build something related to AI and healthcare.",
				SentAt:         now.Add(-100 * time.Minute),
			},
		},
		ConversationCodeWarriorsId: {
			{
				Id:             uuid.New(),
				ConversationId: ConversationCodeWarriorsId,
				SenderId:       memberMichaelId,
				SenderName:     "Michael Brown",
				Text:           "When should we meet?",
				SentAt:         now.Add(-1 * time.Hour),
			},
		},
	}
}

// Hackathons returns the static catalog sample.
func Hackathons() []*entity.Hackathon {
	return []*entity.Hackathon{
		{
			Id:           uuid.MustParse("3d4e5f60-7182-93a4-b5c6-d7e8f90a1b2c"),
			Name:         "AI for Good Hackathon",
			Description:  "Build AI solutions that tackle real social and environmental problems.",
			ImageURL:     "/hackathons/ai-for-good.png",
			Type:         entity.HackathonTypeOnline,
			Date:         time.Date(2026, time.October, 10, 9, 0, 0, 0, time.UTC),
			Location:     "Remote",
			Participants: 1200,
		},
		{
			Id:           uuid.MustParse("4e5f6071-8293-a4b5-c6d7-e8f90a1b2c3d"),
			Name:         "HealthTech Sprint",
			Description:  "48 hours to prototype the future of digital healthcare.",
			ImageURL:     "/hackathons/healthtech.png",
			Type:         entity.HackathonTypeOffline,
			Date:         time.Date(2026, time.November, 6, 10, 0, 0, 0, time.UTC),
			Location:     "Berlin, Germany",
			Participants: 350,
		},
		{
			Id:           uuid.MustParse("5f607182-93a4-b5c6-d7e8-f90a1b2c3d4e"),
			Name:         "Open Data Challenge",
			Description:  "Turn public datasets into products people actually use.",
			ImageURL:     "/hackathons/open-data.png",
			Type:         entity.HackathonTypeOnline,
			Date:         time.Date(2026, time.November, 21, 9, 0, 0, 0, time.UTC),
			Location:     "Remote",
			Participants: 840,
		},
		{
			Id:           uuid.MustParse("60718293-a4b5-c6d7-e8f9-0a1b2c3d4e5f"),
			Name:         "FinTech Frenzy",
			Description:  "Payments, lending, and everything in between. Bring your boldest ideas.",
			ImageURL:     "/hackathons/fintech.png",
			Type:         entity.HackathonTypeOffline,
			Date:         time.Date(2026, time.December, 5, 9, 30, 0, 0, time.UTC),
			Location:     "London, UK",
			Participants: 500,
		},
		{
			Id:           uuid.MustParse("718293a4-b5c6-d7e8-f90a-1b2c3d4e5f60"),
			Name:         "GreenCode Jam",
			Description:  "Sustainable software and climate tooling, built over one weekend.",
			ImageURL:     "/hackathons/greencode.png",
			Type:         entity.HackathonTypeOnline,
			Date:         time.Date(2027, time.January, 16, 9, 0, 0, 0, time.UTC),
			Location:     "Remote",
			Participants: 670,
		},
		{
			Id:           uuid.MustParse("8293a4b5-c6d7-e8f9-0a1b-2c3d4e5f6071"),
			Name:         "Campus Builders Weekend",
			Description:  "Student-only hackathon for first-time builders and seasoned hackers alike.",
			ImageURL:     "/hackathons/campus.png",
			Type:         entity.HackathonTypeOffline,
			Date:         time.Date(2027, time.February, 13, 10, 0, 0, 0, time.UTC),
			Location:     "Austin, TX",
			Participants: 280,
		},
	}
}

// Teammates returns the static user directory sample.
func Teammates() []*entity.Teammate {
	return []*entity.Teammate{
		{
			Id:             memberAlexId,
			Name:           "Alex Johnson",
			Bio:            "Full-stack developer who loves shipping fast and iterating faster.",
			AvatarURL:      "/avatars/alex.png",
			Skills:         []string{"React", "Node.js", "PostgreSQL"},
			LookingForTeam: true,
		},
		{
			Id:             memberSarahId,
			Name:           "Sarah Chen",
			Bio:            "ML engineer focused on healthcare applications.",
			AvatarURL:      "/avatars/sarah.png",
			Skills:         []string{"Python", "TensorFlow", "FastAPI"},
			LookingForTeam: true,
		},
		{
			Id:             memberMichaelId,
			Name:           "Michael Brown",
			Bio:            "Backend engineer, distributed systems enthusiast.",
			AvatarURL:      "/avatars/michael.png",
			Skills:         []string{"Go", "Kubernetes", "PostgreSQL"},
			LookingForTeam: true,
		},
		{
			Id:             uuid.MustParse("93a4b5c6-d7e8-f90a-1b2c-3d4e5f607182"),
			Name:           "Priya Patel",
			Bio:            "Product designer bridging UX research and front-end implementation.",
			AvatarURL:      "/avatars/priya.png",
			Skills:         []string{"Figma", "React", "CSS"},
			LookingForTeam: true,
		},
		{
			Id:             uuid.MustParse("a4b5c6d7-e8f9-0a1b-2c3d-4e5f60718293"),
			Name:           "Diego Ramirez",
			Bio:            "Mobile developer, two-time hackathon winner.",
			AvatarURL:      "/avatars/diego.png",
			Skills:         []string{"Flutter", "Firebase", "Kotlin"},
			LookingForTeam: true,
		},
		{
			Id:             uuid.MustParse("b5c6d7e8-f90a-1b2c-3d4e-5f60718293a4"),
			Name:           "Emma Wilson",
			Bio:            "Data scientist. Currently heads-down on a thesis, not joining teams.",
			AvatarURL:      "/avatars/emma.png",
			Skills:         []string{"Python", "Pandas", "SQL"},
			LookingForTeam: false,
		},
	}
}
