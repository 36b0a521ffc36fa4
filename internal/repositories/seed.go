package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/janedoe/codestream/internal/models"
)

// Seed populates the in-memory store with the demo data set the client
// expects on a fresh deployment. Calling Seed on a non-empty store is a
// no-op so a restart never duplicates records.
func (m *Memory) Seed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.users) > 0 {
		return
	}

	now := time.Now().UTC()

	m.users = []models.User{
		{
			ID:             "user-1",
			Name:           "Elena Voyager",
			Username:       "elenavoyager",
			Email:          "elena@example.com",
			AvatarURL:      "https://api.dicebear.com/8.x/lorelei/svg?seed=elena",
			Bio:            "AI enthusiast and full-stack developer, turning coffee into code and ideas into reality.",
			Skills:         []string{"TypeScript", "React", "Python", "Machine Learning"},
			Interests:      []string{"Generative AI", "Data Visualization", "UX Design"},
			GithubUsername: "elenacodes",
			GithubStats:    &models.GithubStats{Repos: 58, Followers: 2300, Following: 80},
		},
		{
			ID:        "user-2",
			Name:      "Marcus Rune",
			Username:  "marcusrune",
			Email:     "marcus@example.com",
			AvatarURL: "https://api.dicebear.com/8.x/lorelei/svg?seed=marcus",
			Bio:       "Backend architect specializing in scalable systems and cloud infrastructure. Loves clean code and a good challenge.",
			Skills:    []string{"Go", "Kubernetes", "PostgreSQL", "System Design"},
			Interests: []string{"Distributed Systems", "DevOps", "FinTech"},
		},
		{
			ID:        "user-3",
			Name:      "Aisha Khan",
			Username:  "aishakhan",
			Email:     "aisha@example.com",
			AvatarURL: "https://api.dicebear.com/8.x/lorelei/svg?seed=aisha",
			Bio:       "Product designer with a passion for creating intuitive and beautiful user experiences. Believes in human-centered design.",
			Skills:    []string{"UI/UX Design", "Figma", "Prototyping", "User Research"},
			Interests: []string{"Design Systems", "Accessibility", "Mobile Apps"},
		},
		{
			ID:        "user-4",
			Name:      "Leo Petrov",
			Username:  "leopetrov",
			Email:     "leo@example.com",
			AvatarURL: "https://api.dicebear.com/8.x/lorelei/svg?seed=leo",
			Bio:       "Frontend developer who loves crafting smooth animations and interactive components.",
			Skills:    []string{"React", "Vue", "CSS Animations", "Web Performance"},
			Interests: []string{"Creative Coding", "Web3", "Gaming"},
		},
	}

	m.ideas = []models.Idea{
		{
			ID:           "idea-1",
			Title:        "Synapse: AI-Powered Learning Platform",
			Description:  "An adaptive learning platform that uses AI to create personalized study plans for students. It analyzes learning patterns and suggests resources, quizzes, and projects to master any subject.\n\n## Key Features\n* Personalized learning paths\n* Real-time progress tracking\n* AI-powered content recommendations",
			Tags:         []string{"AI", "EdTech", "SaaS"},
			AuthorID:     "user-1",
			Upvotes:      128,
			CreatedAt:    now.Add(-2 * 24 * time.Hour),
			SkillsNeeded: []string{"React", "Python", "Machine Learning", "UI/UX Design"},
			RepoURL:      "https://github.com/elenacodes/synapse-ai",
			ProjectBoard: defaultProjectBoard(),
		},
		{
			ID:           "idea-2",
			Title:        "EcoTrack: Carbon Footprint Tracker",
			Description:  "A mobile app that helps users track and reduce their carbon footprint. It connects with daily activities like travel, diet, and energy consumption to provide actionable insights and eco-friendly alternatives.",
			Tags:         []string{"Mobile", "Sustainability", "GreenTech"},
			AuthorID:     "user-2",
			Upvotes:      95,
			CreatedAt:    now.Add(-5 * 24 * time.Hour),
			SkillsNeeded: []string{"React Native", "Node.js", "PostgreSQL"},
			ProjectBoard: defaultProjectBoard(),
		},
		{
			ID:           "idea-3",
			Title:        "FlowState: Minimalist Productivity App",
			Description:  "A desktop app designed to help users enter a state of deep work. It combines a pomodoro timer, a distraction-free text editor, and ambient soundscapes to enhance focus and productivity.",
			Tags:         []string{"Productivity", "Desktop App", "Design"},
			AuthorID:     "user-3",
			Upvotes:      210,
			CreatedAt:    now.Add(-10 * 24 * time.Hour),
			SkillsNeeded: []string{"UI/UX Design", "Electron", "React"},
		},
		{
			ID:           "idea-4",
			Title:        "PixelForge: Collaborative Pixel Art Editor",
			Description:  "A real-time, web-based collaborative pixel art editor for game developers and artists. Features include layers, animation timelines, and a shared asset library.",
			Tags:         []string{"Creative Tools", "Gaming", "Web App"},
			AuthorID:     "user-4",
			Upvotes:      72,
			CreatedAt:    now.Add(-1 * 24 * time.Hour),
			SkillsNeeded: []string{"React", "Canvas API", "WebSockets"},
		},
	}

	m.teams = []models.Team{
		{
			ID:           "team-1",
			Name:         "Team Synapse",
			Mission:      "Building the future of personalized education with AI.",
			IdeaID:       "idea-1",
			Members:      []string{"user-1", "user-3"},
			JoinRequests: []string{"user-4"},
		},
		{
			ID:           "team-2",
			Name:         "Team EcoTrack",
			Mission:      "Empowering individuals to make a positive impact on the planet.",
			IdeaID:       "idea-2",
			Members:      []string{"user-2"},
			JoinRequests: []string{},
		},
	}

	m.comments = []models.Comment{
		{
			ID:        uuid.NewString(),
			IdeaID:    "idea-1",
			AuthorID:  "user-2",
			Content:   "This is a fantastic idea! The potential for personalized learning is huge. How do you plan to handle data privacy?",
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			IdeaID:    "idea-1",
			AuthorID:  "user-1",
			Content:   "Great question, Marcus! We're planning to use federated learning to train models without centralizing sensitive student data. Privacy is a top priority.",
			CreatedAt: now.Add(-20 * time.Hour),
		},
	}

	m.notifications = []models.Notification{
		{
			ID:        uuid.NewString(),
			UserID:    "user-1",
			Type:      models.NotificationJoinRequest,
			Message:   "Leo Petrov has requested to join Team Synapse.",
			Link:      "/idea/idea-1",
			CreatedAt: now.Add(-2 * time.Hour),
			Read:      false,
		},
		{
			ID:        uuid.NewString(),
			UserID:    "user-1",
			Type:      models.NotificationNewComment,
			Message:   "Marcus Rune commented on your idea \"Synapse: AI-Powered Learning Platform\".",
			Link:      "/idea/idea-1",
			CreatedAt: now.Add(-24 * time.Hour),
			Read:      true,
		},
	}
}

func defaultProjectBoard() *models.ProjectBoard {
	return &models.ProjectBoard{
		Columns: []models.BoardColumn{
			{ID: "todo", Title: "To Do", Tasks: []models.BoardTask{
				{ID: uuid.NewString(), Content: "Initial project setup"},
				{ID: uuid.NewString(), Content: "Define MVP features"},
			}},
			{ID: "inProgress", Title: "In Progress", Tasks: []models.BoardTask{
				{ID: uuid.NewString(), Content: "Design user interface mockups"},
			}},
			{ID: "done", Title: "Done", Tasks: []models.BoardTask{
				{ID: uuid.NewString(), Content: "Market research"},
			}},
		},
	}
}
