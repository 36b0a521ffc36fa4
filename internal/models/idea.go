package models

import "time"

// BoardTask is a single card on a project board column.
type BoardTask struct {
	ID      string `json:"id" bson:"id"`
	Content string `json:"content" bson:"content"`
}

// BoardColumn is one kanban column of a project board.
type BoardColumn struct {
	ID    string      `json:"id" bson:"id"`
	Title string      `json:"title" bson:"title"`
	Tasks []BoardTask `json:"tasks" bson:"tasks"`
}

// ProjectBoard is the lightweight kanban board attached to an idea.
type ProjectBoard struct {
	Columns []BoardColumn `json:"columns" bson:"columns"`
}

// Idea represents a proposed project.
type Idea struct {
	ID           string        `json:"id" bson:"_id"`
	Title        string        `json:"title" bson:"title"`
	Description  string        `json:"description" bson:"description"`
	Tags         []string      `json:"tags" bson:"tags"`
	AuthorID     string        `json:"authorId" bson:"authorId"`
	Upvotes      int           `json:"upvotes" bson:"upvotes"`
	CreatedAt    time.Time     `json:"createdAt" bson:"createdAt"`
	SkillsNeeded []string      `json:"skillsNeeded" bson:"skillsNeeded"`
	RepoURL      string        `json:"repoUrl,omitempty" bson:"repoUrl,omitempty"`
	ProjectBoard *ProjectBoard `json:"projectBoard,omitempty" bson:"projectBoard,omitempty"`
}

// CreateIdeaRequest defines the request body for creating a new idea
type CreateIdeaRequest struct {
	Title        string   `json:"title" validate:"required,min=1,max=150"`
	Description  string   `json:"description" validate:"required,min=1"`
	Tags         []string `json:"tags"`
	AuthorID     string   `json:"authorId" validate:"required"`
	SkillsNeeded []string `json:"skillsNeeded"`
	RepoURL      string   `json:"repoUrl,omitempty" validate:"omitempty,url"`
}

// IdeaPatch is a partial idea update. Nil fields are left untouched.
type IdeaPatch struct {
	Title        *string       `json:"title,omitempty" validate:"omitempty,min=1,max=150"`
	Description  *string       `json:"description,omitempty" validate:"omitempty,min=1"`
	Tags         *[]string     `json:"tags,omitempty"`
	SkillsNeeded *[]string     `json:"skillsNeeded,omitempty"`
	RepoURL      *string       `json:"repoUrl,omitempty" validate:"omitempty,url"`
	ProjectBoard *ProjectBoard `json:"projectBoard,omitempty"`
}

// Apply copies the non-nil patch fields onto i. Id, author, upvotes and
// createdAt are never touched by a patch.
func (p IdeaPatch) Apply(i *Idea) {
	if p.Title != nil {
		i.Title = *p.Title
	}
	if p.Description != nil {
		i.Description = *p.Description
	}
	if p.Tags != nil {
		i.Tags = *p.Tags
	}
	if p.SkillsNeeded != nil {
		i.SkillsNeeded = *p.SkillsNeeded
	}
	if p.RepoURL != nil {
		i.RepoURL = *p.RepoURL
	}
	if p.ProjectBoard != nil {
		i.ProjectBoard = p.ProjectBoard
	}
}

// IdeaDetail is the aggregate returned by GET /api/ideas/:id.
type IdeaDetail struct {
	Idea           Idea   `json:"idea"`
	Author         User   `json:"author"`
	Team           *Team  `json:"team,omitempty"`
	TeamMembers    []User `json:"teamMembers"`
	JoinRequesters []User `json:"joinRequesters"`
}

// LeaderboardData pairs the top builders with the top ideas.
type LeaderboardData struct {
	Users []User `json:"users"`
	Ideas []Idea `json:"ideas"`
}
