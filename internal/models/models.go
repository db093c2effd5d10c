package models

import "time"

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Project struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	LongDescription string     `json:"longDescription,omitempty"`
	Image           string     `json:"image"`
	Technologies    []string   `json:"technologies"`
	Github          string     `json:"github"`
	Demo            string     `json:"demo,omitempty"`
	Category        string     `json:"category"`
	Features        []string   `json:"features,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// Author is the denormalized identity stamped on a post at creation time.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BlogPost struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Excerpt   string     `json:"excerpt"`
	Content   string     `json:"content"`
	Image     string     `json:"image"`
	Tags      []string   `json:"tags"`
	Status    string     `json:"status"`
	Author    Author     `json:"author"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProjectFilter narrows ListProjects results. Zero values mean "no filter".
type ProjectFilter struct {
	Category string
	Exclude  string
	Limit    int
}

// BlogFilter narrows ListBlogPosts results. An empty Status means all statuses.
type BlogFilter struct {
	Tag     string
	Status  string
	Exclude string
	Limit   int
}

// BlogPatch carries a partial update; nil fields are left untouched.
type BlogPatch struct {
	Title   *string   `json:"title"`
	Excerpt *string   `json:"excerpt"`
	Content *string   `json:"content"`
	Image   *string   `json:"image"`
	Tags    *[]string `json:"tags"`
	Status  *string   `json:"status"`
}
