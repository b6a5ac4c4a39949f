package portfolio

import (
	"errors"
)

// ErrProjectNotFound is returned when no project has the requested id.
var ErrProjectNotFound = errors.New("project not found")

// Project is a portfolio entry shown on the site.
type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	GitHubURL   string   `json:"github_url"`
	LiveURL     string   `json:"live_url"`
	ImageURL    string   `json:"image_url"`
}

var projects = []Project{
	{
		ID:          1,
		Title:       "E-Commerce Platform",
		Description: "Full-stack online store with payment integration",
		TechStack:   []string{"React", "Node.js", "MongoDB", "Stripe"},
		GitHubURL:   "https://github.com/username/project1",
		LiveURL:     "https://project1.demo.com",
		ImageURL:    "/images/project1.jpg",
	},
	{
		ID:          2,
		Title:       "AI Task Manager",
		Description: "Smart task management with ML-powered prioritization",
		TechStack:   []string{"React", "Flask", "TensorFlow", "PostgreSQL"},
		GitHubURL:   "https://github.com/username/project2",
		LiveURL:     "https://project2.demo.com",
		ImageURL:    "/images/project2.jpg",
	},
	{
		ID:          3,
		Title:       "Real-Time Chat App",
		Description: "WebSocket-based messaging platform",
		TechStack:   []string{"React", "Socket.io", "Express", "Redis"},
		GitHubURL:   "https://github.com/username/project3",
		LiveURL:     "https://project3.demo.com",
		ImageURL:    "/images/project3.jpg",
	},
}

// Catalog serves a fixed list of projects.
type Catalog struct {
	projects []Project
}

// NewCatalog returns the built-in catalog.
func NewCatalog() *Catalog {
	return &Catalog{projects: projects}
}

// NewCatalogFrom returns a catalog over the given projects.
func NewCatalogFrom(p []Project) *Catalog {
	return &Catalog{projects: p}
}

// List returns a copy of every project in catalog order.
func (c *Catalog) List() ([]Project, error) {
	out := make([]Project, len(c.projects))
	for i, p := range c.projects {
		out[i] = p.clone()
	}
	return out, nil
}

// Get returns the project with the given id.
func (c *Catalog) Get(id int) (Project, error) {
	for _, p := range c.projects {
		if p.ID == id {
			return p.clone(), nil
		}
	}
	return Project{}, ErrProjectNotFound
}

func (p Project) clone() Project {
	p.TechStack = append([]string(nil), p.TechStack...)
	return p
}
