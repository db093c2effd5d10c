package models

import "time"

// FallbackProjects is served by the public project listing when the content
// store is unreachable, so the marketing site stays navigable.
func FallbackProjects() []Project {
	now := time.Now().UTC()
	return []Project{
		{
			ID:           "fallback-1",
			Title:        "E-Commerce Website",
			Description:  "A full-featured online store with product management and payment processing.",
			Category:     "web",
			Technologies: []string{"React", "Node.js", "MongoDB"},
			Image:        "/placeholder.svg?height=300&width=500",
			Github:       "https://github.com/example/project",
			Demo:         "https://example.com",
			CreatedAt:    now,
		},
		{
			ID:           "fallback-2",
			Title:        "Portfolio Website",
			Description:  "A personal portfolio website to showcase projects and skills.",
			Category:     "web",
			Technologies: []string{"Next.js", "Tailwind CSS"},
			Image:        "/placeholder.svg?height=300&width=500",
			Github:       "https://github.com/example/project",
			Demo:         "https://example.com",
			CreatedAt:    now,
		},
	}
}

// FallbackBlogPosts is the blog listing counterpart of FallbackProjects.
func FallbackBlogPosts() []BlogPost {
	now := time.Now().UTC()
	author := Author{ID: "1", Name: "Admin User"}
	return []BlogPost{
		{
			ID:        "fallback-1",
			Title:     "Getting Started with React",
			Excerpt:   "Learn the basics of React and how to set up your first React application.",
			Content:   "<p>This is the full content of the blog post...</p>",
			Image:     "/placeholder.svg?height=300&width=500",
			Tags:      []string{"React", "JavaScript", "Web Development"},
			Status:    StatusPublished,
			Author:    author,
			CreatedAt: now,
		},
		{
			ID:        "fallback-2",
			Title:     "Introduction to Next.js",
			Excerpt:   "Discover the benefits of using Next.js for your React applications.",
			Content:   "<p>This is the full content of the blog post...</p>",
			Image:     "/placeholder.svg?height=300&width=500",
			Tags:      []string{"Next.js", "React", "Web Development"},
			Status:    StatusPublished,
			Author:    author,
			CreatedAt: now,
		},
	}
}
