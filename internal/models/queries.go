package models

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// validID reports whether s parses as a document id. Lookups with a malformed
// id behave exactly like lookups for an absent document.
func validID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func encodeList(list []string) string {
	if list == nil {
		list = []string{}
	}
	b, _ := json.Marshal(list)
	return string(b)
}

func decodeList(s string) []string {
	if s == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(s), &list); err != nil {
		return []string{}
	}
	return list
}

// ----------------------------
// Users
// ----------------------------

func GetUserByEmail(db *sql.DB, email string) (*User, error) {
	row := db.QueryRow(`SELECT id, email, name, password_hash, created_at FROM users WHERE email = ?`, email)
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ----------------------------
// Projects
// ----------------------------

func CreateProject(db *sql.DB, p *Project) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO projects
		(id, title, description, long_description, image, technologies, github, demo, category, features, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Title, p.Description, p.LongDescription, p.Image,
		encodeList(p.Technologies), p.Github, p.Demo, p.Category,
		encodeList(p.Features), now)
	if err != nil {
		return "", err
	}
	p.ID = id
	p.CreatedAt = now
	return id, nil
}

func ListProjects(db *sql.DB, f ProjectFilter) ([]Project, error) {
	q := `SELECT id, title, description, long_description, image, technologies, github, demo, category, features, created_at, updated_at
		FROM projects`
	var conds []string
	var args []any
	if f.Category != "" {
		conds = append(conds, `category = ?`)
		args = append(args, f.Category)
	}
	if f.Exclude != "" && validID(f.Exclude) {
		conds = append(conds, `id != ?`)
		args = append(args, f.Exclude)
	}
	for i, c := range conds {
		if i == 0 {
			q += ` WHERE ` + c
		} else {
			q += ` AND ` + c
		}
	}
	q += ` ORDER BY created_at DESC`
	if f.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, f.Limit)
	}
	rows, err := db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	projects := []Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func GetProject(db *sql.DB, id string) (*Project, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	row := db.QueryRow(`SELECT id, title, description, long_description, image, technologies, github, demo, category, features, created_at, updated_at
		FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func UpdateProject(db *sql.DB, id string, p *Project) error {
	if !validID(id) {
		return ErrNotFound
	}
	res, err := db.Exec(`UPDATE projects SET
		title = ?, description = ?, long_description = ?, image = ?, technologies = ?,
		github = ?, demo = ?, category = ?, features = ?, updated_at = ?
		WHERE id = ?`,
		p.Title, p.Description, p.LongDescription, p.Image, encodeList(p.Technologies),
		p.Github, p.Demo, p.Category, encodeList(p.Features), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireMatch(res)
}

func DeleteProject(db *sql.DB, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	res, err := db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireMatch(res)
}

// ----------------------------
// Blog posts
// ----------------------------

func CreateBlogPost(db *sql.DB, p *BlogPost) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO blog_posts
		(id, title, excerpt, content, image, tags, status, author_id, author_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Title, p.Excerpt, p.Content, p.Image, encodeList(p.Tags),
		p.Status, p.Author.ID, p.Author.Name, now, now)
	if err != nil {
		return "", err
	}
	p.ID = id
	p.CreatedAt = now
	return id, nil
}

func ListBlogPosts(db *sql.DB, f BlogFilter) ([]BlogPost, error) {
	q := `SELECT id, title, excerpt, content, image, tags, status, author_id, author_name, created_at, updated_at
		FROM blog_posts`
	var conds []string
	var args []any
	if f.Tag != "" {
		conds = append(conds, `EXISTS (SELECT 1 FROM json_each(blog_posts.tags) WHERE json_each.value = ?)`)
		args = append(args, f.Tag)
	}
	if f.Status != "" {
		conds = append(conds, `status = ?`)
		args = append(args, f.Status)
	}
	if f.Exclude != "" && validID(f.Exclude) {
		conds = append(conds, `id != ?`)
		args = append(args, f.Exclude)
	}
	for i, c := range conds {
		if i == 0 {
			q += ` WHERE ` + c
		} else {
			q += ` AND ` + c
		}
	}
	q += ` ORDER BY created_at DESC`
	if f.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, f.Limit)
	}
	rows, err := db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	posts := []BlogPost{}
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func GetBlogPost(db *sql.DB, id string) (*BlogPost, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	row := db.QueryRow(`SELECT id, title, excerpt, content, image, tags, status, author_id, author_name, created_at, updated_at
		FROM blog_posts WHERE id = ?`, id)
	p, err := scanBlogPost(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func UpdateBlogPost(db *sql.DB, id string, p *BlogPost) error {
	if !validID(id) {
		return ErrNotFound
	}
	res, err := db.Exec(`UPDATE blog_posts SET
		title = ?, excerpt = ?, content = ?, image = ?, tags = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		p.Title, p.Excerpt, p.Content, p.Image, encodeList(p.Tags), p.Status,
		time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireMatch(res)
}

func PatchBlogPost(db *sql.DB, id string, patch BlogPatch) error {
	if !validID(id) {
		return ErrNotFound
	}
	sets := []string{`updated_at = ?`}
	args := []any{time.Now().UTC()}
	if patch.Title != nil {
		sets = append(sets, `title = ?`)
		args = append(args, *patch.Title)
	}
	if patch.Excerpt != nil {
		sets = append(sets, `excerpt = ?`)
		args = append(args, *patch.Excerpt)
	}
	if patch.Content != nil {
		sets = append(sets, `content = ?`)
		args = append(args, *patch.Content)
	}
	if patch.Image != nil {
		sets = append(sets, `image = ?`)
		args = append(args, *patch.Image)
	}
	if patch.Tags != nil {
		sets = append(sets, `tags = ?`)
		args = append(args, encodeList(*patch.Tags))
	}
	if patch.Status != nil {
		sets = append(sets, `status = ?`)
		args = append(args, *patch.Status)
	}
	q := `UPDATE blog_posts SET `
	for i, s := range sets {
		if i > 0 {
			q += `, `
		}
		q += s
	}
	q += ` WHERE id = ?`
	args = append(args, id)
	res, err := db.Exec(q, args...)
	if err != nil {
		return err
	}
	return requireMatch(res)
}

func DeleteBlogPost(db *sql.DB, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	res, err := db.Exec(`DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireMatch(res)
}

// ----------------------------
// Contact messages
// ----------------------------

func CreateMessage(db *sql.DB, m *ContactMessage) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, m.Name, m.Email, m.Subject, m.Message, now)
	if err != nil {
		return "", err
	}
	m.ID = id
	m.CreatedAt = now
	return id, nil
}

func ListMessages(db *sql.DB) ([]ContactMessage, error) {
	rows, err := db.Query(`SELECT id, name, email, subject, message, created_at
		FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	messages := []ContactMessage{}
	for rows.Next() {
		var m ContactMessage
		var subject sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Subject = subject.String
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// ----------------------------
// Scan helpers
// ----------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*Project, error) {
	var p Project
	var longDesc, demo, features sql.NullString
	var technologies string
	var updated sql.NullTime
	err := row.Scan(&p.ID, &p.Title, &p.Description, &longDesc, &p.Image,
		&technologies, &p.Github, &demo, &p.Category, &features,
		&p.CreatedAt, &updated)
	if err != nil {
		return nil, err
	}
	p.LongDescription = longDesc.String
	p.Demo = demo.String
	p.Technologies = decodeList(technologies)
	p.Features = decodeList(features.String)
	if updated.Valid {
		t := updated.Time
		p.UpdatedAt = &t
	}
	return &p, nil
}

func scanBlogPost(row rowScanner) (*BlogPost, error) {
	var p BlogPost
	var tags string
	var updated sql.NullTime
	err := row.Scan(&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.Image,
		&tags, &p.Status, &p.Author.ID, &p.Author.Name, &p.CreatedAt, &updated)
	if err != nil {
		return nil, err
	}
	p.Tags = decodeList(tags)
	if updated.Valid {
		t := updated.Time
		p.UpdatedAt = &t
	}
	return &p, nil
}

func requireMatch(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
