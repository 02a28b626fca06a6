package models

import (
	"time"
)

type User struct {
	UserID       string `json:"userId" db:"user_id"`
	Username     string `json:"username" db:"username"`
	FirstName    string `json:"firstName" db:"first_name"`
	LastName     string `json:"lastName" db:"last_name"`
	PasswordHash string `json:"-" db:"password_hash"`
}

func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}

type Group struct {
	GroupID     string `json:"groupId" db:"group_id"`
	Title       string `json:"title" db:"title"`
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}

type Post struct {
	PostID   string    `json:"postId" db:"post_id"`
	Text     string    `json:"text" db:"text"`
	PubDate  time.Time `json:"pubDate" db:"pub_date"`
	AuthorID *string   `json:"authorId" db:"author_id"`
	GroupID  *string   `json:"groupId" db:"group_id"`
	ImageURL *string   `json:"imageUrl" db:"image_url"`

	// заполняются join-ом в списковых выборках
	AuthorUsername *string `json:"authorUsername,omitempty" db:"author_username"`
	GroupSlug      *string `json:"groupSlug,omitempty" db:"group_slug"`
}

// аксессоры для шаблонов: разыменовывают nullable-поля
func (p Post) Author() string {
	if p.AuthorUsername != nil {
		return *p.AuthorUsername
	}
	return ""
}

func (p Post) Group() string {
	if p.GroupSlug != nil {
		return *p.GroupSlug
	}
	return ""
}

func (p Post) Image() string {
	if p.ImageURL != nil {
		return *p.ImageURL
	}
	return ""
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	PostID    *string   `json:"postId" db:"post_id"`
	AuthorID  *string   `json:"authorId" db:"author_id"`
	Text      string    `json:"text" db:"text"`
	Created   time.Time `json:"created" db:"created"`

	AuthorUsername *string `json:"authorUsername,omitempty" db:"author_username"`
}

func (c Comment) Author() string {
	if c.AuthorUsername != nil {
		return *c.AuthorUsername
	}
	return ""
}

// Follow - направленное ребро: user подписан на author
type Follow struct {
	FollowID string  `json:"followId" db:"follow_id"`
	UserID   *string `json:"userId" db:"user_id"`
	AuthorID *string `json:"authorId" db:"author_id"`
}
