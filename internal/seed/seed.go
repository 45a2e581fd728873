// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"corkboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder populates the database with realistic sample data.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all rows in dependency order so foreign keys never dangle.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []interface{}{
		&models.Like{},
		&models.Comment{},
		&models.Image{},
		&models.Post{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedUsers creates n users. All of them share the password "Password1!".
func (s *Seeder) SeedUsers(n int) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		nickname := gofakeit.Username()
		if len(nickname) > 8 {
			nickname = nickname[:8]
		}
		// nicknames are unique and capped at ten characters
		nickname = fmt.Sprintf("%s%02d", strings.ToLower(nickname), i%100)
		users = append(users, models.User{
			Email:    fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			Password: string(hashed),
			Nickname: nickname,
			Role:     models.RoleUser,
		})
	}
	if err := s.db.Create(&users).Error; err != nil {
		return nil, err
	}
	log.Printf("Created %d users", len(users))
	return users, nil
}

// SeedPosts creates n posts spread across the given users with a realistic
// created_at spread over the last 90 days.
func (s *Seeder) SeedPosts(users []models.User, n int) ([]models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to attribute posts to")
	}

	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rand.Intn(len(users))]
		title := gofakeit.Sentence(5)
		if len(title) > 100 {
			title = title[:100]
		}
		posts = append(posts, models.Post{
			Title:     title,
			Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
			AuthorID:  author.ID,
			Views:     uint(s.rand.Intn(500)),
			CreatedAt: s.pastTime(90),
		})
	}
	if err := s.db.Create(&posts).Error; err != nil {
		return nil, err
	}
	log.Printf("Created %d posts", len(posts))
	return posts, nil
}

// SeedEngagement adds comments and likes to the given posts. Like rows and
// the posts' denormalized counters are written together so they agree.
func (s *Seeder) SeedEngagement(users []models.User, posts []models.Post) error {
	var comments []models.Comment
	for i := range posts {
		for j := 0; j < s.rand.Intn(5); j++ {
			author := users[s.rand.Intn(len(users))]
			comments = append(comments, models.Comment{
				Body:     gofakeit.Sentence(8),
				PostID:   posts[i].ID,
				AuthorID: author.ID,
			})
		}
	}
	if len(comments) > 0 {
		if err := s.db.Create(&comments).Error; err != nil {
			return err
		}
	}
	log.Printf("Created %d comments", len(comments))

	var likes []models.Like
	likeCounts := make(map[uint]uint)
	for i := range posts {
		seen := make(map[uint]bool)
		for j := 0; j < s.rand.Intn(len(users)); j++ {
			user := users[s.rand.Intn(len(users))]
			if seen[user.ID] {
				continue
			}
			seen[user.ID] = true
			likes = append(likes, models.Like{
				PostID: posts[i].ID,
				UserID: user.ID,
			})
			likeCounts[posts[i].ID]++
		}
	}
	if len(likes) > 0 {
		if err := s.db.Create(&likes).Error; err != nil {
			return err
		}
	}
	for postID, count := range likeCounts {
		if err := s.db.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("likes", count).Error; err != nil {
			return err
		}
	}
	log.Printf("Created %d likes", len(likes))
	return nil
}

func (s *Seeder) pastTime(maxDays int) time.Time {
	daysBack := s.rand.Intn(maxDays)
	hoursBack := s.rand.Intn(24)
	minsBack := s.rand.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
