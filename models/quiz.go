package models

import "time"

// AgeGroup is the quiz resource age bracket.
type AgeGroup string

const (
	AgeGroupSenior AgeGroup = "senior"
	AgeGroupJunior AgeGroup = "junior"
)

// Gender scopes a quiz resource to an audience.
type Gender string

const (
	GenderGeneral  Gender = "general"
	GenderBrothers Gender = "brothers"
	GenderSisters  Gender = "sisters"
)

// QuizResource is the normalized record for a quizResources document.
type QuizResource struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Year       int       `json:"year"`
	AgeGroup   AgeGroup  `json:"ageGroup"`
	Gender     Gender    `json:"gender"`
	Content    string    `json:"content"`
	UploadedBy string    `json:"uploadedBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// QuizHelpQuestion is a user-submitted question visible to admins in near
// real time.
type QuizHelpQuestion struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Question  string    `json:"question"`
	CreatedAt time.Time `json:"createdAt"`
}
