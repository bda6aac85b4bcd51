package models

type User struct {
	ID         string `dynamodbav:"id" json:"id"`                 // Opaque session token, generated once per session
	Location   string `dynamodbav:"location" json:"location"`     // Supported city, set at creation, immutable
	MatchCount int    `dynamodbav:"matchCount" json:"matchCount"` // Rooms this user has been paired into
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"`   // Timestamp of creation
}
