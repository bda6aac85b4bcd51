package models

type Room struct {
	RoomID    string `dynamodbav:"roomId" json:"roomId"`       // Unique roomId, allocated at pairing time
	MemberA   string `dynamodbav:"memberA" json:"memberA"`     // First paired user id
	MemberB   string `dynamodbav:"memberB" json:"memberB"`     // Second paired user id
	Status    string `dynamodbav:"status" json:"status"`       // open, closed
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"` // Timestamp of creation
}
