package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SummaryModel is one summarization result in the structured store.
type SummaryModel struct {
	Base
	URL            string `json:"url"            gorm:"type:text;not null"`
	EnglishSummary string `json:"englishSummary" gorm:"type:text;not null"`
	UrduSummary    string `json:"urduSummary"    gorm:"type:text;not null"`
}

func (SummaryModel) TableName() string { return "summaries" }

// FullTextDocument keeps the extracted page text in the document store.
type FullTextDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	URL       string             `bson:"url"           json:"url"`
	FullText  string             `bson:"full_text"     json:"fullText"`
	Timestamp time.Time          `bson:"timestamp"     json:"timestamp"`
}
