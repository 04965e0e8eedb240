package archive

import (
	"context"
	"errors"

	"github.com/mx-space/blog-summarizer/internal/models"
	pkgmongo "github.com/mx-space/blog-summarizer/internal/pkg/mongo"
	"gorm.io/gorm"
)

var errSinkDisabled = errors.New("sink disabled")

// SQLSink writes SummaryRecords through gorm. A nil db disables it.
type SQLSink struct {
	db *gorm.DB
}

func NewSQLSink(db *gorm.DB) *SQLSink { return &SQLSink{db: db} }

func (s *SQLSink) Enabled() bool { return s != nil && s.db != nil }

// Insert stores record and returns its generated id.
func (s *SQLSink) Insert(ctx context.Context, record *models.SummaryModel) (string, error) {
	if !s.Enabled() {
		return "", errSinkDisabled
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return "", err
	}
	return record.ID, nil
}

// MongoSink writes FullTextRecords into the lazily connected collection.
type MongoSink struct {
	lazy *pkgmongo.Lazy
}

func NewMongoSink(lazy *pkgmongo.Lazy) *MongoSink { return &MongoSink{lazy: lazy} }

func (s *MongoSink) Enabled() bool { return s != nil && s.lazy.Enabled() }

func (s *MongoSink) InsertOne(ctx context.Context, doc *models.FullTextDocument) error {
	coll, err := s.lazy.Collection(ctx)
	if err != nil {
		return err
	}
	_, err = coll.InsertOne(ctx, doc)
	return err
}
