package notification

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Notification struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Content     string             `bson:"content" json:"content"`
	RecipientID string             `bson:"recipient_id" json:"recipient_id"`
	Read        bool               `bson:"read" json:"read"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// Sink é o contrato mínimo que o dispatcher precisa do lado de
// persistência.
type Sink interface {
	Create(ctx context.Context, recipientID, content string) error
}

// --------------------------------------------------
// Mongo
// --------------------------------------------------

type Store struct {
	coll *mongo.Collection
}

func NewStore(client *mongo.Client, database string) *Store {
	return &Store{
		coll: client.Database(database).Collection("notifications"),
	}
}

func (s *Store) Create(ctx context.Context, recipientID, content string) error {
	now := time.Now().UTC()
	_, err := s.coll.InsertOne(ctx, Notification{
		Content:     content,
		RecipientID: recipientID,
		Read:        false,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	return err
}

func (s *Store) ListUnread(ctx context.Context, recipientID string) ([]Notification, error) {
	cur, err := s.coll.Find(
		ctx,
		bson.M{"recipient_id": recipientID, "read": false},
		options.Find().SetSort(bson.M{"created_at": -1}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	notifications := []Notification{}
	if err := cur.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *Store) MarkRead(ctx context.Context, docID string) error {
	id, err := primitive.ObjectIDFromHex(docID)
	if err != nil {
		return err
	}

	_, err = s.coll.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"read":       true,
			"updated_at": time.Now().UTC(),
		},
	})
	return err
}

var _ Sink = (*Store)(nil)
