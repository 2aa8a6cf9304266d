package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/core/ports"
	"github.com/abkhaztransfer/transfer-client/internal/infrastructure/session"
	"github.com/abkhaztransfer/transfer-client/internal/metrics"
)

const sessionCollection = "client_sessions"

// SessionStore keeps one document per profile holding both session entries.
type SessionStore struct {
	coll    *mongo.Collection
	profile string
}

func NewSessionStore(db *mongo.Database, profile string) *SessionStore {
	return &SessionStore{coll: db.Collection(sessionCollection), profile: profile}
}

type mongoSession struct {
	Profile   string `bson:"_id"`
	AuthToken string `bson:"auth_token"`
	User      string `bson:"user"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (s *SessionStore) Get(ctx context.Context) (*domain.Session, error) {
	var doc mongoSession
	if err := s.coll.FindOne(ctx, bson.M{"_id": s.profile}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return session.Decode(doc.AuthToken, doc.User)
}

// Set replaces both entries with one upsert.
func (s *SessionStore) Set(ctx context.Context, sess domain.Session) error {
	token, user, err := session.Encode(sess)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		"auth_token": token,
		"user":       user,
		"updated_at": time.Now().UTC().Unix(),
	}}
	_, err = s.coll.UpdateOne(ctx, bson.M{"_id": s.profile}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	metrics.SessionWritesTotal.WithLabelValues("mongo", "set").Inc()
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": s.profile}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	metrics.SessionWritesTotal.WithLabelValues("mongo", "clear").Inc()
	return nil
}

var _ ports.SessionStore = (*SessionStore)(nil)
