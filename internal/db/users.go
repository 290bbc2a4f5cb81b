package mbiri

import (
	"context"
	"errors"
	"fmt"

	model "github.com/loktioncode/mbiri-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) CreateUser(ctx context.Context, user model.User) (primitive.ObjectID, error) {
	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, fmt.Errorf("user %w", model.ErrAlreadyExists)
		}
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (s *Store) GetUser(ctx context.Context, id primitive.ObjectID) (user model.User, err error) {
	err = s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user, fmt.Errorf("user %w", model.ErrNotFound)
		}
		return user, err
	}
	return user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (user model.User, err error) {
	err = s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user, fmt.Errorf("user %w", model.ErrNotFound)
		}
		return user, err
	}
	return user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (user model.User, err error) {
	err = s.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user, fmt.Errorf("user %w", model.ErrNotFound)
		}
		return user, err
	}
	return user, nil
}

func (s *Store) UpdateUser(ctx context.Context, id primitive.ObjectID, patch model.UserPatch) (user model.User, err error) {
	set := bson.M{}
	if patch.Email != "" {
		set["email"] = patch.Email
	}
	if patch.Username != "" {
		set["username"] = patch.Username
	}
	if patch.HashedPassword != "" {
		set["hashed_password"] = patch.HashedPassword
	}
	if len(set) == 0 {
		return s.GetUser(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.users.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user, fmt.Errorf("user %w", model.ErrNotFound)
		}
		if mongo.IsDuplicateKeyError(err) {
			return user, fmt.Errorf("user %w", model.ErrAlreadyExists)
		}
		return user, err
	}
	return user, nil
}

func (s *Store) IncPoints(ctx context.Context, id primitive.ObjectID, delta int) error {
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"points": delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %w", model.ErrNotFound)
	}
	return nil
}

// TransferPoints debits from and credits to. The debit filter includes the
// balance predicate, so a concurrent transfer can never drive it negative.
// A failed credit is compensated by crediting the amount back.
func (s *Store) TransferPoints(ctx context.Context, from, to primitive.ObjectID, amount int) error {
	res, err := s.users.UpdateOne(ctx,
		bson.M{"_id": from, "points": bson.M{"$gte": amount}},
		bson.M{"$inc": bson.M{"points": -amount}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("transfer %w", model.ErrInsufficientBalance)
	}

	res, err = s.users.UpdateOne(ctx, bson.M{"_id": to}, bson.M{"$inc": bson.M{"points": amount}})
	if err == nil && res.MatchedCount == 0 {
		err = fmt.Errorf("recipient %w", model.ErrNotFound)
	}
	if err != nil {
		// credit failed: give the points back
		_, _ = s.users.UpdateOne(context.WithoutCancel(ctx), bson.M{"_id": from}, bson.M{"$inc": bson.M{"points": amount}})
		return err
	}
	return nil
}
