package user

import (
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	userTypes "github.com/aidbridge/aidbridge-backend/pkg/user-management/types"
)

func (dbService *UserDBService) createIndexForUsersCollection() {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionUsers().Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	)
	if err != nil {
		slog.Error("Error creating index for users", slog.String("error", err.Error()))
	}
}

func (dbService *UserDBService) CreateUser(newUser userTypes.User) (userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	newUser.CreatedAt = time.Now()
	newUser.UpdatedAt = newUser.CreatedAt
	res, err := dbService.collectionUsers().InsertOne(ctx, newUser)
	if err != nil {
		return newUser, err
	}
	newUser.ID = res.InsertedID.(primitive.ObjectID)
	return newUser, nil
}

func (dbService *UserDBService) GetUserByEmail(email string) (userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var user userTypes.User
	err := dbService.collectionUsers().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, err
}

func (dbService *UserDBService) GetUserByID(id string) (userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var user userTypes.User
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return user, err
	}
	err = dbService.collectionUsers().FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	return user, err
}

// GetAllUsers returns every account, with the stored password hash and reset
// code stripped through a projection.
func (dbService *UserDBService) GetAllUsers() ([]userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"password": 0, "resetCode": 0}).
		SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := dbService.collectionUsers().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var users []userTypes.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (dbService *UserDBService) UpdateUser(id string, update bson.M) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	if setPart, ok := update["$set"].(bson.M); ok {
		setPart["updatedAt"] = time.Now()
	}

	res, err := dbService.collectionUsers().UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return errors.New("user not found")
	}
	return nil
}

func (dbService *UserDBService) UpdateRole(id string, role string) error {
	return dbService.UpdateUser(id, bson.M{"$set": bson.M{"role": role}})
}

func (dbService *UserDBService) UpdateMembership(id string, membership userTypes.Membership) (userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var user userTypes.User
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return user, err
	}

	update := bson.M{"$set": bson.M{"membership": membership, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = dbService.collectionUsers().FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&user)
	return user, err
}

func (dbService *UserDBService) SetPasswordResetCode(id string, code string, expiresAt time.Time) error {
	return dbService.UpdateUser(id, bson.M{"$set": bson.M{
		"resetCode": userTypes.PasswordReset{Code: code, ExpiresAt: expiresAt},
	}})
}

// UpdatePasswordAndClearResetCode replaces the stored hash and removes the
// one time code in the same write so the code cannot be replayed.
func (dbService *UserDBService) UpdatePasswordAndClearResetCode(id string, newPasswordHash string) error {
	return dbService.UpdateUser(id, bson.M{
		"$set":   bson.M{"password": newPasswordHash},
		"$unset": bson.M{"resetCode": ""},
	})
}
