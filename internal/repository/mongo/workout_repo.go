package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/repository"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

func (r *mongoWorkoutRepository) getByOwner(ctx context.Context, field, value string) ([]domain.Workout, error) {
	var workouts []domain.Workout
	filter := bson.M{field: value}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// GetByPersonalID retrieves all workouts created by a trainer.
func (r *mongoWorkoutRepository) GetByPersonalID(ctx context.Context, personalID string) ([]domain.Workout, error) {
	return r.getByOwner(ctx, "personalId", personalID)
}

// GetByStudentID retrieves all workouts assigned to a student.
func (r *mongoWorkoutRepository) GetByStudentID(ctx context.Context, studentID string) ([]domain.Workout, error) {
	return r.getByOwner(ctx, "studentId", studentID)
}

// Insert stores a new workout and returns the created row.
func (r *mongoWorkoutRepository) Insert(ctx context.Context, workout *domain.Workout) (*domain.Workout, error) {
	if workout.Name == "" || workout.PersonalID == "" || workout.StudentID == "" {
		return nil, errors.New("workout requires name, personalId and studentId")
	}
	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = now
	}
	workout.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, workout); err != nil {
		return nil, err
	}

	var created domain.Workout
	if err := r.collection.FindOne(ctx, bson.M{"_id": workout.ID}).Decode(&created); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrInsertFailed
		}
		return nil, err
	}
	return &created, nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "personalId", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "studentId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
