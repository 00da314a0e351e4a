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

const studentCollectionName = "students"

// mongoStudentRepository implements repository.StudentRepository
type mongoStudentRepository struct {
	collection *mongo.Collection
}

// NewMongoStudentRepository creates a new Student repository.
func NewMongoStudentRepository(db *mongo.Database) repository.StudentRepository {
	return &mongoStudentRepository{
		collection: db.Collection(studentCollectionName),
	}
}

// GetByPersonalID retrieves all students owned by a trainer.
func (r *mongoStudentRepository) GetByPersonalID(ctx context.Context, personalID string) ([]domain.Student, error) {
	var students []domain.Student
	filter := bson.M{"personalId": personalID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetByID retrieves a single student.
func (r *mongoStudentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	var student domain.Student
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &student, nil
}

// Insert stores a new student and returns the created row.
func (r *mongoStudentRepository) Insert(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	if student.Name == "" || student.PersonalID == "" {
		return nil, errors.New("student requires name and personalId")
	}
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now().UTC()
	}

	if _, err := r.collection.InsertOne(ctx, student); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, student.ID)
}

// EnsureStudentIndexes creates necessary indexes. Call during startup.
func EnsureStudentIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Every read path filters on the owning trainer.
			Keys:    bson.D{{Key: "personalId", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
