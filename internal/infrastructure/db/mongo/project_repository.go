package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kkkiikkk/kit-global-test/internal/core/domain"
)

const projectsCollection = "projects"

type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectsCollection)}
}

type mongoProject struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	OwnerID     primitive.ObjectID `bson:"ownerId"`
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ownerID, err := primitive.ObjectIDFromHex(project.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner id: %w", err)
	}

	res, err := r.coll.InsertOne(ctx, mongoProject{
		Title:       project.Title,
		Description: project.Description,
		OwnerID:     ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	created := *project
	created.ID = id.Hex()
	return &created, nil
}

// FindByIDAndOwner filters by id and owner in a single query. A malformed id
// cannot match any document, so it surfaces as not-found too.
func (r *ProjectRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var mp mongoProject
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "ownerId": owner}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	return &domain.Project{
		ID:          mp.ID.Hex(),
		Title:       mp.Title,
		Description: mp.Description,
		OwnerID:     mp.OwnerID.Hex(),
	}, nil
}
