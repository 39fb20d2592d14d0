package content

import (
	"context"
	"time"

	"github.com/aidbridge/aidbridge-backend/pkg/db"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection names
const (
	COLLECTION_NAME_BLOG_POSTS   = "blogPosts"
	COLLECTION_NAME_MEDIA        = "media"
	COLLECTION_NAME_VIDEOS       = "videos"
	COLLECTION_NAME_PAGE_CONTENT = "pageContent"
)

type ContentDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
}

func NewContentDBService(configs db.DBConfig) (*ContentDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)
	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()
	if err != nil {
		return nil, err
	}

	cDBSc := &ContentDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
	}
	return cDBSc, nil
}

func (dbService *ContentDBService) getDBName() string {
	return dbService.DBNamePrefix + "content"
}

func (dbService *ContentDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *ContentDBService) collectionBlogPosts() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_BLOG_POSTS)
}

func (dbService *ContentDBService) collectionMedia() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_MEDIA)
}

func (dbService *ContentDBService) collectionVideos() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_VIDEOS)
}

func (dbService *ContentDBService) collectionPageContent() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_PAGE_CONTENT)
}
