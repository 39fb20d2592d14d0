package content

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlogPost struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title      string             `bson:"title" json:"title"`
	Content    string             `bson:"content" json:"content"`
	Author     string             `bson:"author" json:"author"`
	CoverImage string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Tags       []string           `bson:"tags" json:"tags"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Media struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Filename     string             `bson:"filename" json:"filename"`
	OriginalName string             `bson:"originalName" json:"originalName"`
	MimeType     string             `bson:"mimeType" json:"mimeType"`
	Size         int64              `bson:"size" json:"size"`
	URL          string             `bson:"url" json:"url"`
	UploadedAt   time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}

type Video struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	URL         string             `bson:"url" json:"url"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type PageContent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Intro     string             `bson:"intro" json:"intro"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
