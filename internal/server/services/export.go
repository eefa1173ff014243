package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vibetracker/internal/common"
	"github.com/dmitrijs2005/vibetracker/internal/netx"
	sc "github.com/dmitrijs2005/vibetracker/internal/server/config"
	"github.com/dmitrijs2005/vibetracker/internal/server/models"
	"github.com/dmitrijs2005/vibetracker/internal/server/repositories/repomanager"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	uploadToPresignedURL = netx.UploadToPresignedURL

	now = time.Now
)

// Snapshot is the document written to object storage by Export.
type Snapshot struct {
	ExportedAt time.Time      `json:"exportedAt"`
	Vibes      []*models.Vibe `json:"vibes"`
	Goals      []*models.Goal `json:"goals"`
}

// ExportResult tells the caller where the snapshot landed.
type ExportResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewExportService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *ExportService {
	return &ExportService{
		db:          db,
		repomanager: repomanager,
		config:      config,
	}
}

// ExportKey builds a unique object key grouped by export date.
func ExportKey(t time.Time) string {
	return fmt.Sprintf("exports/%d/%d/%d/%v.json", t.Year(), t.Month(), t.Day(), uuid.New())
}

func (s *ExportService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// Export writes a JSON snapshot of all vibes and goals to the configured
// bucket and returns its key with a short-lived download URL.
func (s *ExportService) Export(ctx context.Context) (*ExportResult, error) {
	if !s.config.ExportEnabled() {
		return nil, common.ErrExportDisabled
	}

	vibes, err := s.repomanager.Vibes(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing vibes: %w", err)
	}
	goals, err := s.repomanager.Goals(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing goals: %w", err)
	}

	ts := now().UTC()
	body, err := json.Marshal(Snapshot{ExportedAt: ts, Vibes: vibes, Goals: goals})
	if err != nil {
		return nil, fmt.Errorf("error encoding snapshot: %w", err)
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating presign client: %w", err)
	}

	bucket := s.config.S3Bucket
	key := ExportKey(ts)

	put, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("error presigning upload: %w", err)
	}

	if err := uploadToPresignedURL(ctx, put.URL, body, "application/json"); err != nil {
		return nil, fmt.Errorf("error uploading snapshot: %w", err)
	}

	get, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("error presigning download: %w", err)
	}

	return &ExportResult{Key: key, URL: get.URL}, nil
}
