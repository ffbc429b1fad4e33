package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/heritagewatch/internal/common"
	sc "github.com/dmitrijs2005/heritagewatch/internal/server/config"
	"github.com/dmitrijs2005/heritagewatch/internal/server/models"
	"github.com/dmitrijs2005/heritagewatch/internal/server/repositories/repomanager"
	"github.com/golang/geo/s2"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PresignExpiry bounds how long an upload URL stays usable.
const PresignExpiry = 15 * time.Minute

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
)

type ReportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewReportService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *ReportService {
	return &ReportService{
		db:          db,
		repomanager: repomanager,
		config:      config,
	}
}

// PhotoKeyPrefix is the storage prefix of every photo uploaded by userID.
func PhotoKeyPrefix(userID string) string {
	return "reports/" + userID + "/"
}

// NewPhotoKey returns a fresh storage key under the user's prefix.
func NewPhotoKey(userID string, now time.Time) string {
	return fmt.Sprintf("%s%d/%02d/%02d/%v", PhotoKeyPrefix(userID), now.Year(), now.Month(), now.Day(), uuid.New())
}

// List returns all reports of the user in creation order, including the
// soft-deleted ones.
func (s *ReportService) List(ctx context.Context, userID string) ([]*models.Report, error) {
	return s.repomanager.Reports(s.db).ListByUser(ctx, userID)
}

// Create validates and stores a new report. The position must be a valid
// latitude/longitude pair and every photo key must have been issued to the
// same user.
func (s *ReportService) Create(ctx context.Context, userID string, r *models.Report) (*models.Report, error) {
	r.PlaceName = strings.TrimSpace(r.PlaceName)
	r.Designation = strings.TrimSpace(r.Designation)

	if r.PlaceName == "" {
		return nil, fmt.Errorf("%w: place name is required", common.ErrorValidation)
	}
	if !s2.LatLngFromDegrees(r.Latitude, r.Longitude).IsValid() {
		return nil, fmt.Errorf("%w: invalid position %v,%v", common.ErrorValidation, r.Latitude, r.Longitude)
	}
	for _, key := range r.Photos {
		if !strings.HasPrefix(key, PhotoKeyPrefix(userID)) {
			return nil, fmt.Errorf("%w: unknown photo %q", common.ErrorValidation, key)
		}
	}

	r.ID = ""
	r.UserID = userID
	r.Status = common.ObjectStatusActive

	created, err := s.repomanager.Reports(s.db).Create(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("error creating report: %w", err)
	}
	return created, nil
}

// SoftDelete marks one of the user's reports deleted.
func (s *ReportService) SoftDelete(ctx context.Context, userID, reportID string) error {
	if !isUUID(reportID) {
		return common.ErrorNotFound
	}
	return s.repomanager.Reports(s.db).SoftDelete(ctx, userID, reportID)
}

func (s *ReportService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
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
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// PresignUpload issues a storage key and a presigned PUT URL for one image.
func (s *ReportService) PresignUpload(ctx context.Context, userID, contentType string) (string, string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", "", fmt.Errorf("%w: unsupported content type %q", common.ErrorValidation, contentType)
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := NewPhotoKey(userID, time.Now())

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
