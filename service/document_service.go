package services

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/centralkang-byte/ctr-hr-hub-sub002/models"
	"gorm.io/gorm"
)

// DocumentService stores signed contract and work-permit files in
// S3-compatible object storage and records the resulting URL on the row.
type DocumentService struct {
	s3Client *s3.S3
	db       *gorm.DB
}

func NewDocumentService(db *gorm.DB) (*DocumentService, error) {
	region := os.Getenv("STORAGE_REGION")
	endpoint := os.Getenv("STORAGE_S3_ENDPOINT")
	accessKey := os.Getenv("STORAGE_ACCESS_KEY")
	secretKey := os.Getenv("STORAGE_SECRET_KEY")

	if region == "" || endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("missing required S3 configuration environment variables")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(region),
		Endpoint:         aws.String(endpoint),
		DisableSSL:       aws.Bool(false),
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &DocumentService{s3Client: s3.New(sess), db: db}, nil
}

// AttachContractDocument uploads the file and links it to the contract.
func (s *DocumentService) AttachContractDocument(contractID string, file multipart.File, header *multipart.FileHeader) (string, error) {
	var contract models.Contract
	if err := s.db.First(&contract, "id = ?", contractID).Error; err != nil {
		log.Printf("[AttachContractDocument] Error fetching contract %s: %v", contractID, err)
		return "", err
	}

	fileURL, err := s.uploadFile("contracts/"+contractID, file, header)
	if err != nil {
		return "", err
	}

	if err := s.db.Model(&contract).Updates(map[string]interface{}{
		"DocumentURL": fileURL,
		"UpdatedAt":   time.Now(),
	}).Error; err != nil {
		log.Printf("[AttachContractDocument] Error updating contract %s: %v", contractID, err)
		return "", err
	}
	log.Printf("[AttachContractDocument] Document stored for contract %s", contractID)
	return fileURL, nil
}

// AttachWorkPermitDocument uploads the file and links it to the permit.
func (s *DocumentService) AttachWorkPermitDocument(permitID string, file multipart.File, header *multipart.FileHeader) (string, error) {
	var permit models.WorkPermit
	if err := s.db.First(&permit, "id = ?", permitID).Error; err != nil {
		log.Printf("[AttachWorkPermitDocument] Error fetching work permit %s: %v", permitID, err)
		return "", err
	}

	fileURL, err := s.uploadFile("work-permits/"+permitID, file, header)
	if err != nil {
		return "", err
	}

	if err := s.db.Model(&permit).Updates(map[string]interface{}{
		"DocumentURL": fileURL,
		"UpdatedAt":   time.Now(),
	}).Error; err != nil {
		log.Printf("[AttachWorkPermitDocument] Error updating work permit %s: %v", permitID, err)
		return "", err
	}
	log.Printf("[AttachWorkPermitDocument] Document stored for work permit %s", permitID)
	return fileURL, nil
}

func (s *DocumentService) uploadFile(prefix string, file multipart.File, header *multipart.FileHeader) (string, error) {
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[uploadFile] ERROR reading file: %v", err)
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	bucket := os.Getenv("STORAGE_BUCKET")
	if bucket == "" {
		return "", fmt.Errorf("bucket name not configured")
	}

	key := fmt.Sprintf("%s/%d-%s", prefix, time.Now().Unix(), header.Filename)
	uploadInput := &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(fileBytes),
		ContentType: aws.String(header.Header.Get("Content-Type")),
	}

	if _, err := s.s3Client.PutObject(uploadInput); err != nil {
		log.Printf("[uploadFile] S3 upload error: %v", err)
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	fileURL := fmt.Sprintf("%s/%s/%s", os.Getenv("STORAGE_S3_URL"), bucket, key)
	log.Printf("[uploadFile] File stored at: %s", fileURL)
	return fileURL, nil
}
