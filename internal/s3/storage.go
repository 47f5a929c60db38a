// Package s3 предоставляет хранение файла плейлиста в Amazon S3 или совместимом хранилище
package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Config содержит настройки для S3
type Config struct {
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	BucketName string
}

// uploadAPI - часть s3manager.Uploader, которой пользуется Storage
type uploadAPI interface {
	UploadWithContext(ctx context.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

// downloadAPI - часть s3manager.Downloader, которой пользуется Storage
type downloadAPI interface {
	DownloadWithContext(ctx context.Context, w io.WriterAt, input *s3.GetObjectInput, opts ...func(*s3manager.Downloader)) (int64, error)
}

// objectAPI - часть S3 клиента, которой пользуется Storage
type objectAPI interface {
	DeleteObjectWithContext(ctx context.Context, input *s3.DeleteObjectInput, opts ...request.Option) (*s3.DeleteObjectOutput, error)
}

// Storage обертка для загрузки, скачивания и удаления объектов
type Storage struct {
	uploader   uploadAPI
	downloader downloadAPI
	client     objectAPI
	config     *Config
}

// NewStorage создает новое S3 хранилище
func NewStorage(config *Config) (*Storage, error) {
	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
	}

	// Если указан endpoint, добавляем его
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания AWS сессии: %w", err)
	}

	return &Storage{
		uploader:   s3manager.NewUploader(sess),
		downloader: s3manager.NewDownloader(sess),
		client:     s3.New(sess),
		config:     config,
	}, nil
}

// Bucket возвращает имя бакета
func (s *Storage) Bucket() string {
	return s.config.BucketName
}

// Upload загружает содержимое reader под ключом key и возвращает URL объекта
func (s *Storage) Upload(ctx context.Context, reader io.Reader, key string) (string, error) {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки: %w", err)
	}

	return s.URL(key), nil
}

// Download скачивает объект целиком
func (s *Storage) Download(ctx context.Context, key string) ([]byte, error) {
	buf := aws.NewWriteAtBuffer([]byte{})
	_, err := s.downloader.DownloadWithContext(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка скачивания: %w", err)
	}
	return buf.Bytes(), nil
}

// Delete удаляет объект из S3
func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("ошибка удаления файла из S3: %w", err)
	}
	return nil
}

// URL формирует адрес объекта
func (s *Storage) URL(key string) string {
	if s.config.Endpoint == "" {
		return fmt.Sprintf("s3://%s/%s", s.config.BucketName, key)
	}
	return fmt.Sprintf("%s/%s/%s", s.config.Endpoint, s.config.BucketName, key)
}
