package s3

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// MockUploader мок для S3 uploader
type MockUploader struct {
	uploadFunc func(input *s3manager.UploadInput) (*s3manager.UploadOutput, error)
}

func (m *MockUploader) UploadWithContext(_ context.Context, input *s3manager.UploadInput, _ ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	return m.uploadFunc(input)
}

// MockDownloader мок для S3 downloader
type MockDownloader struct {
	content string
	err     error
	gotKey  string
}

func (m *MockDownloader) DownloadWithContext(_ context.Context, w io.WriterAt, input *s3.GetObjectInput, _ ...func(*s3manager.Downloader)) (int64, error) {
	m.gotKey = aws.StringValue(input.Key)
	if m.err != nil {
		return 0, m.err
	}
	n, err := w.WriteAt([]byte(m.content), 0)
	return int64(n), err
}

// MockClient мок для S3 клиента
type MockClient struct {
	deleteObjectFunc func(input *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error)
}

func (m *MockClient) DeleteObjectWithContext(_ context.Context, input *s3.DeleteObjectInput, _ ...request.Option) (*s3.DeleteObjectOutput, error) {
	return m.deleteObjectFunc(input)
}

func testConfig() *Config {
	return &Config{
		Region:     "us-east-1",
		AccessKey:  "test-access-key",
		SecretKey:  "test-secret-key",
		Endpoint:   "https://s3.example.com",
		BucketName: "test-bucket",
	}
}

// TestSuccessfulUpload тестирует успешную загрузку плейлиста
func TestSuccessfulUpload(t *testing.T) {
	storage := &Storage{
		config: testConfig(),
		uploader: &MockUploader{
			uploadFunc: func(input *s3manager.UploadInput) (*s3manager.UploadOutput, error) {
				if aws.StringValue(input.Bucket) != "test-bucket" {
					t.Errorf("Ожидался bucket: test-bucket, получено: %s", aws.StringValue(input.Bucket))
				}
				if aws.StringValue(input.Key) != "playlist.csv" {
					t.Errorf("Ожидался key: playlist.csv, получено: %s", aws.StringValue(input.Key))
				}
				body, err := io.ReadAll(input.Body)
				if err != nil {
					t.Errorf("Ошибка чтения тела запроса: %v", err)
				}
				if string(body) != "A,B,3\n" {
					t.Errorf("Неожиданное содержимое: %q", string(body))
				}
				return &s3manager.UploadOutput{}, nil
			},
		},
	}

	url, err := storage.Upload(context.Background(), strings.NewReader("A,B,3\n"), "playlist.csv")
	if err != nil {
		t.Fatalf("Неожиданная ошибка при загрузке: %v", err)
	}

	expectedURL := "https://s3.example.com/test-bucket/playlist.csv"
	if url != expectedURL {
		t.Errorf("Ожидался URL: %s, получено: %s", expectedURL, url)
	}
}

// TestUploadErrorHandling тестирует обработку ошибок при загрузке
func TestUploadErrorHandling(t *testing.T) {
	errorsByName := map[string]error{
		"InvalidCredentials": awserr.New("InvalidAccessKeyId", "The AWS Access Key Id you provided does not exist in our records.", nil),
		"NetworkError":       awserr.New("RequestTimeout", "Request timeout", nil),
		"BucketAccessError":  awserr.New("AccessDenied", "Access Denied", nil),
	}

	for name, uploadErr := range errorsByName {
		uploadErr := uploadErr
		t.Run(name, func(t *testing.T) {
			storage := &Storage{
				config: testConfig(),
				uploader: &MockUploader{
					uploadFunc: func(_ *s3manager.UploadInput) (*s3manager.UploadOutput, error) {
						return nil, uploadErr
					},
				},
			}

			_, err := storage.Upload(context.Background(), strings.NewReader(""), "playlist.csv")
			if err == nil {
				t.Fatal("Ожидалась ошибка при загрузке")
			}
			if !strings.Contains(err.Error(), "ошибка загрузки") {
				t.Errorf("Неожиданное сообщение об ошибке: %v", err)
			}
		})
	}
}

// TestDownload тестирует скачивание объекта
func TestDownload(t *testing.T) {
	downloader := &MockDownloader{content: "A,B,3\n"}
	storage := &Storage{config: testConfig(), downloader: downloader}

	data, err := storage.Download(context.Background(), "lists/main.csv")
	if err != nil {
		t.Fatalf("Неожиданная ошибка при скачивании: %v", err)
	}
	if string(data) != "A,B,3\n" {
		t.Errorf("Неожиданное содержимое: %q", string(data))
	}
	if downloader.gotKey != "lists/main.csv" {
		t.Errorf("Ожидался key: lists/main.csv, получено: %s", downloader.gotKey)
	}
}

// TestDownloadError тестирует обработку отсутствующего объекта
func TestDownloadError(t *testing.T) {
	storage := &Storage{
		config:     testConfig(),
		downloader: &MockDownloader{err: awserr.New(s3.ErrCodeNoSuchKey, "The specified key does not exist.", nil)},
	}

	_, err := storage.Download(context.Background(), "missing.csv")
	if err == nil {
		t.Fatal("Ожидалась ошибка при скачивании")
	}
	if !strings.Contains(err.Error(), "ошибка скачивания") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}

// TestDelete тестирует удаление объекта
func TestDelete(t *testing.T) {
	var deletedKey string
	storage := &Storage{
		config: testConfig(),
		client: &MockClient{
			deleteObjectFunc: func(input *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
				deletedKey = aws.StringValue(input.Key)
				return &s3.DeleteObjectOutput{}, nil
			},
		},
	}

	if err := storage.Delete(context.Background(), "playlist.csv"); err != nil {
		t.Fatalf("Неожиданная ошибка при удалении: %v", err)
	}
	if deletedKey != "playlist.csv" {
		t.Errorf("Ожидался key: playlist.csv, получено: %s", deletedKey)
	}

	storage.client = &MockClient{
		deleteObjectFunc: func(_ *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
			return nil, awserr.New("AccessDenied", "Access Denied", nil)
		},
	}
	err := storage.Delete(context.Background(), "playlist.csv")
	if err == nil || !strings.Contains(err.Error(), "ошибка удаления файла из S3") {
		t.Errorf("Неожиданная ошибка: %v", err)
	}
}

// TestURL тестирует формирование адреса объекта
func TestURL(t *testing.T) {
	storage := &Storage{config: testConfig()}
	if got := storage.URL("a.csv"); got != "https://s3.example.com/test-bucket/a.csv" {
		t.Errorf("Неожиданный URL: %s", got)
	}

	storage.config.Endpoint = ""
	if got := storage.URL("a.csv"); got != "s3://test-bucket/a.csv" {
		t.Errorf("Неожиданный URL: %s", got)
	}
}

// TestNewStorage проверяет создание хранилища без сетевых запросов
func TestNewStorage(t *testing.T) {
	storage, err := NewStorage(testConfig())
	if err != nil {
		t.Fatalf("Ошибка создания хранилища: %v", err)
	}
	if storage.Bucket() != "test-bucket" {
		t.Errorf("Ожидался bucket: test-bucket, получено: %s", storage.Bucket())
	}
}
