package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
)

const MaxUploadBytes = 10 << 20

// S3API é o subconjunto do cliente S3 usado aqui.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type Attachment struct {
	Key         string
	ContentType string
	Size        int
}

// Store grava anexos dos relatórios de sessão. Sem bucket, fica desligado.
type Store struct {
	client S3API
	bucket string
	log    *logrus.Entry
}

func NewStore(client S3API, bucket string, log *logrus.Entry) *Store {
	return &Store{client: client, bucket: bucket, log: log}
}

type S3Options struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// NewS3Client monta o cliente com credenciais estáticas. Endpoint
// permite MinIO ou outro serviço compatível.
func NewS3Client(opts S3Options) *s3.Client {
	return s3.New(s3.Options{
		Region: opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			opts.AccessKeyID,
			opts.SecretAccessKey,
			"",
		),
	}, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
}

func (s *Store) Enabled() bool {
	return s != nil && s.bucket != "" && s.client != nil
}

func (s *Store) Upload(
	ctx context.Context,
	reportID string,
	contentType string,
	data []byte,
) (Attachment, error) {

	if !s.Enabled() {
		return Attachment{}, ErrDisabled
	}

	prepared, err := Prepare(contentType, data)
	if err != nil {
		return Attachment{}, err
	}

	key := path.Join(
		"reports",
		reportID,
		fmt.Sprintf("%d%s", time.Now().UnixNano(), prepared.Ext),
	)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(prepared.Body),
		ContentType: aws.String(prepared.ContentType),
	})
	if err != nil {
		return Attachment{}, fmt.Errorf("storage: s3 put %s: %w", key, err)
	}

	s.log.WithFields(logrus.Fields{
		"report_id": reportID,
		"key":       key,
		"bytes":     len(prepared.Body),
	}).Info("report attachment stored")

	return Attachment{
		Key:         key,
		ContentType: prepared.ContentType,
		Size:        len(prepared.Body),
	}, nil
}

func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("storage: s3 get %s: %w", key, err)
	}
	return out.Body, nil
}
