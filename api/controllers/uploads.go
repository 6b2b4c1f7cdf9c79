package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"Postboard/api/utils/fileformat"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
)

const maxImageSize = 500 * 1024

// uploadPostImage stores a post image on S3 and returns its public URL.
// Without S3_BUCKET configured the image is skipped and the post goes out
// without one.
func (server *Server) uploadPostImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	bucket := strings.SplitN(os.Getenv("S3_BUCKET"), "/", 2)[0]
	if bucket == "" {
		log.Printf("S3_BUCKET not set, skipping image upload")
		return "", nil
	}

	if file.Size > maxImageSize {
		return "", errors.New("Image should be below 500KB")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(http.DetectContentType(buf), "image/") {
		return "", errors.New("File is not an image")
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-2"
	}
	cfg, err := config.LoadDefaultConfig(c.Request.Context(), config.WithRegion(region))
	if err != nil {
		return "", err
	}

	key := "PostImages/" + fileformat.UniqueFormat(file.Filename)
	client := s3.NewFromConfig(cfg)
	_, err = client.PutObject(c.Request.Context(), &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf),
		ContentLength: aws.Int64(int64(len(buf))),
		ContentType:   aws.String(http.DetectContentType(buf)),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key), nil
}
