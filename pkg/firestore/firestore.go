package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// NewFirestoreClient создает клиент Firestore; файл учетных данных необязателен
func NewFirestoreClient(ctx context.Context, projectID, databaseID, credentialsFile string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile)) //nolint:staticcheck // путь из конфигурации приложения
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}
