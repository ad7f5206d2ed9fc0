package supabase

import (
	"fmt"
	"strings"

	"core-d-backend/internal/config"

	"github.com/supabase-community/supabase-go"
)

// NewStorageClient builds the project client from the service role
// credentials and returns its storage API bound to the configured bucket.
func NewStorageClient(cfg *config.Config) (*StorageClient, error) {
	if !cfg.StorageEnabled() {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY are required for storage")
	}

	baseURL := strings.TrimSuffix(cfg.SupabaseURL, "/")
	client, err := supabase.NewClient(baseURL, cfg.SupabaseServiceRoleKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	if client.Storage == nil {
		return nil, fmt.Errorf("supabase client has no storage API")
	}

	return &StorageClient{
		client:  client.Storage,
		bucket:  cfg.SupabaseStorageBucket,
		baseURL: baseURL,
	}, nil
}
