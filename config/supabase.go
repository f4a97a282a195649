package config

import (
	"fmt"

	supa "github.com/supabase-community/supabase-go"
)

var SupabaseClient *supa.Client

// InitSupabase initializes the shared Supabase client. The service key
// is required: project documents live behind row-level security and
// the API acts on behalf of its own service role.
func InitSupabase(cfg Config) error {
	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		return fmt.Errorf("initializing supabase client: %w", err)
	}
	SupabaseClient = client
	return nil
}
